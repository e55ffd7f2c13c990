package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/arkamaulana/eventhub/internal/helpers"
	"github.com/arkamaulana/eventhub/internal/middleware"
	"github.com/arkamaulana/eventhub/internal/models"
	"github.com/arkamaulana/eventhub/internal/upload"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIsActive accepts the same spellings the form has always taken.
func parseIsActive(value string) (bool, bool) {
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	default:
		return false, false
	}
}

func CreateCategory(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing category name.")
		return
	}

	isActive, ok := parseIsActive(c.PostForm("is_active"))
	if !ok {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid value for is_active.")
		return
	}

	var parentID *uint
	if raw := c.PostForm("parent_category_id"); raw != "" {
		id, err := helpers.StringToUint(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid parent_category_id.")
			return
		}
		parentID = &id
	}

	heroFile, err := c.FormFile("hero_img")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing hero_img file.")
		return
	}
	logoFile, err := c.FormFile("logo_img")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing logo_img file.")
		return
	}

	if !upload.AllowedExtension(heroFile.Filename) || !upload.AllowedExtension(logoFile.Filename) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid file type. Only PNG, JPG, and JPEG files are allowed.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	uploader := middleware.GetUploader(c)
	if uploader == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Upload pipeline not configured.")
		return
	}

	now := time.Now()
	ownerKey := upload.FormatOwnerName(name)
	heroName := upload.StoredName(upload.PrefixCategoryHero, ownerKey, heroFile.Filename, now)
	logoName := upload.StoredName(upload.PrefixCategoryLogo, ownerKey, logoFile.Filename, now)

	heroPath, err := uploader.Store(c, heroFile, heroName)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to store hero image.")
		return
	}
	logoPath, err := uploader.Store(c, logoFile, logoName)
	if err != nil {
		uploader.Remove(heroName)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to store logo image.")
		return
	}

	category := models.Category{
		Name:             name,
		ParentCategoryID: parentID,
		HeroImg:          heroPath,
		LogoImg:          logoPath,
		IsActive:         isActive,
	}

	if err := db.WithContext(c.Request.Context()).Create(&category).Error; err != nil {
		uploader.Remove(heroName)
		uploader.Remove(logoName)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"message":       "Category created successfully.",
		"category_id":   category.ID,
		"hero_img_path": heroPath,
		"logo_img_path": logoPath,
	})
}

func FindCategories(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	query := db.WithContext(c.Request.Context()).Model(&models.Category{})
	if name := c.Query("name"); name != "" {
		query = query.Where("name = ?", name)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

type categoryView struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	HeroImg    string `json:"hero_img"`
	LogoImg    string `json:"logo_img"`
}

func ListMainCategories(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var categories []models.Category
	err := db.WithContext(c.Request.Context()).
		Where("is_active = ? AND parent_category_id IS NULL", true).
		Find(&categories).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	base := middleware.GetPublicBaseURL(c)
	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, categoryView{
			CategoryID: cat.ID,
			Name:       cat.Name,
			HeroImg:    helpers.PublicURL(base, cat.HeroImg),
			LogoImg:    helpers.PublicURL(base, cat.LogoImg),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": views,
	})
}

func GetCategory(c *gin.Context) {
	categoryID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category id.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	ctx := c.Request.Context()

	var category models.Category
	err = db.WithContext(ctx).Where("id = ? AND is_active = ?", categoryID, true).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch category.")
		return
	}

	var children []models.Category
	err = db.WithContext(ctx).
		Where("parent_category_id = ? AND is_active = ?", categoryID, true).
		Find(&children).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch child categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"children": children,
	})
}
