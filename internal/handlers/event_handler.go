package handlers

import (
	"net/http"
	"time"

	"github.com/arkamaulana/eventhub/internal/helpers"
	"github.com/arkamaulana/eventhub/internal/middleware"
	"github.com/arkamaulana/eventhub/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventRequest struct {
	Title                 string `json:"title" binding:"required"`
	CategoryID            uint   `json:"category_id"`
	StartDateTime         string `json:"start_date_time" binding:"required"`
	EndDateTime           string `json:"end_date_time" binding:"required"`
	IsOnline              bool   `json:"is_online"`
	IsPaid                bool   `json:"is_paid"`
	Location              string `json:"location"`
	Address               string `json:"address"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	Country               string `json:"country"`
	ZipCode               string `json:"zip_code"`
	AdditionalInformation string `json:"additional_information"`
	RulesRegulations      string `json:"rules_regulations"`
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format.")
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndDateTime)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end time format.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	event := models.Event{
		Title:                 req.Title,
		CategoryID:            req.CategoryID,
		StartDateTime:         startTime,
		EndDateTime:           endTime,
		IsOnline:              req.IsOnline,
		IsPaid:                req.IsPaid,
		Location:              req.Location,
		Address:               req.Address,
		City:                  req.City,
		State:                 req.State,
		Country:               req.Country,
		ZipCode:               req.ZipCode,
		AdditionalInformation: req.AdditionalInformation,
		RulesRegulations:      req.RulesRegulations,
		UploadedAt:            time.Now(),
	}

	if err := db.WithContext(c.Request.Context()).Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

// publicFilePaths rewrites stored relative paths into servable URLs before
// events leave the API.
func publicFilePaths(base string, events []models.Event) {
	for i := range events {
		for j := range events[i].Files {
			events[i].Files[j].Path = helpers.PublicURL(base, events[i].Files[j].Path)
		}
	}
}

func ListEvents(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var events []models.Event
	err := db.WithContext(c.Request.Context()).Preload("Files").Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	publicFilePaths(middleware.GetPublicBaseURL(c), events)
	c.JSON(http.StatusOK, events)
}

type EventFilterRequest struct {
	IsPaid     *string  `json:"is_paid"`
	CategoryID *uint    `json:"category_id"`
	Dates      []string `json:"dates"`
	Today      bool     `json:"today"`
	Tomorrow   bool     `json:"tomorrow"`
}

// dayWindow returns the half-open interval covering the given calendar day.
func dayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.Add(24 * time.Hour)
}

func FilterEvents(c *gin.Context) {
	var req EventFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid filter input.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	query := db.WithContext(c.Request.Context()).Model(&models.Event{})

	if req.IsPaid != nil {
		switch *req.IsPaid {
		case "1":
			query = query.Where("is_paid = ?", true)
		case "0":
			query = query.Where("is_paid = ?", false)
		default:
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid value for is_paid.")
			return
		}
	}

	if req.CategoryID != nil {
		query = query.Where("category_id = ?", *req.CategoryID)
	}

	if len(req.Dates) > 0 {
		var dateCond *gorm.DB
		for _, raw := range req.Dates {
			day, err := time.Parse("2006-01-02", raw)
			if err != nil {
				helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date filter. Use YYYY-MM-DD.")
				return
			}
			dayStart, dayEnd := dayWindow(day)
			cond := db.Where("start_date_time < ? AND end_date_time >= ?", dayEnd, dayStart)
			if dateCond == nil {
				dateCond = cond
			} else {
				dateCond = dateCond.Or(cond)
			}
		}
		query = query.Where(dateCond)
	}

	if req.Today {
		dayStart, dayEnd := dayWindow(time.Now())
		query = query.Where("start_date_time >= ? AND start_date_time < ?", dayStart, dayEnd)
	}

	if req.Tomorrow {
		dayStart, dayEnd := dayWindow(time.Now().Add(24 * time.Hour))
		query = query.Where(
			"(start_date_time >= ? AND start_date_time < ?) OR (end_date_time >= ? AND end_date_time < ?)",
			dayStart, dayEnd, dayStart, dayEnd,
		)
	}

	var events []models.Event
	if err := query.Preload("Files").Find(&events).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	publicFilePaths(middleware.GetPublicBaseURL(c), events)
	c.JSON(http.StatusOK, events)
}

func ListCategoryEvents(c *gin.Context) {
	categoryID, err := helpers.StringToUint(c.Param("category_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category id.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var events []models.Event
	err = db.WithContext(c.Request.Context()).
		Where("category_id = ?", categoryID).
		Preload("Files").
		Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	publicFilePaths(middleware.GetPublicBaseURL(c), events)
	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	eventID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var event models.Event
	err = db.WithContext(c.Request.Context()).Preload("Files").Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	images := make([]gin.H, 0, len(event.Files))
	for _, f := range event.Files {
		images = append(images, gin.H{
			"filename": f.Filename,
			"path":     helpers.PublicURL(middleware.GetPublicBaseURL(c), f.Path),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"event": gin.H{
			"eventDetails": event,
			"images":       images,
		},
	})
}

// updatableEventColumns is the whitelist for partial updates; anything else
// in the request body is ignored.
var updatableEventColumns = map[string]bool{
	"title":                  true,
	"category_id":            true,
	"start_date_time":        true,
	"end_date_time":          true,
	"is_online":              true,
	"is_paid":                true,
	"location":               true,
	"address":                true,
	"city":                   true,
	"state":                  true,
	"country":                true,
	"zip_code":               true,
	"additional_information": true,
	"rules_regulations":      true,
}

func UpdateEvent(c *gin.Context) {
	eventID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	updates := map[string]interface{}{}
	for key, value := range body {
		if !updatableEventColumns[key] {
			continue
		}
		if key == "start_date_time" || key == "end_date_time" {
			raw, ok := value.(string)
			if !ok {
				helpers.RespondWithError(c, http.StatusBadRequest, "Invalid time format.")
				return
			}
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				helpers.RespondWithError(c, http.StatusBadRequest, "Invalid time format.")
				return
			}
			updates[key] = parsed
			continue
		}
		updates[key] = value
	}

	if len(updates) == 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "No updatable fields provided.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	result := db.WithContext(c.Request.Context()).
		Model(&models.Event{}).
		Where("id = ?", eventID).
		Updates(updates)
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
	})
}

func DeleteEvent(c *gin.Context) {
	eventID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	// Deleting an id that does not exist still reports success; clients
	// treat delete as idempotent.
	result := db.WithContext(c.Request.Context()).Where("id = ?", eventID).Delete(&models.Event{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}
