package handlers

import (
	"errors"
	"net/http"

	"github.com/arkamaulana/eventhub/internal/helpers"
	"github.com/arkamaulana/eventhub/internal/middleware"
	"github.com/arkamaulana/eventhub/internal/models"
	"github.com/arkamaulana/eventhub/internal/upload"
	"github.com/gin-gonic/gin"
)

const maxEventFiles = 4

func UploadEventFiles(c *gin.Context) {
	ownerID, parts, err := upload.Receive(c, "filename", "event_id", maxEventFiles)
	if err != nil {
		if errors.Is(err, upload.ErrMissingOwner) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Missing event_id in request body.")
			return
		}
		if errors.Is(err, upload.ErrTooManyFiles) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Too many files. A maximum of 4 is allowed.")
			return
		}
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid multipart request.")
		return
	}

	eventID, err := helpers.StringToUint(ownerID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_id.")
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

	result, err := uploader.SaveEventFiles(c, db, eventID, parts)
	if m := middleware.GetMetrics(c); m != nil {
		m.FilesAccepted.Add(float64(result.Accepted))
		m.FilesRejected.Add(float64(result.Rejected))
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to upload files.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Files uploaded successfully.",
		"is_approved": true,
		"accepted":    result.Accepted,
		"rejected":    result.Rejected,
	})
}

type eventFileView struct {
	ID         uint   `json:"id"`
	EventID    uint   `json:"event_id"`
	Filename   string `json:"filename"`
	Type       string `json:"type"`
	Path       string `json:"path"`
	IsApproved bool   `json:"is_approved"`
}

func ListEventFiles(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var files []models.EventFile
	if err := db.WithContext(c.Request.Context()).Find(&files).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch uploaded files.")
		return
	}

	base := middleware.GetPublicBaseURL(c)
	views := make([]eventFileView, 0, len(files))
	for _, f := range files {
		views = append(views, eventFileView{
			ID:         f.ID,
			EventID:    f.EventID,
			Filename:   f.Filename,
			Type:       f.Type,
			Path:       helpers.PublicURL(base, f.Path),
			IsApproved: f.IsApproved,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"files":   views,
	})
}
