package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arkamaulana/eventhub/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pipeline moves accepted multipart parts into the upload directory and
// records one metadata row per stored file. Writes are ordered
// write-then-record: a failed insert deletes the file it just placed, so
// the disk never keeps bytes the database does not know about. Earlier
// rows of the same batch are not rolled back.
type Pipeline struct {
	Dir    string
	Logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *Pipeline {
	return &Pipeline{Dir: dir, Logger: logger}
}

// Result aggregates a batch. A batch with rejected parts is still an
// overall success as long as the owner id was present.
type Result struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// Receive pulls the owner id and the file parts out of a multipart form.
// The owner check runs first: nothing is placed on disk for an ownerless
// request.
func Receive(c *gin.Context, fileField, ownerField string, maxFiles int) (string, []*multipart.FileHeader, error) {
	ownerID := c.PostForm(ownerField)
	if ownerID == "" {
		return "", nil, ErrMissingOwner
	}

	form, err := c.MultipartForm()
	if err != nil {
		return "", nil, err
	}

	parts := form.File[fileField]
	if len(parts) > maxFiles {
		return "", nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyFiles, len(parts), maxFiles)
	}

	return ownerID, parts, nil
}

// Store places one part under the upload directory and returns the
// relative path to persist. A stored name must be a bare filename; the
// destination can never leave p.Dir.
func (p *Pipeline) Store(c *gin.Context, fh *multipart.FileHeader, storedName string) (string, error) {
	if storedName != filepath.Base(storedName) || strings.Contains(storedName, "..") {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, storedName)
	}

	if err := os.MkdirAll(p.Dir, os.ModePerm); err != nil {
		return "", err
	}

	dest := filepath.Join(p.Dir, storedName)
	if err := c.SaveUploadedFile(fh, dest); err != nil {
		// A partial write may be left behind; remove it best-effort.
		os.Remove(dest)
		return "", err
	}

	return RelativePath(storedName), nil
}

// Remove is the compensating action for a failed insert.
func (p *Pipeline) Remove(storedName string) error {
	return os.Remove(filepath.Join(p.Dir, storedName))
}

// SaveEventFiles runs validation, naming, disk placement and persistence
// for every part of an event upload batch. Invalid parts are skipped and
// counted; a store failure aborts the remaining parts and is returned to
// the caller together with the counts so far.
func (p *Pipeline) SaveEventFiles(c *gin.Context, db *gorm.DB, eventID uint, parts []*multipart.FileHeader) (Result, error) {
	ctx := c.Request.Context()
	var res Result

	for _, fh := range parts {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if !AllowedPart(fh) {
			p.Logger.Warn("rejected upload part",
				zap.Uint("event_id", eventID),
				zap.String("filename", fh.Filename),
				zap.String("content_type", fh.Header.Get("Content-Type")),
			)
			res.Rejected++
			continue
		}

		storedName := StoredName(PrefixEventImage, fmt.Sprint(eventID), fh.Filename, time.Now())
		relPath, err := p.Store(c, fh, storedName)
		if err != nil {
			return res, err
		}

		row := models.EventFile{
			EventID:    eventID,
			Filename:   storedName,
			Type:       fh.Header.Get("Content-Type"),
			Path:       relPath,
			IsApproved: true,
		}
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			if rmErr := p.Remove(storedName); rmErr != nil {
				p.Logger.Error("failed to remove orphaned file", zap.String("filename", storedName), zap.Error(rmErr))
			}
			return res, err
		}

		res.Accepted++
	}

	return res, nil
}
