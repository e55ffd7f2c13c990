package upload

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// Only these image types are accepted; gif is deliberately not on the list.
var allowedMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

func AllowedMimeType(mimeType string) bool {
	return allowedMimeTypes[strings.ToLower(mimeType)]
}

func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// AllowedPart checks a part's declared media type and its extension against
// the allow-lists.
func AllowedPart(fh *multipart.FileHeader) bool {
	return AllowedMimeType(fh.Header.Get("Content-Type")) && AllowedExtension(fh.Filename)
}
