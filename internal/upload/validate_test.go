package upload

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(filename, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestAllowedMimeType(t *testing.T) {
	assert.True(t, AllowedMimeType("image/png"))
	assert.True(t, AllowedMimeType("image/jpeg"))
	assert.True(t, AllowedMimeType("image/jpg"))
	assert.True(t, AllowedMimeType("IMAGE/PNG"))

	assert.False(t, AllowedMimeType("image/gif"))
	assert.False(t, AllowedMimeType("application/pdf"))
	assert.False(t, AllowedMimeType(""))
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("photo.png"))
	assert.True(t, AllowedExtension("photo.JPG"))
	assert.True(t, AllowedExtension("photo.jpeg"))

	assert.False(t, AllowedExtension("photo.gif"))
	assert.False(t, AllowedExtension("photo"))
	assert.False(t, AllowedExtension("photo.png.exe"))
}

func TestAllowedPart(t *testing.T) {
	assert.True(t, AllowedPart(header("a.png", "image/png")))

	// Both the declared type and the extension must pass.
	assert.False(t, AllowedPart(header("a.gif", "image/png")))
	assert.False(t, AllowedPart(header("a.png", "image/gif")))
}
