package upload

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Root is the relative prefix stored in the database and mapped to a
// public static route. Stored paths are always relative to it.
const Root = "uploads"

// Filename prefixes identifying the artifact kind.
const (
	PrefixEventImage   = "img"
	PrefixCategoryHero = "category_heroimg"
	PrefixCategoryLogo = "category_logoimg"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FormatOwnerName makes a form-supplied name safe for use inside a
// filename. Anything outside [A-Za-z0-9_-] collapses to a single
// underscore, so path separators and dot sequences cannot survive into a
// stored name.
func FormatOwnerName(name string) string {
	name = unsafeNameChars.ReplaceAllString(name, "_")
	if name == "" || name == "_" {
		name = "default"
	}
	return name
}

// StoredName derives the destination filename for an accepted part. The
// millisecond timestamp keeps names sortable; the uuid fragment makes two
// uploads for the same owner in the same millisecond distinct.
func StoredName(prefix, ownerKey, originalName string, at time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%s_%s_%d_%s%s", prefix, ownerKey, at.UnixMilli(), suffix, ext)
}

// RelativePath is the value persisted and later joined with the public base
// URL. Always forward-slashed and never absolute.
func RelativePath(storedName string) string {
	return path.Join(Root, storedName)
}
