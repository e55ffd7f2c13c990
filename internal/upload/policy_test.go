package upload

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoredNameLowercasesExtension(t *testing.T) {
	name := StoredName(PrefixEventImage, "42", "Party.JPG", time.Now())
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.True(t, strings.HasPrefix(name, "img_42_"))
}

func TestStoredNameDistinctForSameInstant(t *testing.T) {
	at := time.Now()
	first := StoredName(PrefixEventImage, "7", "a.png", at)
	second := StoredName(PrefixEventImage, "7", "a.png", at)
	assert.NotEqual(t, first, second, "same owner and instant must not collide")
}

func TestStoredNameEmbedsTimestamp(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	name := StoredName(PrefixCategoryHero, "Live_Music", "hero.png", at)
	assert.Contains(t, name, "category_heroimg_Live_Music_1700000000000_")
}

func TestRelativePathStaysRelative(t *testing.T) {
	rel := RelativePath("img_1_123_abcd1234.png")
	assert.False(t, filepath.IsAbs(rel))
	assert.Equal(t, "uploads/img_1_123_abcd1234.png", rel)
}

func TestFormatOwnerName(t *testing.T) {
	assert.Equal(t, "Live_Music", FormatOwnerName("Live Music"))
	assert.Equal(t, "a_b_c", FormatOwnerName("a  b\tc"))
	assert.Equal(t, "default", FormatOwnerName(""))
}

func TestFormatOwnerNameStripsPathCharacters(t *testing.T) {
	hostile := []string{
		"../../../../../../../tmp/evil",
		`..\..\windows\evil`,
		"/etc/passwd",
		"a/../../b",
		"....//",
	}

	for _, name := range hostile {
		got := FormatOwnerName(name)
		assert.NotContains(t, got, "/", name)
		assert.NotContains(t, got, `\`, name)
		assert.NotContains(t, got, "..", name)
	}

	assert.Equal(t, "_tmp_evil", FormatOwnerName("../../../../../../../tmp/evil"))
	assert.Equal(t, "default", FormatOwnerName("...."))
}

func TestStoredNameHostileOwnerStaysBare(t *testing.T) {
	name := StoredName(PrefixCategoryHero, FormatOwnerName("../../tmp/evil"), "x.png", time.Now())
	assert.Equal(t, name, filepath.Base(name))
	assert.NotContains(t, name, "..")
}
