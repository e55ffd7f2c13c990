package helpers

import (
	"strconv"
	"strings"
)

func StringToUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}

// PublicURL joins the configured public base URL with a relative storage
// path so clients get a servable link without any filesystem detail.
func PublicURL(base, relativePath string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(relativePath, "/")
}
