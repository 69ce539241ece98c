package repository

import (
	"strings"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
)

// ValidFilename reports whether a client-supplied filename is one the
// store could have generated: a bare name.json with no path separators
// and only sanitized characters in the stem. Anything else is treated
// as an unknown record rather than touching the filesystem.
func ValidFilename(filename string) bool {
	stem, ok := strings.CutSuffix(filename, ".json")
	if !ok || stem == "" {
		return false
	}
	return stem == domain.SanitizeName(stem)
}
