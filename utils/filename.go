// utils/filename.go - Upload filename handling
package utils

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips any path component from name and replaces characters
// that are unsafe in a path segment. The result is never empty and never
// starts with a dot, so it cannot traverse out of the storage directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// TimestampedFilename prefixes the sanitized name with a UTC timestamp to the
// second, keeping concurrent uploads from colliding on the same path.
func TimestampedFilename(name string, now time.Time) string {
	return now.UTC().Format("20060102150405") + "_" + SanitizeFilename(name)
}
