package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// driveFileIDPatterns matches the known Google Drive URL shapes:
// uc?id=FILE_ID, uc?export=view&id=FILE_ID, thumbnail?id=FILE_ID,
// /file/d/FILE_ID and /d/FILE_ID.
var driveFileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`),
}

// DriveThumbnailURL builds the public thumbnail URL for a Drive file.
// The thumbnail service is used instead of the raw webContentLink because
// the latter is unreliable for inline embedding.
func DriveThumbnailURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w1000", fileID)
}

// ExtractDriveFileID returns the file ID embedded in a Google Drive URL,
// or "" when the URL does not match any known shape.
func ExtractDriveFileID(url string) string {
	if url == "" {
		return ""
	}
	for _, pattern := range driveFileIDPatterns {
		if m := pattern.FindStringSubmatch(url); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// NormalizeDriveImageURL converts any known Google Drive URL shape to the
// thumbnail format. Non-Drive URLs (externally hosted images) pass through
// unchanged. The function is idempotent.
func NormalizeDriveImageURL(url string) string {
	if url == "" {
		return url
	}
	if strings.Contains(url, "drive.google.com/thumbnail") {
		return url
	}
	fileID := ExtractDriveFileID(url)
	if fileID != "" && strings.Contains(url, "drive.google.com") {
		return DriveThumbnailURL(fileID)
	}
	return url
}
