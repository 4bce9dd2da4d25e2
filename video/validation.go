package video

import (
	"path/filepath"
	"strings"
)

// videoTypesByExtension maps known video file extensions to the media type a
// browser would declare for them
var videoTypesByExtension = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".flv":  "video/x-flv",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".wmv":  "video/x-ms-wmv",
	".mpg":  "video/mpeg",
}

// IsVideoFile checks if the given file extension is one of known video file extensions
func IsVideoFile(path string) bool {
	_, ok := TypeFromName(path)
	return ok
}

// TypeFromName returns the declared media type for a file name based on its extension
func TypeFromName(name string) (string, bool) {
	ext := filepath.Ext(name)
	ext = strings.ToLower(ext) // handle cases where extension is upper case

	mediaType, ok := videoTypesByExtension[ext]
	return mediaType, ok
}

// IsVideoType reports whether a declared media type is in the video/ family
func IsVideoType(mediaType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mediaType)), videoTypePrefix)
}
