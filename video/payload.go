package video

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const videoTypePrefix = "video/"

// ErrInvalidPayloadType is returned when a payload does not declare a video media type
var ErrInvalidPayloadType = errors.New("invalid payload type")

// Payload describes a file handed to the uploader. Only the declared type is
// ever inspected; the contents are never read past type detection.
type Payload struct {
	Name string
	Type string
	Size int64
}

// IsZero reports whether no file was provided
func (p Payload) IsZero() bool {
	return p.Name == ""
}

// PayloadFromFile builds a payload for a file on disk. The declared type comes
// from the file extension and falls back to content sniffing for unknown ones.
func PayloadFromFile(path string) (Payload, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return Payload{}, fmt.Errorf("%s is a directory", path)
	}

	mediaType, ok := TypeFromName(path)
	if !ok {
		mediaType, err = detectType(path)
		if err != nil {
			return Payload{}, err
		}
	}

	return Payload{
		Name: filepath.Base(path),
		Type: mediaType,
		Size: fi.Size(),
	}, nil
}

// detectType sniffs the media type from file contents, dropping any parameters
func detectType(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to detect type of %s: %w", path, err)
	}
	base, _, _ := strings.Cut(mt.String(), ";")
	return strings.TrimSpace(base), nil
}
