package recipe

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const magicNumberSeek = 512

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/svg+xml": true,
	"image/webp":    true,
	"image/gif":     true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrInvalidImage        = errors.New("invalid image payload")
)

type UploadedFile struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// DecodeImage decodes an inline base64 image payload, with or without the
// "data:image/...;base64," prefix. The MIME type is sniffed from the decoded
// bytes rather than trusted from the data URI.
func DecodeImage(payload string) (UploadedFile, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return UploadedFile{}, fmt.Errorf("empty payload: %w", ErrInvalidImage)
	}

	if strings.HasPrefix(payload, "data:") {
		_, rest, found := strings.Cut(payload, ",")
		if !found {
			return UploadedFile{}, fmt.Errorf("malformed data uri: %w", ErrInvalidImage)
		}
		payload = rest
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return UploadedFile{}, errors.Join(ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return UploadedFile{}, fmt.Errorf("empty image: %w", ErrInvalidImage)
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if !allowedImageTypes[contentType] {
		return UploadedFile{}, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return UploadedFile{
		Size:     int64(len(data)),
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}
