package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload ceiling (50MB), matching the site's largest
// walkthrough videos.
const MaxFileSize = 50 << 20

var (
	ErrUnsupportedType = errors.New("only images and videos are allowed")
	ErrTooLarge        = errors.New("file exceeds the size limit")
)

// File is one stored media asset. The generated name is its identity;
// there is no database record behind it.
type File struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Store interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (File, error)
	List(ctx context.Context) ([]File, error)
	Remove(ctx context.Context, name string) error
}

// Validate enforces the media-type and size constraints before any
// bytes are read.
func Validate(fh *multipart.FileHeader) error {
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "video/") {
		return ErrUnsupportedType
	}
	if fh.Size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

// NewName builds a collision-resistant filename: upload instant, a
// random component, and the original extension.
func NewName(original string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, filepath.Ext(original))
}
