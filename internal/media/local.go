package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// LocalStore keeps uploads on disk under a single directory; files are
// served back as static assets under urlPrefix.
type LocalStore struct {
	dir       string
	urlPrefix string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: "/uploads"}, nil
}

func (s *LocalStore) Save(_ context.Context, fh *multipart.FileHeader) (File, error) {
	if err := Validate(fh); err != nil {
		return File{}, err
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := NewName(fh.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return File{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return File{}, fmt.Errorf("write file: %w", err)
	}

	return s.file(name), nil
}

func (s *LocalStore) List(_ context.Context) ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scan upload dir: %w", err)
	}

	files := []File{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, s.file(e.Name()))
	}
	return files, nil
}

// Remove deletes by name. A missing file surfaces as a plain I/O error,
// indistinguishable from other removal failures.
func (s *LocalStore) Remove(_ context.Context, name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

func (s *LocalStore) file(name string) File {
	return File{
		Name: name,
		URL:  s.urlPrefix + "/" + name,
	}
}

var _ Store = (*LocalStore)(nil)
