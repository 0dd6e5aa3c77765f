// Package media stores uploaded play images. The file name is derived from
// the slugified play title plus a generated unique suffix so that re-uploads
// never collide.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type Store interface {
	Save(ctx context.Context, name string, contents io.Reader) (string, error)
}

// ImageName builds a unique file name for a play image, e.g.
// "hamlet-1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed.jpg".
func ImageName(title, ext string) string {
	return fmt.Sprintf("%s-%s%s", slug.Make(title), uuid.NewString(), ext)
}

// DiskStore writes images under a base directory and returns a URL path
// rooted at urlPrefix.
type DiskStore struct {
	baseDir   string
	urlPrefix string
}

func NewDiskStore(baseDir, urlPrefix string) *DiskStore {
	return &DiskStore{
		baseDir:   baseDir,
		urlPrefix: urlPrefix,
	}
}

func (s *DiskStore) Save(ctx context.Context, name string, contents io.Reader) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, contents); err != nil {
		os.Remove(path)
		return "", err
	}

	return s.urlPrefix + "/" + name, nil
}
