package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"userhub/logger"
)

// MaxPhotoKilobytes is the upload size limit for user photos.
const MaxPhotoKilobytes int64 = 2520

// PhotoService stores uploaded photos in a public directory under unique,
// time-prefixed names and removes previous files on replacement.
type PhotoService struct {
	dir string
}

func NewPhotoService(dir string) *PhotoService {
	return &PhotoService{dir: dir}
}

func (s *PhotoService) Dir() string {
	return s.dir
}

// Save writes the uploaded file into the photo directory and returns the
// stored filename: "<unix time>_<original name with spaces replaced>".
func (s *PhotoService) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s", time.Now().Unix(),
		strings.ReplaceAll(filepath.Base(file.Filename), " ", "_"))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes a previously stored photo. A missing file is not an error;
// the reference may already be stale.
func (s *PhotoService) Delete(name string) error {
	if name == "" {
		return nil
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		logger.Warning("delete photo err:", err)
		return err
	}
	return nil
}
