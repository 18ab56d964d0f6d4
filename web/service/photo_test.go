package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("photo", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File["photo"][0]
}

func TestPhotoSave(t *testing.T) {
	svc := NewPhotoService(filepath.Join(t.TempDir(), "photo"))

	name, err := svc.Save(makeFileHeader(t, "my avatar.jpg", "image-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_my_avatar.jpg"), "got %q", name)

	data, err := os.ReadFile(filepath.Join(svc.Dir(), name))
	assert.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestPhotoDelete(t *testing.T) {
	svc := NewPhotoService(t.TempDir())

	name, err := svc.Save(makeFileHeader(t, "old.jpg", "old"))
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(name))
	_, err = os.Stat(filepath.Join(svc.Dir(), name))
	assert.True(t, os.IsNotExist(err))

	// missing file and empty reference are not errors
	assert.NoError(t, svc.Delete(name))
	assert.NoError(t, svc.Delete(""))
}

func TestPhotoReplace(t *testing.T) {
	svc := NewPhotoService(t.TempDir())

	oldName, err := svc.Save(makeFileHeader(t, "old.jpg", "old"))
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(oldName))
	newName, err := svc.Save(makeFileHeader(t, "new.jpg", "new"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(svc.Dir(), oldName))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(svc.Dir(), newName))
	assert.NoError(t, err)
}
