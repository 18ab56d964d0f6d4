package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSettingsDefaults(t *testing.T) {
	t.Setenv("USERHUB_SETTINGS", filepath.Join(t.TempDir(), "missing.toml"))

	svc := SettingService{}
	settings, err := svc.GetSettings()
	assert.NoError(t, err)
	assert.Equal(t, 8080, settings.Port)
	assert.Equal(t, "public/photo", settings.PhotoDir)
	assert.Equal(t, 60, settings.TokenTTLMinutes)
	assert.Equal(t, 10, settings.PageSize)
}

func TestGetSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userhub.toml")
	content := "listen = \"127.0.0.1\"\nport = 9090\npageSize = 25\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("USERHUB_SETTINGS", path)

	svc := SettingService{}
	settings, err := svc.GetSettings()
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", settings.Listen)
	assert.Equal(t, 9090, settings.Port)
	assert.Equal(t, 25, settings.PageSize)
	// untouched keys keep their defaults
	assert.Equal(t, 60, settings.TokenTTLMinutes)
}

func TestGetSettingsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userhub.toml")
	assert.NoError(t, os.WriteFile(path, []byte("port = -1\n"), 0o644))
	t.Setenv("USERHUB_SETTINGS", path)

	svc := SettingService{}
	_, err := svc.GetSettings()
	assert.Error(t, err)
}
