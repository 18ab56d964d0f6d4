package service

import (
	"os"

	"userhub/config"
	"userhub/web/entity"

	"github.com/pelletier/go-toml/v2"
)

// SettingService loads the server settings: defaults, overridden by the
// TOML settings file when one exists.
type SettingService struct{}

func (s *SettingService) GetSettings() (entity.Settings, error) {
	settings := entity.DefaultSettings()

	data, err := os.ReadFile(config.GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, err
	}

	if err := settings.CheckValid(); err != nil {
		return settings, err
	}
	return settings, nil
}
