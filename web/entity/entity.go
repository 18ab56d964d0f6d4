// Package entity defines data structures used by the web layer of userhub.
package entity

import (
	"crypto/tls"
	"math"
	"net"
	"strings"

	"userhub/database/model"
	"userhub/util/common"
)

// Msg is the uniform API response envelope.
type Msg struct {
	Message string      `json:"message"`          // Response message text
	Code    int         `json:"code"`             // HTTP status code echoed in the body
	Data    any         `json:"data,omitempty"`   // Optional payload
	Errors  FieldErrors `json:"errors,omitempty"` // Per-field validation errors
}

// FieldErrors maps a request field to its validation failure messages.
type FieldErrors map[string][]string

// Add appends a failure message for the given field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// TokenData is the login/register/refresh payload.
type TokenData struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// PageData is the paginated user listing payload.
type PageData struct {
	Users   []model.User `json:"users"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
}

// Settings contains the runtime configuration of the web server,
// overridable from a TOML file.
type Settings struct {
	Listen          string `toml:"listen" json:"listen"`
	Port            int    `toml:"port" json:"port"`
	CertFile        string `toml:"certFile" json:"certFile"`
	KeyFile         string `toml:"keyFile" json:"keyFile"`
	PhotoDir        string `toml:"photoDir" json:"photoDir"`
	TokenTTLMinutes int    `toml:"tokenTTLMinutes" json:"tokenTTLMinutes"`
	PageSize        int    `toml:"pageSize" json:"pageSize"`
}

// DefaultSettings returns the settings used when no TOML file overrides them.
func DefaultSettings() Settings {
	return Settings{
		Listen:          "",
		Port:            8080,
		PhotoDir:        "public/photo",
		TokenTTLMinutes: 60,
		PageSize:        10,
	}
}

// CheckValid validates the settings, checking the listen IP, port range,
// TLS key pair and the positive numeric options.
func (s *Settings) CheckValid() error {
	if s.Listen != "" {
		ip := net.ParseIP(s.Listen)
		if ip == nil {
			return common.NewError("listen is not valid ip:", s.Listen)
		}
	}

	if s.Port <= 0 || s.Port > math.MaxUint16 {
		return common.NewError("port is not a valid port:", s.Port)
	}

	if s.CertFile != "" || s.KeyFile != "" {
		_, err := tls.LoadX509KeyPair(s.CertFile, s.KeyFile)
		if err != nil {
			return common.NewErrorf("cert file <%v> or key file <%v> invalid: %v", s.CertFile, s.KeyFile, err)
		}
	}

	if strings.TrimSpace(s.PhotoDir) == "" {
		return common.NewError("photo dir can not be empty")
	}

	if s.TokenTTLMinutes <= 0 {
		return common.NewError("token ttl must be positive:", s.TokenTTLMinutes)
	}

	if s.PageSize <= 0 {
		return common.NewError("page size must be positive:", s.PageSize)
	}

	return nil
}
