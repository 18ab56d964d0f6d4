// Package web provides the HTTP server of the userhub API: routing,
// middleware and controller wiring.
package web

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"userhub/config"
	"userhub/logger"
	"userhub/util/common"
	"userhub/util/random"
	"userhub/web/controller"
	"userhub/web/entity"
	"userhub/web/middleware"
	"userhub/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Server is the userhub web server, owning the gin engine, the services
// and the controllers.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth  *controller.AuthController
	users *controller.UserController

	settingService service.SettingService
	userService    service.UserService

	settings entity.Settings

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	// Photos are already compressed, skip them.
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/photo/"}),
	))

	secret := config.GetTokenSecret()
	if secret == "" {
		secret = random.Seq(32)
		logger.Warning("USERHUB_TOKEN_SECRET not set, using an ephemeral secret; issued tokens will not survive a restart")
	}

	tokens := service.NewTokenService([]byte(secret), time.Duration(s.settings.TokenTTLMinutes)*time.Minute)
	photos := service.NewPhotoService(s.settings.PhotoDir)

	// Uploaded photos are served publicly.
	engine.Static("/photo", s.settings.PhotoDir)

	v1 := engine.Group("/v1")
	v1.Use(middleware.TokenRequired(tokens, &s.userService))

	s.auth = controller.NewAuthController(&engine.RouterGroup, v1, tokens, photos)
	s.users = controller.NewUserController(v1, photos, s.settings.PageSize)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.Msg{
			Message: "not found",
			Code:    http.StatusNotFound,
		})
	})

	return engine, nil
}

// Start loads the settings, builds the router and begins serving, with TLS
// when a certificate pair is configured.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.settings, err = s.settingService.GetSettings()
	if err != nil {
		return err
	}

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(s.settings.Listen, strconv.Itoa(s.settings.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if s.settings.CertFile != "" || s.settings.KeyFile != "" {
		if cert, err := tls.LoadX509KeyPair(s.settings.CertFile, s.settings.KeyFile); err == nil {
			cfg := &tls.Config{Certificates: []tls.Certificate{cert}}
			listener = tls.NewListener(listener, cfg)
			logger.Info("Web server running HTTPS on", listener.Addr())
		} else {
			logger.Error("Error loading certificates:", err)
			logger.Info("Web server running HTTP on", listener.Addr())
		}
	} else {
		logger.Info("Web server running HTTP on", listener.Addr())
	}

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop() error {
	s.cancel()
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
