// Package server exposes the webhook endpoints the chat providers call
// and a small management API for profile administration.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/studyping/studyping/pkg/domain"
	"github.com/studyping/studyping/pkg/router"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/message_handler.go -pkg mocks -skip-ensure -fmt goimports . MessageHandler
//go:generate moq -out mocks/profile_manager.go -pkg mocks -skip-ensure -fmt goimports . ProfileManager

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	handler  MessageHandler
	profiles ProfileManager
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// MessageHandler processes one inbound chat message
type MessageHandler interface {
	Handle(ctx context.Context, msg router.InboundMessage)
}

// ProfileManager interface for the management API
type ProfileManager interface {
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	LinkTelegram(ctx context.Context, email, chatID string) error
	LinkWhatsApp(ctx context.Context, email, number string) error
	UnlinkTelegram(ctx context.Context, email string) error
	UnlinkWhatsApp(ctx context.Context, email string) error
	SetPreferredChannel(ctx context.Context, email string, pc domain.PreferredChannel) error
	SetReminderSettings(ctx context.Context, email string, freq domain.Frequency, timeOfDay string) error
	SetActiveTopic(ctx context.Context, email, topic string) error
	Delete(ctx context.Context, email string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, handler MessageHandler, profiles ProfileManager, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		handler:  handler,
		profiles: profiles,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("studyping", "studyping", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// provider webhooks
	s.router.HandleFunc("POST /webhook/telegram", s.telegramWebhookHandler)
	s.router.HandleFunc("POST /webhook/whatsapp", s.whatsappWebhookHandler)

	// management API
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /users/link-telegram", s.linkTelegramHandler)
		r.HandleFunc("POST /users/link-whatsapp", s.linkWhatsAppHandler)
		r.HandleFunc("DELETE /users/{email}/telegram", s.unlinkTelegramHandler)
		r.HandleFunc("DELETE /users/{email}/whatsapp", s.unlinkWhatsAppHandler)
		r.HandleFunc("GET /users/{email}/settings", s.getSettingsHandler)
		r.HandleFunc("PUT /users/{email}/settings", s.updateSettingsHandler)
		r.HandleFunc("DELETE /users/{email}", s.deleteUserHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderStoreError maps domain errors to HTTP codes
func renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		RenderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, domain.ErrConflict):
		RenderError(w, r, err, http.StatusConflict)
	default:
		RenderError(w, r, err, http.StatusInternalServerError)
	}
}
