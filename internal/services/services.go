package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"atum/internal/backend"
	"atum/internal/config"
	"atum/internal/repositories"
	"atum/internal/workshop"
)

// Services aggregates everything bound to the frontend.
type Services struct {
	AppSettings AppSettingsService
	Workshop    *WorkshopService

	client *backend.Client
	cfg    *config.Config
}

// NewServices wires the backend client, workshop controller and settings
// store. The desktop clipboard and save dialog back the export actions.
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	client := backend.NewClient(cfg.APIBaseURL)
	controller := workshop.NewController(client,
		workshop.WithNotificationTTL(cfg.NotificationTTL),
		workshop.WithClipboard(RuntimeClipboard{}),
		workshop.WithFileSaver(RuntimeFileSaver{}),
	)

	s := &Services{
		Workshop: NewWorkshopService(controller),
		client:   client,
		cfg:      cfg,
	}
	s.AppSettings = NewAppSettingsService(repositories.NewAppSettingsRepository(db), s.applyBaseURL)
	return s
}

// Startup hands the runtime context to every service and points the backend
// client at the persisted API base URL, if one was saved.
func (s *Services) Startup(ctx context.Context) error {
	s.AppSettings.Startup(ctx)
	s.Workshop.Startup(ctx)

	settings, err := s.AppSettings.Get()
	if err != nil {
		return err
	}
	s.applyBaseURL(settings.APIBaseURL)
	return nil
}

// applyBaseURL falls back to the configured URL when no override is stored.
func (s *Services) applyBaseURL(url string) {
	if strings.TrimSpace(url) == "" {
		url = s.cfg.APIBaseURL
	}
	s.client.SetBaseURL(url)
}

func (s *Services) BaseURL() string {
	return s.client.BaseURL()
}
