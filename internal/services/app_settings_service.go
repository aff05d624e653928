package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"atum/internal/models"
	"atum/internal/repositories"
)

type AppSettingsService interface {
	Get() (*models.AppSettings, error)
	Update(theme, apiBaseURL string) (*models.AppSettings, error)
	Startup(ctx context.Context)
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	context     context.Context
	onBaseURL   func(string)
	validate    *validator.Validate
}

type settingsInput struct {
	Theme      string `validate:"required,oneof=light dark system"`
	APIBaseURL string `validate:"omitempty,url"`
}

func (s *appSettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

// NewAppSettingsService builds the settings service. onBaseURL, when set, is
// called with the new API base URL after every successful update.
func NewAppSettingsService(appSettings repositories.AppSettingsRepository, onBaseURL func(string)) AppSettingsService {
	return &appSettingsService{
		appSettings: appSettings,
		context:     context.Background(),
		onBaseURL:   onBaseURL,
		validate:    validator.New(),
	}
}

func (s *appSettingsService) Get() (*models.AppSettings, error) {
	return s.appSettings.Get(s.context)
}

func (s *appSettingsService) Update(theme, apiBaseURL string) (*models.AppSettings, error) {
	in := settingsInput{
		Theme:      strings.TrimSpace(theme),
		APIBaseURL: strings.TrimRight(strings.TrimSpace(apiBaseURL), "/"),
	}
	if in.Theme == "" {
		return nil, errors.New("theme is required")
	}
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			switch verrs[0].Field() {
			case "Theme":
				return nil, errors.New("theme must be 'light', 'dark', or 'system'")
			case "APIBaseURL":
				return nil, fmt.Errorf("api base url %q is not a valid URL", in.APIBaseURL)
			}
		}
		return nil, err
	}

	current, err := s.appSettings.Get(s.context)
	if err != nil {
		return nil, err
	}

	current.Theme = in.Theme
	current.APIBaseURL = in.APIBaseURL
	current.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := s.appSettings.Update(s.context, current); err != nil {
		return nil, err
	}

	if s.onBaseURL != nil {
		s.onBaseURL(current.APIBaseURL)
	}
	return current, nil
}
