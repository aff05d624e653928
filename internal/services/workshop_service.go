package services

import (
	"context"

	"atum/internal/models"
	"atum/internal/workshop"
)

// WorkshopService exposes the workshop controller to the frontend. Every
// action returns the state after it finished; failures are already reflected
// in the state's error and notification slots.
type WorkshopService struct {
	context    context.Context
	controller *workshop.Controller
}

func NewWorkshopService(controller *workshop.Controller) *WorkshopService {
	return &WorkshopService{controller: controller, context: context.Background()}
}

func (s *WorkshopService) Startup(ctx context.Context) {
	s.context = ctx
	s.controller.SetEventContext(ctx)
}

func (s *WorkshopService) Languages() []models.LanguageOption {
	return models.Languages()
}

// Frameworks lists the testing frameworks for the selected language.
func (s *WorkshopService) Frameworks() []models.FrameworkOption {
	return models.FrameworksFor(s.controller.Selection().Language)
}

func (s *WorkshopService) State() models.WorkshopState {
	return s.controller.State()
}

func (s *WorkshopService) SetQuery(query string) models.WorkshopState {
	s.controller.SetQuery(query)
	return s.controller.State()
}

func (s *WorkshopService) SetLanguage(language string) (models.WorkshopState, error) {
	if err := s.controller.SetLanguage(models.Language(language)); err != nil {
		return s.controller.State(), err
	}
	return s.controller.State(), nil
}

func (s *WorkshopService) SetFramework(framework string) (models.WorkshopState, error) {
	if err := s.controller.SetFramework(models.Framework(framework)); err != nil {
		return s.controller.State(), err
	}
	return s.controller.State(), nil
}

func (s *WorkshopService) SetManualCode(code string) models.WorkshopState {
	s.controller.SetManualCode(code)
	return s.controller.State()
}

func (s *WorkshopService) ClearManualCode() models.WorkshopState {
	s.controller.ClearManualCode()
	return s.controller.State()
}

func (s *WorkshopService) GenerateCode() models.WorkshopState {
	return s.run(s.controller.GenerateCode)
}

func (s *WorkshopService) GenerateTests() models.WorkshopState {
	return s.run(s.controller.GenerateTests)
}

func (s *WorkshopService) GenerateDocs() models.WorkshopState {
	return s.run(s.controller.GenerateDocs)
}

func (s *WorkshopService) QualityReport() models.WorkshopState {
	return s.run(s.controller.QualityReport)
}

func (s *WorkshopService) ToggleQualityDetails() models.WorkshopState {
	s.controller.ToggleQualityDetails()
	return s.controller.State()
}

func (s *WorkshopService) CopyCode() models.WorkshopState {
	return s.run(s.controller.CopyCode)
}

func (s *WorkshopService) CopyTests() models.WorkshopState {
	return s.run(s.controller.CopyTests)
}

func (s *WorkshopService) CopyDocumentation() models.WorkshopState {
	return s.run(s.controller.CopyDocumentation)
}

func (s *WorkshopService) DownloadDocumentation() models.WorkshopState {
	_, _ = s.controller.DownloadDocumentation(s.context)
	return s.controller.State()
}

func (s *WorkshopService) ClearResult(action string) (models.WorkshopState, error) {
	if err := s.controller.ClearResult(workshop.Action(action)); err != nil {
		return s.controller.State(), err
	}
	return s.controller.State(), nil
}

func (s *WorkshopService) DismissError() models.WorkshopState {
	s.controller.DismissError()
	return s.controller.State()
}

func (s *WorkshopService) DismissNotification() models.WorkshopState {
	s.controller.DismissNotification()
	return s.controller.State()
}

// run invokes an action. Gate, busy and request errors are already
// surfaced in the state's feedback slots, so they are not returned.
func (s *WorkshopService) run(action func(context.Context) error) models.WorkshopState {
	_ = action(s.context)
	return s.controller.State()
}
