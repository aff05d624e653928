package workshop

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"atum/internal/backend"
	"atum/internal/events"
	"atum/internal/models"
)

// Backend is the remote generation service.
type Backend interface {
	GenerateCode(ctx context.Context, req backend.GenerateCodeRequest) (backend.CodeOutcome, error)
	GenerateTests(ctx context.Context, req backend.GenerateTestsRequest) (backend.TestsOutcome, error)
	GenerateDocs(ctx context.Context, req backend.GenerateDocsRequest) (backend.DocsOutcome, error)
	QualityReport(ctx context.Context, req backend.QualityReportRequest) (backend.QualityOutcome, error)
}

// RequestError is returned when a dispatched call fails, either in transport
// or because the backend reported a logical failure.
type RequestError struct {
	Action  Action
	Message string
	Err     error
}

func (e *RequestError) Error() string { return e.Message }
func (e *RequestError) Unwrap() error { return e.Err }

// Controller owns the workshop state and runs the four actions against it.
// Each action has its own busy flag, so up to four calls may be in flight,
// never two of the same kind.
type Controller struct {
	backend   Backend
	clipboard Clipboard
	files     FileSaver
	ttl       time.Duration

	mu        sync.Mutex
	selection Selection
	manual    string

	busy     *busyFlags
	results  ResultStore
	feedback Feedback

	ctxMu    sync.RWMutex
	eventCtx context.Context
}

type Option func(*Controller)

func WithNotificationTTL(ttl time.Duration) Option {
	return func(c *Controller) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

func WithFileSaver(fs FileSaver) Option {
	return func(c *Controller) { c.files = fs }
}

func NewController(b Backend, opts ...Option) *Controller {
	c := &Controller{
		backend:  b,
		ttl:      DefaultNotificationTTL,
		busy:     newBusyFlags(),
		eventCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.feedback = NewFeedback(c.ttl, c.noticeExpired)
	return c
}

// SetEventContext sets the context used for events that are not tied to a
// call, such as notification expiry.
func (c *Controller) SetEventContext(ctx context.Context) {
	if ctx == nil {
		return
	}
	c.ctxMu.Lock()
	c.eventCtx = ctx
	c.ctxMu.Unlock()
}

func (c *Controller) eventContext() context.Context {
	c.ctxMu.RLock()
	defer c.ctxMu.RUnlock()
	return c.eventCtx
}

func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	c.selection.Query = q
	c.mu.Unlock()
}

func (c *Controller) SetLanguage(lang models.Language) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.SetLanguage(lang)
}

func (c *Controller) SetFramework(fw models.Framework) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.SetFramework(fw)
}

func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

func (c *Controller) SetManualCode(code string) {
	c.mu.Lock()
	c.manual = code
	c.mu.Unlock()
}

func (c *Controller) ClearManualCode() { c.SetManualCode("") }

// EffectiveSource resolves the code dependent actions would use right now.
func (c *Controller) EffectiveSource() string {
	_, source := c.inputs()
	return source
}

// inputs snapshots the selection and effective source for a dispatch.
func (c *Controller) inputs() (Selection, string) {
	c.mu.Lock()
	sel, manual := c.selection, c.manual
	c.mu.Unlock()
	generated, _ := c.results.Code.Get()
	return sel, ResolveSource(manual, generated)
}

func (c *Controller) IsBusy(a Action) bool { return c.busy.isBusy(a) }

func (c *Controller) Results() *ResultStore { return &c.results }

func (c *Controller) GenerateCode(ctx context.Context) error {
	const a = ActionGenerateCode
	if c.busy.isBusy(a) {
		return ErrBusy
	}
	sel, _ := c.inputs()
	req, err := GateGenerateCode(sel)
	if err != nil {
		return c.reject(ctx, err)
	}
	return dispatch(ctx, c, a, func(ctx context.Context) (backend.CodeOutcome, error) {
		return c.backend.GenerateCode(ctx, req)
	}, c.results.Code.Set)
}

func (c *Controller) GenerateTests(ctx context.Context) error {
	const a = ActionGenerateTests
	if c.busy.isBusy(a) {
		return ErrBusy
	}
	sel, source := c.inputs()
	req, err := GateGenerateTests(sel, source)
	if err != nil {
		return c.reject(ctx, err)
	}
	return dispatch(ctx, c, a, func(ctx context.Context) (backend.TestsOutcome, error) {
		return c.backend.GenerateTests(ctx, req)
	}, c.results.Tests.Set)
}

func (c *Controller) GenerateDocs(ctx context.Context) error {
	const a = ActionGenerateDocs
	if c.busy.isBusy(a) {
		return ErrBusy
	}
	sel, source := c.inputs()
	req, err := GateGenerateDocs(sel, source)
	if err != nil {
		return c.reject(ctx, err)
	}
	return dispatch(ctx, c, a, func(ctx context.Context) (backend.DocsOutcome, error) {
		return c.backend.GenerateDocs(ctx, req)
	}, c.results.Docs.Set)
}

func (c *Controller) QualityReport(ctx context.Context) error {
	const a = ActionQualityReport
	if c.busy.isBusy(a) {
		return ErrBusy
	}
	sel, source := c.inputs()
	req, err := GateQualityReport(sel, source)
	if err != nil {
		return c.reject(ctx, err)
	}
	return dispatch(ctx, c, a, func(ctx context.Context) (backend.QualityOutcome, error) {
		return c.backend.QualityReport(ctx, req)
	}, c.results.SetQuality)
}

// dispatch runs one call for action a while holding its busy flag. The flag is
// released on every exit path and results are only written on success.
func dispatch[T any](ctx context.Context, c *Controller, a Action, call func(context.Context) (backend.Outcome[T], error), apply func(T)) error {
	if !c.busy.acquire(a) {
		return ErrBusy
	}
	c.emitBusy(ctx, a, true)
	defer func() {
		c.busy.release(a)
		c.emitBusy(ctx, a, false)
	}()

	if c.feedback.Errors.ClearIf(a) {
		evt := events.NewInfo(string(a), "")
		evt.Metadata = map[string]string{"cleared": "true"}
		events.Emit(ctx, events.WorkshopError, evt)
	}

	out, err := call(ctx)
	if err != nil {
		return c.fail(ctx, a, fmt.Sprintf("Error %s: %s", a.verb(), err.Error()), err)
	}
	if !out.OK {
		appErr := &backend.AppError{Messages: out.Messages, Fallback: a.fallbackFailure()}
		return c.fail(ctx, a, "Error: "+appErr.Error(), appErr)
	}

	apply(out.Payload)
	events.Emit(ctx, events.WorkshopResult, events.NewSuccess(string(a), a.fallbackSuccess()))
	return nil
}

func (c *Controller) reject(ctx context.Context, err error) error {
	var gerr *GateError
	if errors.As(err, &gerr) {
		c.notify(ctx, models.NotificationWarn, gerr.Action, gerr.Message)
	}
	return err
}

func (c *Controller) fail(ctx context.Context, a Action, msg string, cause error) error {
	c.feedback.Errors.Post(models.NotificationError, a, msg)
	evt := events.NewError(string(a), msg)
	if status := backend.StatusCode(cause); status != 0 {
		evt.Metadata = map[string]string{"status": strconv.Itoa(status)}
	}
	events.Emit(ctx, events.WorkshopError, evt)
	c.notify(ctx, models.NotificationError, a, msg)
	return &RequestError{Action: a, Message: msg, Err: cause}
}

func (c *Controller) notify(ctx context.Context, kind models.NotificationKind, a Action, msg string) models.Notification {
	n := c.feedback.Notices.Post(kind, a, msg)
	evt := events.CreateWorkshopEvent(eventType(kind), string(a), msg)
	evt.Metadata = map[string]string{"notificationId": n.ID}
	events.Emit(ctx, events.WorkshopNotification, evt)
	return n
}

func (c *Controller) noticeExpired(n models.Notification) {
	evt := events.NewInfo(n.Action, n.Message)
	evt.Metadata = map[string]string{"notificationId": n.ID}
	events.Emit(c.eventContext(), events.WorkshopNotificationClear, evt)
}

func (c *Controller) emitBusy(ctx context.Context, a Action, busy bool) {
	evt := events.NewInfo(string(a), "")
	evt.Metadata = map[string]string{"busy": strconv.FormatBool(busy)}
	events.Emit(ctx, events.WorkshopBusy, evt)
}

func eventType(kind models.NotificationKind) events.EventType {
	switch kind {
	case models.NotificationError:
		return events.EventError
	case models.NotificationWarn:
		return events.EventWarn
	case models.NotificationSuccess:
		return events.EventSuccess
	}
	return events.EventInfo
}

// ToggleQualityDetails flips the quality report details flag.
func (c *Controller) ToggleQualityDetails() bool {
	return c.results.ToggleDetails()
}

// ClearResult empties one result slot.
func (c *Controller) ClearResult(a Action) error {
	if !a.Valid() {
		return fmt.Errorf("unknown action %q", a)
	}
	c.results.Clear(a)
	return nil
}

func (c *Controller) DismissError() bool { return c.feedback.Errors.Clear() }

func (c *Controller) DismissNotification() bool { return c.feedback.Notices.Clear() }

// Notification returns the visible notification, if any.
func (c *Controller) Notification() (models.Notification, bool) {
	return c.feedback.Notices.Current()
}

// CurrentError returns the visible error, if any.
func (c *Controller) CurrentError() (models.Notification, bool) {
	return c.feedback.Errors.Current()
}

// State snapshots everything the frontend renders.
func (c *Controller) State() models.WorkshopState {
	c.mu.Lock()
	sel, manual := c.selection, c.manual
	c.mu.Unlock()
	quality, expanded := c.results.QualityView()

	st := models.WorkshopState{
		Selection:       sel.State(),
		ManualCode:      manual,
		Placeholder:     Placeholder,
		GeneratedCode:   c.results.Code.ptr(),
		GeneratedTests:  c.results.Tests.ptr(),
		Documentation:   c.results.Docs.ptr(),
		QualityReport:   quality,
		DetailsExpanded: expanded,
		GradeColor:      models.NeutralGradeColor,
		Busy:            c.busy.snapshot(),
		Error:           c.feedback.Errors.ptr(),
		Notification:    c.feedback.Notices.ptr(),
	}
	var generated string
	if st.GeneratedCode != nil {
		generated = *st.GeneratedCode
	}
	st.EffectiveSource = ResolveSource(manual, generated)
	if st.QualityReport != nil {
		st.GradeColor = models.GradeColor(st.QualityReport.FinalGrade)
	}
	return st
}
