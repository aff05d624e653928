package workshop

import (
	"context"
	"errors"
	"fmt"

	"atum/internal/models"
)

const (
	MsgCopied             = "Copied to clipboard!"
	MsgNothingToCopy      = "Nothing to copy yet"
	MsgNoDocumentation    = "No documentation to download yet"
	MsgDocumentationSaved = "Documentation saved"
)

// ErrNoResult is returned when copying or saving a result that was never
// produced.
var ErrNoResult = errors.New("no result available")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	SetText(ctx context.Context, text string) error
}

// FileSaver stores content under a user-chosen path. An empty path with a nil
// error means the user cancelled.
type FileSaver interface {
	SaveText(ctx context.Context, defaultName, content string) (string, error)
}

func (c *Controller) CopyCode(ctx context.Context) error {
	code, ok := c.results.Code.Get()
	return c.copyText(ctx, ActionGenerateCode, code, ok)
}

func (c *Controller) CopyTests(ctx context.Context) error {
	tests, ok := c.results.Tests.Get()
	return c.copyText(ctx, ActionGenerateTests, tests, ok)
}

func (c *Controller) CopyDocumentation(ctx context.Context) error {
	docs, ok := c.results.Docs.Get()
	return c.copyText(ctx, ActionGenerateDocs, docs.Content, ok)
}

func (c *Controller) copyText(ctx context.Context, a Action, text string, ok bool) error {
	if !ok || text == "" {
		c.notify(ctx, models.NotificationWarn, a, MsgNothingToCopy)
		return ErrNoResult
	}
	if c.clipboard == nil {
		return c.exportFailed(ctx, a, "Error copying to clipboard", errors.New("clipboard unavailable"))
	}
	if err := c.clipboard.SetText(ctx, text); err != nil {
		return c.exportFailed(ctx, a, "Error copying to clipboard", err)
	}
	c.notify(ctx, models.NotificationSuccess, a, MsgCopied)
	return nil
}

// DownloadDocumentation saves the documentation content under its filename.
// It returns the chosen path, or "" when the user cancelled.
func (c *Controller) DownloadDocumentation(ctx context.Context) (string, error) {
	const a = ActionGenerateDocs
	docs, ok := c.results.Docs.Get()
	if !ok {
		c.notify(ctx, models.NotificationWarn, a, MsgNoDocumentation)
		return "", ErrNoResult
	}
	if c.files == nil {
		return "", c.exportFailed(ctx, a, "Error downloading documentation", errors.New("file saving unavailable"))
	}
	filename := docs.Filename
	if filename == "" {
		filename = models.DefaultDocumentationFilename
	}
	path, err := c.files.SaveText(ctx, filename, docs.Content)
	if err != nil {
		return "", c.exportFailed(ctx, a, "Error downloading documentation", err)
	}
	if path == "" {
		return "", nil
	}
	c.notify(ctx, models.NotificationSuccess, a, MsgDocumentationSaved)
	return path, nil
}

func (c *Controller) exportFailed(ctx context.Context, a Action, prefix string, err error) error {
	msg := fmt.Sprintf("%s: %v", prefix, err)
	c.notify(ctx, models.NotificationError, a, msg)
	return fmt.Errorf("%s: %w", prefix, err)
}
