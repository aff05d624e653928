package services

import (
	"context"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// RuntimeClipboard writes to the system clipboard through the Wails runtime.
type RuntimeClipboard struct{}

func (RuntimeClipboard) SetText(ctx context.Context, text string) error {
	return runtime.ClipboardSetText(ctx, text)
}

// RuntimeFileSaver asks the user for a destination with the native save
// dialog and writes the content there.
type RuntimeFileSaver struct{}

func (RuntimeFileSaver) SaveText(ctx context.Context, defaultName, content string) (string, error) {
	path, err := runtime.SaveFileDialog(ctx, runtime.SaveDialogOptions{
		Title:           "Save Documentation",
		DefaultFilename: defaultName,
		Filters: []runtime.FileFilter{
			{DisplayName: "Markdown (*.md)", Pattern: "*.md"},
			{DisplayName: "All Files (*.*)", Pattern: "*.*"},
		},
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
