package main

import (
	"context"
	"fmt"

	"atum/internal/database"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx     context.Context
	dbClose func() error
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	runtime.LogInfo(ctx, fmt.Sprintf("atum started (development=%t)", database.IsDevelopment()))
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

func (a *App) logError(msg string) {
	if a.ctx == nil {
		fmt.Println(msg)
		return
	}
	runtime.LogError(a.ctx, msg)
}

// IsDevelopment reports whether the app runs with the development database.
func (a *App) IsDevelopment() bool {
	return database.IsDevelopment()
}
