package main

import (
	"context"
	"embed"
	"fmt"

	"atum/internal/config"
	"atum/internal/database"
	"atum/internal/events"
	"atum/internal/services"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		return
	}

	db, err := database.Init(database.Config{
		Path:     cfg.DBPath,
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	app := NewApp()
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	svc := services.NewServices(db, cfg)

	err = wails.Run(&options.App{
		Title:  "Atum | Code Generator",
		Width:  1280,
		Height: 900,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Atum",
		},
		BackgroundColour: &options.RGBA{R: 242, G: 245, B: 255, A: 1},
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
			if err := svc.Startup(ctx); err != nil {
				app.logError(fmt.Sprintf("failed to start services: %v", err))
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			svc.AppSettings,
			svc.Workshop,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
