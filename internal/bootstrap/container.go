package bootstrap

import (
	"notesy-be/internal/config"
	"notesy-be/internal/controller"
	"notesy-be/internal/pkg/logger"
	"notesy-be/internal/repository/memory"
	"notesy-be/internal/repository/unitofwork"
	"notesy-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController  controller.INoteController
	OAuthController controller.IOAuthController

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. In-memory stores
	stateStore := memory.NewStateStore()

	// 3. Services
	noteService := service.NewNoteService(uowFactory, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, stateStore)

	// 4. Controllers
	noteController := controller.NewNoteController(noteService)
	oauthController := controller.NewOAuthController(oauthService)

	return &Container{
		NoteController:  noteController,
		OAuthController: oauthController,
		Logger:          sysLogger,
	}
}
