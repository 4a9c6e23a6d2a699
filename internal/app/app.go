package app

import (
	"go-items-api/config"
	"go-items-api/internal/services"
	"go-items-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Application holds core application dependencies, constructed once at
// startup and read-only afterwards.
type Application struct {
	Config            *config.Config
	DB                *gorm.DB
	ItemRepo          storage.ItemRepository
	ChatService       services.ChatCompleter
	SimulationService services.SimulationRunner
	Validator         *validator.Validate
}
