package settings

import (
	"harborline_server/handling"
	"harborline_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SettingsRoutesManager struct {
	logger          *gecho.Logger
	settingsService *services.SettingsService
}

func NewSettingsRoutesManager(
	logger *gecho.Logger,
	settingsService *services.SettingsService,
) *SettingsRoutesManager {
	return &SettingsRoutesManager{
		logger:          logger,
		settingsService: settingsService,
	}
}

// Settings are read-only over HTTP; they are seeded from the
// environment at first boot.
func (srm *SettingsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/settings", srm.FetchAllSettings)
}

func (srm *SettingsRoutesManager) FetchAllSettings(w http.ResponseWriter, r *http.Request) {
	rows, err := srm.settingsService.GetAllSettings(r.Context())
	if err != nil {
		handling.HandleServiceError(w, srm.logger, err,
			"Setting not found", "Setting already exists", "Failed to fetch settings")
		return
	}
	handling.JSON(w, http.StatusOK, rows)
}
