package services

import (
	"context"
	"harborline_server/database"
	"harborline_server/lib"
	"harborline_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type SettingsService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewSettingsService(logger *gecho.Logger, db *database.DB) *SettingsService {
	return &SettingsService{
		logger: logger,
		db:     db,
	}
}

// GetAllSettings lists the seeded key-value rows ordered by key.
func (ss *SettingsService) GetAllSettings(ctx context.Context) ([]tables.Setting, error) {
	settings, err := database.Query[tables.Setting](ss.db).
		OrderBy("key", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	return settings, nil
}
