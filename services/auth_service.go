package services

import (
	"context"
	"harborline_server/database"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type AuthService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewAuthService(logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		db:     db,
	}
}

// Login checks the credentials against the admins table. An unknown
// email and a wrong password both return ErrInvalidCredentials; callers
// cannot tell the two apart.
func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (*tables.Admin, error) {
	admin, err := database.Query[tables.Admin](as.db).
		Where("email", req.Email).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to look up admin", gecho.Field("error", err))
		return nil, lib.MapSqliteError(err)
	}
	if admin == nil {
		return nil, lib.ErrInvalidCredentials
	}

	if !lib.VerifyPassword(admin.Password, req.Password) {
		return nil, lib.ErrInvalidCredentials
	}

	return admin, nil
}
