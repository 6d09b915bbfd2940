package auth

import (
	"harborline_server/handling"
	"harborline_server/lib"
	"harborline_server/structs"
	"net/http"
)

// Login verifies the admin credentials. There are no sessions or
// tokens; the dashboard just checks the success flag.
func (arm *AuthRoutesManager) Login(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	admin, err := arm.authService.Login(r.Context(), req)
	if err != nil {
		handling.HandleServiceError(w, arm.logger, err,
			"Admin not found", "Admin already exists", "Failed to log in")
		return
	}

	handling.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"email":   admin.Email,
		"name":    admin.Name,
	})
}
