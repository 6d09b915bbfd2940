package health

import (
	"harborline_server/handling"
	"net/http"
)

// GetHealth is the liveness probe the admin dashboard polls.
func (hrm *HealthRoutesManager) GetHealth(w http.ResponseWriter, r *http.Request) {
	handling.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Backend is running",
	})
}

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	handling.JSON(w, http.StatusOK, hrm.healthService.GetServerHealthStatus())
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	status, err := hrm.healthService.GetDatabaseHealthStatus(r.Context())
	if err != nil {
		handling.JSON(w, http.StatusInternalServerError, status)
		return
	}
	handling.JSON(w, http.StatusOK, status)
}
