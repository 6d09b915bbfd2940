package handling

import (
	"encoding/json"
	"net/http"
)

// The admin dashboard consumes bare payloads: lists are top-level JSON
// arrays and failures are {"error": "..."} objects, so responses are
// written directly instead of through an envelope.

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

func Success(w http.ResponseWriter) {
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}
