package handling

import (
	"errors"
	"harborline_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleServiceError translates repository errors into wire responses.
// notFound and conflict supply the entity-specific messages; anything
// unrecognized is logged and answered with internal.
func HandleServiceError(w http.ResponseWriter, logger *gecho.Logger, err error, notFound, conflict, internal string) {
	switch {
	case lib.IsNotFound(err):
		Error(w, http.StatusNotFound, notFound)
	case lib.IsUniqueViolation(err):
		Error(w, http.StatusBadRequest, conflict)
	case errors.Is(err, lib.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", internal))
		Error(w, http.StatusInternalServerError, internal)
	}
}

// HandleRequestError answers malformed or invalid request bodies.
func HandleRequestError(w http.ResponseWriter, err error) {
	var ve *lib.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		first := ve.Errors[0]
		Error(w, http.StatusBadRequest, first.Field+" "+first.Message)
		return
	}
	Error(w, http.StatusBadRequest, "Invalid request body")
}
