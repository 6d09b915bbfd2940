package packages

import (
	"harborline_server/handling"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (prm *PackageRoutesManager) CreatePackage(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.PackageCreateRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	if msg := validateEnums(req.Status, req.ShippingRoute); msg != "" {
		handling.Error(w, http.StatusBadRequest, msg)
		return
	}

	pkg, err := prm.packageService.CreatePackage(r.Context(), req)
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Package not found", "Package already exists", "Failed to create package")
		return
	}
	handling.JSON(w, http.StatusCreated, pkg)
}

func (prm *PackageRoutesManager) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := lib.ExtractAndValidateBody[structs.PackageUpdateRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	if msg := validateEnums(req.Status, req.ShippingRoute); msg != "" {
		handling.Error(w, http.StatusBadRequest, msg)
		return
	}

	pkg, err := prm.packageService.UpdatePackage(r.Context(), id, req)
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Package not found", "Package already exists", "Failed to update package")
		return
	}
	handling.JSON(w, http.StatusOK, pkg)
}

func (prm *PackageRoutesManager) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := prm.packageService.DeletePackage(r.Context(), id); err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Package not found", "Package already exists", "Failed to delete package")
		return
	}
	handling.Success(w)
}

// validateEnums rejects unrecognized status or route values. Empty and
// absent values pass through so creation defaults can apply.
func validateEnums(status, route *string) string {
	if status != nil && *status != "" && !tables.PackageStatus(*status).IsValid() {
		return "Invalid package status"
	}
	if route != nil && *route != "" && !tables.ShippingRoute(*route).IsValid() {
		return "Invalid shipping route"
	}
	return ""
}
