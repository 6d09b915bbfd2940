package packages

import (
	"harborline_server/handling"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (prm *PackageRoutesManager) FetchAllPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := prm.packageService.GetAllPackages(r.Context())
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Package not found", "Package already exists", "Failed to fetch packages")
		return
	}
	handling.JSON(w, http.StatusOK, packages)
}

// TrackPackage is the public lookup by tracking id, used by the
// customer-facing tracking page.
func (prm *PackageRoutesManager) TrackPackage(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingId")

	pkg, err := prm.packageService.GetPackageByTrackingID(r.Context(), trackingID)
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Package not found", "Package already exists", "Failed to fetch package")
		return
	}
	handling.JSON(w, http.StatusOK, pkg)
}
