package packages

import (
	"harborline_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PackageRoutesManager struct {
	logger         *gecho.Logger
	packageService *services.PackageService
}

func NewPackageRoutesManager(
	logger *gecho.Logger,
	packageService *services.PackageService,
) *PackageRoutesManager {
	return &PackageRoutesManager{
		logger:         logger,
		packageService: packageService,
	}
}

func (prm *PackageRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/packages", prm.FetchAllPackages)
	r.Get("/packages/track/{trackingId}", prm.TrackPackage)
	r.Post("/packages", prm.CreatePackage)
	r.Put("/packages/{id}", prm.UpdatePackage)
	r.Delete("/packages/{id}", prm.DeletePackage)
}
