package services

import (
	"context"
	"harborline_server/database"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type PackageService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewPackageService(logger *gecho.Logger, db *database.DB) *PackageService {
	return &PackageService{
		logger: logger,
		db:     db,
	}
}

// CreatePackage inserts a new shipment. The tracking id is unique; a
// duplicate surfaces as ErrConflict and writes nothing. Status defaults
// to pending and the shipping route to sea.
func (ps *PackageService) CreatePackage(ctx context.Context, req *structs.PackageCreateRequest) (*tables.Package, error) {
	now := time.Now().UTC()

	pkg := &tables.Package{
		ID:                uuid.NewString(),
		TrackingID:        req.TrackingID,
		OrderID:           req.OrderID,
		Status:            defaultString(req.Status, string(tables.PackageStatusPending)),
		ShippingRoute:     defaultString(req.ShippingRoute, string(tables.ShippingRouteSea)),
		Origin:            req.Origin,
		Destination:       req.Destination,
		CurrentLocation:   req.CurrentLocation,
		EstimatedDelivery: req.EstimatedDelivery,
		Weight:            req.Weight,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := database.Query[tables.Package](ps.db).Insert(ctx, pkg); err != nil {
		mapped := lib.MapSqliteError(err)
		if lib.IsUniqueViolation(mapped) {
			ps.logger.Warn("Duplicate tracking id", gecho.Field("trackingId", req.TrackingID))
		} else {
			ps.logger.Error("Failed to insert package", gecho.Field("error", err))
		}
		return nil, mapped
	}

	return pkg, nil
}

func (ps *PackageService) GetAllPackages(ctx context.Context) ([]tables.Package, error) {
	packages, err := database.Query[tables.Package](ps.db).
		OrderBy("createdAt", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	return packages, nil
}

func (ps *PackageService) GetPackageByID(ctx context.Context, id string) (*tables.Package, error) {
	pkg, err := database.Query[tables.Package](ps.db).
		Where("id", id).
		First(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	if pkg == nil {
		return nil, lib.ErrNotFound
	}
	return pkg, nil
}

// GetPackageByTrackingID serves the public tracking lookup.
func (ps *PackageService) GetPackageByTrackingID(ctx context.Context, trackingID string) (*tables.Package, error) {
	pkg, err := database.Query[tables.Package](ps.db).
		Where("trackingId", trackingID).
		First(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	if pkg == nil {
		return nil, lib.ErrNotFound
	}
	return pkg, nil
}

// UpdatePackage overwrites the mutable shipment columns. Origin,
// destination, weight and the tracking id never change after creation;
// the rest is a full overwrite where omitted fields become NULL.
func (ps *PackageService) UpdatePackage(ctx context.Context, id string, req *structs.PackageUpdateRequest) (*tables.Package, error) {
	now := time.Now().UTC()

	columns := map[string]any{
		"status":            req.Status,
		"shippingRoute":     req.ShippingRoute,
		"currentLocation":   req.CurrentLocation,
		"estimatedDelivery": req.EstimatedDelivery,
		"notes":             req.Notes,
		"updatedAt":         now,
	}

	if _, err := database.Query[tables.Package](ps.db).Where("id", id).Update(ctx, columns); err != nil {
		ps.logger.Error("Failed to update package", gecho.Field("error", err), gecho.Field("id", id))
		return nil, lib.MapSqliteError(err)
	}

	return &tables.Package{
		ID:                id,
		Status:            req.Status,
		ShippingRoute:     req.ShippingRoute,
		CurrentLocation:   req.CurrentLocation,
		EstimatedDelivery: req.EstimatedDelivery,
		Notes:             req.Notes,
	}, nil
}

func (ps *PackageService) DeletePackage(ctx context.Context, id string) error {
	if _, err := database.Query[tables.Package](ps.db).Where("id", id).Delete(ctx); err != nil {
		ps.logger.Error("Failed to delete package", gecho.Field("error", err), gecho.Field("id", id))
		return lib.MapSqliteError(err)
	}
	return nil
}
