package services

import (
	"harborline_server/database"
	"harborline_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	ProductService  *ProductService
	CategoryService *CategoryService
	OrderService    *OrderService
	PackageService  *PackageService
	AuthService     *AuthService
	SettingsService *SettingsService
	HealthService   *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	return &ServiceManager{
		ProductService:  NewProductService(logger, db),
		CategoryService: NewCategoryService(logger, db),
		OrderService:    NewOrderService(logger, db),
		PackageService:  NewPackageService(logger, db),
		AuthService:     NewAuthService(logger, db),
		SettingsService: NewSettingsService(logger, db),
		HealthService:   NewHealthService(logger, db),
	}
}
