package api

import (
	"harborline_server/api/auth"
	"harborline_server/api/categories"
	"harborline_server/api/health"
	"harborline_server/api/orders"
	"harborline_server/api/packages"
	"harborline_server/api/products"
	"harborline_server/api/settings"
	"harborline_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes  *products.ProductRoutesManager
	categoryRoutes *categories.CategoryRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	packageRoutes  *packages.PackageRoutesManager
	authRoutes     *auth.AuthRoutesManager
	settingsRoutes *settings.SettingsRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		productRoutes:  products.NewProductRoutesManager(logger, sm.ProductService),
		categoryRoutes: categories.NewCategoryRoutesManager(logger, sm.CategoryService),
		orderRoutes:    orders.NewOrderRoutesManager(logger, sm.OrderService),
		packageRoutes:  packages.NewPackageRoutesManager(logger, sm.PackageService),
		authRoutes:     auth.NewAuthRoutesManager(logger, sm.AuthService),
		settingsRoutes: settings.NewSettingsRoutesManager(logger, sm.SettingsService),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.categoryRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.packageRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.settingsRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
