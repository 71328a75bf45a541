package server

import (
	"backoffice/internal/auth"
	"backoffice/internal/authz"
	"backoffice/internal/handler"
	appmw "backoffice/internal/middleware"
	repo "backoffice/internal/repository"

	"github.com/labstack/echo/v4"
)

type routeHandlers struct {
	auth       *handler.AuthHandler
	users      *handler.UserHandler
	products   *handler.ProductHandler
	categories *handler.CategoryHandler
	brands     *handler.BrandHandler
	attributes *handler.AttributeHandler
	sizes      *handler.SizeHandler
	colors     *handler.ColorHandler
	fabrics    *handler.FabricHandler
	fits       *handler.FitHandler
	stores     *handler.StoreHandler
	taxes      *handler.TaxClassHandler
	inventory  *handler.InventoryHandler
}

func registerRoutes(
	e *echo.Echo,
	h routeHandlers,
	tokens *auth.TokenIssuer,
	authzSvc *authz.Service,
	userRepo repo.UserRepository,
	customerRepo repo.CustomerRepository,
) {
	api := e.Group("/api")

	// 管理側
	admin := api.Group("/admin")
	admin.POST("/login", h.auth.AdminLogin)

	adminAuthed := admin.Group("", appmw.AdminGuard(tokens, userRepo))
	adminAuthed.POST("/logout", h.auth.AdminLogout)
	adminAuthed.GET("/me", h.auth.AdminMe)

	perm := func(required ...string) echo.MiddlewareFunc {
		return appmw.RequirePermission(authzSvc, required...)
	}

	// ユーザー管理
	adminAuthed.GET("/users", h.users.List, perm("view-users"))
	adminAuthed.GET("/users/:id", h.users.Get, perm("view-users"))
	adminAuthed.POST("/users", h.users.Create, perm("create-users"))
	adminAuthed.PUT("/users/:id", h.users.Update, perm("edit-users"))
	adminAuthed.DELETE("/users/:id", h.users.Delete, perm("delete-users"))

	// 商品
	adminAuthed.GET("/products", h.products.List, perm("view-products"))
	adminAuthed.GET("/products/:id", h.products.Get, perm("view-products"))
	adminAuthed.POST("/products", h.products.Create, perm("create-products"))
	adminAuthed.PUT("/products/:id", h.products.Update, perm("edit-products"))
	adminAuthed.DELETE("/products/:id", h.products.Delete, perm("delete-products"))
	adminAuthed.GET("/products/:id/movements", h.products.ListMovements, perm("view-inventory"))

	// バリアント
	adminAuthed.POST("/products/:id/variants", h.products.CreateVariant, perm("edit-products"))
	adminAuthed.PUT("/products/:id/variants/:variantId", h.products.UpdateVariant, perm("edit-products"))
	adminAuthed.DELETE("/products/:id/variants/:variantId", h.products.DeleteVariant, perm("edit-products"))

	// カテゴリ
	adminAuthed.GET("/categories", h.categories.List, perm("view-categories"))
	adminAuthed.GET("/categories/:id", h.categories.Get, perm("view-categories"))
	adminAuthed.POST("/categories", h.categories.Create, perm("create-categories"))
	adminAuthed.PUT("/categories/:id", h.categories.Update, perm("edit-categories"))
	adminAuthed.DELETE("/categories/:id", h.categories.Delete, perm("delete-categories"))

	// ブランド
	adminAuthed.GET("/brands", h.brands.List, perm("view-brands"))
	adminAuthed.GET("/brands/:id", h.brands.Get, perm("view-brands"))
	adminAuthed.POST("/brands", h.brands.Create, perm("create-brands"))
	adminAuthed.PUT("/brands/:id", h.brands.Update, perm("edit-brands"))
	adminAuthed.DELETE("/brands/:id", h.brands.Delete, perm("delete-brands"))

	// 属性と値
	adminAuthed.GET("/attributes", h.attributes.List, perm("view-attributes"))
	adminAuthed.GET("/attributes/:id", h.attributes.Get, perm("view-attributes"))
	adminAuthed.POST("/attributes", h.attributes.Create, perm("create-attributes"))
	adminAuthed.PUT("/attributes/:id", h.attributes.Update, perm("edit-attributes"))
	adminAuthed.DELETE("/attributes/:id", h.attributes.Delete, perm("delete-attributes"))
	adminAuthed.POST("/attributes/:id/values", h.attributes.AddValue, perm("edit-attributes"))
	adminAuthed.DELETE("/attributes/:id/values/:valueId", h.attributes.DeleteValue, perm("edit-attributes"))

	// バリアント参照テーブル
	adminAuthed.GET("/sizes", h.sizes.List, perm("view-sizes"))
	adminAuthed.POST("/sizes", h.sizes.Create, perm("create-sizes"))
	adminAuthed.PUT("/sizes/:id", h.sizes.Update, perm("edit-sizes"))
	adminAuthed.DELETE("/sizes/:id", h.sizes.Delete, perm("delete-sizes"))

	adminAuthed.GET("/colors", h.colors.List, perm("view-colors"))
	adminAuthed.POST("/colors", h.colors.Create, perm("create-colors"))
	adminAuthed.PUT("/colors/:id", h.colors.Update, perm("edit-colors"))
	adminAuthed.DELETE("/colors/:id", h.colors.Delete, perm("delete-colors"))

	adminAuthed.GET("/fabrics", h.fabrics.List, perm("view-fabrics"))
	adminAuthed.POST("/fabrics", h.fabrics.Create, perm("create-fabrics"))
	adminAuthed.PUT("/fabrics/:id", h.fabrics.Update, perm("edit-fabrics"))
	adminAuthed.DELETE("/fabrics/:id", h.fabrics.Delete, perm("delete-fabrics"))

	adminAuthed.GET("/fits", h.fits.List, perm("view-fits"))
	adminAuthed.POST("/fits", h.fits.Create, perm("create-fits"))
	adminAuthed.PUT("/fits/:id", h.fits.Update, perm("edit-fits"))
	adminAuthed.DELETE("/fits/:id", h.fits.Delete, perm("delete-fits"))

	// 税区分
	adminAuthed.GET("/tax-classes", h.taxes.List, perm("view-tax-classes"))
	adminAuthed.GET("/tax-classes/:id", h.taxes.Get, perm("view-tax-classes"))
	adminAuthed.POST("/tax-classes", h.taxes.Create, perm("create-tax-classes"))
	adminAuthed.PUT("/tax-classes/:id", h.taxes.Update, perm("edit-tax-classes"))
	adminAuthed.DELETE("/tax-classes/:id", h.taxes.Delete, perm("delete-tax-classes"))

	// 店舗と在庫
	adminAuthed.GET("/stores", h.stores.List, perm("view-stores"))
	adminAuthed.GET("/stores/:id", h.stores.Get, perm("view-stores"))
	adminAuthed.POST("/stores", h.stores.Create, perm("create-stores"))
	adminAuthed.PUT("/stores/:id", h.stores.Update, perm("edit-stores"))
	adminAuthed.DELETE("/stores/:id", h.stores.Delete, perm("delete-stores"))
	adminAuthed.PUT("/stores/:id/inventory/:variantId", h.stores.AdjustInventory, perm("edit-inventory"))

	adminAuthed.GET("/variants/:id/inventory", h.inventory.ListByVariant, perm("view-inventory"))
	adminAuthed.GET("/variants/:id/movements", h.inventory.ListMovements, perm("view-inventory"))

	// 顧客側
	customer := api.Group("/customer")
	customer.POST("/register", h.auth.CustomerRegister)
	customer.POST("/login", h.auth.CustomerLogin)

	customerAuthed := customer.Group("", appmw.CustomerGuard(tokens, customerRepo))
	customerAuthed.POST("/logout", h.auth.CustomerLogout)
	customerAuthed.GET("/me", h.auth.CustomerMe)
}
