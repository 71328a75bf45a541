package server

import (
	"net/http"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/authz"
	"backoffice/internal/config"
	"backoffice/internal/handler"
	infraRepo "backoffice/internal/infra/repository"
	appmw "backoffice/internal/middleware"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e   *echo.Echo
	cfg config.Config
}

// NewはDIを済ませたサーバーを組み立てる。
func New(cfg config.Config, gormDB *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(appmw.RequestID())
	e.Use(appmw.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	// SPAシェル。/api以外の未知パスはindex.htmlに落とす
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  cfg.StaticDir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api")
		},
	}))

	// Repository（GORM実装）
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	attributeRepo := infraRepo.NewAttributeGormRepository(gormDB)
	sizeRepo := infraRepo.NewSizeGormRepository(gormDB)
	colorRepo := infraRepo.NewColorGormRepository(gormDB)
	fabricRepo := infraRepo.NewFabricGormRepository(gormDB)
	fitRepo := infraRepo.NewFitGormRepository(gormDB)
	storeRepo := infraRepo.NewStoreGormRepository(gormDB)
	taxRepo := infraRepo.NewTaxClassGormRepository(gormDB)
	inventoryRepo := infraRepo.NewStoreInventoryGormRepository(gormDB)
	movementRepo := infraRepo.NewStockMovementGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	// 部品
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)
	authzSvc := authz.NewService()

	// Usecase
	authUC := usecase.NewAuthUsecase(userRepo, customerRepo, hasher, tokens)
	userUC := usecase.NewUserUsecase(userRepo, hasher)
	productUC := usecase.NewProductUsecase(productRepo, variantRepo, movementRepo, txm)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	brandUC := usecase.NewBrandUsecase(brandRepo)
	attributeUC := usecase.NewAttributeUsecase(attributeRepo)
	sizeUC := usecase.NewSizeUsecase(sizeRepo)
	colorUC := usecase.NewColorUsecase(colorRepo)
	fabricUC := usecase.NewFabricUsecase(fabricRepo)
	fitUC := usecase.NewFitUsecase(fitRepo)
	storeUC := usecase.NewStoreUsecase(storeRepo, txm)
	taxUC := usecase.NewTaxClassUsecase(taxRepo, txm)
	inventoryUC := usecase.NewInventoryUsecase(storeRepo, variantRepo, inventoryRepo, movementRepo, txm)

	// Handler
	handlers := routeHandlers{
		auth:       handler.NewAuthHandler(authUC, cfg.CookieSecure),
		users:      handler.NewUserHandler(userUC),
		products:   handler.NewProductHandler(productUC),
		categories: handler.NewCategoryHandler(categoryUC),
		brands:     handler.NewBrandHandler(brandUC),
		attributes: handler.NewAttributeHandler(attributeUC),
		sizes:      handler.NewSizeHandler(sizeUC),
		colors:     handler.NewColorHandler(colorUC),
		fabrics:    handler.NewFabricHandler(fabricUC),
		fits:       handler.NewFitHandler(fitUC),
		stores:     handler.NewStoreHandler(storeUC, inventoryUC),
		taxes:      handler.NewTaxClassHandler(taxUC),
		inventory:  handler.NewInventoryHandler(inventoryUC),
	}

	registerRoutes(e, handlers, tokens, authzSvc, userRepo, customerRepo)

	return &Server{e: e, cfg: cfg}
}

func (s *Server) Start() error {
	return s.e.Start(":" + s.cfg.Port)
}

// テストからルーティングを触れるように公開しておく
func (s *Server) Echo() *echo.Echo {
	return s.e
}
