package router

import (
	"github.com/ecomshop/shop-api/internal/auth"
	"github.com/ecomshop/shop-api/internal/category"
	"github.com/ecomshop/shop-api/internal/config"
	"github.com/ecomshop/shop-api/internal/member"
	"github.com/ecomshop/shop-api/internal/meta"
	"github.com/ecomshop/shop-api/internal/order"
	"github.com/ecomshop/shop-api/internal/product"
	"github.com/ecomshop/shop-api/internal/shared/cache"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"github.com/ecomshop/shop-api/internal/shared/event"
	"github.com/ecomshop/shop-api/internal/shared/metrics"
	"github.com/ecomshop/shop-api/internal/shared/middleware"
	"github.com/ecomshop/shop-api/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Infra holds the shared clients built once at startup
type Infra struct {
	Cache     cache.Store
	Publisher event.Publisher
	Metrics   *metrics.Registry
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, infra Infra) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	if cfg.Metrics.Enabled && infra.Metrics != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(infra.Metrics.Handler()))
	}

	// repository
	memberRepository := member.NewMemberRepository()
	categoryRepository := category.NewCategoryRepository()
	productRepository := product.NewProductRepository()
	orderRepository := order.NewOrderRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository)
	categoryService := category.NewCategoryService(db.DB, categoryRepository)
	productService := product.NewProductService(db.DB, productRepository, categoryRepository, infra.Cache, cfg.Cache.DefaultTTL)
	orderService := order.NewOrderService(db.DB, orderRepository, memberRepository, productRepository, productService, infra.Publisher, infra.Metrics)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	categoryHandler := category.NewCategoryHandler(categoryService)
	productHandler := product.NewProductHandler(productService)
	orderHandler := order.NewOrderHandler(orderService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
	}

	memberV1 := router.Group("/api/v1/members")
	memberV1.Use(middleware.JWT(tokenManager))
	{
		memberV1.GET("/me", memberHandler.GetProfile)
	}

	// Storefront routes
	router.GET("/api/adherents/:id", memberHandler.GetByID)

	categories := router.Group("/api/categories")
	{
		categories.GET("", categoryHandler.List)
		categories.POST("", categoryHandler.Create)
		categories.GET("/:id", categoryHandler.Get)
	}

	products := router.Group("/api/produits")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/:id", productHandler.Get)
	}

	commandes := router.Group("/api/commandes")
	{
		commandes.POST("", orderHandler.Create)
		commandes.GET("", orderHandler.List)
		commandes.GET("/:id", orderHandler.Get)
		commandes.GET("/user/:memberId", middleware.RequireBearer(), orderHandler.ListByMember)
		commandes.PUT("/:id", orderHandler.Update)
		commandes.DELETE("/:id", orderHandler.Delete)
	}
}
