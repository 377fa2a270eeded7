package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/config"
	"github.com/yeremiapane/restaurant-site/controllers"
	"github.com/yeremiapane/restaurant-site/metrics"
	"github.com/yeremiapane/restaurant-site/middlewares"
	"github.com/yeremiapane/restaurant-site/repository"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/storage"
	"github.com/yeremiapane/restaurant-site/utils"
	"gorm.io/gorm"
)

// Deps is everything the HTTP surface is built from.
type Deps struct {
	DB          *gorm.DB
	Config      *config.Config
	Revocations utils.RevocationStore
	Bucket      storage.Bucket
	Metrics     *metrics.Metrics
	// HashCost overrides the bcrypt cost when non-zero.
	HashCost int
	// GlobalLimiter, when set, is applied to every route.
	GlobalLimiter *middlewares.RateLimiter
	// AuthLimiter guards sign-in and sign-up. Built from Config when nil.
	AuthLimiter *middlewares.StrictRateLimiter
}

func SetupRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = controllers.MaxImageSize

	r.Use(middlewares.SecurityHeaders(cfg.IsProduction()))
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware(m))
	if deps.GlobalLimiter != nil {
		r.Use(deps.GlobalLimiter.RateLimit())
	}

	// repositories -> services -> controllers
	menuRepo := repository.NewMenuRepository(deps.DB)
	reservationRepo := repository.NewReservationRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	authService := services.NewAuthService(userRepo, tokens, deps.Revocations)
	if deps.HashCost != 0 {
		authService.HashCost = deps.HashCost
	}
	guard := services.NewSessionGuard(authService, roleRepo)
	uploader := m.CountUploads(storage.NewImageUploader(deps.Bucket))
	menuService := services.NewMenuService(menuRepo, uploader)
	reservationService := services.NewReservationService(reservationRepo)

	publicCtrl := controllers.NewPublicController(menuService, reservationService, m)
	userCtrl := controllers.NewUserController(authService, cfg.SessionCookie, cfg.IsProduction())
	adminCtrl := controllers.NewAdminController()
	menuCtrl := controllers.NewMenuController(menuService, m)
	reservationCtrl := controllers.NewReservationController(reservationService)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	if local, ok := deps.Bucket.(*storage.LocalBackend); ok {
		r.Static("/storage/"+local.Name(), local.Dir())
	}

	api := r.Group("/api")
	api.GET("/landing", publicCtrl.Landing)
	api.GET("/menu", publicCtrl.GetMenu)
	api.POST("/reservations", publicCtrl.CreateReservation)

	authLimiter := deps.AuthLimiter
	if authLimiter == nil {
		authLimiter = middlewares.NewStrictRateLimiter(cfg.AuthRateBurst, cfg.AuthRateWindow)
	}
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authLimiter.Handler(), userCtrl.SignUp)
		auth.POST("/signin", authLimiter.Handler(), userCtrl.SignIn)
		auth.POST("/signout", userCtrl.SignOut)
		auth.GET("/session", userCtrl.Session)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := api.Group("/admin")
	admin.Use(middlewares.RequireAdmin(guard, cfg.SessionCookie, m))
	{
		admin.GET("/access", adminCtrl.GetAccess)

		admin.GET("/menu", menuCtrl.GetAllMenus)
		admin.POST("/menu", menuCtrl.CreateMenu)
		admin.PUT("/menu/:menu_id", menuCtrl.UpdateMenu)
		admin.DELETE("/menu/:menu_id", menuCtrl.DeleteMenu)

		admin.GET("/reservations", reservationCtrl.GetAllReservations)
		admin.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)
		admin.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)
	}

	return r
}
