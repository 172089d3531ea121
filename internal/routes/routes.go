package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homevista/realtor-api/internal/audit"
	"github.com/homevista/realtor-api/internal/config"
	"github.com/homevista/realtor-api/internal/handlers"
	infraRepo "github.com/homevista/realtor-api/internal/infra/repository"
	"github.com/homevista/realtor-api/internal/middleware"
	"github.com/homevista/realtor-api/internal/models"
	"github.com/homevista/realtor-api/internal/storage"
	"github.com/homevista/realtor-api/internal/token"
	ucAuth "github.com/homevista/realtor-api/internal/usecase/auth"
	ucHome "github.com/homevista/realtor-api/internal/usecase/home"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	homeRepo := infraRepo.NewHomeGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	signer := token.NewSigner(cfg.JWTSecret, cfg.TokenTTL)
	photoStore := storage.NewPhotoStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases
	// ------------------------------
	signupUC := ucAuth.NewSignup(userRepo, signer, cfg.ProductKeySecret, auditDispatcher)
	signinUC := ucAuth.NewSignin(userRepo, signer)

	listHomesUC := ucHome.NewListHomes(homeRepo)
	getHomeUC := ucHome.NewGetHome(homeRepo)
	getRealtorUC := ucHome.NewGetRealtor(homeRepo)
	createHomeUC := ucHome.NewCreateHome(homeRepo, auditDispatcher)
	updateHomeUC := ucHome.NewUpdateHome(homeRepo, auditDispatcher)
	deleteHomeUC := ucHome.NewDeleteHome(homeRepo, auditDispatcher)
	inquireUC := ucHome.NewInquire(homeRepo)
	listMessagesUC := ucHome.NewListMessages(homeRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(signupUC, signinUC, cfg)
	meHandler := handlers.NewMeHandler(db)
	homeHandler := handlers.NewHomeHandler(
		listHomesUC,
		getHomeUC,
		getRealtorUC,
		createHomeUC,
		updateHomeUC,
		deleteHomeUC,
		inquireUC,
		listMessagesUC,
	)
	photoHandler := handlers.NewPhotoHandler(homeRepo, photoStore)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------
	// Routes
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST("/auth/signup/:role", authHandler.Signup)
		api.POST("/auth/signin", authHandler.Signin)
		api.POST("/auth/key", authHandler.GenerateKey)

		api.GET("/homes", homeHandler.List)
		api.GET("/homes/:id", homeHandler.Get)
		api.GET("/homes/:id/realtor", homeHandler.GetRealtor)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			realtorOnly := secured.Group("/")
			realtorOnly.Use(middleware.RequireRole(models.RoleRealtor, models.RoleAdmin))
			{
				realtorOnly.POST("/homes", homeHandler.Create)
				realtorOnly.PATCH("/homes/:id", homeHandler.Update)
				realtorOnly.DELETE("/homes/:id", homeHandler.Delete)
				realtorOnly.POST("/homes/:id/photos", photoHandler.Upload)
				realtorOnly.GET("/homes/:id/messages", homeHandler.ListMessages)
			}

			buyerOnly := secured.Group("/")
			buyerOnly.Use(middleware.RequireRole(models.RoleBuyer))
			{
				buyerOnly.POST("/homes/:id/inquire", homeHandler.Inquire)
			}

			adminOnly := secured.Group("/admin")
			adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminOnly.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
