package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/merakistudio/interior-api/internal/cache"
	"github.com/merakistudio/interior-api/internal/config"
	"github.com/merakistudio/interior-api/internal/db"
	"github.com/merakistudio/interior-api/internal/handlers"
	"github.com/merakistudio/interior-api/internal/infra/repository"
	"github.com/merakistudio/interior-api/internal/media"
	"github.com/merakistudio/interior-api/internal/middleware"
	usecase "github.com/merakistudio/interior-api/internal/usecase/booking"
)

// ======================================================
// ROUTES
// ======================================================

func RegisterRoutes(r *gin.Engine, store *db.Store, c *cache.Cache, cfg *config.Config) error {
	// -------- Repositories --------
	bookingRepo := repository.NewBookingMongoRepository(store)
	projectRepo := repository.NewProjectMongoRepository(store)
	testimonialRepo := repository.NewTestimonialMongoRepository(store)
	visitorRepo := repository.NewVisitorMongoRepository(store)
	enquiryRepo := repository.NewEnquiryMongoRepository(store)

	mediaStore, err := newMediaStore(cfg)
	if err != nil {
		return err
	}

	// -------- Use cases --------
	submitBooking := usecase.NewSubmitBooking(bookingRepo, cfg.StudioTimezone)

	// -------- Handlers --------
	bookingHandler := handlers.NewBookingHandler(submitBooking, bookingRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialRepo)
	visitorHandler := handlers.NewVisitorHandler(visitorRepo, c)
	uploadHandler := handlers.NewUploadHandler(mediaStore)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryRepo)
	authHandler := handlers.NewAuthHandler(cfg)
	healthHandler := handlers.NewHealthHandler(store)

	adminAuth := middleware.AdminAuth(cfg)

	// -------- Public routes --------
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		api.POST("/auth/login", authHandler.Login)

		api.POST("/bookings", bookingHandler.Create)

		api.GET("/projects", projectHandler.List)
		api.GET("/projects/featured", projectHandler.ListFeatured)
		api.GET("/projects/:id", projectHandler.Get)

		api.POST("/testimonials", testimonialHandler.Create)
		api.GET("/testimonials", testimonialHandler.ListApproved)

		api.POST("/visitor", visitorHandler.Record)

		api.POST("/enquiry", enquiryHandler.Create)
	}

	// -------- Admin console --------
	admin := r.Group("/api", adminAuth)
	{
		admin.GET("/bookings", bookingHandler.List)
		admin.PATCH("/bookings/:id", bookingHandler.Update)
		admin.DELETE("/bookings/:id", bookingHandler.Delete)

		admin.POST("/projects", projectHandler.Create)
		admin.PUT("/projects/:id", projectHandler.Update)
		admin.DELETE("/projects/:id", projectHandler.Delete)

		admin.GET("/testimonials/all", testimonialHandler.ListAll)
		admin.PATCH("/testimonials/:id", testimonialHandler.Update)
		admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

		admin.GET("/visitor/stats", visitorHandler.Stats)
		admin.GET("/visitor/sources", visitorHandler.Sources)
		admin.GET("/visitor/devices", visitorHandler.Devices)
		admin.GET("/visitor/browsers", visitorHandler.Browsers)

		admin.POST("/upload", uploadHandler.Upload)
		admin.GET("/upload", uploadHandler.List)
		admin.DELETE("/upload/:filename", uploadHandler.Delete)

		admin.GET("/enquiry", enquiryHandler.List)
	}

	// Local uploads are served straight from disk; the s3 driver serves
	// from the bucket's public domain instead.
	if cfg.UploadDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	return nil
}

func newMediaStore(cfg *config.Config) (media.Store, error) {
	switch cfg.UploadDriver {
	case "s3":
		return media.NewS3Store(cfg)
	case "local", "":
		return media.NewLocalStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.UploadDriver)
	}
}
