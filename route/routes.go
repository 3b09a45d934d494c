package route

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/najib3112/tifpoint/app/points"
	"github.com/najib3112/tifpoint/app/repo"
	"github.com/najib3112/tifpoint/app/service"
	"github.com/najib3112/tifpoint/config"
	"github.com/najib3112/tifpoint/helper"
	"github.com/najib3112/tifpoint/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repo.NewUserRepo(db)
	activityRepo := repo.NewActivityRepo(db)
	competencyRepo := repo.NewCompetencyRepo(db)
	activityTypeRepo := repo.NewActivityTypeRepo(db)
	courseRepo := repo.NewRecognizedCourseRepo(db)
	eventRepo := repo.NewEventRepo(db)

	calc := points.NewCalculator(repo.NewPointsStore(db), points.TargetPoints)

	var cld *cloudinary.Cloudinary
	if config.Env.CloudinaryURL != "" {
		var err error
		cld, err = cloudinary.NewFromURL(config.Env.CloudinaryURL)
		if err != nil {
			log.Printf("cloudinary init failed, uploads disabled: %v", err)
			cld = nil
		}
	}

	authService := service.NewAuthService(userRepo, calc, helper.NewMailer())
	userService := service.NewUserService(userRepo)
	activityService := service.NewActivityService(activityRepo, competencyRepo, activityTypeRepo, courseRepo, eventRepo, calc, cld)
	competencyService := service.NewCompetencyService(competencyRepo)
	activityTypeService := service.NewActivityTypeService(activityTypeRepo)
	courseService := service.NewRecognizedCourseService(courseRepo)
	eventService := service.NewEventService(eventRepo)
	dashboardService := service.NewDashboardService(calc, activityRepo, userRepo, competencyRepo, activityTypeRepo)
	uploadService := service.NewUploadService(cld)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authService.Register)
	auth.Post("/login", authService.Login)
	auth.Post("/forgot-password", authService.ForgotPassword)
	auth.Post("/reset-password", authService.ResetPassword)
	auth.Get("/profile", middleware.AuthRequired(), authService.Profile)

	users := api.Group("/users", middleware.AuthRequired())
	users.Get("/", middleware.AdminOnly(), userService.List)
	users.Get("/:id", userService.Get)
	users.Patch("/:id", userService.Update)
	users.Delete("/:id", middleware.AdminOnly(), userService.Delete)

	activities := api.Group("/activities", middleware.AuthRequired())
	activities.Get("/", activityService.List)
	activities.Get("/filter", middleware.AdminOnly(), activityService.Filter)
	activities.Post("/", activityService.Create)
	activities.Post("/validate-points", middleware.AdminOnly(), activityService.ValidatePoints)
	activities.Get("/:id", activityService.Get)
	activities.Put("/:id", activityService.Update)
	activities.Delete("/:id", activityService.Delete)
	activities.Patch("/:id/verify", middleware.AdminOnly(), activityService.Verify)

	competencies := api.Group("/competencies")
	competencies.Get("/", competencyService.List)
	competencies.Get("/:id", competencyService.Get)
	competencies.Post("/", middleware.AuthRequired(), middleware.AdminOnly(), competencyService.Create)
	competencies.Put("/:id", middleware.AuthRequired(), middleware.AdminOnly(), competencyService.Update)
	competencies.Delete("/:id", middleware.AuthRequired(), middleware.AdminOnly(), competencyService.Delete)

	activityTypes := api.Group("/activity-types")
	activityTypes.Get("/", activityTypeService.List)
	activityTypes.Get("/:id", activityTypeService.Get)
	activityTypes.Post("/", middleware.AuthRequired(), middleware.AdminOnly(), activityTypeService.Create)
	activityTypes.Put("/:id", middleware.AuthRequired(), middleware.AdminOnly(), activityTypeService.Update)
	activityTypes.Delete("/:id", middleware.AuthRequired(), middleware.AdminOnly(), activityTypeService.Delete)

	courses := api.Group("/recognized-courses")
	courses.Get("/", courseService.List)
	courses.Get("/:id", courseService.Get)
	courses.Post("/", middleware.AuthRequired(), middleware.AdminOnly(), courseService.Create)
	courses.Put("/:id", middleware.AuthRequired(), middleware.AdminOnly(), courseService.Update)
	courses.Delete("/:id", middleware.AuthRequired(), middleware.AdminOnly(), courseService.Delete)

	events := api.Group("/events")
	events.Get("/", eventService.List)
	events.Get("/:id", eventService.Get)
	events.Post("/", middleware.AuthRequired(), middleware.AdminOnly(), eventService.Create)
	events.Put("/:id", middleware.AuthRequired(), middleware.AdminOnly(), eventService.Update)
	events.Delete("/:id", middleware.AuthRequired(), middleware.AdminOnly(), eventService.Delete)

	dashboard := api.Group("/dashboard", middleware.AuthRequired())
	dashboard.Get("/student", dashboardService.Student)
	dashboard.Get("/recommendations", dashboardService.Recommendations)
	dashboard.Get("/admin", middleware.AdminOnly(), dashboardService.Admin)
	dashboard.Get("/leaderboard", dashboardService.Leaderboard)
	dashboard.Get("/statistics", middleware.AdminOnly(), dashboardService.Statistics)
	dashboard.Get("/students/:id", middleware.AdminOnly(), dashboardService.StudentStatistics)

	api.Post("/upload", middleware.AuthRequired(), uploadService.Upload)
}
