package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/esatic/assignment-app/docs"
	"github.com/esatic/assignment-app/internal/api/handler"
	"github.com/esatic/assignment-app/internal/api/middleware"
	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/service"
	"github.com/esatic/assignment-app/internal/infrastructure/config"
	mongodb "github.com/esatic/assignment-app/internal/infrastructure/db/mongo"
	redisdb "github.com/esatic/assignment-app/internal/infrastructure/db/redis"
	"github.com/esatic/assignment-app/internal/infrastructure/seed"
)

const (
	admin   = string(domain.RoleAdmin)
	teacher = string(domain.RoleTeacher)
	student = string(domain.RoleStudent)
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the background seeder, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *seed.Seeder) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("assignmentapp"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	classRepo := mongodb.NewClassRepository(db)
	subjectRepo := mongodb.NewSubjectRepository(db)
	assignmentRepo := mongodb.NewAssignmentRepository(db)

	authService := service.NewAuthService(userRepo, classRepo, subjectRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, classRepo, subjectRepo, log)
	classService := service.NewClassService(classRepo, userRepo, subjectRepo, assignmentRepo, log)
	subjectService := service.NewSubjectService(subjectRepo, userRepo, classRepo, assignmentRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, subjectRepo, classRepo, log)

	seeder := seed.NewSeeder(
		redisdb.NewSeedLock(rdb),
		authService,
		userService,
		classService,
		subjectService,
		assignmentService,
		log,
	)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	classHandler := handler.NewClassHandler(classService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	setupHandler := handler.NewSetupHandler(seeder)
	healthHandler := handler.NewHealthHandler(db, rdb)

	auth := middleware.Auth(cfg.JWTSecret)
	staff := middleware.RBAC(admin, teacher)
	anyRole := middleware.RBAC(admin, teacher, student)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Users ---
	users := e.Group("/api/users", auth)
	users.GET("", userHandler.List, anyRole)
	users.GET("/me", userHandler.Me, anyRole)
	users.POST("/me/password", userHandler.ChangePassword, anyRole)
	users.GET("/:id", userHandler.Get, anyRole)
	users.PATCH("/:id", userHandler.UpdateProfile, anyRole)
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(admin))

	// --- Classes ---
	classes := e.Group("/api/classes", auth)
	classes.GET("", classHandler.List, anyRole)
	classes.GET("/:id", classHandler.Get, anyRole)
	classes.POST("", classHandler.Create, staff)
	classes.PUT("/:id", classHandler.Update, staff)
	classes.DELETE("/:id", classHandler.Delete, staff)
	classes.POST("/:id/students/:studentId", classHandler.AddStudent, staff)
	classes.DELETE("/:id/students/:studentId", classHandler.RemoveStudent, staff)

	// --- Subjects ---
	subjects := e.Group("/api/subjects", auth)
	subjects.GET("", subjectHandler.List, anyRole)
	subjects.GET("/:id", subjectHandler.Get, anyRole)
	subjects.POST("", subjectHandler.Create, staff)
	subjects.PUT("/:id", subjectHandler.Update, staff)
	subjects.DELETE("/:id", subjectHandler.Delete, staff)

	// --- Assignments ---
	assignments := e.Group("/api/assignments", auth)
	assignments.GET("", assignmentHandler.List, anyRole)
	assignments.GET("/submitted", assignmentHandler.ListSubmitted, anyRole)
	assignments.GET("/pending", assignmentHandler.ListPending, anyRole)
	assignments.GET("/subject/:subjectId", assignmentHandler.ListBySubject, anyRole)
	assignments.GET("/student/:studentId", assignmentHandler.ListByStudent, anyRole)
	assignments.GET("/teacher/:teacherId", assignmentHandler.ListByTeacher, anyRole)
	assignments.GET("/class/:classId", assignmentHandler.ListByClass, anyRole)
	assignments.GET("/:id", assignmentHandler.Get, anyRole)
	assignments.POST("", assignmentHandler.Create, staff)
	assignments.PUT("/:id", assignmentHandler.Update, staff)
	assignments.DELETE("/:id", assignmentHandler.Delete, staff)
	assignments.POST("/:id/submit", assignmentHandler.Submit, middleware.RBAC(student))
	assignments.POST("/:id/grade", assignmentHandler.Grade, staff)

	// --- Setup ---
	setup := e.Group("/api/setup", auth)
	setup.POST("/seed", setupHandler.Seed, middleware.RBAC(admin))

	return e, seeder
}
