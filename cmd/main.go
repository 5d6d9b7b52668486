package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/auth"
	"blog-backend/internal/config"
	"blog-backend/internal/db"
	"blog-backend/internal/handlers"
	"blog-backend/internal/httperr"
	"blog-backend/internal/logger"
	"blog-backend/internal/middleware"
	"blog-backend/internal/services"
	"blog-backend/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.App.Environment)

	database, err := db.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}
	log.Info().Str("db", cfg.Mongo.Database).Msg("connected to MongoDB")

	uploader, err := storage.NewUploader(cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage connection failed")
	}
	log.Info().Str("endpoint", cfg.MinIO.Endpoint).Msg("connected to MinIO")

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute)

	userService := services.NewUserService(database, tokens)
	categoryService := services.NewCategoryService(database)
	postService := services.NewPostService(database, categoryService)

	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	uploadHandler := handlers.NewUploadHandler(uploader)

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		BodyLimit:    10 * 1024 * 1024,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Blog API is running", "version": "1.0.0"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now().Format(time.RFC3339)})
	})

	protect := middleware.Protect(tokens)
	adminOnly := middleware.RequireRole("admin")

	// User routes
	users := app.Group("/users")
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Use(protect)
	users.Get("/profile", userHandler.Profile)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Post routes
	posts := app.Group("/posts")
	posts.Get("/", postHandler.List)
	posts.Get("/:id", postHandler.Get)
	posts.Use(protect)
	posts.Post("/", postHandler.Create)
	posts.Put("/:id", postHandler.Update)
	posts.Delete("/:id", postHandler.Delete)
	posts.Post("/:id/comments", postHandler.AddComment)

	// Category routes
	categories := app.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Use(protect)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Upload routes
	app.Post("/uploads", protect, uploadHandler.Upload)

	log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Environment).Msg("server starting")
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
