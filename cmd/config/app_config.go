package config

import (
	"os"
	"time"

	"pantry-tracker-api/internal/api/handlers"
	"pantry-tracker-api/internal/api/routes"
	"pantry-tracker-api/internal/middleware"
	"pantry-tracker-api/internal/utils"
	"pantry-tracker-api/internal/utils/storage"
	"pantry-tracker-api/pkg/jwt"
	"pantry-tracker-api/pkg/midtrans"
	"pantry-tracker-api/pkg/pantry"
	"pantry-tracker-api/pkg/recipe"
	"pantry-tracker-api/pkg/shelflife"
	"pantry-tracker-api/pkg/subscription"
	"pantry-tracker-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	estimator := shelflife.NewEstimator(utils.GetConfig("EXPIRY_AI_URL"))

	// Repository
	userRepository := user.NewUserRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	pantryService := pantry.NewPantryService(pantryRepository, s3, estimator)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository)
	midtransService := midtrans.NewMidtransService(midtransRepository, subscriptionService)
	recipeService := recipe.NewRecipeService(recipeRepository, pantryRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, userService, validator)
	estimationHandler := handlers.NewEstimationHandler(estimator, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		PantryHandler:       pantryHandler,
		EstimationHandler:   estimationHandler,
		SubscriptionHandler: subscriptionHandler,
		MidtransHandler:     midtransHandler,
		RecipeHandler:       recipeHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
