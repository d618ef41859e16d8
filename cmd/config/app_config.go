package config

import (
	"os"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/api/handlers"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/api/routes"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/middleware"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/utils"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/utils/storage"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/jwt"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/notification"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/product"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/report"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/shopping"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/user"

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
		TimeZone:   "America/Sao_Paulo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	productService := product.NewProductService(productRepository, s3)
	shoppingService := shopping.NewShoppingService(shoppingRepository, productRepository)
	reportService := report.NewReportService(shoppingRepository, productRepository)
	notificationService := notification.NewNotificationService(productRepository, shoppingRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	reportHandler := handlers.NewReportHandler(reportService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ProductHandler:      productHandler,
		ShoppingHandler:     shoppingHandler,
		ReportHandler:       reportHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
