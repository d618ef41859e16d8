package routes

import (
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/api/handlers"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/middleware"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ProductHandler      handlers.ProductHandler
	ShoppingHandler     handlers.ShoppingHandler
	ReportHandler       handlers.ReportHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Products()
	c.Shopping()
	c.Reports()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	products.Post("", c.ProductHandler.AddProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Get("/:id", c.ProductHandler.GetProductDetails)
	products.Put("/:id", c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.ProductHandler.DeleteProduct)

	// Special operations
	products.Post("/:id/consume", c.ProductHandler.ConsumeProduct)
	products.Post("/:id/image", c.ProductHandler.UploadProductImage)
	products.Get("/:id/price-history", c.ProductHandler.GetPriceHistory)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))

	shopping.Get("/list", c.ShoppingHandler.GetShoppingList)
	shopping.Post("/list/budget", c.ShoppingHandler.EvaluateBudget)
	shopping.Post("/list/:id/toggle", c.ShoppingHandler.ToggleItem)
	shopping.Post("/purchases", c.ShoppingHandler.ConfirmPurchase)
	shopping.Get("/purchases", c.ShoppingHandler.GetPurchaseHistory)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))

	reports.Get("/spending", c.ReportHandler.GetSpendingReport)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Post("/:id/dismiss", c.NotificationHandler.DismissNotification)
	notifications.Post("/dismiss-all", c.NotificationHandler.DismissAllNotifications)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
