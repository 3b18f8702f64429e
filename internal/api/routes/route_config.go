package routes

import (
	"pantry-tracker-api/internal/api/handlers"
	"pantry-tracker-api/internal/middleware"
	"pantry-tracker-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	PantryHandler       handlers.PantryHandler
	EstimationHandler   handlers.EstimationHandler
	SubscriptionHandler handlers.SubscriptionHandler
	MidtransHandler     handlers.MidtransHandler
	RecipeHandler       handlers.RecipeHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.PantryItems()
	c.Estimation()
	c.Subscriptions()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send-verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify-email", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) PantryItems() {
	pantryItems := c.App.Group("/api/v1/pantry-items", c.Middleware.AuthMiddleware(c.JWTService))
	pantryItems.Get("/dashboard", c.PantryHandler.GetDashboardStats)

	// Basic CRUD operations
	pantryItems.Post("", c.PantryHandler.AddPantryItem)
	pantryItems.Get("", c.PantryHandler.GetPantryItems)

	// Special operations before the :id wildcard
	pantryItems.Post("/image", c.PantryHandler.UploadItemImage)
	pantryItems.Post("/receipt-scan", c.PantryHandler.UploadReceipt)
	pantryItems.Get("/receipt-scan/:id", c.PantryHandler.GetReceiptScanResult)
	pantryItems.Post("/save-scanned", c.PantryHandler.SaveScannedItems)
	pantryItems.Post("/expiry-digest", c.PantryHandler.SendExpiryDigest)

	// Shopping list
	pantryItems.Get("/shopping-list", c.PantryHandler.GetShoppingList)
	pantryItems.Post("/shopping-list", c.PantryHandler.AddShoppingItem)
	pantryItems.Patch("/shopping-list/:id/toggle", c.PantryHandler.TogglePurchased)
	pantryItems.Delete("/shopping-list/:id", c.PantryHandler.DeleteShoppingItem)

	pantryItems.Get("/:id", c.PantryHandler.GetPantryItemDetails)
	pantryItems.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantryItems.Delete("/:id", c.PantryHandler.DeletePantryItem)
}

func (c *Config) Estimation() {
	estimation := c.App.Group("/api/v1/estimation", c.Middleware.AuthMiddleware(c.JWTService))
	estimation.Post("/expiry", c.EstimationHandler.EstimateExpiry)
	estimation.Get("/category", c.EstimationHandler.CategorizeItem)
	estimation.Get("/calories", c.EstimationHandler.LookupCalories)
}

func (c *Config) Subscriptions() {
	subscriptions := c.App.Group("/api/v1/subscriptions", c.Middleware.AuthMiddleware(c.JWTService))
	subscriptions.Get("", c.SubscriptionHandler.GetSubscription)
	subscriptions.Post("/trial", c.SubscriptionHandler.StartFreeTrial)
	subscriptions.Post("/cancel", c.SubscriptionHandler.Cancel)
	subscriptions.Post("/checkout", c.MidtransHandler.CreateTransaction)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/recommendations", c.RecipeHandler.GetRecipeRecommendations)
	recipes.Post("/bookmarks", c.RecipeHandler.BookmarkRecipe)
	recipes.Delete("/bookmarks", c.RecipeHandler.RemoveBookmark)
	recipes.Get("/bookmarks", c.RecipeHandler.GetBookmarkedRecipes)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
