package routes

import (
	"github.com/gin-gonic/gin"

	"pawhaven_back_end/internal/cart"
	"pawhaven_back_end/internal/handlers"
	"pawhaven_back_end/internal/handlers/admin"
	"pawhaven_back_end/internal/handlers/notify"
	"pawhaven_back_end/internal/middleware"
	"pawhaven_back_end/internal/utils"
)

func RegisterRoutes(r *gin.Engine) {
	// Auth
	r.POST("/api/auth/register", handlers.Register)
	r.POST("/api/auth/login", middleware.LoginRateLimit(), handlers.Login)

	// Catalogue public : refuge + boutique
	r.GET("/api/pets", handlers.GetAllPets)
	r.GET("/api/pets/search", middleware.SearchRateLimit(), handlers.SearchPets)
	r.GET("/api/pets/:id", handlers.GetPet)
	r.GET("/api/products", handlers.GetAllProducts)
	r.GET("/api/products/search", middleware.SearchRateLimit(), handlers.SearchProducts)
	r.GET("/api/products/:id", handlers.GetProduct)

	// Espace client
	authed := r.Group("/api", middleware.AuthRequired())
	{
		authed.GET("/cart", handlers.GetCart)
		authed.POST("/cart/add", handlers.AddToCart)
		authed.PATCH("/cart/quantity", handlers.UpdateCartQuantity)
		authed.DELETE("/cart/:productId", handlers.RemoveFromCart)
		authed.DELETE("/cart", handlers.ClearCart)

		authed.GET("/profile", handlers.GetProfile)
		authed.PUT("/profile", handlers.UpdateProfile)

		authed.POST("/adoptions", handlers.SubmitApplication)
		authed.GET("/adoptions", handlers.GetMyApplications)
	}

	// Panneau admin
	adminGroup := r.Group("/api/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminGroup.GET("/adoptions", admin.ListApplications)
		adminGroup.PATCH("/adoptions/:id", admin.UpdateApplicationStatus)

		adminGroup.POST("/pets", handlers.CreatePet)
		adminGroup.POST("/pets/image", handlers.UploadPetImage)
		adminGroup.POST("/products", handlers.CreateProduct)
		adminGroup.POST("/products/image", handlers.UploadProductImage)
	}

	// Notifiers e-mail : mêmes routes que les anciennes edge functions.
	// Le pre-flight OPTIONS répond 200 sans authentification.
	notifier := notify.New(utils.SMTPMailer{}, cart.NewScyllaStore())
	r.OPTIONS("/functions/send-order-email", notify.Preflight)
	r.OPTIONS("/functions/send-adoption-email", notify.Preflight)

	functions := r.Group("/functions", middleware.AuthRequired(), middleware.NotifierRateLimit())
	{
		functions.POST("/send-order-email", notifier.SendOrderEmail)
		functions.POST("/send-adoption-email", notifier.SendAdoptionEmail)
	}
}
