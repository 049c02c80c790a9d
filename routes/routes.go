package routes

import (
	"net/http"
	"time"

	"github.com/athh15/vef2-hop1/controllers"
	"github.com/athh15/vef2-hop1/middleware"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Handlers bundles the controllers and middleware the router wires up.
type Handlers struct {
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Cart       *controllers.CartController
	Users      *controllers.UserController
	Auth       gin.HandlerFunc
	Admin      gin.HandlerFunc
}

func Register(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	r.GET("/", h.Users.Index)

	products := r.Group("/products")
	{
		products.GET("", h.Products.GetProducts)
		products.GET("/:id", h.Products.GetProduct)
		products.POST("", h.Auth, h.Admin, h.Products.CreateProduct)
		products.PATCH("/:id", h.Auth, h.Admin, h.Products.UpdateProduct)
		products.DELETE("/:id", h.Auth, h.Admin, h.Products.DeleteProduct)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", h.Categories.GetCategories)
		categories.POST("", h.Auth, h.Admin, h.Categories.CreateCategory)
		categories.PATCH("/:id", h.Auth, h.Admin, h.Categories.UpdateCategory)
		categories.DELETE("/:id", h.Auth, h.Admin, h.Categories.DeleteCategory)
	}

	r.GET("/cart", h.Auth, h.Cart.GetCart)
	r.POST("/cart", h.Auth, h.Cart.AddToCart)
	r.GET("/orders", h.Auth, h.Cart.GetOrders)

	// credential routes are rate limited per IP to slow brute forcing
	credentialLimit := middleware.RateLimit(rate.Every(time.Minute/20), 10)

	users := r.Group("/users")
	{
		users.POST("/register", credentialLimit, h.Users.Register)
		users.POST("/login", credentialLimit, h.Users.Login)
		users.GET("", h.Auth, h.Admin, h.Users.GetUsers)
		users.GET("/:id", h.Auth, h.Users.GetUser)
		users.PATCH("/:id", h.Auth, h.Admin, h.Users.PatchUser)
	}
}
