package controllers

import (
	"net/http"

	apierrors "github.com/athh15/vef2-hop1/errors"
	"github.com/athh15/vef2-hop1/middleware"
	"github.com/athh15/vef2-hop1/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart services.CartAPI
}

func NewCartController(cart services.CartAPI) *CartController {
	return &CartController{cart: cart}
}

// AddToCart creates a cart line for the caller. The total is computed from
// the product's stored price; any price or total in the payload is ignored.
func (cc *CartController) AddToCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var in services.CartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(apierrors.ErrInvalidJSON.Code, apierrors.ErrInvalidJSON)
		return
	}

	result, err := cc.cart.AddToCart(c.Request.Context(), in, user.ID)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if result.Status == services.StatusInvalid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cart": result.Line,
		"item": result.Product,
	})
}

func (cc *CartController) GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	lines, err := cc.cart.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if len(lines) == 0 {
		c.JSON(apierrors.ErrNotFound.Code, apierrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, lines)
}

// GetOrders returns every order for an admin caller and only the caller's
// own orders otherwise.
func (cc *CartController) GetOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orders, err := cc.cart.GetOrders(c.Request.Context(), user.ID, user.Admin)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(apierrors.ErrNotFound.Code, apierrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, orders)
}
