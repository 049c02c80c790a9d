package controllers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/athh15/vef2-hop1/errors"
	"github.com/athh15/vef2-hop1/middleware"
	"github.com/athh15/vef2-hop1/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	auth      services.AuthAPI
	validator *RequestValidator
}

func NewUserController(auth services.AuthAPI) *UserController {
	return &UserController{auth: auth, validator: NewRequestValidator()}
}

// Index lists the user-facing endpoints.
func (uc *UserController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"products":   "/products",
		"categories": "/categories",
		"cart":       "/cart",
		"orders":     "/orders",
		"register":   "/users/register",
		"login":      "/users/login",
		"users":      "/users",
		"user":       "/users/:id",
	})
}

// Register creates an account and answers with a session token for it.
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(apierrors.ErrInvalidJSON.Code, apierrors.ErrInvalidJSON)
		return
	}

	if errs := uc.validator.ValidateRegister(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	result, err := uc.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if result.Status == services.StatusInvalid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": result.Token,
		"email": result.User.Email,
	})
}

func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(apierrors.ErrInvalidJSON.Code, apierrors.ErrInvalidJSON)
		return
	}

	token, err := uc.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrNoSuchUser) || errors.Is(err, services.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		apierrors.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.auth.Users(c.Request.Context())
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser answers with a single user; the literal id "me" resolves to the
// caller.
func (uc *UserController) GetUser(c *gin.Context) {
	param := c.Param("id")

	if param == "me" {
		c.JSON(http.StatusOK, middleware.CurrentUser(c))
		return
	}

	id, err := strconv.Atoi(param)
	if err != nil {
		c.JSON(apierrors.ErrNotFound.Code, apierrors.ErrNotFound)
		return
	}

	user, err := uc.auth.User(c.Request.Context(), id)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if user == nil {
		c.JSON(apierrors.ErrNotFound.Code, apierrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, user)
}

// PatchUser toggles the admin flag, the only mutable user field.
func (uc *UserController) PatchUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(apierrors.ErrNotFound.Code, apierrors.ErrNotFound)
		return
	}

	var req struct {
		Admin *bool `json:"admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Admin == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin has to be a boolean type"})
		return
	}

	user, err := uc.auth.SetAdmin(c.Request.Context(), id, *req.Admin)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if user == nil {
		c.JSON(apierrors.ErrNotFound.Code, apierrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, user)
}
