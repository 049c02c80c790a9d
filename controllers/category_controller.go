package controllers

import (
	"net/http"
	"strconv"

	apierrors "github.com/athh15/vef2-hop1/errors"
	"github.com/athh15/vef2-hop1/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories services.CategoryAPI
}

func NewCategoryController(categories services.CategoryAPI) *CategoryController {
	return &CategoryController{categories: categories}
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	items, err := cc.categories.List(c.Request.Context())
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(apierrors.ErrInvalidJSON.Code, apierrors.ErrInvalidJSON)
		return
	}

	result, err := cc.categories.Create(c.Request.Context(), in)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if result.Status == services.StatusInvalid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	c.JSON(http.StatusCreated, result.Item)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
		return
	}

	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(apierrors.ErrInvalidJSON.Code, apierrors.ErrInvalidJSON)
		return
	}

	result, err := cc.categories.Update(c.Request.Context(), id, in)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	switch result.Status {
	case services.StatusInvalid:
		c.JSON(http.StatusBadRequest, result.Errors)
	case services.StatusNotFound:
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
	default:
		c.JSON(http.StatusCreated, result.Item)
	}
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
		return
	}

	deleted, err := cc.categories.Delete(c.Request.Context(), id)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if !deleted {
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}
