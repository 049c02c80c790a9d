package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/athh15/vef2-hop1/errors"
	"github.com/athh15/vef2-hop1/repository"
	"github.com/athh15/vef2-hop1/services"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

type ProductController struct {
	products services.ProductAPI
	baseURL  string
}

func NewProductController(products services.ProductAPI, baseURL string) *ProductController {
	return &ProductController{products: products, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type pageLink struct {
	Href string `json:"href"`
}

type pageLinks struct {
	Self *pageLink `json:"self,omitempty"`
	Prev *pageLink `json:"prev,omitempty"`
	Next *pageLink `json:"next,omitempty"`
}

// GetProducts lists products with optional category and search filters and
// offset/limit pagination. The prev link appears when offset is positive and
// the next link when the current page came back full.
func (pc *ProductController) GetProducts(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}

	params := repository.ListParams{
		Search:     c.Query("search"),
		Descending: strings.EqualFold(c.Query("order"), "desc"),
		Offset:     offset,
		Limit:      limit,
	}
	if category := c.Query("category"); category != "" {
		id, err := strconv.Atoi(category)
		if err != nil || id < 1 {
			c.JSON(http.StatusNotFound, apierrors.ErrNotFound)
			return
		}
		params.CategoryID = id
	}

	items, err := pc.products.List(c.Request.Context(), params)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}

	links := pageLinks{
		Self: pc.link(offset, limit),
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		links.Prev = pc.link(prev, limit)
	}
	if len(items) == limit {
		links.Next = pc.link(offset+limit, limit)
	}

	c.JSON(http.StatusOK, gin.H{
		"links":  links,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (pc *ProductController) link(offset, limit int) *pageLink {
	return &pageLink{
		Href: fmt.Sprintf("%s/products?offset=%d&limit=%d", pc.baseURL, offset, limit),
	}
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
		return
	}

	product, err := pc.products.Read(c.Request.Context(), id)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	if product == nil {
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(apierrors.ErrInvalidJSON.Code, apierrors.ErrInvalidJSON)
		return
	}

	result, err := pc.products.Create(c.Request.Context(), in)
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

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
		return
	}

	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(apierrors.ErrInvalidJSON.Code, apierrors.ErrInvalidJSON)
		return
	}

	result, err := pc.products.Update(c.Request.Context(), id, in)
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

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(apierrors.ErrItemNotFound.Code, apierrors.ErrItemNotFound)
		return
	}

	deleted, err := pc.products.Delete(c.Request.Context(), id)
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
