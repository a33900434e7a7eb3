package handler

import (
	inventoryapp "github.com/bizops/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category tree endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *inventoryapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *inventoryapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List godoc
// @ID           listCategories
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.CategoryResponse]
// @Router       /inventory/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}

// Create godoc
// @ID           createCategory
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the first response for retried requests"
// @Param        request body inventoryapp.CreateCategoryRequest true "Category"
// @Success      201 {object} APIResponse[inventoryapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse "Unknown parent"
// @Router       /inventory/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// Move godoc
// @ID           moveCategory
// @Summary      Re-parent a category
// @Description  The new parent must exist and must not be the category itself or one of its descendants. A null parent makes it a root.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body inventoryapp.MoveCategoryRequest true "New parent"
// @Success      200 {object} APIResponse[inventoryapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /inventory/categories/{id}/parent [put]
func (h *CategoryHandler) Move(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req inventoryapp.MoveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.categoryService.Move(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
