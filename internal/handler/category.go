package handler

import (
	"net/http"

	"inventory-rest-api/internal/pipeline"
	"inventory-rest-api/internal/service"
	"inventory-rest-api/pkg/response"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /categories/{inventoryId}
func (h *CategoryHandler) List(w http.ResponseWriter, req *pipeline.Request) {
	inventoryID, err := pathID(req.Request, "inventoryId")
	if err != nil {
		response.Error(w, err)
		return
	}

	categories, err := h.categories.List(req.Context(), req.Identity, inventoryID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, categories)
}

// Create handles POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, req *pipeline.Request) {
	body := pipeline.Body[CreateCategoryRequest](req)

	cat, err := h.categories.Create(req.Context(), req.Identity, body.InventoryID, body.CategoryName)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "Category created successfully", cat)
}

// Delete handles DELETE /categories/{categoryId}
func (h *CategoryHandler) Delete(w http.ResponseWriter, req *pipeline.Request) {
	categoryID, err := pathID(req.Request, "categoryId")
	if err != nil {
		response.Error(w, err)
		return
	}

	deleted, err := h.categories.Delete(req.Context(), req.Identity, categoryID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Category deleted successfully", deleted)
}
