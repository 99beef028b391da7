package handler

import (
	"net/http"

	"inventory-rest-api/internal/pipeline"
	"inventory-rest-api/internal/service"
	"inventory-rest-api/pkg/response"
)

// InventoryHandler handles inventory-related HTTP requests.
type InventoryHandler struct {
	inventories *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventories *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventories: inventories}
}

// Create handles POST /inventories
func (h *InventoryHandler) Create(w http.ResponseWriter, req *pipeline.Request) {
	body := pipeline.Body[CreateInventoryRequest](req)

	inv, err := h.inventories.Create(req.Context(), req.Identity, body.InventoryName)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "Inventory created successfully", inv)
}

// List handles GET /inventories
func (h *InventoryHandler) List(w http.ResponseWriter, req *pipeline.Request) {
	list, err := h.inventories.List(req.Context(), req.Identity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, list)
}

// Get handles GET /inventories/{inventoryId}
func (h *InventoryHandler) Get(w http.ResponseWriter, req *pipeline.Request) {
	inventoryID, err := pathID(req.Request, "inventoryId")
	if err != nil {
		response.Error(w, err)
		return
	}

	detail, err := h.inventories.Get(req.Context(), req.Identity, inventoryID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, detail)
}

// ListItems handles GET /inventories/{inventoryId}/items?categoryId=
func (h *InventoryHandler) ListItems(w http.ResponseWriter, req *pipeline.Request) {
	inventoryID, err := pathID(req.Request, "inventoryId")
	if err != nil {
		response.Error(w, err)
		return
	}
	categoryID, err := optionalQueryID(req.Request, "categoryId")
	if err != nil {
		response.Error(w, err)
		return
	}

	items, err := h.inventories.ListItems(req.Context(), req.Identity, inventoryID, categoryID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, items)
}

// ListUsers handles GET /inventories/{inventoryId}/users
func (h *InventoryHandler) ListUsers(w http.ResponseWriter, req *pipeline.Request) {
	inventoryID, err := pathID(req.Request, "inventoryId")
	if err != nil {
		response.Error(w, err)
		return
	}

	users, err := h.inventories.ListUsers(req.Context(), req.Identity, inventoryID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, users)
}
