package handler

import (
	"net/http"

	"inventory-rest-api/internal/pipeline"
	"inventory-rest-api/internal/service"
	"inventory-rest-api/pkg/response"
)

// ItemHandler handles item-related HTTP requests.
type ItemHandler struct {
	items *service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// Create handles POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, req *pipeline.Request) {
	body := pipeline.Body[CreateItemRequest](req)

	item, err := h.items.Create(req.Context(), req.Identity, body.InventoryID, body.CategoryID, body.ItemName)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "Item created successfully", item)
}

// Delete handles DELETE /items/{itemId}
func (h *ItemHandler) Delete(w http.ResponseWriter, req *pipeline.Request) {
	itemID, err := pathID(req.Request, "itemId")
	if err != nil {
		response.Error(w, err)
		return
	}

	deleted, err := h.items.Delete(req.Context(), req.Identity, itemID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Item deleted successfully", deleted)
}
