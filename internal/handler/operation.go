package handler

import (
	"net/http"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/pipeline"
	"inventory-rest-api/internal/service"
	"inventory-rest-api/pkg/response"
)

// OperationHandler handles stock operation HTTP requests.
type OperationHandler struct {
	stock      *service.StockService
	operations *service.OperationService
}

// NewOperationHandler creates a new operation handler.
func NewOperationHandler(stock *service.StockService, operations *service.OperationService) *OperationHandler {
	return &OperationHandler{stock: stock, operations: operations}
}

// Create handles POST /operations
func (h *OperationHandler) Create(w http.ResponseWriter, req *pipeline.Request) {
	body := pipeline.Body[CreateOperationRequest](req)

	result, err := h.stock.ApplyOperation(req.Context(), req.Identity,
		body.InventoryID, body.ItemID, model.OperationType(body.OperationType), body.Quantity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, "Operation created successfully", result)
}

// ListByInventory handles GET /operations/inventories/{inventoryId}
func (h *OperationHandler) ListByInventory(w http.ResponseWriter, req *pipeline.Request) {
	h.list(w, req, "")
}

// ListByItem handles GET /operations/inventories/{inventoryId}/items/{itemId}
func (h *OperationHandler) ListByItem(w http.ResponseWriter, req *pipeline.Request) {
	h.list(w, req, "itemId")
}

// ListByUser handles GET /operations/inventories/{inventoryId}/users/{userId}
func (h *OperationHandler) ListByUser(w http.ResponseWriter, req *pipeline.Request) {
	h.list(w, req, "userId")
}

// ListByCategory handles GET /operations/inventories/{inventoryId}/categories/{categoryId}
func (h *OperationHandler) ListByCategory(w http.ResponseWriter, req *pipeline.Request) {
	h.list(w, req, "categoryId")
}

// list serves one paginated listing, narrowed by the named path parameter.
func (h *OperationHandler) list(w http.ResponseWriter, req *pipeline.Request, scope string) {
	inventoryID, err := pathID(req.Request, "inventoryId")
	if err != nil {
		response.Error(w, err)
		return
	}
	filter := model.OperationFilter{InventoryID: inventoryID}

	if scope != "" {
		id, err := pathID(req.Request, scope)
		if err != nil {
			response.Error(w, err)
			return
		}
		switch scope {
		case "itemId":
			filter.ItemID = id
		case "userId":
			filter.UserID = id
		case "categoryId":
			filter.CategoryID = id
		}
	}

	page, err := parsePage(req.Request)
	if err != nil {
		response.Error(w, err)
		return
	}

	result, err := h.operations.List(req.Context(), req.Identity, filter, page)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Paginated(w, result.Operations, response.Pagination{
		TotalOperations: result.Total,
		CurrentPage:     page.Number,
		TotalPages:      result.TotalPages(),
	})
}
