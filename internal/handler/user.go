package handler

import (
	"net/http"

	"inventory-rest-api/internal/pipeline"
	"inventory-rest-api/internal/service"
	"inventory-rest-api/pkg/response"
)

// UserHandler handles user/inventory relation requests.
type UserHandler struct {
	relations *service.RelationService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(relations *service.RelationService) *UserHandler {
	return &UserHandler{relations: relations}
}

// ModifyRelation handles PATCH /users/inventories
func (h *UserHandler) ModifyRelation(w http.ResponseWriter, req *pipeline.Request) {
	body := pipeline.Body[RelationRequest](req)

	action := service.RelationAction(body.Action)
	user, err := h.relations.Modify(req.Context(), req.Identity, body.UserEmail, body.InventoryID, action)
	if err != nil {
		response.Error(w, err)
		return
	}

	message := "User connected to inventory"
	if action == service.ActionDisconnect {
		message = "User disconnected from inventory"
	}
	response.Message(w, http.StatusOK, message, user)
}
