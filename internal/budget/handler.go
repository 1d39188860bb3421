package budget

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateBudget(dto *CreateBudgetDTO) (*Budget, error)
	ListBudgets() ([]Budget, error)
	UpdateBudget(id string, dto *UpdateBudgetDTO) (*Budget, error)
	DeleteBudget(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListBudgets()
	if err != nil {
		h.Logger.Error("ListBudgets: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Error fetching budgets")
		return
	}

	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var dto CreateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateBudget(&dto)
	if err != nil {
		h.Logger.Error("CreateBudget: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateBudget: budget created successfully",
		"budget_id", created.ID,
		"category", created.Category,
		"month", created.Month.String())

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateBudget: invalid request body", "error", err, "id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateBudget(id, &dto)
	if err != nil {
		h.Logger.Error("UpdateBudget: service error", "error", err, "id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteBudget(id); err != nil {
		h.Logger.Error("DeleteBudget: service error", "error", err, "id", id)
		if _, ok := internal.IsAppError(err); ok {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "Error deleting budget")
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{Message: "Budget deleted"})
}
