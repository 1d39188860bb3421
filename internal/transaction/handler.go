package transaction

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateTransaction(dto *CreateTransactionDTO) (*Transaction, error)
	ListTransactions() ([]Transaction, error)
	DeleteTransaction(id string) error
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

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.Service.ListTransactions()
	if err != nil {
		h.Logger.Error("ListTransactions: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Error fetching transactions")
		return
	}

	h.WriteJSON(w, http.StatusOK, transactions)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateTransaction(&dto)
	if err != nil {
		h.Logger.Error("CreateTransaction: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTransaction: transaction created successfully",
		"transaction_id", created.ID,
		"amount", created.Amount,
		"type", created.Type)

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteTransaction(id); err != nil {
		h.Logger.Error("DeleteTransaction: service error", "error", err, "id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{Message: "Transaction deleted"})
}
