package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/api/shared"
	"github.com/vendify/vendify-api/internal/domain"
	"github.com/vendify/vendify-api/internal/store"
)

// saleOrderColumns is the allow-list of sortable sale columns.
var saleOrderColumns = []string{"created_at", "updated_at", "status", "quantidade", "preco_unit", "total", "id"}

// SaleCreateRequest represents the request body for creating a sale.
// Quantity defaults to 1, unit price to 0 and status to "pendente".
// Client and product references are optional; their existence is not
// checked, matching the store schema which carries no foreign keys.
type SaleCreateRequest struct {
	ClienteID  *uuid.UUID `json:"cliente_id"`
	ProdutoID  *uuid.UUID `json:"produto_id"`
	Quantidade *int       `json:"quantidade" validate:"omitempty,gte=0"`
	PrecoUnit  *float64   `json:"preco_unit" validate:"omitempty,gte=0"`
	Status     *string    `json:"status" validate:"omitempty,oneof=pendente pago cancelado entregue"`
}

// SaleUpdateRequest represents the request body for a partial sale update.
// All fields are optional, but at least one must be present.
type SaleUpdateRequest struct {
	ClienteID  *uuid.UUID `json:"cliente_id"`
	ProdutoID  *uuid.UUID `json:"produto_id"`
	Quantidade *int       `json:"quantidade" validate:"omitempty,gte=0"`
	PrecoUnit  *float64   `json:"preco_unit" validate:"omitempty,gte=0"`
	Status     *string    `json:"status" validate:"omitempty,oneof=pendente pago cancelado entregue"`
}

// SaleHandler handles sale-related HTTP requests.
type SaleHandler struct {
	store  store.SaleStore
	logger *slog.Logger
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleStore store.SaleStore, logger *slog.Logger) *SaleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SaleHandler{
		store:  saleStore,
		logger: logger.With(slog.String("component", "sale_handler")),
	}
}

func (h *SaleHandler) errorMessages(notFound string) storeErrorMessages {
	return storeErrorMessages{
		NotFound: notFound,
		Internal: msgInternalError,
	}
}

// List handles GET /vendas requests.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := shared.ParsePage(q.Get("page"), q.Get("limit"))
	order := shared.ParseOrder(q.Get("order"), saleOrderColumns)

	params := store.SaleListParams{
		Deletion: store.ResolveDeletionFilter(shared.QueryFlag(r, "include_deleted"), shared.QueryFlag(r, "only_deleted")),
		Order:    order,
		Page:     page,
	}

	if raw := q.Get("status"); raw != "" {
		status := domain.SaleStatus(raw)
		if status.Validate() == nil {
			params.Status = &status
		}
	}
	if id, err := uuid.Parse(q.Get("cliente_id")); err == nil {
		params.ClienteID = &id
	}
	if id, err := uuid.Parse(q.Get("produto_id")); err == nil {
		params.ProdutoID = &id
	}
	if t, err := time.Parse(time.RFC3339, q.Get("date_from")); err == nil {
		params.DateFrom = &t
	}
	if t, err := time.Parse(time.RFC3339, q.Get("date_to")); err == nil {
		params.DateTo = &t
	}

	sales, total, err := h.store.List(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Erro inesperado ao listar vendas.", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.ListEnvelope{
		Data: sales,
		Meta: shared.ListMeta{Total: total, Page: page.Number, Limit: page.Limit, Order: order},
	})
}

// Get handles GET /vendas/{id} requests.
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Venda não encontrada.")
		return
	}

	deletion := store.ActiveOnly
	if shared.QueryFlag(r, "include_deleted") {
		deletion = store.IncludeDeleted
	}

	sale, err := h.store.GetByID(r.Context(), id, deletion)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Venda não encontrada."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sale)
}

// Create handles POST /vendas requests.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SaleCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}
	if err := validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	quantidade := 1
	if req.Quantidade != nil {
		quantidade = *req.Quantidade
	}
	precoUnit := 0.0
	if req.PrecoUnit != nil {
		precoUnit = *req.PrecoUnit
	}
	status := domain.SaleStatusPendente
	if req.Status != nil {
		status = domain.SaleStatus(*req.Status)
	}

	sale, err := domain.NewSale(req.ClienteID, req.ProdutoID, quantidade, precoUnit, status)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	created, err := h.store.Create(r.Context(), sale)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Venda não encontrada."))
		return
	}

	h.logger.Debug("sale created", slog.String("sale_id", created.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Update handles PUT /vendas/{id} requests.
// Soft-deleted sales cannot be updated; restore them first.
func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Venda não encontrada para atualizar.")
		return
	}

	var req SaleUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}
	if err := validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	patch := store.SalePatch{
		ClienteID:  req.ClienteID,
		ProdutoID:  req.ProdutoID,
		Quantidade: req.Quantidade,
		PrecoUnit:  req.PrecoUnit,
	}
	if req.Status != nil {
		status := domain.SaleStatus(*req.Status)
		patch.Status = &status
	}
	if patch.IsEmpty() {
		shared.RespondWithValidationError(w, r, msgInvalidPayload,
			[]shared.FieldIssue{{Path: "", Message: "corpo vazio"}})
		return
	}

	updated, err := h.store.Update(r.Context(), id, patch)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Venda não encontrada para atualizar."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /vendas/{id} requests (soft delete).
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Venda não encontrada para excluir.")
		return
	}

	if err := h.store.SoftDelete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, h.errorMessages("Venda não encontrada para excluir."))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /vendas/{id}/restore requests.
func (h *SaleHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Venda não encontrada para restaurar.")
		return
	}

	restored, err := h.store.Restore(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Venda não encontrada para restaurar."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restored)
}
