package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/api/shared"
	"github.com/vendify/vendify-api/internal/domain"
	"github.com/vendify/vendify-api/internal/store"
)

// productOrderColumns is the allow-list of sortable product columns.
var productOrderColumns = []string{"created_at", "updated_at", "nome", "sku", "preco", "estoque", "ativo", "id"}

// ProductCreateRequest represents the request body for creating a product.
// Price and stock default to zero when omitted.
type ProductCreateRequest struct {
	Nome      string   `json:"nome" validate:"required,min=1"`
	Sku       *string  `json:"sku" validate:"omitempty,min=1"`
	Preco     *float64 `json:"preco" validate:"omitempty,gte=0"`
	Estoque   *int     `json:"estoque" validate:"omitempty,gte=0"`
	Descricao *string  `json:"descricao" validate:"omitempty,min=1"`
	Ativo     *bool    `json:"ativo"`
}

// ProductUpdateRequest represents the request body for a partial product
// update. All fields are optional, but at least one must be present.
type ProductUpdateRequest struct {
	Nome      *string  `json:"nome" validate:"omitempty,min=1"`
	Sku       *string  `json:"sku" validate:"omitempty,min=1"`
	Preco     *float64 `json:"preco" validate:"omitempty,gte=0"`
	Estoque   *int     `json:"estoque" validate:"omitempty,gte=0"`
	Descricao *string  `json:"descricao" validate:"omitempty,min=1"`
	Ativo     *bool    `json:"ativo"`
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	store  store.ProductStore
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productStore store.ProductStore, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		store:  productStore,
		logger: logger.With(slog.String("component", "product_handler")),
	}
}

func (h *ProductHandler) errorMessages(notFound string) storeErrorMessages {
	return storeErrorMessages{
		NotFound: notFound,
		Conflict: "SKU já existe.",
		Internal: msgInternalError,
	}
}

// List handles GET /produtos requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := shared.ParsePage(q.Get("page"), q.Get("limit"))
	order := shared.ParseOrder(q.Get("order"), productOrderColumns)

	params := store.ProductListParams{
		Search:   q.Get("search"),
		Ativo:    shared.QueryBool(r, "ativo"),
		MinPreco: shared.QueryFloat(r, "min_price"),
		MaxPreco: shared.QueryFloat(r, "max_price"),
		Deletion: store.ResolveDeletionFilter(shared.QueryFlag(r, "include_deleted"), shared.QueryFlag(r, "only_deleted")),
		Order:    order,
		Page:     page,
	}

	products, total, err := h.store.List(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Erro inesperado ao listar produtos.", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.ListEnvelope{
		Data: products,
		Meta: shared.ListMeta{Total: total, Page: page.Number, Limit: page.Limit, Order: order},
	})
}

// Get handles GET /produtos/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Produto não encontrado.")
		return
	}

	deletion := store.ActiveOnly
	if shared.QueryFlag(r, "include_deleted") {
		deletion = store.IncludeDeleted
	}

	product, err := h.store.GetByID(r.Context(), id, deletion)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Produto não encontrado."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Create handles POST /produtos requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	req.Nome = strings.TrimSpace(req.Nome)
	if err := validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	preco := 0.0
	if req.Preco != nil {
		preco = *req.Preco
	}
	estoque := 0
	if req.Estoque != nil {
		estoque = *req.Estoque
	}
	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	product, err := domain.NewProduct(req.Nome, req.Sku, preco, estoque, req.Descricao, ativo)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	created, err := h.store.Create(r.Context(), product)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Produto não encontrado."))
		return
	}

	h.logger.Debug("product created", slog.String("product_id", created.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Update handles PUT /produtos/{id} requests.
// Soft-deleted products cannot be updated; restore them first.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Produto não encontrado para atualizar.")
		return
	}

	var req ProductUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}
	if err := validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	patch := store.ProductPatch{
		Nome:      req.Nome,
		Sku:       req.Sku,
		Preco:     req.Preco,
		Estoque:   req.Estoque,
		Descricao: req.Descricao,
		Ativo:     req.Ativo,
	}
	if patch.IsEmpty() {
		shared.RespondWithValidationError(w, r, msgInvalidPayload,
			[]shared.FieldIssue{{Path: "", Message: "corpo vazio"}})
		return
	}

	updated, err := h.store.Update(r.Context(), id, patch)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Produto não encontrado para atualizar."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /produtos/{id} requests (soft delete).
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Produto não encontrado para excluir.")
		return
	}

	if err := h.store.SoftDelete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, h.errorMessages("Produto não encontrado para excluir."))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /produtos/{id}/restore requests.
func (h *ProductHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Produto não encontrado para restaurar.")
		return
	}

	restored, err := h.store.Restore(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Produto não encontrado para restaurar."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restored)
}
