// Package api provides the HTTP handlers for the API.
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

// clientOrderColumns is the allow-list of sortable client columns.
var clientOrderColumns = []string{"created_at", "updated_at", "nome", "email", "telefone", "ativo", "id"}

// ClientCreateRequest represents the request body for creating a client.
type ClientCreateRequest struct {
	Nome     string  `json:"nome" validate:"required,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone" validate:"omitempty,min=3"`
	Endereco *string `json:"endereco" validate:"omitempty,min=3"`
	Ativo    *bool   `json:"ativo"`
}

// ClientUpdateRequest represents the request body for a partial client
// update. All fields are optional, but at least one must be present.
type ClientUpdateRequest struct {
	Nome     *string `json:"nome" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone" validate:"omitempty,min=3"`
	Endereco *string `json:"endereco" validate:"omitempty,min=3"`
	Ativo    *bool   `json:"ativo"`
}

// ClientHandler handles client-related HTTP requests.
type ClientHandler struct {
	store  store.ClientStore
	logger *slog.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientStore store.ClientStore, logger *slog.Logger) *ClientHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientHandler{
		store:  clientStore,
		logger: logger.With(slog.String("component", "client_handler")),
	}
}

func (h *ClientHandler) errorMessages(notFound string) storeErrorMessages {
	return storeErrorMessages{
		NotFound: notFound,
		Conflict: "E-mail já cadastrado.",
		Internal: msgInternalError,
	}
}

// List handles GET /clientes requests.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := shared.ParsePage(q.Get("page"), q.Get("limit"))
	order := shared.ParseOrder(q.Get("order"), clientOrderColumns)

	params := store.ClientListParams{
		Search:   q.Get("search"),
		Ativo:    shared.QueryBool(r, "ativo"),
		Deletion: store.ResolveDeletionFilter(shared.QueryFlag(r, "include_deleted"), shared.QueryFlag(r, "only_deleted")),
		Order:    order,
		Page:     page,
	}

	clients, total, err := h.store.List(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Erro inesperado ao listar clientes.", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.ListEnvelope{
		Data: clients,
		Meta: shared.ListMeta{Total: total, Page: page.Number, Limit: page.Limit, Order: order},
	})
}

// Get handles GET /clientes/{id} requests.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Cliente não encontrado.")
		return
	}

	deletion := store.ActiveOnly
	if shared.QueryFlag(r, "include_deleted") {
		deletion = store.IncludeDeleted
	}

	client, err := h.store.GetByID(r.Context(), id, deletion)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Cliente não encontrado."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, client)
}

// Create handles POST /clientes requests.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClientCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	req.Nome = strings.TrimSpace(req.Nome)
	if err := validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	client, err := domain.NewClient(req.Nome, req.Email, req.Telefone, req.Endereco, ativo)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	created, err := h.store.Create(r.Context(), client)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Cliente não encontrado."))
		return
	}

	h.logger.Debug("client created", slog.String("client_id", created.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Update handles PUT /clientes/{id} requests.
// Soft-deleted clients cannot be updated; restore them first.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Cliente não encontrado para atualizar.")
		return
	}

	var req ClientUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}
	if err := validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, msgInvalidPayload, payloadIssues(err))
		return
	}

	patch := store.ClientPatch{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
		Ativo:    req.Ativo,
	}
	if patch.IsEmpty() {
		shared.RespondWithValidationError(w, r, msgInvalidPayload,
			[]shared.FieldIssue{{Path: "", Message: "corpo vazio"}})
		return
	}

	updated, err := h.store.Update(r.Context(), id, patch)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Cliente não encontrado para atualizar."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /clientes/{id} requests (soft delete).
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Cliente não encontrado para excluir.")
		return
	}

	if err := h.store.SoftDelete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, h.errorMessages("Cliente não encontrado para excluir."))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /clientes/{id}/restore requests.
func (h *ClientHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Cliente não encontrado para restaurar.")
		return
	}

	restored, err := h.store.Restore(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, h.errorMessages("Cliente não encontrado para restaurar."))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restored)
}
