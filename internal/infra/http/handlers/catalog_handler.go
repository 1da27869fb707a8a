package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/levamidia/dimarzio-crm/internal/entity"
	"github.com/levamidia/dimarzio-crm/internal/usecase"
)

type CatalogHandler struct {
	repo usecase.CatalogRepositoryInterface
}

func NewCatalogHandler(repo usecase.CatalogRepositoryInterface) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.repo.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success: false,
			Message: "falha ao carregar catálogo",
		})
		return
	}

	if catalog == nil {
		catalog = entity.Catalog{}
	}
	writeJSON(w, http.StatusOK, catalog)
}

type createProductRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "JSON inválido"})
		return
	}

	if req.Name == "" || req.Slug == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "name e slug são obrigatórios",
		})
		return
	}

	product := entity.NewProduct(req.Name, req.Slug)
	if err := h.repo.Create(r.Context(), product); err != nil {
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success: false,
			Message: "falha ao criar produto",
		})
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *CatalogHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "JSON inválido"})
		return
	}

	if err := h.repo.SetActive(r.Context(), id, req.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, apiResponse{
				Success: false,
				Message: "produto não encontrado",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success: false,
			Message: "falha ao atualizar produto",
		})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}
