package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/levamidia/dimarzio-crm/internal/usecase"
)

type LeadHandler struct {
	listUC      *usecase.ListLeadsUseCase
	statsUC     *usecase.LeadStatsUseCase
	submitUC    *usecase.SubmitLeadUseCase
	updateUC    *usecase.UpdateLeadStatusUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	listUC *usecase.ListLeadsUseCase,
	statsUC *usecase.LeadStatsUseCase,
	submitUC *usecase.SubmitLeadUseCase,
	updateUC *usecase.UpdateLeadStatusUseCase,
) *LeadHandler {
	return &LeadHandler{
		listUC:      listUC,
		statsUC:     statsUC,
		submitUC:    submitUC,
		updateUC:    updateUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP no submit
	}
}

// HandleList responde a lista paginada. `product=todos` dispara o fan-out
// por todos os produtos ativos do catálogo.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	input := usecase.ListLeadsInput{
		Product: r.URL.Query().Get("product"),
		Search:  r.URL.Query().Get("search"),
		Page:    page,
	}

	out, err := h.listUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	input := usecase.LeadStatsInput{
		Product: r.URL.Query().Get("product"),
		Search:  r.URL.Query().Get("search"),
	}

	out, err := h.statsUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, apiResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "JSON inválido",
		})
		return
	}

	if err := h.submitUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "Lead cadastrado com sucesso!",
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus muda exatamente um campo de um lead. Qualquer resposta
// de erro significa que o backend não aplicou nada; o front não deve mexer
// na cópia local nesse caso.
func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "id de lead inválido",
		})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "JSON inválido",
		})
		return
	}

	if err := h.updateUC.Execute(r.Context(), leadID, req.Status); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}
