package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/levamidia/dimarzio-crm/internal/usecase"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeUseCaseError mapeia a taxonomia de erro para HTTP: erro de domínio é
// culpa do request (400), erro técnico é backend/infra fora do ar (502).
func writeUseCaseError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if usecase.IsDomainError(err) {
		status = http.StatusBadRequest
	} else if usecase.IsTechnicalError(err) {
		status = http.StatusBadGateway
	}

	writeJSON(w, status, apiResponse{
		Success: false,
		Message: err.Error(),
	})
}
