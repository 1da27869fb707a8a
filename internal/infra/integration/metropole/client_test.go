package metropole

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

func TestListLeadsParsesAndTagsProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/6/dimarzio-auto", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id": 1, "name": "Maria", "product": "dimarzio-auto", "field03": "QUALIFICADO"},
			{"id": 2, "name": "João"}
		]`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	leads, err := client.ListLeads(context.Background(), 6, "dimarzio-auto")

	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, "Maria", leads[0].Name)
	assert.Equal(t, entity.StatusQualificado, leads[0].Status())
	// Registro sem product vem etiquetado com o produto consultado.
	assert.Equal(t, "dimarzio-auto", leads[1].Product)
	assert.Equal(t, entity.StatusNovo, leads[1].Status())
}

func TestListLeadsNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	leads, err := client.ListLeads(context.Background(), 6, "dimarzio-auto")

	assert.Error(t, err)
	assert.Nil(t, leads)
}

func TestUpdateStatusSendsSingleFieldBody(t *testing.T) {
	var body map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/update/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdateStatus(context.Background(), 42, entity.StatusQualificado)

	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"field03": entity.StatusQualificado}, body)
}

func TestUpdateStatusRejectedByBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error": "lead not found"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdateStatus(context.Background(), 999, entity.StatusFechado)

	assert.Error(t, err)
}

func TestSubmitLeadForcesNovoAndTenantEnvelope(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SubmitLead(context.Background(), SubmitLeadInput{
		TenantID:  6,
		Name:      "Maria Souza",
		Email:     "maria@example.com",
		CellPhone: "19998765432",
		Product:   "dimarzio-auto",
	})

	assert.NoError(t, err)
	assert.Equal(t, "NOVO", body["field03"])
	assert.Equal(t, map[string]any{"id": float64(6)}, body["tenantId"])
	assert.Equal(t, "Maria Souza", body["name"])
	assert.Equal(t, "dimarzio-auto", body["product"])
}

func TestSubmitLeadRejectedByBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SubmitLead(context.Background(), SubmitLeadInput{TenantID: 6, Name: "Maria"})

	assert.Error(t, err)
}
