package metropole

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

// Client fala o contrato fixo do backend metropole:
//
//	GET  {base}/data/{tenantId}/{productId}  -> JSON array de leads
//	PUT  {base}/update/{leadId}              -> {"field03": "<STATUS>"}
//	POST {base}/send                         -> lead completo + envelope de tenant
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListLeads busca os leads crus de um produto. Registros sem product vêm
// etiquetados com o productID consultado.
func (c *Client) ListLeads(ctx context.Context, tenantID int, productID string) ([]entity.Lead, error) {
	url := fmt.Sprintf("%s/data/%d/%s", c.baseURL, tenantID, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request metropole: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("erro ao listar leads (status %d)", resp.StatusCode)
	}

	var leads []entity.Lead
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, fmt.Errorf("erro decode metropole: %w", err)
	}

	for i := range leads {
		if leads[i].Product == "" {
			leads[i].Product = productID
		}
	}

	return leads, nil
}

// UpdateStatus altera exatamente um campo (field03) de um lead.
func (c *Client) UpdateStatus(ctx context.Context, leadID int64, status string) error {
	url := fmt.Sprintf("%s/update/%d", c.baseURL, leadID)

	jsonBody, err := json.Marshal(updateStatusRequest{Field03: status})
	if err != nil {
		return fmt.Errorf("erro ao marshal status: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request metropole: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Warn().
			Int64("lead_id", leadID).
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("metropole recusou update de status")
		return fmt.Errorf("erro ao atualizar status (status %d)", resp.StatusCode)
	}

	return nil
}

// SubmitLead cria um lead novo. O backend trata status server-side, mas o
// payload sai sempre com field03=NOVO independente do que o chamador mandou.
func (c *Client) SubmitLead(ctx context.Context, input SubmitLeadInput) error {
	url := fmt.Sprintf("%s/send", c.baseURL)

	payload := submitLeadRequest{
		Name:               input.Name,
		Email:              input.Email,
		CellPhone:          input.CellPhone,
		Product:            input.Product,
		InteressePrincipal: input.InteressePrincipal,
		Field01:            input.Field01,
		Field02:            input.Field02,
		Field03:            entity.StatusNovo,
		Field04:            input.Field04,
		Field05:            input.Field05,
		Field06:            input.Field06,
		Field07:            input.Field07,
		Field08:            input.Field08,
		Field09:            input.Field09,
		Field18:            input.Field18,
		Field19:            input.Field19,
		TenantID:           tenantRef{ID: input.TenantID},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request metropole: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Warn().
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("metropole recusou criação de lead")
		return fmt.Errorf("erro ao enviar lead (status %d)", resp.StatusCode)
	}

	return nil
}
