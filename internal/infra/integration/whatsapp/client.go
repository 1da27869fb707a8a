package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var nonDigits = regexp.MustCompile(`\D`)

// Client fala com a Cloud API do WhatsApp. O texto do primeiro contato vem
// do template configurado pelo tenant, com o placeholder {nome}.
type Client struct {
	accessToken string
	phoneID     string
	template    string
	baseURL     string
	http        *http.Client
}

func NewClient(accessToken, phoneID, template string) *Client {
	return &Client{
		accessToken: accessToken,
		phoneID:     phoneID,
		template:    template,
		baseURL:     "https://graph.facebook.com/v18.0",
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

// SendFollowUp envia a mensagem de boas-vindas para um lead recém-capturado.
func (c *Client) SendFollowUp(phone, name string) error {
	body := strings.ReplaceAll(c.template, "{nome}", name)
	return c.SendMessage(SendMessageInput{
		PhoneNumber: nonDigits.ReplaceAllString(phone, ""),
		Body:        body,
	})
}

func (c *Client) SendMessage(input SendMessageInput) error {
	if c.accessToken == "" || c.phoneID == "" {
		log.Warn().Msg("WhatsApp: ACCESS_TOKEN ou PHONE_ID não configurados")
		return fmt.Errorf("whatsapp não configurado")
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                input.PhoneNumber,
		"type":              "text",
		"text": map[string]interface{}{
			"preview_url": false,
			"body":        input.Body,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("WhatsApp: erro ao enviar mensagem")
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error().
			Int("status_code", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("WhatsApp: API recusou a mensagem")
		return fmt.Errorf("whatsapp api error: %d", resp.StatusCode)
	}

	var result SendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return err
	}

	if result.Error != nil {
		return fmt.Errorf("whatsapp: %s", result.Error.Message)
	}

	log.Info().Str("to", input.PhoneNumber).Msg("WhatsApp: mensagem enviada")
	return nil
}
