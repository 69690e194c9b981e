package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MemberTruck/api-membertruck/internal/config"
)

// Client fala com o gateway externo de WhatsApp. O envio é um disparo
// simples: a API não confirma a entrega ao destinatário.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: cfg.WhatsAppURL,
		APIKey:  cfg.WhatsAppKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enviar dispara a mensagem para o telefone informado.
func (c *Client) Enviar(telefone, conteudo string) error {
	body, err := json.Marshal(sendMessageRequest{Phone: telefone, Message: conteudo})
	if err != nil {
		return fmt.Errorf("erro ao montar payload: %w", err)
	}

	url := fmt.Sprintf("%s/send/message", c.BaseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gateway respondeu %d", resp.StatusCode)
	}

	var parsed sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("resposta inválida do gateway: %w", err)
	}
	if !parsed.Success {
		return fmt.Errorf("gateway recusou o envio: %s", parsed.Message)
	}
	return nil
}
