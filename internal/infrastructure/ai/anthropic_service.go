package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/okasc/intranet-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa ChatProvider.
var _ ports.ChatProvider = (*AnthropicService)(nil)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	anthropicMaxTokens      = 1024
)

// AnthropicService adaptador que implementa ChatProvider usando la Messages API
// de Anthropic con stream=true.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model, baseURL string) *AnthropicService {
	if baseURL == "" {
		baseURL = anthropicDefaultBaseURL
	}
	return &AnthropicService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newStreamingClient(),
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
	Stream    bool               `json:"stream"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicEvent cubre los eventos del stream que nos interesan:
// content_block_delta (texto) y error.
type anthropicEvent struct {
	Type  string `json:"type"`
	Delta *struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Error *anthropicError `json:"error"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// NewSession abre una conversación con preamble como prompt de sistema.
func (s *AnthropicService) NewSession(_ context.Context, preamble string) (ports.ChatSession, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY no configurado", ports.ErrInvalidAPIKey)
	}
	return &anthropicSession{svc: s, system: preamble}, nil
}

type anthropicSession struct {
	svc     *AnthropicService
	system  string
	history []anthropicMessage
}

func (a *anthropicSession) SendStream(ctx context.Context, text string, onFragment func(string) error) error {
	user := anthropicMessage{Role: "user", Content: text}
	payload := anthropicRequest{
		Model:     a.svc.model,
		MaxTokens: anthropicMaxTokens,
		System:    a.system,
		Messages:  append(append([]anthropicMessage(nil), a.history...), user),
		Stream:    true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.svc.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", a.svc.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := a.svc.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return anthropicHTTPError(resp.StatusCode, rawBody)
	}

	var reply strings.Builder
	err = readSSE(resp.Body, func(data []byte) error {
		var ev anthropicEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return fmt.Errorf("AI: deserializar evento Anthropic: %w", err)
		}
		switch ev.Type {
		case "content_block_delta":
			if ev.Delta == nil || ev.Delta.Type != "text_delta" || ev.Delta.Text == "" {
				return nil
			}
			reply.WriteString(ev.Delta.Text)
			return onFragment(ev.Delta.Text)
		case "error":
			if ev.Error != nil {
				return anthropicEventError(ev.Error)
			}
			return fmt.Errorf("AI: Anthropic error en el stream")
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.history = append(a.history, user, anthropicMessage{Role: "assistant", Content: reply.String()})
	return nil
}

func anthropicEventError(e *anthropicError) error {
	if e.Type == "authentication_error" || e.Type == "permission_error" {
		return fmt.Errorf("%w: %s", ports.ErrInvalidAPIKey, e.Message)
	}
	return fmt.Errorf("AI: Anthropic error (%s): %s", e.Type, e.Message)
}

// anthropicHTTPError traduce la respuesta de error; 401/403 devuelven ErrInvalidAPIKey.
func anthropicHTTPError(status int, rawBody []byte) error {
	var ev anthropicEvent
	if jsonErr := json.Unmarshal(rawBody, &ev); jsonErr == nil && ev.Error != nil {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return fmt.Errorf("%w: %s", ports.ErrInvalidAPIKey, ev.Error.Message)
		}
		return anthropicEventError(ev.Error)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: Anthropic HTTP %d", ports.ErrInvalidAPIKey, status)
	}
	return fmt.Errorf("AI: Anthropic HTTP %d: %s", status, string(rawBody))
}
