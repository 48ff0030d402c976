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

// Verificar en tiempo de compilación que GeminiService implementa ChatProvider.
var _ ports.ChatProvider = (*GeminiService)(nil)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiService adaptador que implementa ChatProvider con la API REST de Google Gemini
// (streamGenerateContent en modo SSE). El historial de cada sesión vive en memoria.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
// baseURL vacío = API pública de Google.
func NewGeminiService(apiKey, model, baseURL string) *GeminiService {
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	return &GeminiService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newStreamingClient(),
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *geminiError `json:"error"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// NewSession abre una conversación; no llama a la red hasta el primer envío.
func (s *GeminiService) NewSession(_ context.Context, preamble string) (ports.ChatSession, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY no configurado", ports.ErrInvalidAPIKey)
	}
	return &geminiSession{svc: s, preamble: preamble}, nil
}

type geminiSession struct {
	svc      *GeminiService
	preamble string
	history  []geminiContent
}

func (g *geminiSession) SendStream(ctx context.Context, text string, onFragment func(string) error) error {
	user := geminiContent{Role: "user", Parts: []geminiPart{{Text: text}}}
	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: g.preamble}}},
		Contents:          append(append([]geminiContent(nil), g.history...), user),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse", g.svc.baseURL, g.svc.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.svc.apiKey)

	resp, err := g.svc.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return geminiHTTPError(resp.StatusCode, rawBody)
	}

	var reply strings.Builder
	err = readSSE(resp.Body, func(data []byte) error {
		var chunk geminiResponse
		if err := json.Unmarshal(data, &chunk); err != nil {
			return fmt.Errorf("AI: deserializar fragmento Gemini: %w", err)
		}
		if chunk.Error != nil {
			return fmt.Errorf("AI: Gemini error %d: %s", chunk.Error.Code, chunk.Error.Message)
		}
		for _, c := range chunk.Candidates {
			for _, p := range c.Content.Parts {
				if p.Text == "" {
					continue
				}
				reply.WriteString(p.Text)
				if err := onFragment(p.Text); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.history = append(g.history, user, geminiContent{Role: "model", Parts: []geminiPart{{Text: reply.String()}}})
	return nil
}

// geminiHTTPError traduce la respuesta de error; una clave rechazada devuelve ErrInvalidAPIKey.
func geminiHTTPError(status int, rawBody []byte) error {
	var errResp geminiResponse
	if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
		if status == http.StatusUnauthorized || status == http.StatusForbidden ||
			strings.Contains(errResp.Error.Message, "API key not valid") {
			return fmt.Errorf("%w: %s", ports.ErrInvalidAPIKey, errResp.Error.Message)
		}
		return fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: Gemini HTTP %d", ports.ErrInvalidAPIKey, status)
	}
	return fmt.Errorf("AI: Gemini HTTP %d", status)
}
