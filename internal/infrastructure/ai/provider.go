package ai

import (
	"fmt"
	"net/http"
	"time"

	"github.com/okasc/intranet-api/internal/application/ports"
	"github.com/okasc/intranet-api/pkg/config"
)

// newStreamingClient cliente sin Timeout global: un stream largo no debe cortarse.
// Solo se limita la espera de cabeceras; la cancelación llega por el contexto.
func newStreamingClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// NewChatProvider elige el adaptador según AI_PROVIDER.
func NewChatProvider(cfg config.AIConfig) (ports.ChatProvider, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGeminiService(cfg.APIKey, cfg.GeminiModel, cfg.BaseURL), nil
	case config.ProviderAnthropic:
		return NewAnthropicService(cfg.APIKey, cfg.AnthropicModel, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("AI: proveedor desconocido %q", cfg.Provider)
	}
}
