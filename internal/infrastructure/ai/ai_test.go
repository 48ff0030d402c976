package ai_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okasc/intranet-api/internal/application/ports"
	"github.com/okasc/intranet-api/internal/infrastructure/ai"
	"github.com/okasc/intranet-api/pkg/config"
)

func collect(t *testing.T, s ports.ChatSession, text string) ([]string, error) {
	t.Helper()
	var got []string
	err := s.SendStream(context.Background(), text, func(f string) error {
		got = append(got, f)
		return nil
	})
	return got, err
}

// ─── Gemini ─────────────────────────────────────────────────────────────────

func TestGemini_StreamYHistorial(t *testing.T) {
	var bodies []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:streamGenerateContent", r.URL.Path)
		assert.Equal(t, "sse", r.URL.Query().Get("alt"))
		assert.Equal(t, "klucz", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":\"Dzień \"}]}}]}\n\n")
		fmt.Fprint(w, ": keep-alive\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":\"dobry\"}]}}]}\n\n")
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("klucz", "gemini-2.5-flash", srv.URL)
	sess, err := svc.NewSession(context.Background(), "preambuła")
	require.NoError(t, err)

	got, err := collect(t, sess, "Cześć")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dzień ", "dobry"}, got)

	_, err = collect(t, sess, "Co słychać?")
	require.NoError(t, err)

	require.Len(t, bodies, 2)
	sys := bodies[0]["system_instruction"].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
	assert.Equal(t, "preambuła", sys)
	contents := bodies[1]["contents"].([]any)
	require.Len(t, contents, 3)
	assert.Equal(t, "model", contents[1].(map[string]any)["role"])
}

func TestGemini_ClaveInvalida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	sess, err := ai.NewGeminiService("zly", "gemini-2.5-flash", srv.URL).NewSession(context.Background(), "p")
	require.NoError(t, err)
	_, err = collect(t, sess, "x")
	assert.ErrorIs(t, err, ports.ErrInvalidAPIKey)
}

func TestGemini_ErrorServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sess, err := ai.NewGeminiService("k", "m", srv.URL).NewSession(context.Background(), "p")
	require.NoError(t, err)
	_, err = collect(t, sess, "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrInvalidAPIKey)
	assert.Contains(t, err.Error(), "503")
}

func TestGemini_SinClave(t *testing.T) {
	_, err := ai.NewGeminiService("", "m", "").NewSession(context.Background(), "p")
	assert.ErrorIs(t, err, ports.ErrInvalidAPIKey)
}

// ─── Anthropic ──────────────────────────────────────────────────────────────

func TestAnthropic_StreamSoloTextDelta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "klucz", r.Header.Get("x-api-key"))
		raw, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(raw), `"stream":true`)
		assert.Contains(t, string(raw), `"system":"preambuła"`)

		w.Header().Set("Content-Type", "text/event-stream")
		events := []string{
			`{"type":"message_start","message":{"id":"m1"}}`,
			`{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Witaj"}}`,
			`{"type":"ping"}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"!"}}`,
			`{"type":"message_stop"}`,
		}
		for _, e := range events {
			fmt.Fprintf(w, "event: x\ndata: %s\n\n", e)
		}
	}))
	defer srv.Close()

	sess, err := ai.NewAnthropicService("klucz", "claude", srv.URL).NewSession(context.Background(), "preambuła")
	require.NoError(t, err)
	got, err := collect(t, sess, "Cześć")
	require.NoError(t, err)
	assert.Equal(t, "Witaj!", strings.Join(got, ""))
}

func TestAnthropic_401EsClaveInvalida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
	}))
	defer srv.Close()

	sess, err := ai.NewAnthropicService("zly", "claude", srv.URL).NewSession(context.Background(), "p")
	require.NoError(t, err)
	_, err = collect(t, sess, "x")
	assert.ErrorIs(t, err, ports.ErrInvalidAPIKey)
}

func TestAnthropic_ErrorEnMitadDelStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"a\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"error\",\"error\":{\"type\":\"overloaded_error\",\"message\":\"Overloaded\"}}\n\n")
	}))
	defer srv.Close()

	sess, err := ai.NewAnthropicService("k", "claude", srv.URL).NewSession(context.Background(), "p")
	require.NoError(t, err)
	got, err := collect(t, sess, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded_error")
	assert.Equal(t, []string{"a"}, got)
}

func TestSendStream_ErrorDelCallbackCorta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		for i := 0; i < 3; i++ {
			fmt.Fprintf(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"%d\"}}\n\n", i)
		}
	}))
	defer srv.Close()

	sess, err := ai.NewAnthropicService("k", "claude", srv.URL).NewSession(context.Background(), "p")
	require.NoError(t, err)
	stop := fmt.Errorf("websocket cerrado")
	calls := 0
	err = sess.SendStream(context.Background(), "x", func(string) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestNewChatProvider(t *testing.T) {
	p, err := ai.NewChatProvider(config.AIConfig{Provider: config.ProviderAnthropic, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &ai.AnthropicService{}, p)

	p, err = ai.NewChatProvider(config.AIConfig{Provider: config.ProviderGemini, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &ai.GeminiService{}, p)

	_, err = ai.NewChatProvider(config.AIConfig{Provider: "openai"})
	assert.Error(t, err)
}
