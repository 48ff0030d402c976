package assistant_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okasc/intranet-api/internal/application/assistant"
	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/ports"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

// fakeProvider cuenta preámbulos y responde con fragmentos fijos.
type fakeProvider struct {
	mu        sync.Mutex
	preambles []string
	createErr error
	sendErr   error
	fragments []string
	inFlight  atomic.Int32
	maxFlight atomic.Int32
	started   chan struct{} // opcional: avisa al empezar cada stream
	gate      chan struct{} // opcional: el stream espera a que se cierre
}

func (p *fakeProvider) NewSession(_ context.Context, preamble string) (ports.ChatSession, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.mu.Lock()
	p.preambles = append(p.preambles, preamble)
	p.mu.Unlock()
	return &fakeSession{p: p}, nil
}

type fakeSession struct{ p *fakeProvider }

func (s *fakeSession) SendStream(_ context.Context, _ string, onFragment func(string) error) error {
	n := s.p.inFlight.Add(1)
	defer s.p.inFlight.Add(-1)
	for {
		m := s.p.maxFlight.Load()
		if n <= m || s.p.maxFlight.CompareAndSwap(m, n) {
			break
		}
	}
	if s.p.started != nil {
		select {
		case s.p.started <- struct{}{}:
		default:
		}
	}
	if s.p.gate != nil {
		<-s.p.gate
	}
	for _, f := range s.p.fragments {
		time.Sleep(time.Millisecond)
		if err := onFragment(f); err != nil {
			return err
		}
	}
	return s.p.sendErr
}

var (
	jacek = dto.Actor{UserID: 2, Name: "Jacek Strzadała", Title: "Kierownik Biura", Role: entity.RoleManager}
	dawid = dto.Actor{UserID: 3, Name: "Dawid Strzadała", Title: "Pracownik Magazynu", Role: entity.RoleEmployee}
)

func newRegistry(p *fakeProvider) *assistant.SessionRegistry {
	r := assistant.NewSessionRegistry(p, "OKA S.C.", nil)
	r.SetNow(func() time.Time { return time.Date(2024, time.July, 22, 8, 0, 0, 0, time.UTC) })
	return r
}

func TestBuildPreamble_DatosDelUsuarioYFechaPolaca(t *testing.T) {
	got := assistant.BuildPreamble("OKA S.C.", jacek, time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, got, "'OKA S.C. Intranet'")
	assert.Contains(t, got, "You are currently assisting: Jacek Strzadała, who is a(n) Kierownik Biura.")
	assert.True(t, strings.HasSuffix(got, "Today's date is 05.07.2024."))
}

func TestSend_FragmentosEnOrdenYTranscripcion(t *testing.T) {
	p := &fakeProvider{fragments: []string{"Dzień ", "dobry", "!"}}
	r := newRegistry(p)

	var got []string
	msg, err := r.Send(context.Background(), jacek, "Cześć", func(f string) error {
		got = append(got, f)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dzień ", "dobry", "!"}, got)
	assert.Equal(t, entity.ChatMessage{Role: entity.ChatAssistant, Content: "Dzień dobry!"}, msg)

	tr := r.Transcript(jacek.UserID)
	require.Len(t, tr, 2)
	assert.Equal(t, entity.ChatMessage{Role: entity.ChatUser, Content: "Cześć"}, tr[0])
	assert.Equal(t, "Dzień dobry!", tr[1].Content)
}

func TestSend_UnSoloPreambuloTrasTresEnvios(t *testing.T) {
	p := &fakeProvider{fragments: []string{"ok"}}
	r := newRegistry(p)

	for i := 0; i < 3; i++ {
		_, err := r.Send(context.Background(), jacek, "pytanie", nil)
		require.NoError(t, err)
	}
	require.Len(t, p.preambles, 1)
	assert.Contains(t, p.preambles[0], "Jacek Strzadała")
	assert.Contains(t, p.preambles[0], "22.07.2024")
	assert.Len(t, r.Transcript(jacek.UserID), 6)
}

func TestSend_SesionesPorUsuario(t *testing.T) {
	p := &fakeProvider{fragments: []string{"ok"}}
	r := newRegistry(p)

	_, err := r.Send(context.Background(), jacek, "a", nil)
	require.NoError(t, err)
	_, err = r.Send(context.Background(), dawid, "b", nil)
	require.NoError(t, err)

	assert.Len(t, p.preambles, 2)
	assert.Equal(t, 2, r.Active())
	assert.Len(t, r.Transcript(jacek.UserID), 2)
	assert.Equal(t, "b", r.Transcript(dawid.UserID)[0].Content)
	assert.Empty(t, r.Transcript(99))
}

func TestSend_ClaveInvalidaMensajeEspecifico(t *testing.T) {
	p := &fakeProvider{createErr: ports.ErrInvalidAPIKey}
	r := newRegistry(p)

	msg, err := r.Send(context.Background(), jacek, "Cześć", nil)
	require.ErrorIs(t, err, ports.ErrInvalidAPIKey)
	assert.Equal(t, assistant.MsgInvalidAPIKey, msg.Content)

	tr := r.Transcript(jacek.UserID)
	require.Len(t, tr, 2)
	assert.Equal(t, assistant.MsgInvalidAPIKey, tr[1].Content)
}

func TestSend_ErrorEnStreamSustituyeRespuestaParcial(t *testing.T) {
	p := &fakeProvider{fragments: []string{"Częściowa "}, sendErr: errors.New("AI: stream cortado")}
	r := newRegistry(p)

	msg, err := r.Send(context.Background(), jacek, "Cześć", nil)
	require.Error(t, err)
	assert.Equal(t, assistant.MsgGenericError, msg.Content)
	assert.Equal(t, assistant.MsgGenericError, r.Transcript(jacek.UserID)[1].Content)
}

func TestSend_FalloAlCrearReintentaEnElSiguienteEnvio(t *testing.T) {
	p := &fakeProvider{createErr: errors.New("AI: sin red"), fragments: []string{"ok"}}
	r := newRegistry(p)

	_, err := r.Send(context.Background(), jacek, "1", nil)
	require.Error(t, err)

	p.createErr = nil
	msg, err := r.Send(context.Background(), jacek, "2", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", msg.Content)
	assert.Len(t, p.preambles, 1)
}

func TestSend_EnviosConcurrentesSeSerializan(t *testing.T) {
	p := &fakeProvider{fragments: []string{"a", "b", "c"}}
	r := newRegistry(p)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Send(context.Background(), jacek, "x", nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), p.maxFlight.Load())
	assert.Len(t, p.preambles, 1)
	tr := r.Transcript(jacek.UserID)
	require.Len(t, tr, 10)
	for i := 1; i < len(tr); i += 2 {
		assert.Equal(t, "abc", tr[i].Content)
	}
}

func TestDispose_NuevaSesionConNuevoPreambulo(t *testing.T) {
	p := &fakeProvider{fragments: []string{"ok"}}
	r := newRegistry(p)

	_, err := r.Send(context.Background(), jacek, "a", nil)
	require.NoError(t, err)
	r.Dispose(jacek.UserID)
	assert.Empty(t, r.Transcript(jacek.UserID))

	_, err = r.Send(context.Background(), jacek, "b", nil)
	require.NoError(t, err)
	assert.Len(t, p.preambles, 2)
}

func TestDispose_EsperaAlEnvioEnCursoYNoSolapaElSiguiente(t *testing.T) {
	p := &fakeProvider{fragments: []string{"ok"}, started: make(chan struct{}, 1), gate: make(chan struct{})}
	r := newRegistry(p)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = r.Send(context.Background(), jacek, "a", nil)
	}()
	<-p.started

	disposed := make(chan struct{})
	go func() {
		r.Dispose(jacek.UserID)
		close(disposed)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = r.Send(context.Background(), jacek, "b", nil)
	}()

	assert.Never(t, func() bool {
		select {
		case <-disposed:
			return true
		default:
			return false
		}
	}, 50*time.Millisecond, 5*time.Millisecond, "Dispose no debe terminar con un envío en curso")

	close(p.gate)
	wg.Wait()
	<-disposed
	assert.Equal(t, int32(1), p.maxFlight.Load())

	r.Dispose(jacek.UserID)
	assert.Empty(t, r.Transcript(jacek.UserID))
	assert.Equal(t, 0, r.Active())

	_, err := r.Send(context.Background(), jacek, "c", nil)
	require.NoError(t, err)
	assert.Len(t, r.Transcript(jacek.UserID), 2)
	assert.Equal(t, 1, r.Active())
}
