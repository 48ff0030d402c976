// Package assistant mantiene una conversación con el modelo por usuario y
// la transcripción que ve la página Asystent AI.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/ports"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/pkg/logger"
)

// Mensajes mostrados en lugar de la respuesta cuando el proveedor falla.
const (
	MsgGenericError  = "Przepraszam, wystąpił błąd. Spróbuj ponownie później."
	MsgInvalidAPIKey = "Klucz API jest nieprawidłowy. Sprawdź konfigurację."
)

const preambleTemplate = "You are a helpful and friendly AI assistant for an internal company intranet called '%[1]s Intranet'. " +
	"The company, %[1]s, is a construction wholesaler. " +
	"You are currently assisting: %[2]s, who is a(n) %[3]s. " +
	"Your role is to provide information about the company, its procedures, and its people. " +
	"You should not invent information. If you don't know the answer, say so. " +
	"Keep your answers concise and professional. Today's date is %[4]s."

// BuildPreamble instrucción de sistema de una sesión nueva. La fecha va en formato polaco (dd.mm.aaaa).
func BuildPreamble(company string, actor dto.Actor, at time.Time) string {
	return fmt.Sprintf(preambleTemplate, company, actor.Name, actor.Title, at.Format("02.01.2006"))
}

// userSession estado de un usuario. sendMu serializa los envíos; mu protege chat y transcript.
type userSession struct {
	sendMu     sync.Mutex
	mu         sync.Mutex
	chat       ports.ChatSession
	transcript []entity.ChatMessage
}

// SessionRegistry una sesión de chat por usuario, creada en el primer envío.
// Los usuarios nunca comparten sesión ni compiten por el mismo lock. La entrada de
// un usuario no se borra del mapa: Dispose vacía su estado bajo el mismo sendMu,
// así un envío posterior nunca corre a la vez que uno anterior.
type SessionRegistry struct {
	provider ports.ChatProvider
	company  string
	log      *logger.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[int64]*userSession
}

// NewSessionRegistry construye el registro sin sesiones.
func NewSessionRegistry(provider ports.ChatProvider, company string, log *logger.Logger) *SessionRegistry {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionRegistry{
		provider: provider,
		company:  company,
		log:      log.Component("assistant"),
		now:      time.Now,
		sessions: make(map[int64]*userSession),
	}
}

// Send envía text en nombre de actor y reenvía a emit cada fragmento en orden de llegada.
//
// La transcripción recibe el mensaje del usuario y una entrada vacía del asistente que
// se va completando. Si crear la sesión o enviar falla, esa entrada se sustituye por un
// único mensaje de error y se devuelve junto con el error; no hay reintentos.
// Envíos simultáneos del mismo usuario se atienden de uno en uno.
func (r *SessionRegistry) Send(ctx context.Context, actor dto.Actor, text string, emit func(string) error) (entity.ChatMessage, error) {
	s := r.session(actor.UserID)
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	s.transcript = append(s.transcript,
		entity.ChatMessage{Role: entity.ChatUser, Content: text},
		entity.ChatMessage{Role: entity.ChatAssistant},
	)
	idx := len(s.transcript) - 1
	chat := s.chat
	s.mu.Unlock()

	if chat == nil {
		created, err := r.provider.NewSession(ctx, BuildPreamble(r.company, actor, r.now()))
		if err != nil {
			return r.fail(s, idx, actor.UserID, "crear sesión", err), err
		}
		s.mu.Lock()
		s.chat = created
		s.mu.Unlock()
		chat = created
	}

	err := chat.SendStream(ctx, text, func(fragment string) error {
		s.mu.Lock()
		s.transcript[idx].Content += fragment
		s.mu.Unlock()
		if emit != nil {
			return emit(fragment)
		}
		return nil
	})
	if err != nil {
		return r.fail(s, idx, actor.UserID, "enviar mensaje", err), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript[idx], nil
}

// fail sustituye la entrada del asistente por el mensaje de error visible.
func (r *SessionRegistry) fail(s *userSession, idx int, userID int64, op string, err error) entity.ChatMessage {
	r.log.Error().Err(err).Int64("user_id", userID).Msg("asistente: " + op)

	msg := MsgGenericError
	if errors.Is(err, ports.ErrInvalidAPIKey) {
		msg = MsgInvalidAPIKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript[idx] = entity.ChatMessage{Role: entity.ChatAssistant, Content: msg}
	return s.transcript[idx]
}

// Transcript copia de la conversación del usuario; vacía si aún no escribió.
func (r *SessionRegistry) Transcript(userID int64) []entity.ChatMessage {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	r.mu.Unlock()
	if !ok {
		return []entity.ChatMessage{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Dispose descarta la sesión y la transcripción; el siguiente envío crea una nueva.
// Si hay un envío en curso espera a que termine.
func (r *SessionRegistry) Dispose(userID int64) {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	r.mu.Unlock()
	if !ok {
		return
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	s.chat = nil
	s.transcript = nil
	s.mu.Unlock()
}

// Active número de usuarios con sesión abierta con el proveedor.
func (r *SessionRegistry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sessions {
		s.mu.Lock()
		if s.chat != nil {
			n++
		}
		s.mu.Unlock()
	}
	return n
}

func (r *SessionRegistry) session(userID int64) *userSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	if !ok {
		s = &userSession{}
		r.sessions[userID] = s
	}
	return s
}
