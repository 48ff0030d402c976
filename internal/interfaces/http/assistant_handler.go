package http

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/okasc/intranet-api/internal/application/assistant"
	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/pkg/validator"
)

// AssistantHandler Asystent AI: transcripción, envío por HTTP y streaming por WebSocket.
type AssistantHandler struct {
	sessions *assistant.SessionRegistry
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(sessions *assistant.SessionRegistry) *AssistantHandler {
	return &AssistantHandler{sessions: sessions}
}

// Messages godoc
// @Summary      Transcripción del usuario
// @Tags         assistant
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChatMessageDTO
// @Router       /api/assistant/messages [get]
func (h *AssistantHandler) Messages(c *fiber.Ctx) error {
	return c.JSON(toChatMessages(h.sessions.Transcript(GetUserID(c))))
}

// Send godoc
// @Summary      Enviar mensaje al asistente
// @Description  Espera la respuesta completa. Si el proveedor falla, content es el mensaje de error
// @Description  que ve el usuario y failed=true; la petición responde 200 igualmente.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Mensaje"
// @Success      200   {object}  dto.ChatReplyDTO
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/assistant/messages [post]
func (h *AssistantHandler) Send(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	reply, err := h.sessions.Send(c.UserContext(), GetActor(c), in.Message, nil)
	return c.JSON(dto.ChatReplyDTO{
		Role:    string(reply.Role),
		Content: reply.Content,
		Failed:  err != nil,
	})
}

// Dispose godoc
// @Summary      Descartar la conversación
// @Description  El siguiente mensaje abre una sesión nueva con un preámbulo nuevo.
// @Tags         assistant
// @Security     Bearer
// @Success      204
// @Router       /api/assistant/session [delete]
func (h *AssistantHandler) Dispose(c *fiber.Ctx) error {
	h.sessions.Dispose(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// RequireUpgrade corta con 426 las peticiones a /ws que no son un upgrade WebSocket.
func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.SendStatus(fiber.StatusUpgradeRequired)
}

// Stream atiende /ws/assistant. Cada trama de texto entrante es un dto.ChatRequest;
// la respuesta llega como tramas "fragment" en orden de llegada y termina con
// "done" (content = respuesta completa) o "error" (content = mensaje para el usuario).
func (h *AssistantHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		actor, _ := conn.Locals(LocalActor).(dto.Actor)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var in dto.ChatRequest
			if err := json.Unmarshal(raw, &in); err != nil {
				if conn.WriteJSON(dto.ChatFrame{Type: dto.FrameError, Content: "trama inválida: se espera {\"message\": \"...\"}"}) != nil {
					return
				}
				continue
			}
			if fields := validator.ValidateStruct(&in); len(fields) > 0 {
				if conn.WriteJSON(dto.ChatFrame{Type: dto.FrameError, Content: validator.Summary(fields)}) != nil {
					return
				}
				continue
			}

			reply, err := h.sessions.Send(ctx, actor, in.Message, func(fragment string) error {
				return conn.WriteJSON(dto.ChatFrame{Type: dto.FrameFragment, Content: fragment})
			})
			final := dto.ChatFrame{Type: dto.FrameDone, Content: reply.Content}
			if err != nil {
				final.Type = dto.FrameError
			}
			if conn.WriteJSON(final) != nil {
				return
			}
		}
	})
}

func toChatMessages(in []entity.ChatMessage) []dto.ChatMessageDTO {
	out := make([]dto.ChatMessageDTO, 0, len(in))
	for _, m := range in {
		out = append(out, dto.ChatMessageDTO{Role: string(m.Role), Content: m.Content})
	}
	return out
}
