package dto

// ChatRequest mensaje del usuario al asistente.
type ChatRequest struct {
	Message string `json:"message" validate:"notblank,max=4000"`
}

// ChatMessageDTO entrada de la transcripción.
type ChatMessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReplyDTO respuesta completa del asistente (POST /api/assistant/messages).
// Failed indica que Content es el mensaje de error mostrado en lugar de la respuesta.
type ChatReplyDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Failed  bool   `json:"failed"`
}

// Tipos de trama del WebSocket del asistente.
const (
	FrameFragment = "fragment"
	FrameDone     = "done"
	FrameError    = "error"
)

// ChatFrame trama enviada por /ws/assistant.
type ChatFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
