package entity

// ChatRole autor de un mensaje del asistente.
type ChatRole string

const (
	ChatUser      ChatRole = "user"
	ChatAssistant ChatRole = "assistant"
)

// ChatMessage entrada de la transcripción del asistente de IA.
type ChatMessage struct {
	Role    ChatRole
	Content string
}
