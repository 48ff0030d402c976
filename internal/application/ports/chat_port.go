package ports

import (
	"context"
	"errors"
)

// ErrInvalidAPIKey el proveedor rechazó la clave configurada.
// El asistente lo traduce a un mensaje específico para el usuario.
var ErrInvalidAPIKey = errors.New("AI: clave de API inválida")

// ChatProvider define el puerto de salida hacia el modelo conversacional.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type ChatProvider interface {
	// NewSession abre una conversación con el preámbulo como instrucción de sistema.
	NewSession(ctx context.Context, preamble string) (ChatSession, error)
}

// ChatSession conversación con historial mantenido por el adaptador.
// No es segura para uso concurrente: el llamador serializa los envíos.
type ChatSession interface {
	// SendStream envía text y llama a onFragment por cada trozo de respuesta, en orden.
	// Si onFragment devuelve error se corta el stream y se devuelve ese error.
	// El turno solo se incorpora al historial si el stream termina bien.
	SendStream(ctx context.Context, text string, onFragment func(string) error) error
}
