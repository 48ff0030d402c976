package ai

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// maxSSELine tamaño máximo de una línea "data:" (un fragmento de respuesta).
const maxSSELine = 1 << 20

// readSSE recorre un stream text/event-stream y llama a onData con el contenido de
// cada evento (líneas "data:" unidas por \n). Ignora comentarios y campos event/id.
func readSSE(r io.Reader, onData func(data []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxSSELine)

	var buf bytes.Buffer
	flush := func() error {
		if buf.Len() == 0 {
			return nil
		}
		data := bytes.Clone(buf.Bytes())
		buf.Reset()
		return onData(data)
	}

	for sc.Scan() {
		line := sc.Bytes()
		switch {
		case len(line) == 0:
			if err := flush(); err != nil {
				return err
			}
		case line[0] == ':':
			// comentario / keep-alive
		case bytes.HasPrefix(line, []byte("data:")):
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.Write(bytes.TrimPrefix(bytes.TrimPrefix(line, []byte("data:")), []byte(" ")))
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("AI: leer stream: %w", err)
	}
	return flush()
}
