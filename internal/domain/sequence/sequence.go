// Package sequence genera los números visibles de documento (PREFIJO/AAAA/MM/NNN).
//
// El número es una conveniencia de presentación: NNN sale del tamaño de la
// colección en el momento de insertar, no identifica al registro.
package sequence

import (
	"fmt"
	"regexp"
	"time"
)

// Prefijos de los documentos numerados.
const (
	PrefixWarehouseRelease = "WZ"
	PrefixCustomerReturn   = "ZW"
	PrefixProductionOrder  = "PROD"
)

// PadWidth ancho mínimo del contador.
const PadWidth = 3

// Format construye el código: Format("WZ", 2024-07-21, 3) = "WZ/2024/07/003".
// n < 1 se trata como 1.
func Format(prefix string, at time.Time, n int) string {
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%s/%04d/%02d/%0*d", prefix, at.Year(), int(at.Month()), PadWidth, n)
}

var codePattern = regexp.MustCompile(`^([A-Z]+)/(\d{4})/(\d{2})/(\d{3,})$`)

// Valid indica si code sigue el patrón PREFIJO/AAAA/MM/NNN con el prefijo dado.
func Valid(prefix, code string) bool {
	m := codePattern.FindStringSubmatch(code)
	return m != nil && m[1] == prefix
}
