package inventory

import "github.com/jhoicas/inventario-crisis/internal/application/dto"

// OperationLog es la pista de auditoría append-only del motor: una entrada
// por llamada, exitosa o no. Las entradas nunca se mutan ni se eliminan; toda
// lectura y escritura pasa por copias profundas para que ningún llamador
// pueda alterar el historial.
type OperationLog struct {
	entries []dto.OperationResult
}

// NewOperationLog construye un log vacío.
func NewOperationLog() *OperationLog {
	return &OperationLog{}
}

// Append agrega una entrada (copia profunda de los mapas de argumentos).
func (l *OperationLog) Append(result dto.OperationResult) {
	l.entries = append(l.entries, cloneResult(result))
}

// Entries devuelve una copia del log en orden de inserción.
func (l *OperationLog) Entries() []dto.OperationResult {
	out := make([]dto.OperationResult, len(l.entries))
	for i, entry := range l.entries {
		out[i] = cloneResult(entry)
	}
	return out
}

// Len devuelve el número de operaciones registradas.
func (l *OperationLog) Len() int {
	return len(l.entries)
}

func cloneResult(r dto.OperationResult) dto.OperationResult {
	r.ItemRequests = copyQuantities(r.ItemRequests)
	r.ReceivedItems = copyQuantities(r.ReceivedItems)
	return r
}

func copyQuantities(src map[string]int) map[string]int {
	if src == nil {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
