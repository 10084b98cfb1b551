package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/agoramarket/agora-api/internal/domain"
)

// Nombres de los contadores de identificadores secuenciales.
const (
	contadorProductos = "productos"
	contadorOrdenes   = "ordenes"
)

// nextID asigna el siguiente identificador del contador nombrado. La fila se
// bloquea durante el UPDATE, así dos transacciones concurrentes nunca reciben
// el mismo identificador. Los identificadores son monótonos y no se reusan:
// un rollback posterior deja un hueco, nunca un duplicado.
func nextID(q Querier, nombre string) (uint32, error) {
	var asignado uint64
	err := q.QueryRow(context.Background(),
		`UPDATE contadores SET siguiente = siguiente + 1 WHERE nombre = $1 RETURNING siguiente - 1`,
		nombre,
	).Scan(&asignado)
	if err != nil {
		return 0, fmt.Errorf("next id %s: %w", nombre, err)
	}
	if asignado > math.MaxUint32 {
		return 0, domain.ErrIDOverflow
	}
	return uint32(asignado), nil
}
