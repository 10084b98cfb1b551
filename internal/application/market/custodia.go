package market

import (
	"fmt"
	"time"

	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// El custodio de fondos solo lo invocan el ledger de órdenes y el negociador
// de cancelaciones, siempre dentro de una transacción; nunca es accesible
// directamente por los callers.

// retener crea el registro de custodia de una orden por el monto exacto de la
// compra.
func retener(repo repository.CustodiaRepository, ordenID uint32, monto uint64, ahora time.Time) error {
	return repo.Put(&entity.Custodia{OrdenID: ordenID, Monto: monto, UpdatedAt: ahora})
}

// liberar consume la custodia de la orden exactamente una vez y acredita el
// monto completo al saldo del destino (vendedor al recibir, comprador al
// cancelar). Una liberación sobre custodia ya consumida es una violación de
// invariante del diseño, inalcanzable con las guardas de la máquina de
// estados: se hace panic en lugar de no-op para que cualquier quiebre salte
// en tests.
func liberar(repo repository.CustodiaRepository, ordenID uint32, destino string, ahora time.Time) (uint64, error) {
	c, err := repo.Get(ordenID)
	if err != nil {
		return 0, err
	}
	if c == nil || c.Monto == 0 {
		panic(fmt.Sprintf("custodia: liberación doble o sin registro para la orden %d", ordenID))
	}
	monto := c.Monto
	c.Monto = 0
	c.UpdatedAt = ahora
	if err := repo.Put(c); err != nil {
		return 0, err
	}
	if err := repo.AcreditarSaldo(destino, monto); err != nil {
		return 0, err
	}
	return monto, nil
}
