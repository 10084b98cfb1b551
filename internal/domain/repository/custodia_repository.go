package repository

import "github.com/agoramarket/agora-api/internal/domain/entity"

// CustodiaRepository define el puerto de persistencia para los fondos en
// custodia y los saldos liquidados. TotalRetenido es la suma de todos los
// registros vivos: debe conciliar con la suma de montos de las órdenes no
// terminales, independientemente de la máquina de estados.
type CustodiaRepository interface {
	Get(ordenID uint32) (*entity.Custodia, error)
	Put(custodia *entity.Custodia) error
	TotalRetenido() (uint64, error)

	// Saldos liquidados por cuenta (fondos ya liberados de custodia).
	Saldo(cuenta string) (uint64, error)
	AcreditarSaldo(cuenta string, monto uint64) error
}
