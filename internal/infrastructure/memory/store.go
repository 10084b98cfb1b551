package memory

import (
	"context"
	"sync"

	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// estado es el contenido completo del ledger residente en memoria. Los
// contadores de id son uint64 para poder detectar el desborde del rango u32
// antes de asignar.
type estado struct {
	cuentas         map[string]*entity.Cuenta
	cuentasPorEmail map[string]string
	usuarios        map[string]*entity.Usuario
	productos       map[uint32]*entity.Producto
	ordenes         map[uint32]*entity.Orden
	custodias       map[uint32]*entity.Custodia
	saldos          map[string]uint64
	reputaciones    map[string]*entity.Reputacion
	proximoProducto uint64
	proximaOrden    uint64
}

func nuevoEstado() *estado {
	return &estado{
		cuentas:         make(map[string]*entity.Cuenta),
		cuentasPorEmail: make(map[string]string),
		usuarios:        make(map[string]*entity.Usuario),
		productos:       make(map[uint32]*entity.Producto),
		ordenes:         make(map[uint32]*entity.Orden),
		custodias:       make(map[uint32]*entity.Custodia),
		saldos:          make(map[string]uint64),
		reputaciones:    make(map[string]*entity.Reputacion),
		proximoProducto: 1,
		proximaOrden:    1,
	}
}

func (e *estado) clone() *estado {
	c := &estado{
		cuentas:         make(map[string]*entity.Cuenta, len(e.cuentas)),
		cuentasPorEmail: make(map[string]string, len(e.cuentasPorEmail)),
		usuarios:        make(map[string]*entity.Usuario, len(e.usuarios)),
		productos:       make(map[uint32]*entity.Producto, len(e.productos)),
		ordenes:         make(map[uint32]*entity.Orden, len(e.ordenes)),
		custodias:       make(map[uint32]*entity.Custodia, len(e.custodias)),
		saldos:          make(map[string]uint64, len(e.saldos)),
		reputaciones:    make(map[string]*entity.Reputacion, len(e.reputaciones)),
		proximoProducto: e.proximoProducto,
		proximaOrden:    e.proximaOrden,
	}
	for k, v := range e.cuentas {
		cp := *v
		c.cuentas[k] = &cp
	}
	for k, v := range e.cuentasPorEmail {
		c.cuentasPorEmail[k] = v
	}
	for k, v := range e.usuarios {
		cp := *v
		c.usuarios[k] = &cp
	}
	for k, v := range e.productos {
		cp := *v
		c.productos[k] = &cp
	}
	for k, v := range e.ordenes {
		cp := *v
		c.ordenes[k] = &cp
	}
	for k, v := range e.custodias {
		cp := *v
		c.custodias[k] = &cp
	}
	for k, v := range e.saldos {
		c.saldos[k] = v
	}
	for k, v := range e.reputaciones {
		cp := *v
		c.reputaciones[k] = &cp
	}
	return c
}

// Store es el backend de ledger en memoria. Un único mutex serializa las
// operaciones (una llamada a la vez, como exige el modelo transaccional);
// la atomicidad todo-o-nada se logra ejecutando cada transacción contra una
// copia del estado que solo se publica si la transacción termina sin error.
type Store struct {
	mu sync.Mutex
	st *estado
}

// NewStore crea un ledger en memoria vacío.
func NewStore() *Store {
	return &Store{st: nuevoEstado()}
}

var _ market.TxRunner = (*Store)(nil)

// Run ejecuta fn contra una copia del estado y la publica solo si fn no
// devuelve error: una falla a mitad de camino descarta todas las escrituras
// de la llamada.
func (s *Store) Run(_ context.Context, fn func(r market.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := s.st.clone()
	if err := fn(reposDe(copia)); err != nil {
		return err
	}
	s.st = copia
	return nil
}

func reposDe(e *estado) market.Repos {
	return market.Repos{
		Usuarios:   usuariosRepo{e: e},
		Productos:  productosRepo{e: e},
		Ordenes:    ordenesRepo{e: e},
		Custodia:   custodiaRepo{e: e},
		Reputacion: reputacionRepo{e: e},
	}
}

// AjustarContadores fija los próximos ids a asignar. Permite preparar un
// ledger cuyo contador está cerca del tope del rango u32, algo inalcanzable
// asignando ids de a uno.
func (s *Store) AjustarContadores(proximoProducto, proximaOrden uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.proximoProducto = proximoProducto
	s.st.proximaOrden = proximaOrden
}

// Accessores de lectura fuera de transacción; cada método toma el lock.

func (s *Store) Cuentas() repository.CuentaRepository       { return cuentasRepo{s: s} }
func (s *Store) Usuarios() repository.UsuarioRepository     { return usuariosRepo{s: s} }
func (s *Store) Productos() repository.ProductoRepository   { return productosRepo{s: s} }
func (s *Store) Ordenes() repository.OrdenRepository        { return ordenesRepo{s: s} }
func (s *Store) Custodia() repository.CustodiaRepository    { return custodiaRepo{s: s} }
func (s *Store) Reputacion() repository.ReputacionRepository { return reputacionRepo{s: s} }
