package memory

import (
	"math"
	"sort"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

// Cada repo opera en dos modos: atado a un estado de transacción (e != nil)
// o vivo sobre el Store, tomando el lock por llamada. Todas las lecturas
// devuelven copias para que ningún caller mute el ledger por fuera de una
// transacción.

type base struct {
	s *Store  // nil dentro de una transacción
	e *estado // estado atado; nil en modo vivo
}

func (b base) leer() (*estado, func()) {
	if b.e != nil {
		return b.e, func() {}
	}
	b.s.mu.Lock()
	return b.s.st, b.s.mu.Unlock
}

// ── Cuentas ──────────────────────────────────────────────────────────────────

type cuentasRepo base

func (r cuentasRepo) Create(c *entity.Cuenta) error {
	e, fin := base(r).leer()
	defer fin()
	if _, ok := e.cuentasPorEmail[c.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *c
	e.cuentas[c.ID] = &cp
	e.cuentasPorEmail[c.Email] = c.ID
	return nil
}

func (r cuentasRepo) GetByID(id string) (*entity.Cuenta, error) {
	e, fin := base(r).leer()
	defer fin()
	c, ok := e.cuentas[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r cuentasRepo) GetByEmail(email string) (*entity.Cuenta, error) {
	e, fin := base(r).leer()
	defer fin()
	id, ok := e.cuentasPorEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *e.cuentas[id]
	return &cp, nil
}

// ── Usuarios (roles) ─────────────────────────────────────────────────────────

type usuariosRepo base

func (r usuariosRepo) Get(cuenta string) (*entity.Usuario, error) {
	e, fin := base(r).leer()
	defer fin()
	u, ok := e.usuarios[cuenta]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r usuariosRepo) Put(u *entity.Usuario) error {
	e, fin := base(r).leer()
	defer fin()
	cp := *u
	e.usuarios[u.Cuenta] = &cp
	return nil
}

func (r usuariosRepo) List() ([]*entity.Usuario, error) {
	e, fin := base(r).leer()
	defer fin()
	out := make([]*entity.Usuario, 0, len(e.usuarios))
	for _, u := range e.usuarios {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cuenta < out[j].Cuenta })
	return out, nil
}

// ── Productos ────────────────────────────────────────────────────────────────

type productosRepo base

func (r productosRepo) NextID() (uint32, error) {
	e, fin := base(r).leer()
	defer fin()
	if e.proximoProducto > math.MaxUint32 {
		return 0, domain.ErrIDOverflow
	}
	id := uint32(e.proximoProducto)
	e.proximoProducto++
	return id, nil
}

func (r productosRepo) Get(id uint32) (*entity.Producto, error) {
	e, fin := base(r).leer()
	defer fin()
	p, ok := e.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r productosRepo) Put(p *entity.Producto) error {
	e, fin := base(r).leer()
	defer fin()
	cp := *p
	e.productos[p.ID] = &cp
	return nil
}

func (r productosRepo) ListByVendedor(cuenta string) ([]*entity.Producto, error) {
	e, fin := base(r).leer()
	defer fin()
	var out []*entity.Producto
	for _, p := range e.productos {
		if p.Vendedor == cuenta {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r productosRepo) List() ([]*entity.Producto, error) {
	e, fin := base(r).leer()
	defer fin()
	out := make([]*entity.Producto, 0, len(e.productos))
	for _, p := range e.productos {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── Ordenes ──────────────────────────────────────────────────────────────────

type ordenesRepo base

func (r ordenesRepo) NextID() (uint32, error) {
	e, fin := base(r).leer()
	defer fin()
	if e.proximaOrden > math.MaxUint32 {
		return 0, domain.ErrIDOverflow
	}
	id := uint32(e.proximaOrden)
	e.proximaOrden++
	return id, nil
}

func (r ordenesRepo) Get(id uint32) (*entity.Orden, error) {
	e, fin := base(r).leer()
	defer fin()
	o, ok := e.ordenes[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r ordenesRepo) Put(o *entity.Orden) error {
	e, fin := base(r).leer()
	defer fin()
	cp := *o
	e.ordenes[o.ID] = &cp
	return nil
}

func (r ordenesRepo) ListByComprador(cuenta string) ([]*entity.Orden, error) {
	e, fin := base(r).leer()
	defer fin()
	var out []*entity.Orden
	for _, o := range e.ordenes {
		if o.Comprador == cuenta {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r ordenesRepo) List() ([]*entity.Orden, error) {
	e, fin := base(r).leer()
	defer fin()
	out := make([]*entity.Orden, 0, len(e.ordenes))
	for _, o := range e.ordenes {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── Custodia y saldos ────────────────────────────────────────────────────────

type custodiaRepo base

func (r custodiaRepo) Get(ordenID uint32) (*entity.Custodia, error) {
	e, fin := base(r).leer()
	defer fin()
	c, ok := e.custodias[ordenID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r custodiaRepo) Put(c *entity.Custodia) error {
	e, fin := base(r).leer()
	defer fin()
	cp := *c
	e.custodias[c.OrdenID] = &cp
	return nil
}

func (r custodiaRepo) TotalRetenido() (uint64, error) {
	e, fin := base(r).leer()
	defer fin()
	var total uint64
	for _, c := range e.custodias {
		total += c.Monto
	}
	return total, nil
}

func (r custodiaRepo) Saldo(cuenta string) (uint64, error) {
	e, fin := base(r).leer()
	defer fin()
	return e.saldos[cuenta], nil
}

func (r custodiaRepo) AcreditarSaldo(cuenta string, monto uint64) error {
	e, fin := base(r).leer()
	defer fin()
	e.saldos[cuenta] += monto
	return nil
}

// ── Reputación ───────────────────────────────────────────────────────────────

type reputacionRepo base

func (r reputacionRepo) Get(cuenta string) (*entity.Reputacion, error) {
	e, fin := base(r).leer()
	defer fin()
	rep, ok := e.reputaciones[cuenta]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r reputacionRepo) Put(rep *entity.Reputacion) error {
	e, fin := base(r).leer()
	defer fin()
	cp := *rep
	e.reputaciones[rep.Cuenta] = &cp
	return nil
}

func (r reputacionRepo) List() ([]*entity.Reputacion, error) {
	e, fin := base(r).leer()
	defer fin()
	out := make([]*entity.Reputacion, 0, len(e.reputaciones))
	for _, rep := range e.reputaciones {
		cp := *rep
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cuenta < out[j].Cuenta })
	return out, nil
}
