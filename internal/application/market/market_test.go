package market_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: ledger en memoria con los casos de uso cableados.
// ──────────────────────────────────────────────────────────────────────────────

const (
	ctaVendedora  = "00000000-0000-0000-0000-0000000000aa"
	ctaCompradora = "00000000-0000-0000-0000-0000000000bb"
	ctaAmbos      = "00000000-0000-0000-0000-0000000000cc"
	ctaAjena      = "00000000-0000-0000-0000-0000000000dd"
)

type entorno struct {
	t           *testing.T
	store       *memory.Store
	registro    *market.RegistroUseCase
	catalogo    *market.CatalogoUseCase
	ordenes     *market.OrdenesUseCase
	cancelacion *market.CancelacionUseCase
	reputacion  *market.ReputacionUseCase
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	store := memory.NewStore()
	return &entorno{
		t:           t,
		store:       store,
		registro:    market.NewRegistroUseCase(store, store.Usuarios()),
		catalogo:    market.NewCatalogoUseCase(store, store.Usuarios(), store.Productos()),
		ordenes:     market.NewOrdenesUseCase(store, store.Usuarios(), store.Ordenes(), store.Custodia()),
		cancelacion: market.NewCancelacionUseCase(store),
		reputacion:  market.NewReputacionUseCase(store, store.Reputacion()),
	}
}

// registrar da de alta una cuenta con el rol indicado.
func (e *entorno) registrar(t *testing.T, cuenta string, rol entity.Rol) {
	t.Helper()
	require.NoError(t, e.registro.Registrar(context.Background(), cuenta, rol))
}

// publicar crea un producto de la vendedora y devuelve su id.
func (e *entorno) publicar(t *testing.T, vendedor string, precio uint64, stock uint32) uint32 {
	t.Helper()
	id, err := e.catalogo.Publicar(context.Background(), vendedor, market.PublicarInput{
		Nombre:    "Producto de prueba",
		Precio:    precio,
		Stock:     stock,
		Categoria: "General",
	})
	require.NoError(t, err)
	return id
}

// comprar crea una orden con el pago exacto y devuelve su id.
func (e *entorno) comprar(t *testing.T, comprador string, productoID uint32, cantidad uint32, pago uint64) uint32 {
	t.Helper()
	id, err := e.ordenes.Comprar(context.Background(), comprador, productoID, cantidad, pago)
	require.NoError(t, err)
	return id
}

// mercadoConVenta deja el ledger con una vendedora, una compradora y un
// producto publicado (precio 50, stock 20). Es el punto de partida de la
// mayoría de los escenarios.
func mercadoConVenta(t *testing.T) (*entorno, uint32) {
	t.Helper()
	e := nuevoEntorno(t)
	e.registrar(t, ctaVendedora, entity.RolVendedor)
	e.registrar(t, ctaCompradora, entity.RolComprador)
	producto := e.publicar(t, ctaVendedora, 50, 20)
	return e, producto
}

// stockDe lee el stock actual del producto.
func (e *entorno) stockDe(t *testing.T, productoID uint32) uint32 {
	t.Helper()
	p, err := e.store.Productos().Get(productoID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// retenidoTotal lee la suma de fondos en custodia.
func (e *entorno) retenidoTotal() uint64 {
	e.t.Helper()
	total, err := e.store.Custodia().TotalRetenido()
	require.NoError(e.t, err)
	return total
}
