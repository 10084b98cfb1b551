package market_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

func TestCancelacion_AceptadaPorLaContraparte_ReembolsaYRestauraStock(t *testing.T) {
	e, producto := mercadoConVenta(t) // precio 50, stock 20
	orden := e.comprar(t, ctaCompradora, producto, 3, 150)

	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))
	require.NoError(t, e.cancelacion.Aceptar(context.Background(), ctaVendedora, orden))

	o, err := e.ordenes.ObtenerOrden(ctaCompradora, orden)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCancelada, o.Estado)
	assert.Empty(t, o.CancelacionPedidaPor)

	assert.Equal(t, uint32(20), e.stockDe(t, producto), "el stock vuelve al nivel previo")
	assert.Zero(t, e.retenidoTotal(), "la custodia queda consumida")

	saldo, err := e.ordenes.Saldo(ctaCompradora)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), saldo, "el reembolso completo va al comprador")

	saldoVendedor, err := e.ordenes.Saldo(ctaVendedora)
	require.NoError(t, err)
	assert.Zero(t, saldoVendedor)
}

func TestCancelacion_TambienSobreOrdenEnviada(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.ordenes.MarcarEnviado(context.Background(), ctaVendedora, orden))

	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaVendedora, orden))
	require.NoError(t, e.cancelacion.Aceptar(context.Background(), ctaCompradora, orden))

	o, err := e.ordenes.ObtenerOrden(ctaCompradora, orden)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCancelada, o.Estado)
}

func TestSolicitar_TerceroNoPuede(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)

	err := e.cancelacion.Solicitar(context.Background(), ctaAjena, orden)
	assert.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestSolicitar_OrdenTerminal_Falla(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.ordenes.MarcarEnviado(context.Background(), ctaVendedora, orden))
	require.NoError(t, e.ordenes.MarcarRecibido(context.Background(), ctaCompradora, orden))

	err := e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden)
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"una orden recibida ya no admite cancelación")
}

func TestSolicitar_Repetida_ReRegistraAlSolicitante(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)

	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))
	// La contraparte pide después: la solicitud vigente pasa a ser la suya.
	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaVendedora, orden))

	// Ahora quien puede aceptar es la compradora, no la vendedora.
	err := e.cancelacion.Aceptar(context.Background(), ctaVendedora, orden)
	assert.ErrorIs(t, err, domain.ErrNotPermitted)
	assert.NoError(t, e.cancelacion.Aceptar(context.Background(), ctaCompradora, orden))
}

func TestAceptar_SinSolicitudPendiente_Falla(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)

	err := e.cancelacion.Aceptar(context.Background(), ctaVendedora, orden)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestAceptar_ElPropioSolicitante_Falla(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))

	err := e.cancelacion.Aceptar(context.Background(), ctaCompradora, orden)
	assert.ErrorIs(t, err, domain.ErrNotPermitted,
		"la cancelación exige el consentimiento de la contraparte")
}

func TestRechazar_LimpiaLaSolicitud_YLaOrdenSigue(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))

	require.NoError(t, e.cancelacion.Rechazar(context.Background(), ctaVendedora, orden))

	o, err := e.ordenes.ObtenerOrden(ctaCompradora, orden)
	require.NoError(t, err)
	assert.Empty(t, o.CancelacionPedidaPor)
	assert.Equal(t, entity.EstadoPendiente, o.Estado, "el rechazo no cambia el estado")

	// Sin solicitud vigente ya no se puede aceptar, pero sí volver a pedir.
	err = e.cancelacion.Aceptar(context.Background(), ctaVendedora, orden)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))
}

func TestRechazar_SoloLaContraparte(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))

	err := e.cancelacion.Rechazar(context.Background(), ctaCompradora, orden)
	assert.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestRecibido_LimpiaSolicitudPendiente(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.ordenes.MarcarEnviado(context.Background(), ctaVendedora, orden))
	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaVendedora, orden))

	require.NoError(t, e.ordenes.MarcarRecibido(context.Background(), ctaCompradora, orden))

	o, err := e.ordenes.ObtenerOrden(ctaCompradora, orden)
	require.NoError(t, err)
	assert.Empty(t, o.CancelacionPedidaPor,
		"la recepción resuelve la orden y descarta la solicitud abierta")
}

func TestAceptar_DevolucionDeStockDesborda_Falla(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 3, 150)

	// Entre la compra y la aceptación el stock creció hasta el máximo.
	p, err := e.store.Productos().Get(producto)
	require.NoError(t, err)
	p.Stock = math.MaxUint32
	require.NoError(t, e.store.Productos().Put(p))

	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))
	err = e.cancelacion.Aceptar(context.Background(), ctaVendedora, orden)
	assert.ErrorIs(t, err, domain.ErrStockOverflow)

	// La aceptación fallida no tocó nada: la orden sigue abierta y la
	// custodia intacta.
	o, err := e.ordenes.ObtenerOrden(ctaCompradora, orden)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, o.Estado)
	assert.Equal(t, uint64(150), e.retenidoTotal())
}
