package market_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

// ordenRecibida deja una orden completada entre compradora y vendedora.
func ordenRecibida(t *testing.T) (*entorno, uint32) {
	t.Helper()
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.ordenes.MarcarEnviado(context.Background(), ctaVendedora, orden))
	require.NoError(t, e.ordenes.MarcarRecibido(context.Background(), ctaCompradora, orden))
	return e, orden
}

func TestCalificar_AmbasDirecciones(t *testing.T) {
	e, orden := ordenRecibida(t)

	require.NoError(t, e.reputacion.Calificar(context.Background(), ctaCompradora, orden, 5))
	require.NoError(t, e.reputacion.Calificar(context.Background(), ctaVendedora, orden, 4))

	repVendedora, err := e.reputacion.ObtenerReputacion(ctaVendedora)
	require.NoError(t, err)
	require.NotNil(t, repVendedora)
	assert.Equal(t, uint32(1), repVendedora.ComoVendedor.Cantidad)
	assert.Equal(t, uint64(5), repVendedora.ComoVendedor.Suma)
	assert.Zero(t, repVendedora.ComoComprador.Cantidad,
		"la calificación del comprador no toca la dirección compradora")

	repCompradora, err := e.reputacion.ObtenerReputacion(ctaCompradora)
	require.NoError(t, err)
	require.NotNil(t, repCompradora)
	assert.Equal(t, uint32(1), repCompradora.ComoComprador.Cantidad)
	assert.Equal(t, uint64(4), repCompradora.ComoComprador.Suma)
}

func TestCalificar_PuntajeFueraDeRango_Falla(t *testing.T) {
	e, orden := ordenRecibida(t)

	err := e.reputacion.Calificar(context.Background(), ctaCompradora, orden, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidParam)

	err = e.reputacion.Calificar(context.Background(), ctaCompradora, orden, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidParam)
}

func TestCalificar_OrdenNoRecibida_Falla(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)

	err := e.reputacion.Calificar(context.Background(), ctaCompradora, orden, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"solo las órdenes recibidas son calificables")
}

func TestCalificar_OrdenCancelada_Falla(t *testing.T) {
	e, producto := mercadoConVenta(t)
	orden := e.comprar(t, ctaCompradora, producto, 1, 50)
	require.NoError(t, e.cancelacion.Solicitar(context.Background(), ctaCompradora, orden))
	require.NoError(t, e.cancelacion.Aceptar(context.Background(), ctaVendedora, orden))

	err := e.reputacion.Calificar(context.Background(), ctaCompradora, orden, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCalificar_TerceroNoPuede(t *testing.T) {
	e, orden := ordenRecibida(t)

	err := e.reputacion.Calificar(context.Background(), ctaAjena, orden, 5)
	assert.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestCalificar_DobleEnLaMismaDireccion_Falla(t *testing.T) {
	e, orden := ordenRecibida(t)
	require.NoError(t, e.reputacion.Calificar(context.Background(), ctaCompradora, orden, 5))

	err := e.reputacion.Calificar(context.Background(), ctaCompradora, orden, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyRated)

	// El intento fallido no altera el acumulador.
	rep, err := e.reputacion.ObtenerReputacion(ctaVendedora)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), rep.ComoVendedor.Cantidad)
	assert.Equal(t, uint64(5), rep.ComoVendedor.Suma)
}

func TestCalificar_AcumulaEntreOrdenes_YPromedia(t *testing.T) {
	e, producto := mercadoConVenta(t)

	for _, puntos := range []uint8{5, 4} {
		orden := e.comprar(t, ctaCompradora, producto, 1, 50)
		require.NoError(t, e.ordenes.MarcarEnviado(context.Background(), ctaVendedora, orden))
		require.NoError(t, e.ordenes.MarcarRecibido(context.Background(), ctaCompradora, orden))
		require.NoError(t, e.reputacion.Calificar(context.Background(), ctaCompradora, orden, puntos))
	}

	rep, err := e.reputacion.ObtenerReputacion(ctaVendedora)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), rep.ComoVendedor.Cantidad)
	assert.Equal(t, uint64(9), rep.ComoVendedor.Suma)
	assert.True(t, rep.ComoVendedor.Promedio().Equal(decimal.NewFromFloat(4.5)),
		"el promedio debe ser 4.5, fue %s", rep.ComoVendedor.Promedio())
}

func TestObtenerReputacion_NuncaCalificada_DevuelveNil(t *testing.T) {
	e := nuevoEntorno(t)

	rep, err := e.reputacion.ObtenerReputacion(ctaAjena)
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestPromedio_SinCalificaciones_EsCero(t *testing.T) {
	var a entity.Acumulado
	assert.True(t, a.Promedio().IsZero())

	a.Agregar(3)
	a.Agregar(4)
	assert.True(t, a.Promedio().Equal(decimal.NewFromFloat(3.5)))
}
