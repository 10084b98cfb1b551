package market_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
)

func publicacionValida() market.PublicarInput {
	return market.PublicarInput{
		Nombre:    "Cafetera italiana",
		Precio:    120,
		Stock:     4,
		Categoria: "Cocina",
	}
}

func TestPublicar_AsignaIdentificadoresSecuenciales(t *testing.T) {
	e := nuevoEntorno(t)
	e.registrar(t, ctaVendedora, entity.RolVendedor)

	primero := e.publicar(t, ctaVendedora, 10, 1)
	segundo := e.publicar(t, ctaVendedora, 20, 2)
	tercero := e.publicar(t, ctaVendedora, 30, 3)

	assert.Equal(t, uint32(1), primero, "el primer producto recibe el id 1")
	assert.Equal(t, uint32(2), segundo)
	assert.Equal(t, uint32(3), tercero)
}

func TestPublicar_SinRegistro_Falla(t *testing.T) {
	e := nuevoEntorno(t)

	_, err := e.catalogo.Publicar(context.Background(), ctaAjena, publicacionValida())
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestPublicar_RolComprador_Falla(t *testing.T) {
	e := nuevoEntorno(t)
	e.registrar(t, ctaCompradora, entity.RolComprador)

	_, err := e.catalogo.Publicar(context.Background(), ctaCompradora, publicacionValida())
	assert.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestPublicar_ParametrosInvalidos(t *testing.T) {
	e := nuevoEntorno(t)
	e.registrar(t, ctaVendedora, entity.RolVendedor)

	casos := map[string]market.PublicarInput{
		"precio cero": {Nombre: "x", Precio: 0, Stock: 1},
		"stock cero":  {Nombre: "x", Precio: 1, Stock: 0},
		"sin nombre":  {Precio: 1, Stock: 1},
		"nombre demasiado largo": {
			Nombre: strings.Repeat("a", entity.MaxNombreProducto+1),
			Precio: 1, Stock: 1,
		},
		"descripcion demasiado larga": {
			Nombre:      "x",
			Descripcion: strings.Repeat("a", entity.MaxDescripcionProducto+1),
			Precio:      1, Stock: 1,
		},
		"categoria demasiado larga": {
			Nombre:    "x",
			Categoria: strings.Repeat("a", entity.MaxCategoriaProducto+1),
			Precio:    1, Stock: 1,
		},
	}
	for nombre, in := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := e.catalogo.Publicar(context.Background(), ctaVendedora, in)
			assert.ErrorIs(t, err, domain.ErrInvalidParam)
		})
	}
}

func TestPublicar_NormalizaLaCategoria(t *testing.T) {
	e := nuevoEntorno(t)
	e.registrar(t, ctaVendedora, entity.RolVendedor)

	// "Música" con la u y el acento como runas separadas (forma NFD).
	id, err := e.catalogo.Publicar(context.Background(), ctaVendedora, market.PublicarInput{
		Nombre:    "Guitarra",
		Precio:    900,
		Stock:     1,
		Categoria: "Musica", // sin acento, control
	})
	require.NoError(t, err)
	p, err := e.catalogo.ObtenerProducto(id)
	require.NoError(t, err)
	assert.Equal(t, "Musica", p.Categoria)

	id, err = e.catalogo.Publicar(context.Background(), ctaVendedora, market.PublicarInput{
		Nombre:    "Bajo",
		Precio:    700,
		Stock:     1,
		Categoria: "Música", // forma descompuesta
	})
	require.NoError(t, err)
	p, err = e.catalogo.ObtenerProducto(id)
	require.NoError(t, err)
	assert.Equal(t, "Música", p.Categoria,
		"la forma descompuesta debe normalizarse a NFC")
}

func TestObtenerProducto_IdNuncaAsignado_DevuelveNil(t *testing.T) {
	e := nuevoEntorno(t)

	p, err := e.catalogo.ObtenerProducto(99)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestListarPorVendedor_SoloLosSuyos_EnOrden(t *testing.T) {
	e := nuevoEntorno(t)
	e.registrar(t, ctaVendedora, entity.RolVendedor)
	e.registrar(t, ctaAmbos, entity.RolAmbos)

	e.publicar(t, ctaVendedora, 10, 1) // id 1
	e.publicar(t, ctaAmbos, 20, 1)     // id 2
	e.publicar(t, ctaVendedora, 30, 1) // id 3

	propios, err := e.catalogo.ListarPorVendedor(ctaVendedora)
	require.NoError(t, err)
	require.Len(t, propios, 2)
	assert.Equal(t, uint32(1), propios[0].ID)
	assert.Equal(t, uint32(3), propios[1].ID)

	vacios, err := e.catalogo.ListarPorVendedor(ctaAjena)
	require.NoError(t, err)
	assert.Empty(t, vacios, "un vendedor sin publicaciones lista vacío")
}

func TestPublicar_DesbordeDelContadorDeIDs(t *testing.T) {
	e := nuevoEntorno(t)
	e.registrar(t, ctaVendedora, entity.RolVendedor)
	e.store.AjustarContadores(math.MaxUint32, 1)

	ultimo, err := e.catalogo.Publicar(context.Background(), ctaVendedora, publicacionValida())
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), ultimo, "el último id del rango todavía se asigna")

	_, err = e.catalogo.Publicar(context.Background(), ctaVendedora, publicacionValida())
	assert.ErrorIs(t, err, domain.ErrIDOverflow, "agotado el rango el contador no vuelve a empezar")

	propios, err := e.catalogo.ListarPorVendedor(ctaVendedora)
	require.NoError(t, err)
	assert.Len(t, propios, 1, "la publicación rechazada no deja rastro")
}

func TestProductoAgotado_SigueConsultable(t *testing.T) {
	e, producto := mercadoConVenta(t)

	e.comprar(t, ctaCompradora, producto, 20, 1000)

	p, err := e.catalogo.ObtenerProducto(producto)
	require.NoError(t, err)
	require.NotNil(t, p, "el producto con stock cero no se elimina")
	assert.Equal(t, uint32(0), p.Stock)
}
