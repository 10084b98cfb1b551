package memory_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/infrastructure/memory"
)

func TestRun_ErrorDescartaTodasLasEscrituras(t *testing.T) {
	store := memory.NewStore()
	fallo := errors.New("falla a mitad de camino")

	err := store.Run(context.Background(), func(r market.Repos) error {
		require.NoError(t, r.Usuarios.Put(&entity.Usuario{Cuenta: "a", Rol: entity.RolComprador}))
		require.NoError(t, r.Productos.Put(&entity.Producto{ID: 1, Vendedor: "b", Precio: 10, Stock: 1}))
		if _, err := r.Productos.NextID(); err != nil {
			return err
		}
		return fallo
	})
	require.ErrorIs(t, err, fallo)

	u, err := store.Usuarios().Get("a")
	require.NoError(t, err)
	assert.Nil(t, u, "la escritura de la transacción fallida no debe publicarse")

	p, err := store.Productos().Get(1)
	require.NoError(t, err)
	assert.Nil(t, p)

	// El contador tampoco avanzó: la próxima asignación vuelve a dar 1.
	err = store.Run(context.Background(), func(r market.Repos) error {
		id, err := r.Productos.NextID()
		if err != nil {
			return err
		}
		assert.Equal(t, uint32(1), id)
		return nil
	})
	require.NoError(t, err)
}

func TestRun_CommitPublicaElEstado(t *testing.T) {
	store := memory.NewStore()

	err := store.Run(context.Background(), func(r market.Repos) error {
		return r.Usuarios.Put(&entity.Usuario{Cuenta: "a", Rol: entity.RolAmbos})
	})
	require.NoError(t, err)

	u, err := store.Usuarios().Get("a")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RolAmbos, u.Rol)
}

func TestRun_LecturasVenSusPropiasEscrituras(t *testing.T) {
	store := memory.NewStore()

	err := store.Run(context.Background(), func(r market.Repos) error {
		if err := r.Productos.Put(&entity.Producto{ID: 7, Vendedor: "v", Precio: 5, Stock: 2}); err != nil {
			return err
		}
		p, err := r.Productos.Get(7)
		if err != nil {
			return err
		}
		require.NotNil(t, p, "dentro de la transacción la escritura es visible")
		return nil
	})
	require.NoError(t, err)
}

func TestLecturas_DevuelvenCopias(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Productos().Put(&entity.Producto{ID: 1, Vendedor: "v", Precio: 5, Stock: 2}))

	p, err := store.Productos().Get(1)
	require.NoError(t, err)
	p.Stock = 999 // mutar la copia no debe tocar el ledger

	otra, err := store.Productos().Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), otra.Stock)
}

func TestNextID_MonotonoEIndependientePorContador(t *testing.T) {
	store := memory.NewStore()

	err := store.Run(context.Background(), func(r market.Repos) error {
		for esperado := uint32(1); esperado <= 3; esperado++ {
			id, err := r.Productos.NextID()
			if err != nil {
				return err
			}
			assert.Equal(t, esperado, id)
		}
		// El contador de órdenes arranca en 1 por su cuenta.
		id, err := r.Ordenes.NextID()
		if err != nil {
			return err
		}
		assert.Equal(t, uint32(1), id)
		return nil
	})
	require.NoError(t, err)
}

func TestNextID_DesbordeExplicitoEnElTopeU32(t *testing.T) {
	store := memory.NewStore()
	store.AjustarContadores(math.MaxUint32, math.MaxUint32)

	err := store.Run(context.Background(), func(r market.Repos) error {
		id, err := r.Productos.NextID()
		require.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), id)

		_, err = r.Productos.NextID()
		assert.ErrorIs(t, err, domain.ErrIDOverflow, "el contador nunca envuelve a cero")

		id, err = r.Ordenes.NextID()
		require.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), id)

		_, err = r.Ordenes.NextID()
		assert.ErrorIs(t, err, domain.ErrIDOverflow)
		return nil
	})
	require.NoError(t, err)
}

func TestCuentas_EmailUnico(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Cuentas().Create(&entity.Cuenta{ID: "1", Email: "ana@example.com"}))

	err := store.Cuentas().Create(&entity.Cuenta{ID: "2", Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	c, err := store.Cuentas().GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", c.ID)
}

func TestSaldos_SeAcumulan(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Custodia().AcreditarSaldo("v", 100))
	require.NoError(t, store.Custodia().AcreditarSaldo("v", 50))

	saldo, err := store.Custodia().Saldo("v")
	require.NoError(t, err)
	assert.Equal(t, uint64(150), saldo)

	cero, err := store.Custodia().Saldo("sin-movimientos")
	require.NoError(t, err)
	assert.Zero(t, cero)
}
