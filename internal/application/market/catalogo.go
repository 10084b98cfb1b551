package market

import (
	"context"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/agoramarket/agora-api/internal/domain"
	"github.com/agoramarket/agora-api/internal/domain/entity"
	"github.com/agoramarket/agora-api/internal/domain/repository"
)

// CatalogoUseCase administra el catálogo de productos. La mutación de stock
// no se expone aquí: solo el ledger de órdenes la aplica (baja al comprar,
// restaura al cancelar).
type CatalogoUseCase struct {
	txRunner  TxRunner
	usuarios  repository.UsuarioRepository
	productos repository.ProductoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(txRunner TxRunner, usuarios repository.UsuarioRepository, productos repository.ProductoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{txRunner: txRunner, usuarios: usuarios, productos: productos}
}

// PublicarInput parámetros de una publicación.
type PublicarInput struct {
	Nombre      string
	Descripcion string
	Precio      uint64
	Stock       uint32
	Categoria   string
}

// Publicar crea un producto con el caller como vendedor y devuelve el nuevo
// identificador. Requiere rol Vendedor o Ambos, precio y stock positivos y
// textos dentro de sus límites. La categoría se normaliza (NFC) para que las
// estadísticas agrupen nombres acentuados de forma consistente.
func (uc *CatalogoUseCase) Publicar(ctx context.Context, vendedor string, in PublicarInput) (uint32, error) {
	usuario, err := uc.usuarios.Get(vendedor)
	if err != nil {
		return 0, err
	}
	if usuario == nil {
		return 0, domain.ErrNotRegistered
	}
	if !usuario.Rol.PuedeVender() {
		return 0, domain.ErrNotPermitted
	}
	if in.Precio == 0 || in.Stock == 0 {
		return 0, domain.ErrInvalidParam
	}
	if in.Nombre == "" ||
		utf8.RuneCountInString(in.Nombre) > entity.MaxNombreProducto ||
		utf8.RuneCountInString(in.Descripcion) > entity.MaxDescripcionProducto ||
		utf8.RuneCountInString(in.Categoria) > entity.MaxCategoriaProducto {
		return 0, domain.ErrInvalidParam
	}

	var id uint32
	err = uc.txRunner.Run(ctx, func(r Repos) error {
		var err error
		id, err = r.Productos.NextID()
		if err != nil {
			return err
		}
		ahora := time.Now()
		return r.Productos.Put(&entity.Producto{
			ID:          id,
			Vendedor:    vendedor,
			Nombre:      in.Nombre,
			Descripcion: in.Descripcion,
			Categoria:   norm.NFC.String(in.Categoria),
			Precio:      in.Precio,
			Stock:       in.Stock,
			CreatedAt:   ahora,
			UpdatedAt:   ahora,
		})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ObtenerProducto devuelve el producto, o nil si el identificador nunca fue
// asignado.
func (uc *CatalogoUseCase) ObtenerProducto(id uint32) (*entity.Producto, error) {
	return uc.productos.Get(id)
}

// ListarPorVendedor devuelve los productos del vendedor en orden ascendente
// de identificador. Es un escaneo completo del catálogo, aceptable a la
// escala de un ledger único.
func (uc *CatalogoUseCase) ListarPorVendedor(vendedor string) ([]*entity.Producto, error) {
	return uc.productos.ListByVendedor(vendedor)
}

// Listar devuelve el catálogo completo en orden ascendente de identificador.
func (uc *CatalogoUseCase) Listar() ([]*entity.Producto, error) {
	return uc.productos.List()
}
