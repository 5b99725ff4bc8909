package reparto

import (
	"context"

	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de artículos atado a esa tx. Garantiza que la escritura por
// lotes de un reparto es atómica: o se actualizan todos los artículos del
// pedido o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(artRepo repository.ArticuloRepository) error) error
}
