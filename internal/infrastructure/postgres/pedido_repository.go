package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste un nuevo pedido con sus tasas fijadas.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, fecha_pedido, descripcion, coste_envio_agrupado, gastos_aduana, tasa_cambio_eur_jpy, tasa_iva, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.FechaPedido, pedido.Descripcion, pedido.CosteEnvioAgrupado,
		pedido.GastosAduana, pedido.TasaCambioEURJPY, pedido.TasaIVA, pedido.CreatedAt, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, fecha_pedido, descripcion, coste_envio_agrupado, gastos_aduana, tasa_cambio_eur_jpy, tasa_iva, created_at, updated_at
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FechaPedido, &p.Descripcion, &p.CosteEnvioAgrupado,
		&p.GastosAduana, &p.TasaCambioEURJPY, &p.TasaIVA, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// Update actualiza fecha, descripción y costes agrupados. Las tasas no se
// tocan después de la creación.
func (r *PedidoRepo) Update(pedido *entity.Pedido) error {
	query := `
		UPDATE pedidos SET fecha_pedido = $2, descripcion = $3, coste_envio_agrupado = $4, gastos_aduana = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.FechaPedido, pedido.Descripcion, pedido.CosteEnvioAgrupado,
		pedido.GastosAduana, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// List lista pedidos ordenados por fecha de pedido, más recientes primero.
func (r *PedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) {
	query := `
		SELECT id, fecha_pedido, descripcion, coste_envio_agrupado, gastos_aduana, tasa_cambio_eur_jpy, tasa_iva, created_at, updated_at
		FROM pedidos ORDER BY fecha_pedido DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.FechaPedido, &p.Descripcion, &p.CosteEnvioAgrupado,
			&p.GastosAduana, &p.TasaCambioEURJPY, &p.TasaIVA, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un pedido; la FK arrastra sus artículos (ON DELETE CASCADE).
func (r *PedidoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}
