package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mvidalcampos/coleccion-api/internal/domain"
	"github.com/mvidalcampos/coleccion-api/internal/domain/costes"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo implementación del puerto ArticuloRepository sobre PostgreSQL.
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador de persistencia para artículos.
// Acepta pool o tx: el reparto lo usa dentro de una transacción.
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

const articuloColumns = `id, pedido_id, marca_id, nombre, tipo, id_buyee, coste_euro,
	coste_envio_individual, coste_yen, iva, aduana_imputada, precio_venta,
	venta_objetiva, coste_envio_nacional, estado, created_at, updated_at`

// Create persiste un artículo. id_buyee duplicado devuelve domain.ErrDuplicate.
func (r *ArticuloRepo) Create(a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (` + articuloColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.PedidoID, a.MarcaID, a.Nombre, a.Tipo, a.IDBuyee, a.CosteEuro,
		a.CosteEnvioIndividual, a.CosteYen, a.IVA, a.AduanaImputada, a.PrecioVenta,
		a.VentaObjetiva, a.CosteEnvioNacional, a.Estado, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil, nil si no existe.
func (r *ArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE id = $1`
	a, err := scanArticulo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return a, nil
}

// Update guarda todos los campos del artículo, derivados incluidos.
func (r *ArticuloRepo) Update(a *entity.Articulo) error {
	query := `
		UPDATE articulos SET pedido_id = $2, marca_id = $3, nombre = $4, tipo = $5,
			id_buyee = $6, coste_euro = $7, coste_envio_individual = $8, coste_yen = $9,
			iva = $10, aduana_imputada = $11, precio_venta = $12, venta_objetiva = $13,
			coste_envio_nacional = $14, estado = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.PedidoID, a.MarcaID, a.Nombre, a.Tipo, a.IDBuyee, a.CosteEuro,
		a.CosteEnvioIndividual, a.CosteYen, a.IVA, a.AduanaImputada, a.PrecioVenta,
		a.VentaObjetiva, a.CosteEnvioNacional, a.Estado, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// List lista artículos aplicando los filtros no vacíos, más recientes primero.
func (r *ArticuloRepo) List(filter repository.ArticuloFilter, limit, offset int) ([]*entity.Articulo, error) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.PedidoID != "" {
		add("pedido_id = $%d", filter.PedidoID)
	}
	if filter.MarcaID != "" {
		add("marca_id = $%d", filter.MarcaID)
	}
	if filter.Tipo != "" {
		add("tipo = $%d", filter.Tipo)
	}
	if filter.Estado != "" {
		add("estado = $%d", filter.Estado)
	}
	if filter.Busqueda != "" {
		args = append(args, "%"+filter.Busqueda+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(nombre ILIKE $%d OR id_buyee ILIKE $%d)", n, n))
	}
	query := `SELECT ` + articuloColumns + ` FROM articulos`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()
	return collectArticulos(rows)
}

// ListByPedido devuelve los artículos de un pedido en orden de creación.
// El reparto depende de este orden para asignar el resto al último.
func (r *ArticuloRepo) ListByPedido(pedidoID string) ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE pedido_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list articulos por pedido: %w", err)
	}
	defer rows.Close()
	return collectArticulos(rows)
}

// UpdateReparto escribe la parte repartida en la columna que corresponde al
// destino. El switch es la única rama: un destino desconocido no toca nada.
func (r *ArticuloRepo) UpdateReparto(articuloID string, destino costes.DestinoReparto, parte decimal.Decimal) error {
	var query string
	switch destino {
	case costes.DestinoAduana:
		query = `UPDATE articulos SET aduana_imputada = $2, updated_at = now() WHERE id = $1`
	case costes.DestinoEnvio:
		query = `UPDATE articulos SET coste_envio_individual = $2, updated_at = now() WHERE id = $1`
	default:
		return domain.ErrInvalidInput
	}
	tag, err := r.q.Exec(context.Background(), query, articuloID, parte)
	if err != nil {
		return fmt.Errorf("update reparto articulo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un artículo.
func (r *ArticuloRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete articulo: %w", err)
	}
	return nil
}

func scanArticulo(row pgx.Row) (*entity.Articulo, error) {
	var a entity.Articulo
	err := row.Scan(
		&a.ID, &a.PedidoID, &a.MarcaID, &a.Nombre, &a.Tipo, &a.IDBuyee, &a.CosteEuro,
		&a.CosteEnvioIndividual, &a.CosteYen, &a.IVA, &a.AduanaImputada, &a.PrecioVenta,
		&a.VentaObjetiva, &a.CosteEnvioNacional, &a.Estado, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticulos(rows pgx.Rows) ([]*entity.Articulo, error) {
	var list []*entity.Articulo
	for rows.Next() {
		a, err := scanArticulo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
