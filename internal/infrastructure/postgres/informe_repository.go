package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

var _ repository.InformeRepository = (*InformeRepo)(nil)

// InformeRepo consultas de solo lectura para los informes de artículos.
// Las columnas calculadas se agregan en SQL para no paginar en memoria.
type InformeRepo struct {
	q Querier
}

// NewInformeRepository construye el adaptador de informes.
func NewInformeRepository(q Querier) *InformeRepo {
	return &InformeRepo{q: q}
}

// costeTotalExpr coste de adquisición total por fila; los NULL cuentan como cero.
const costeTotalExpr = `(a.coste_euro + COALESCE(a.iva, 0) + COALESCE(a.coste_envio_individual, 0) + a.aduana_imputada + a.coste_envio_nacional)`

// Resumen agrega el conjunto filtrado de artículos.
func (r *InformeRepo) Resumen(ctx context.Context, filter repository.ArticuloFilter) (*repository.ResumenArticulos, error) {
	where, args := whereArticulos(filter)
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(` + costeTotalExpr + `), 0),
			COALESCE(SUM(a.precio_venta), 0),
			COALESCE(SUM(a.venta_objetiva), 0)
		FROM articulos a` + where
	var res repository.ResumenArticulos
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&res.NumArticulos, &res.TotalCoste, &res.TotalVenta, &res.TotalObjetiva,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen articulos: %w", err)
	}
	res.TotalBeneficio = res.TotalVenta.Sub(res.TotalCoste)
	return &res, nil
}

// Filas devuelve las filas del informe con marca y pedido resueltos,
// ordenadas por fecha de pedido y nombre.
func (r *InformeRepo) Filas(ctx context.Context, filter repository.ArticuloFilter) ([]repository.FilaInformeArticulo, error) {
	where, args := whereArticulos(filter)
	query := `
		SELECT COALESCE(m.nombre, ''), a.nombre, p.descripcion, a.tipo, a.estado,
			` + costeTotalExpr + `,
			a.venta_objetiva, a.precio_venta,
			(a.precio_venta - ` + costeTotalExpr + ` - a.coste_envio_nacional)
		FROM articulos a
		JOIN pedidos p ON p.id = a.pedido_id
		LEFT JOIN marcas m ON m.id = a.marca_id` + where + `
		ORDER BY p.fecha_pedido DESC, a.nombre ASC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filas informe: %w", err)
	}
	defer rows.Close()
	var filas []repository.FilaInformeArticulo
	for rows.Next() {
		var f repository.FilaInformeArticulo
		if err := rows.Scan(&f.Marca, &f.Nombre, &f.Pedido, &f.Tipo, &f.Estado,
			&f.CosteTotal, &f.VentaObjetiva, &f.PrecioVenta, &f.Beneficio); err != nil {
			return nil, fmt.Errorf("scan fila informe: %w", err)
		}
		filas = append(filas, f)
	}
	return filas, rows.Err()
}

// whereArticulos construye la cláusula WHERE de los filtros no vacíos,
// con las columnas bajo el alias "a".
func whereArticulos(filter repository.ArticuloFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.PedidoID != "" {
		add("a.pedido_id = $%d", filter.PedidoID)
	}
	if filter.MarcaID != "" {
		add("a.marca_id = $%d", filter.MarcaID)
	}
	if filter.Tipo != "" {
		add("a.tipo = $%d", filter.Tipo)
	}
	if filter.Estado != "" {
		add("a.estado = $%d", filter.Estado)
	}
	if filter.Busqueda != "" {
		args = append(args, "%"+filter.Busqueda+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(a.nombre ILIKE $%d OR a.id_buyee ILIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
