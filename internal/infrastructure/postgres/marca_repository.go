package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mvidalcampos/coleccion-api/internal/domain"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

// MarcaRepo implementación del puerto MarcaRepository sobre PostgreSQL.
type MarcaRepo struct {
	q Querier
}

// NewMarcaRepository construye el adaptador de persistencia para marcas.
func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

// Create persiste una marca nueva. Nombre duplicado devuelve domain.ErrDuplicate.
func (r *MarcaRepo) Create(marca *entity.Marca) error {
	query := `INSERT INTO marcas (id, nombre, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, marca.ID, marca.Nombre, marca.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert marca: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID. Devuelve nil, nil si no existe.
func (r *MarcaRepo) GetByID(id string) (*entity.Marca, error) {
	var m entity.Marca
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, created_at FROM marcas WHERE id = $1`, id,
	).Scan(&m.ID, &m.Nombre, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marca: %w", err)
	}
	return &m, nil
}

// GetByNombre busca una marca por nombre exacto (case-insensitive).
func (r *MarcaRepo) GetByNombre(nombre string) (*entity.Marca, error) {
	var m entity.Marca
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, created_at FROM marcas WHERE lower(nombre) = lower($1)`, nombre,
	).Scan(&m.ID, &m.Nombre, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marca por nombre: %w", err)
	}
	return &m, nil
}

// List lista marcas por nombre, filtrando por subcadena si se indica.
func (r *MarcaRepo) List(busqueda string) ([]*entity.Marca, error) {
	query := `SELECT id, nombre, created_at FROM marcas`
	var args []any
	if busqueda != "" {
		query += ` WHERE nombre ILIKE $1`
		args = append(args, "%"+busqueda+"%")
	}
	query += ` ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nombre, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una marca; los artículos que la referencian quedan con
// marca_id NULL (FK ON DELETE SET NULL).
func (r *MarcaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM marcas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete marca: %w", err)
	}
	return nil
}
