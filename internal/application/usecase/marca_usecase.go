package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mvidalcampos/coleccion-api/internal/application/dto"
	"github.com/mvidalcampos/coleccion-api/internal/domain"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// MarcaUseCase casos de uso para marcas. Nombre único; el borrado deja los
// artículos de la marca sin referencia (SET NULL), nunca los elimina.
type MarcaUseCase struct {
	repo repository.MarcaRepository
}

// NewMarcaUseCase construye el caso de uso.
func NewMarcaUseCase(repo repository.MarcaRepository) *MarcaUseCase {
	return &MarcaUseCase{repo: repo}
}

// Create crea una marca con nombre único.
func (uc *MarcaUseCase) Create(in dto.CreateMarcaRequest) (*dto.MarcaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByNombre(in.Nombre)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	marca := &entity.Marca{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(marca); err != nil {
		return nil, err
	}
	return toMarcaResponse(marca), nil
}

// GetByID obtiene una marca. Devuelve nil si no existe.
func (uc *MarcaUseCase) GetByID(id string) (*dto.MarcaResponse, error) {
	marca, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if marca == nil {
		return nil, nil
	}
	return toMarcaResponse(marca), nil
}

// List lista marcas por nombre, con búsqueda opcional.
func (uc *MarcaUseCase) List(busqueda string) (*dto.MarcaListResponse, error) {
	marcas, err := uc.repo.List(busqueda)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MarcaResponse, 0, len(marcas))
	for _, m := range marcas {
		items = append(items, *toMarcaResponse(m))
	}
	return &dto.MarcaListResponse{Items: items}, nil
}

// Delete elimina la marca; los artículos que la referencian quedan con la
// marca a NULL y siguen intactos.
func (uc *MarcaUseCase) Delete(id string) error {
	marca, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if marca == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMarcaResponse(m *entity.Marca) *dto.MarcaResponse {
	return &dto.MarcaResponse{ID: m.ID, Nombre: m.Nombre, CreatedAt: m.CreatedAt}
}
