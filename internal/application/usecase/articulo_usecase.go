package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvidalcampos/coleccion-api/internal/application/dto"
	"github.com/mvidalcampos/coleccion-api/internal/domain"
	"github.com/mvidalcampos/coleccion-api/internal/domain/costes"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// ArticuloUseCase casos de uso CRUD para artículos. En cada guardado
// (Create y Update) recalcula los derivados IVA y coste_yen con las tasas
// actuales del pedido padre; el cliente nunca escribe esos campos.
type ArticuloUseCase struct {
	repo       repository.ArticuloRepository
	pedidoRepo repository.PedidoRepository
	marcaRepo  repository.MarcaRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(repo repository.ArticuloRepository, pedidoRepo repository.PedidoRepository, marcaRepo repository.MarcaRepository) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo, pedidoRepo: pedidoRepo, marcaRepo: marcaRepo}
}

// Create crea un artículo dentro de un pedido existente. El coste en euros
// es obligatorio y no negativo (cero se admite: los derivados se omiten).
func (uc *ArticuloUseCase) Create(in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	if in.Nombre == "" || in.PedidoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CosteEuro.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.TipoOTROS
	}
	if !entity.TipoArticuloValido(tipo) {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoCOLECCION
	}
	if !entity.EstadoArticuloValido(estado) {
		return nil, domain.ErrInvalidInput
	}

	pedido, err := uc.pedidoRepo.GetByID(in.PedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if in.MarcaID != nil {
		marca, err := uc.marcaRepo.GetByID(*in.MarcaID)
		if err != nil {
			return nil, err
		}
		if marca == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	art := &entity.Articulo{
		ID:                 uuid.New().String(),
		PedidoID:           in.PedidoID,
		MarcaID:            in.MarcaID,
		Nombre:             in.Nombre,
		Tipo:               tipo,
		IDBuyee:            vaciarSiBlanco(in.IDBuyee),
		CosteEuro:          in.CosteEuro,
		AduanaImputada:     decimal.Zero,
		PrecioVenta:        decimalODefecto(in.PrecioVenta),
		VentaObjetiva:      decimalODefecto(in.VentaObjetiva),
		CosteEnvioNacional: decimalODefecto(in.CosteEnvioNacional),
		Estado:             estado,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Derivados con las tasas actuales del pedido, como en todo guardado
	costes.ActualizarDerivados(art, pedido)

	if err := uc.repo.Create(art); err != nil {
		return nil, err
	}
	return toArticuloResponse(art), nil
}

// GetByID obtiene un artículo. Devuelve nil si no existe.
func (uc *ArticuloUseCase) GetByID(id string) (*dto.ArticuloResponse, error) {
	art, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, nil
	}
	return toArticuloResponse(art), nil
}

// List lista artículos con filtros y paginación.
func (uc *ArticuloUseCase) List(filter repository.ArticuloFilter, limit, offset int) (*dto.ArticuloListResponse, error) {
	arts, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloResponse, 0, len(arts))
	for _, a := range arts {
		items = append(items, *toArticuloResponse(a))
	}
	return &dto.ArticuloListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos editables y recalcula los derivados con las
// tasas ACTUALES del pedido padre, sobrescribiendo en silencio los previos.
func (uc *ArticuloUseCase) Update(id string, in dto.UpdateArticuloRequest) (*dto.ArticuloResponse, error) {
	art, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		art.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		if !entity.TipoArticuloValido(*in.Tipo) {
			return nil, domain.ErrInvalidInput
		}
		art.Tipo = *in.Tipo
	}
	if in.Estado != nil {
		if !entity.EstadoArticuloValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		art.Estado = *in.Estado
	}
	if in.MarcaID != nil {
		if *in.MarcaID == "" {
			art.MarcaID = nil
		} else {
			marca, err := uc.marcaRepo.GetByID(*in.MarcaID)
			if err != nil {
				return nil, err
			}
			if marca == nil {
				return nil, domain.ErrNotFound
			}
			art.MarcaID = in.MarcaID
		}
	}
	if in.IDBuyee != nil {
		art.IDBuyee = vaciarSiBlanco(in.IDBuyee)
	}
	if in.CosteEuro != nil {
		if in.CosteEuro.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		art.CosteEuro = *in.CosteEuro
	}
	if in.PrecioVenta != nil {
		art.PrecioVenta = *in.PrecioVenta
	}
	if in.VentaObjetiva != nil {
		art.VentaObjetiva = *in.VentaObjetiva
	}
	if in.CosteEnvioNacional != nil {
		art.CosteEnvioNacional = *in.CosteEnvioNacional
	}

	pedido, err := uc.pedidoRepo.GetByID(art.PedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	costes.ActualizarDerivados(art, pedido)

	art.UpdatedAt = time.Now()
	if err := uc.repo.Update(art); err != nil {
		return nil, err
	}
	return toArticuloResponse(art), nil
}

// Delete elimina un artículo.
func (uc *ArticuloUseCase) Delete(id string) error {
	art, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if art == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toArticuloResponse(a *entity.Articulo) *dto.ArticuloResponse {
	return &dto.ArticuloResponse{
		ID:                    a.ID,
		PedidoID:              a.PedidoID,
		MarcaID:               a.MarcaID,
		Nombre:                a.Nombre,
		Tipo:                  a.Tipo,
		IDBuyee:               a.IDBuyee,
		CosteEuro:             a.CosteEuro,
		CosteEnvioIndividual:  a.CosteEnvioIndividual,
		CosteYen:              a.CosteYen,
		IVA:                   a.IVA,
		AduanaImputada:        a.AduanaImputada,
		PrecioVenta:           a.PrecioVenta,
		VentaObjetiva:         a.VentaObjetiva,
		CosteEnvioNacional:    a.CosteEnvioNacional,
		Estado:                a.Estado,
		CosteAdquisicionTotal: a.CosteAdquisicionTotal(),
		Beneficio:             a.Beneficio(),
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func decimalODefecto(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func vaciarSiBlanco(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
