package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvidalcampos/coleccion-api/internal/application/dto"
	"github.com/mvidalcampos/coleccion-api/internal/domain"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// tasaIVAPorDefecto el 21% español.
var tasaIVAPorDefecto = decimal.NewFromFloat(0.21)

// PedidoUseCase casos de uso CRUD para pedidos. Las tasas (cambio e IVA) se
// fijan al crear y no se actualizan; los repartos van en el caso de uso de
// reparto, no aquí.
type PedidoUseCase struct {
	repo repository.PedidoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo}
}

// Create crea un pedido. Fecha y tasa de cambio son obligatorias; la tasa
// de IVA por defecto es 0.21 y los costes agrupados parten de cero.
func (uc *PedidoUseCase) Create(in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	fecha, err := time.Parse("2006-01-02", in.FechaPedido)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.TasaCambioEURJPY.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	tasaIVA := tasaIVAPorDefecto
	if in.TasaIVA != nil {
		if in.TasaIVA.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		tasaIVA = *in.TasaIVA
	}
	envio := decimal.Zero
	if in.CosteEnvioAgrupado != nil {
		if in.CosteEnvioAgrupado.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		envio = *in.CosteEnvioAgrupado
	}
	aduana := decimal.Zero
	if in.GastosAduana != nil {
		if in.GastosAduana.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		aduana = *in.GastosAduana
	}

	now := time.Now()
	pedido := &entity.Pedido{
		ID:                 uuid.New().String(),
		FechaPedido:        fecha,
		Descripcion:        in.Descripcion,
		CosteEnvioAgrupado: envio,
		GastosAduana:       aduana,
		TasaCambioEURJPY:   in.TasaCambioEURJPY,
		TasaIVA:            tasaIVA,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(pedido); err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// GetByID obtiene un pedido. Devuelve nil si no existe.
func (uc *PedidoUseCase) GetByID(id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, nil
	}
	return toPedidoResponse(pedido), nil
}

// List lista pedidos, más recientes primero.
func (uc *PedidoUseCase) List(limit, offset int) (*dto.PedidoListResponse, error) {
	pedidos, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		items = append(items, *toPedidoResponse(p))
	}
	return &dto.PedidoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza descripción, fecha y costes agrupados. Las tasas no se
// tocan: todos los derivados de los artículos dependen de ellas.
func (uc *PedidoUseCase) Update(id string, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if in.FechaPedido != nil {
		fecha, err := time.Parse("2006-01-02", *in.FechaPedido)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		pedido.FechaPedido = fecha
	}
	if in.Descripcion != nil {
		if *in.Descripcion == "" {
			return nil, domain.ErrInvalidInput
		}
		pedido.Descripcion = *in.Descripcion
	}
	if in.CosteEnvioAgrupado != nil {
		if in.CosteEnvioAgrupado.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pedido.CosteEnvioAgrupado = *in.CosteEnvioAgrupado
	}
	if in.GastosAduana != nil {
		if in.GastosAduana.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pedido.GastosAduana = *in.GastosAduana
	}
	pedido.UpdatedAt = time.Now()
	if err := uc.repo.Update(pedido); err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// Delete elimina el pedido y, en cascada, todos sus artículos.
func (uc *PedidoUseCase) Delete(id string) error {
	pedido, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if pedido == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	return &dto.PedidoResponse{
		ID:                 p.ID,
		FechaPedido:        p.FechaPedido.Format("2006-01-02"),
		Descripcion:        p.Descripcion,
		CosteEnvioAgrupado: p.CosteEnvioAgrupado,
		GastosAduana:       p.GastosAduana,
		TasaCambioEURJPY:   p.TasaCambioEURJPY,
		TasaIVA:            p.TasaIVA,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
