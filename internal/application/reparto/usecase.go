package reparto

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mvidalcampos/coleccion-api/internal/domain"
	"github.com/mvidalcampos/coleccion-api/internal/domain/costes"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// UseCase reparte un coste total de un pedido (aduana o envío agrupado)
// entre sus artículos de forma proporcional al coste base de cada uno.
// El ámbito es siempre "todos los artículos de un pedido": no existe el
// reparto parcial. El actor llega como parámetro explícito (userID), el
// caso de uso no depende de ningún estado de petición global.
type UseCase struct {
	txRunner     TxRunner
	pedidoRepo   repository.PedidoRepository
	articuloRepo repository.ArticuloRepository
	log          zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, pedidoRepo repository.PedidoRepository, articuloRepo repository.ArticuloRepository, log zerolog.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, pedidoRepo: pedidoRepo, articuloRepo: articuloRepo, log: log}
}

// Distribuir reparte el total del destino indicado entre los artículos del
// pedido. Devuelve true si repartió y false si no había nada que hacer
// (total ≤ 0, pedido sin artículos o base total cero); el no-op no es error.
// La escritura de todas las partes ocurre en una única transacción.
func (uc *UseCase) Distribuir(ctx context.Context, userID, pedidoID string, destino costes.DestinoReparto) (bool, error) {
	if !destino.Valido() {
		return false, domain.ErrInvalidInput
	}
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return false, err
	}
	if pedido == nil {
		return false, domain.ErrNotFound
	}

	// Selector explícito del total según destino
	var total decimal.Decimal
	switch destino {
	case costes.DestinoAduana:
		total = pedido.GastosAduana
	case costes.DestinoEnvio:
		total = pedido.CosteEnvioAgrupado
	}

	articulos, err := uc.articuloRepo.ListByPedido(pedidoID)
	if err != nil {
		return false, err
	}

	bases := make([]decimal.Decimal, len(articulos))
	for i, a := range articulos {
		bases[i] = a.CosteEuro
	}
	partes := costes.RepartirProporcional(total, bases)
	if partes == nil {
		uc.log.Debug().
			Str("pedido_id", pedidoID).
			Str("destino", string(destino)).
			Str("user_id", userID).
			Msg("reparto sin efecto")
		return false, nil
	}

	err = uc.txRunner.Run(ctx, func(artRepo repository.ArticuloRepository) error {
		for i, a := range articulos {
			if err := artRepo.UpdateReparto(a.ID, destino, partes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	uc.log.Info().
		Str("pedido_id", pedidoID).
		Str("destino", string(destino)).
		Str("user_id", userID).
		Int("articulos", len(articulos)).
		Str("total", total.String()).
		Msg("coste repartido")
	return true, nil
}

// DistribuirGastosAduana reparte los gastos de aduana del pedido.
func (uc *UseCase) DistribuirGastosAduana(ctx context.Context, userID, pedidoID string) (bool, error) {
	return uc.Distribuir(ctx, userID, pedidoID, costes.DestinoAduana)
}

// DistribuirCosteEnvio reparte el coste de envío agrupado del pedido.
func (uc *UseCase) DistribuirCosteEnvio(ctx context.Context, userID, pedidoID string) (bool, error) {
	return uc.Distribuir(ctx, userID, pedidoID, costes.DestinoEnvio)
}

// DistribuirLote ejecuta el reparto sobre una selección de pedidos.
// Devuelve cuántos pedidos repartieron de verdad; los no-op no cuentan pero
// tampoco interrumpen el lote. Un error de BD sí corta la operación.
func (uc *UseCase) DistribuirLote(ctx context.Context, userID string, pedidoIDs []string, destino costes.DestinoReparto) (int, error) {
	if !destino.Valido() || len(pedidoIDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	repartidos := 0
	for _, id := range pedidoIDs {
		hecho, err := uc.Distribuir(ctx, userID, id, destino)
		if err != nil {
			return repartidos, err
		}
		if hecho {
			repartidos++
		}
	}
	return repartidos, nil
}
