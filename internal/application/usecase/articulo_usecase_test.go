package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidalcampos/coleccion-api/internal/application/dto"
	"github.com/mvidalcampos/coleccion-api/internal/application/usecase"
	"github.com/mvidalcampos/coleccion-api/internal/domain"
	"github.com/mvidalcampos/coleccion-api/internal/domain/costes"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPedidoRepo struct {
	pedidos map[string]*entity.Pedido
}

func (r *memPedidoRepo) Create(p *entity.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}
func (r *memPedidoRepo) GetByID(id string) (*entity.Pedido, error) { return r.pedidos[id], nil }
func (r *memPedidoRepo) Update(p *entity.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}
func (r *memPedidoRepo) List(int, int) ([]*entity.Pedido, error) { return nil, nil }
func (r *memPedidoRepo) Delete(id string) error {
	delete(r.pedidos, id)
	return nil
}

type memMarcaRepo struct {
	marcas map[string]*entity.Marca
}

func (r *memMarcaRepo) Create(m *entity.Marca) error {
	r.marcas[m.ID] = m
	return nil
}
func (r *memMarcaRepo) GetByID(id string) (*entity.Marca, error) { return r.marcas[id], nil }
func (r *memMarcaRepo) GetByNombre(nombre string) (*entity.Marca, error) {
	for _, m := range r.marcas {
		if m.Nombre == nombre {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMarcaRepo) List(string) ([]*entity.Marca, error) { return nil, nil }
func (r *memMarcaRepo) Delete(id string) error {
	delete(r.marcas, id)
	return nil
}

type memArticuloRepo struct {
	articulos map[string]*entity.Articulo
}

func (r *memArticuloRepo) Create(a *entity.Articulo) error {
	r.articulos[a.ID] = a
	return nil
}
func (r *memArticuloRepo) GetByID(id string) (*entity.Articulo, error) { return r.articulos[id], nil }
func (r *memArticuloRepo) Update(a *entity.Articulo) error {
	r.articulos[a.ID] = a
	return nil
}
func (r *memArticuloRepo) List(repository.ArticuloFilter, int, int) ([]*entity.Articulo, error) {
	return nil, nil
}
func (r *memArticuloRepo) ListByPedido(string) ([]*entity.Articulo, error) { return nil, nil }
func (r *memArticuloRepo) UpdateReparto(string, costes.DestinoReparto, decimal.Decimal) error {
	return nil
}
func (r *memArticuloRepo) Delete(id string) error {
	delete(r.articulos, id)
	return nil
}

func nuevoEntorno() (*usecase.ArticuloUseCase, *memPedidoRepo, *memArticuloRepo) {
	pedidos := &memPedidoRepo{pedidos: map[string]*entity.Pedido{}}
	marcas := &memMarcaRepo{marcas: map[string]*entity.Marca{}}
	articulos := &memArticuloRepo{articulos: map[string]*entity.Articulo{}}
	uc := usecase.NewArticuloUseCase(articulos, pedidos, marcas)
	return uc, pedidos, articulos
}

func pedidoConTasas(id, cambio, iva string) *entity.Pedido {
	now := time.Now()
	return &entity.Pedido{
		ID:               id,
		FechaPedido:      now,
		Descripcion:      "pedido de prueba",
		TasaCambioEURJPY: d(cambio),
		TasaIVA:          d(iva),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create: derivados calculados al guardar
// ──────────────────────────────────────────────────────────────────────────────

func TestArticuloCreate_CalculaDerivadosConTasasDelPedido(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	out, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Canon AE-1",
		CosteEuro: d("100"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.IVA)
	assert.True(t, out.IVA.Equal(d("21")), "IVA = 100 × 0.21")
	require.NotNil(t, out.CosteYen)
	assert.Equal(t, int64(16000), *out.CosteYen, "coste_yen = round(100 × 160)")
}

func TestArticuloCreate_CosteYenRedondeaMitadHaciaArriba(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "150", "0.21")

	out, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Filtro",
		CosteEuro: d("0.67"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.CosteYen)
	assert.Equal(t, int64(101), *out.CosteYen, "0.67 × 150 = 100.5 redondea a 101")
}

func TestArticuloCreate_CosteCero_OmiteDerivados(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	out, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Regalo",
		CosteEuro: decimal.Zero,
	})
	require.NoError(t, err)

	assert.Nil(t, out.IVA, "con coste cero no se calcula IVA")
	assert.Nil(t, out.CosteYen, "con coste cero no se calcula coste_yen")
}

func TestArticuloCreate_PedidoInexistente(t *testing.T) {
	uc, _, _ := nuevoEntorno()

	_, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "no-existe",
		Nombre:    "Canon AE-1",
		CosteEuro: d("100"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticuloCreate_CosteNegativo(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	_, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Canon AE-1",
		CosteEuro: d("-5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestArticuloCreate_ValoresPorDefecto(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	out, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Lente 50mm",
		CosteEuro: d("40"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TipoOTROS, out.Tipo)
	assert.Equal(t, entity.EstadoCOLECCION, out.Estado)
	assert.True(t, out.AduanaImputada.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update: los derivados se recalculan en cada guardado
// ──────────────────────────────────────────────────────────────────────────────

func TestArticuloUpdate_RecalculaDerivadosAlCambiarCoste(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	creado, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Canon AE-1",
		CosteEuro: d("100"),
	})
	require.NoError(t, err)

	out, err := uc.Update(creado.ID, dto.UpdateArticuloRequest{
		CosteEuro: ptr(d("200")),
	})
	require.NoError(t, err)

	require.NotNil(t, out.IVA)
	assert.True(t, out.IVA.Equal(d("42")), "IVA recalculado con el nuevo coste")
	require.NotNil(t, out.CosteYen)
	assert.Equal(t, int64(32000), *out.CosteYen)
}

// Cualquier guardado recalcula, aunque el coste no cambie: los derivados
// siguen siempre a las tasas vigentes del pedido.
func TestArticuloUpdate_GuardarSinCambiarCoste_SobrescribeDerivados(t *testing.T) {
	uc, pedidos, articulos := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	creado, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Canon AE-1",
		CosteEuro: d("100"),
	})
	require.NoError(t, err)

	// Derivados manipulados a mano quedan sobrescritos al guardar
	guardado := articulos.articulos[creado.ID]
	ivaFalso := d("999")
	guardado.IVA = &ivaFalso

	out, err := uc.Update(creado.ID, dto.UpdateArticuloRequest{
		Nombre: ptr("Canon AE-1 Program"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.IVA)
	assert.True(t, out.IVA.Equal(d("21")), "el guardado pisa el IVA manipulado")
}

func TestArticuloUpdate_QuitarMarca(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	creado, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:  "p1",
		Nombre:    "Canon AE-1",
		CosteEuro: d("100"),
	})
	require.NoError(t, err)

	out, err := uc.Update(creado.ID, dto.UpdateArticuloRequest{
		MarcaID: ptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, out.MarcaID, "marca_id vacío desvincula la marca")
}

func TestArticuloUpdate_NoExiste(t *testing.T) {
	uc, _, _ := nuevoEntorno()

	_, err := uc.Update("no-existe", dto.UpdateArticuloRequest{Nombre: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de respuesta: propiedades calculadas
// ──────────────────────────────────────────────────────────────────────────────

func TestArticuloResponse_IncluyeCosteTotalYBeneficio(t *testing.T) {
	uc, pedidos, _ := nuevoEntorno()
	pedidos.pedidos["p1"] = pedidoConTasas("p1", "160", "0.21")

	out, err := uc.Create(dto.CreateArticuloRequest{
		PedidoID:           "p1",
		Nombre:             "Canon AE-1",
		CosteEuro:          d("100"),
		PrecioVenta:        ptr(d("200")),
		CosteEnvioNacional: ptr(d("5")),
	})
	require.NoError(t, err)

	// coste total = 100 + 21 (IVA) + 5 (envío nacional) = 126
	assert.True(t, out.CosteAdquisicionTotal.Equal(d("126")), "coste total %s", out.CosteAdquisicionTotal)
	// beneficio = 200 − 126 − 5 (el envío nacional se resta otra vez)
	assert.True(t, out.Beneficio.Equal(d("69")), "beneficio %s", out.Beneficio)
}
