package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mvidalcampos/coleccion-api/internal/application/dto"
	"github.com/mvidalcampos/coleccion-api/internal/application/usecase"
)

// InformeHandler maneja los informes de artículos: totales en JSON y
// exportación a PDF o XLSX (protegido).
type InformeHandler struct {
	uc *usecase.InformeUseCase
}

// NewInformeHandler construye el handler.
func NewInformeHandler(uc *usecase.InformeUseCase) *InformeHandler {
	return &InformeHandler{uc: uc}
}

func filtroDesdeQuery(c *fiber.Ctx) dto.InformeFilterRequest {
	return dto.InformeFilterRequest{
		PedidoID: c.Query("pedido_id"),
		MarcaID:  c.Query("marca_id"),
		Tipo:     c.Query("tipo"),
		Estado:   c.Query("estado"),
		Busqueda: c.Query("q"),
	}
}

// Resumen godoc
// @Summary      Totales de artículos
// @Description  Número de artículos y sumas de coste, venta, venta objetiva y beneficio del conjunto filtrado.
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Param        pedido_id  query  string  false  "Filtrar por pedido"
// @Param        marca_id   query  string  false  "Filtrar por marca"
// @Param        tipo       query  string  false  "Filtrar por tipo"
// @Param        estado     query  string  false  "Filtrar por estado"
// @Param        q          query  string  false  "Búsqueda por nombre o id_buyee"
// @Success      200  {object}  dto.InformeArticulosResponse
// @Router       /api/informes/articulos [get]
func (h *InformeHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.UserContext(), filtroDesdeQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportarPDF godoc
// @Summary      Informe de artículos en PDF
// @Tags         informes
// @Security     Bearer
// @Produce      application/pdf
// @Param        pedido_id  query  string  false  "Filtrar por pedido"
// @Param        marca_id   query  string  false  "Filtrar por marca"
// @Param        tipo       query  string  false  "Filtrar por tipo"
// @Param        estado     query  string  false  "Filtrar por estado"
// @Success      200  {file}  binary
// @Router       /api/informes/articulos.pdf [get]
func (h *InformeHandler) ExportarPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportarPDF(c.UserContext(), filtroDesdeQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	nombre := fmt.Sprintf("informe-articulos-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(data)
}

// ExportarExcel godoc
// @Summary      Informe de artículos en XLSX
// @Tags         informes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        pedido_id  query  string  false  "Filtrar por pedido"
// @Param        marca_id   query  string  false  "Filtrar por marca"
// @Param        tipo       query  string  false  "Filtrar por tipo"
// @Param        estado     query  string  false  "Filtrar por estado"
// @Success      200  {file}  binary
// @Router       /api/informes/articulos.xlsx [get]
func (h *InformeHandler) ExportarExcel(c *fiber.Ctx) error {
	data, err := h.uc.ExportarExcel(c.UserContext(), filtroDesdeQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	nombre := fmt.Sprintf("informe-articulos-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(data)
}
