package usecase

import (
	"context"

	"github.com/mvidalcampos/coleccion-api/internal/application/dto"
	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// InformePDFGenerator genera el PDF del informe de artículos.
type InformePDFGenerator interface {
	GenerateInformePDF(ctx context.Context, filas []repository.FilaInformeArticulo, resumen *repository.ResumenArticulos) ([]byte, error)
}

// InformeExcelExporter genera el XLSX del informe de artículos.
type InformeExcelExporter interface {
	ExportInformeXLSX(ctx context.Context, filas []repository.FilaInformeArticulo, resumen *repository.ResumenArticulos) ([]byte, error)
}

// InformeUseCase informes de artículos: agregados de coste, venta, venta
// objetivo y beneficio sobre un conjunto filtrado, y su exportación.
type InformeUseCase struct {
	repo  repository.InformeRepository
	pdf   InformePDFGenerator
	excel InformeExcelExporter
}

// NewInformeUseCase construye el caso de uso.
func NewInformeUseCase(repo repository.InformeRepository, pdf InformePDFGenerator, excel InformeExcelExporter) *InformeUseCase {
	return &InformeUseCase{repo: repo, pdf: pdf, excel: excel}
}

func toFilter(in dto.InformeFilterRequest) repository.ArticuloFilter {
	return repository.ArticuloFilter{
		PedidoID: in.PedidoID,
		MarcaID:  in.MarcaID,
		Tipo:     in.Tipo,
		Estado:   in.Estado,
		Busqueda: in.Busqueda,
	}
}

// Resumen devuelve los totales del conjunto filtrado.
func (uc *InformeUseCase) Resumen(ctx context.Context, in dto.InformeFilterRequest) (*dto.InformeArticulosResponse, error) {
	res, err := uc.repo.Resumen(ctx, toFilter(in))
	if err != nil {
		return nil, err
	}
	return &dto.InformeArticulosResponse{
		NumArticulos:   res.NumArticulos,
		TotalCoste:     res.TotalCoste,
		TotalVenta:     res.TotalVenta,
		TotalObjetiva:  res.TotalObjetiva,
		TotalBeneficio: res.TotalBeneficio,
	}, nil
}

// ExportarPDF genera el informe en PDF con filas y totales.
func (uc *InformeUseCase) ExportarPDF(ctx context.Context, in dto.InformeFilterRequest) ([]byte, error) {
	filter := toFilter(in)
	filas, err := uc.repo.Filas(ctx, filter)
	if err != nil {
		return nil, err
	}
	resumen, err := uc.repo.Resumen(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInformePDF(ctx, filas, resumen)
}

// ExportarExcel genera el informe en XLSX con filas y totales.
func (uc *InformeUseCase) ExportarExcel(ctx context.Context, in dto.InformeFilterRequest) ([]byte, error) {
	filter := toFilter(in)
	filas, err := uc.repo.Filas(ctx, filter)
	if err != nil {
		return nil, err
	}
	resumen, err := uc.repo.Resumen(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.excel.ExportInformeXLSX(ctx, filas, resumen)
}
