// Package excel implementa la exportación del informe de artículos a XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// InformeExporter implementa usecase.InformeExcelExporter usando excelize.
type InformeExporter struct{}

// NewInformeExporter construye el exportador.
func NewInformeExporter() *InformeExporter { return &InformeExporter{} }

const hojaArticulos = "Artículos"

var cabeceras = []string{
	"Marca", "Artículo", "Pedido", "Tipo", "Estado",
	"Coste total (€)", "Venta objetiva (€)", "Precio venta (€)", "Beneficio (€)",
}

// ExportInformeXLSX genera el libro con una hoja de artículos: cabecera,
// una fila por artículo y una fila final de totales.
func (e *InformeExporter) ExportInformeXLSX(
	_ context.Context,
	filas []repository.FilaInformeArticulo,
	resumen *repository.ResumenArticulos,
) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), hojaArticulos)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	for i, h := range cabeceras {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hojaArticulos, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera: %w", err)
		}
	}
	if err := f.SetRowStyle(hojaArticulos, 1, 1, boldStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	for i, fila := range filas {
		rowNum := i + 2
		coste, _ := fila.CosteTotal.Round(2).Float64()
		objetiva, _ := fila.VentaObjetiva.Round(2).Float64()
		venta, _ := fila.PrecioVenta.Round(2).Float64()
		beneficio, _ := fila.Beneficio.Round(2).Float64()
		valores := []any{
			fila.Marca, fila.Nombre, fila.Pedido, fila.Tipo, fila.Estado,
			coste, objetiva, venta, beneficio,
		}
		for j, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			if err := f.SetCellValue(hojaArticulos, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
			}
		}
	}

	// Fila de totales al final, en negrita.
	totalRow := len(filas) + 2
	totalCoste, _ := resumen.TotalCoste.Round(2).Float64()
	totalObjetiva, _ := resumen.TotalObjetiva.Round(2).Float64()
	totalVenta, _ := resumen.TotalVenta.Round(2).Float64()
	totalBeneficio, _ := resumen.TotalBeneficio.Round(2).Float64()
	totales := []any{
		fmt.Sprintf("TOTAL (%d artículos)", resumen.NumArticulos), "", "", "", "",
		totalCoste, totalObjetiva, totalVenta, totalBeneficio,
	}
	for j, v := range totales {
		cell, _ := excelize.CoordinatesToCellName(j+1, totalRow)
		if err := f.SetCellValue(hojaArticulos, cell, v); err != nil {
			return nil, fmt.Errorf("excel: totales: %w", err)
		}
	}
	if err := f.SetRowStyle(hojaArticulos, totalRow, totalRow, boldStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo totales: %w", err)
	}

	if err := f.SetColWidth(hojaArticulos, "A", "B", 22); err != nil {
		return nil, fmt.Errorf("excel: ancho columnas: %w", err)
	}
	if err := f.SetColWidth(hojaArticulos, "C", "I", 16); err != nil {
		return nil, fmt.Errorf("excel: ancho columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
