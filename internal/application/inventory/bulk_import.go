package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/domain"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
)

// bulkImportFields orden fijo de columnas: sku,name,category,quantity,unitCost.
const bulkImportFields = 5

// BulkImport procesa un CSV de inventario (encabezado en la primera línea, se
// descarta). Cada fila malformada (número de campos, cantidad/costo no
// numéricos o negativos, SKU duplicado) se omite y se acumula en el reporte
// con su motivo; el éxito parcial es el comportamiento esperado, nunca se
// aborta la importación completa por una fila mala.
func (uc *UseCase) BulkImport(r io.Reader) (*dto.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validamos el conteo por fila para reportarlo
	reader.TrimLeadingSpace = true

	report := &dto.ImportReport{Skipped: []dto.SkippedRow{}}
	// SKUs ya vistos en este archivo, para rechazar duplicados internos sin ir a la DB
	seen := make(map[string]bool)

	line := 0
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Skipped = append(report.Skipped, dto.SkippedRow{Line: line, Reason: "fila CSV ilegible"})
			continue
		}
		if line == 1 {
			continue // encabezado
		}
		// Líneas vacías al final del archivo
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		item, reason := parseImportRow(record)
		if reason != "" {
			report.Skipped = append(report.Skipped, dto.SkippedRow{Line: line, Reason: reason})
			continue
		}
		if seen[item.SKU] {
			report.Skipped = append(report.Skipped, dto.SkippedRow{Line: line, Reason: "SKU repetido en el archivo"})
			continue
		}
		existing, err := uc.itemRepo.GetBySKU(item.SKU)
		if err != nil {
			return nil, fmt.Errorf("verificar SKU %q: %w", item.SKU, err)
		}
		if existing != nil {
			report.Skipped = append(report.Skipped, dto.SkippedRow{Line: line, Reason: "SKU ya existe en inventario"})
			continue
		}
		if err := uc.itemRepo.Create(item); err != nil {
			if err == domain.ErrDuplicateSKU {
				report.Skipped = append(report.Skipped, dto.SkippedRow{Line: line, Reason: "SKU ya existe en inventario"})
				continue
			}
			return nil, fmt.Errorf("persistir fila %d: %w", line, err)
		}
		seen[item.SKU] = true
		report.Imported++
	}
	return report, nil
}

// parseImportRow valida una fila y la convierte en entidad. Devuelve el motivo
// de rechazo ("" si la fila es válida).
func parseImportRow(record []string) (*entity.InventoryItem, string) {
	if len(record) != bulkImportFields {
		return nil, fmt.Sprintf("se esperaban %d campos, hay %d", bulkImportFields, len(record))
	}
	sku := strings.TrimSpace(record[0])
	name := strings.TrimSpace(record[1])
	category := strings.TrimSpace(record[2])
	if sku == "" || name == "" {
		return nil, "sku y name son requeridos"
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return nil, "cantidad no numérica"
	}
	if qty < 0 {
		return nil, "cantidad negativa"
	}
	unitCost, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, "costo unitario no numérico"
	}
	if unitCost.IsNegative() {
		return nil, "costo unitario negativo"
	}
	now := time.Now()
	return &entity.InventoryItem{
		ID:        uuid.New().String(),
		SKU:       sku,
		Name:      name,
		Category:  category,
		Quantity:  qty,
		UnitCost:  unitCost,
		CreatedAt: now,
		UpdatedAt: now,
	}, ""
}
