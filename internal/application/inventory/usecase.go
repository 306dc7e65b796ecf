package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/domain"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral por defecto para considerar un artículo en stock bajo.
const DefaultLowStockThreshold int64 = 10

// UseCase motor de inventario: altas, ajustes de cantidad, bajas e
// importación masiva. Toda mutación de cantidad pasa por el TxRunner con la
// fila bloqueada; la invariante quantity >= 0 se verifica antes de persistir.
type UseCase struct {
	txRunner          TxRunner
	itemRepo          repository.InventoryRepository
	lowStockThreshold int64
}

// NewUseCase construye el motor de inventario. lowStockThreshold <= 0 usa el default.
func NewUseCase(txRunner TxRunner, itemRepo repository.InventoryRepository, lowStockThreshold int64) *UseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &UseCase{
		txRunner:          txRunner,
		itemRepo:          itemRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// AddItem valida y persiste un artículo nuevo.
// ErrInvalidInput si sku/name vacíos o quantity/unitCost negativos;
// ErrDuplicateSKU si el SKU ya existe (comparación exacta, sensible a mayúsculas).
func (uc *UseCase) AddItem(in dto.AddItemRequest) (*dto.InventoryItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.itemRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// El repo también aplica la unicidad del SKU (constraint); una carrera entre
	// el chequeo previo y el insert termina igualmente en ErrDuplicateSKU.
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// AdjustQuantity aplica un delta (positivo o negativo) sobre el stock del
// artículo, con la fila bloqueada dentro de una transacción.
// ErrNotFound si el id no existe; ErrInsufficientStock si el resultado
// quedaría negativo (el stock almacenado no cambia en ese caso).
func (uc *UseCase) AdjustQuantity(ctx context.Context, id string, delta int64) (*dto.InventoryItemResponse, error) {
	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryRepository) error {
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newQty := item.Quantity + delta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		item.Quantity = newQty
		item.UpdatedAt = time.Now()
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// UpdateUnitCost corrige el costo unitario de un artículo. ErrInvalidInput si
// el costo es negativo; ErrNotFound si el id no existe.
func (uc *UseCase) UpdateUnitCost(ctx context.Context, id string, unitCost decimal.Decimal) (*dto.InventoryItemResponse, error) {
	if unitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryRepository) error {
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		item.UnitCost = unitCost
		item.UpdatedAt = time.Now()
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// RemoveItem elimina un artículo de forma irreversible. ErrNotFound si no existe.
func (uc *UseCase) RemoveItem(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// GetByID devuelve un artículo o nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List devuelve el inventario completo en orden de inserción.
func (uc *UseCase) List() ([]dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// LowStock devuelve los artículos con quantity < threshold. threshold <= 0
// usa el umbral configurado. Lectura pura, sin efectos.
func (uc *UseCase) LowStock(threshold int64) ([]dto.InventoryItemResponse, error) {
	if threshold <= 0 {
		threshold = uc.lowStockThreshold
	}
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	var out []dto.InventoryItemResponse
	for _, it := range items {
		if it.Quantity < threshold {
			out = append(out, *toItemResponse(it))
		}
	}
	return out, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:        it.ID,
		SKU:       it.SKU,
		Name:      it.Name,
		Category:  it.Category,
		Quantity:  it.Quantity,
		UnitCost:  it.UnitCost,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
