package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// SupplierUseCase casos de uso para proveedores y sus compras.
type SupplierUseCase struct {
	repo         repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
	tx           PurchaseTxRunner
	resolver     *timezone.Resolver
	clock        timezone.Clock
}

// NewSupplierUseCase construye el caso de uso con el reloj del sistema.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	purchaseRepo repository.PurchaseRepository,
	tx PurchaseTxRunner,
) *SupplierUseCase {
	return &SupplierUseCase{
		repo:         repo,
		purchaseRepo: purchaseRepo,
		tx:           tx,
		resolver:     timezone.NewResolver(),
		clock:        timezone.SystemClock{},
	}
}

// WithClock reemplaza el reloj. Para tests.
func (uc *SupplierUseCase) WithClock(c timezone.Clock) *SupplierUseCase {
	uc.clock = c
	return uc
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := uc.clock.Now().UTC()
	supplier := &entity.Supplier{
		Name:        in.Name,
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve la página de proveedores que coincide con la búsqueda libre
// (nombre/razón social/contacto/email) y el orden solicitados.
func (uc *SupplierUseCase) List(ctx context.Context, req pagination.PageRequest) (*pagination.Page[dto.SupplierResponse], error) {
	spec := repository.SupplierListSpec
	pred := spec.Build(req.Query, nil)
	sort := spec.ResolveSort(req)

	page, err := pagination.Paginate(ctx, req,
		func(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
			return uc.repo.List(ctx, pred, sort, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return uc.repo.Count(ctx, pred)
		},
	)
	if err != nil {
		return nil, err
	}
	return pagination.Map(page, func(s *entity.Supplier) dto.SupplierResponse {
		return *toSupplierResponse(s)
	}), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.CompanyName != nil {
		supplier.CompanyName = *in.CompanyName
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	supplier.UpdatedAt = uc.clock.Now().UTC()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor por ID.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// CreatePurchase registra una compra bajo un proveedor. Una fecha plana
// YYYY-MM-DD se ancla a la medianoche de Lima de ese día (instante UTC); un
// timestamp ISO se toma tal cual; vacía usa el instante actual.
func (uc *SupplierUseCase) CreatePurchase(ctx context.Context, supplierID int64, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	purchaseDate, err := uc.resolvePurchaseDate(in.PurchaseDate)
	if err != nil {
		return nil, err
	}

	purchase := &entity.Purchase{
		SupplierID:   supplierID,
		AreaID:       in.AreaID,
		PurchaseDate: purchaseDate,
		CreatedAt:    uc.clock.Now().UTC(),
		Items:        toPurchaseItems(in.Items),
	}
	purchase.TotalAmount = purchaseTotal(purchase.Items)

	err = uc.tx.RunPurchases(ctx, func(purchaseRepo repository.PurchaseRepository) error {
		return purchaseRepo.Create(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetPurchase(ctx, purchase.ID)
}

// resolvePurchaseDate normaliza la fecha de compra a un instante UTC.
func (uc *SupplierUseCase) resolvePurchaseDate(input string) (time.Time, error) {
	if input == "" {
		return uc.clock.Now().UTC(), nil
	}
	dr, err := uc.resolver.DayRange(input)
	if err != nil {
		return time.Time{}, err
	}
	if t, ok := parseTimestamp(input); ok {
		return t.UTC(), nil
	}
	// Fecha plana: el inicio del día de negocio es el instante canónico.
	return dr.Start, nil
}

// parseTimestamp intenta interpretar input como timestamp completo (no fecha
// plana).
func parseTimestamp(input string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, input, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GetPurchase obtiene una compra con sus líneas.
func (uc *SupplierUseCase) GetPurchase(ctx context.Context, id int64) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	return toPurchaseResponse(purchase), nil
}

// ListPurchases devuelve las compras de un proveedor, más recientes primero.
func (uc *SupplierUseCase) ListPurchases(ctx context.Context, supplierID int64) ([]dto.PurchaseResponse, error) {
	list, err := uc.purchaseRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

// UpdatePurchase actualiza una compra. Items no nil reemplaza las líneas y
// recalcula el total.
func (uc *SupplierUseCase) UpdatePurchase(ctx context.Context, id int64, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	if in.AreaID != nil {
		purchase.AreaID = in.AreaID
	}
	if in.PurchaseDate != nil {
		purchaseDate, err := uc.resolvePurchaseDate(*in.PurchaseDate)
		if err != nil {
			return nil, err
		}
		purchase.PurchaseDate = purchaseDate
	}
	replaceItems := in.Items != nil
	if replaceItems {
		purchase.Items = toPurchaseItems(in.Items)
		purchase.TotalAmount = purchaseTotal(purchase.Items)
	}

	err = uc.tx.RunPurchases(ctx, func(purchaseRepo repository.PurchaseRepository) error {
		return purchaseRepo.Update(ctx, purchase, replaceItems)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetPurchase(ctx, id)
}

// DeletePurchase elimina una compra y sus líneas.
func (uc *SupplierUseCase) DeletePurchase(ctx context.Context, id int64) error {
	return uc.tx.RunPurchases(ctx, func(purchaseRepo repository.PurchaseRepository) error {
		return purchaseRepo.Delete(ctx, id)
	})
}

// UpdatePurchaseItem actualiza una línea de compra y recalcula su costo total
// y el total de la compra.
func (uc *SupplierUseCase) UpdatePurchaseItem(ctx context.Context, itemID int64, in dto.UpdatePurchaseItemRequest) (*dto.PurchaseResponse, error) {
	item, err := uc.purchaseRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.UnitCost != nil {
		item.UnitCost = *in.UnitCost
	}
	if in.UnitMeasurementID != nil {
		item.UnitMeasurementID = *in.UnitMeasurementID
	}
	item.TotalCost = item.Quantity.Mul(item.UnitCost)

	err = uc.tx.RunPurchases(ctx, func(purchaseRepo repository.PurchaseRepository) error {
		if err := purchaseRepo.UpdateItem(ctx, item); err != nil {
			return err
		}
		return uc.recomputePurchaseTotal(ctx, purchaseRepo, item.PurchaseID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetPurchase(ctx, item.PurchaseID)
}

// DeletePurchaseItem elimina una línea de compra y recalcula el total.
func (uc *SupplierUseCase) DeletePurchaseItem(ctx context.Context, itemID int64) (*dto.PurchaseResponse, error) {
	item, err := uc.purchaseRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	err = uc.tx.RunPurchases(ctx, func(purchaseRepo repository.PurchaseRepository) error {
		if err := purchaseRepo.DeleteItem(ctx, itemID); err != nil {
			return err
		}
		return uc.recomputePurchaseTotal(ctx, purchaseRepo, item.PurchaseID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetPurchase(ctx, item.PurchaseID)
}

// recomputePurchaseTotal rehace el total de la compra sumando sus líneas
// vigentes, dentro de la misma transacción que las modificó.
func (uc *SupplierUseCase) recomputePurchaseTotal(ctx context.Context, purchaseRepo repository.PurchaseRepository, purchaseID int64) error {
	purchase, err := purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}
	total := decimal.Zero
	for _, it := range purchase.Items {
		total = total.Add(it.TotalCost)
	}
	purchase.TotalAmount = total
	return purchaseRepo.Update(ctx, purchase, false)
}

func toPurchaseItems(in []dto.PurchaseItemRequest) []entity.PurchaseItem {
	items := make([]entity.PurchaseItem, 0, len(in))
	for _, it := range in {
		totalCost := it.TotalCost
		if totalCost.IsZero() {
			totalCost = it.Quantity.Mul(it.UnitCost)
		}
		items = append(items, entity.PurchaseItem{
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			UnitCost:          it.UnitCost,
			TotalCost:         totalCost,
			UnitMeasurementID: it.UnitMeasurementID,
		})
	}
	return items
}

func purchaseTotal(items []entity.PurchaseItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalCost)
	}
	return total
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		CompanyName: s.CompanyName,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	resp := &dto.PurchaseResponse{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		AreaID:       p.AreaID,
		TotalAmount:  p.TotalAmount,
		PurchaseDate: p.PurchaseDate,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Items:        make([]dto.PurchaseItemResponse, 0, len(p.Items)),
	}
	for i := range p.Items {
		it := &p.Items[i]
		itemResp := dto.PurchaseItemResponse{
			ID:                it.ID,
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			UnitCost:          it.UnitCost,
			TotalCost:         it.TotalCost,
			UnitMeasurementID: it.UnitMeasurementID,
		}
		if it.Product != nil {
			itemResp.Product = toProductResponse(it.Product)
		}
		if it.UnitMeasurement != nil {
			itemResp.UnitMeasurement = toUnitMeasurementResponse(it.UnitMeasurement)
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}
