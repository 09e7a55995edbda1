package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// OrderDateFilter parámetros temporales de un listado de pedidos: un solo día
// de negocio (Date) o un rango inclusivo de días (StartDate/EndDate). Ambas
// formas aceptan fecha plana YYYY-MM-DD o timestamp ISO.
type OrderDateFilter struct {
	Date      string
	StartDate string
	EndDate   string
}

// OrderUseCase casos de uso para pedidos: creación, listado paginado con
// filtros temporales en hora de Perú, regla de edición solo el mismo día y
// consulta de existencia por área.
type OrderUseCase struct {
	repo      repository.OrderRepository
	areaRepo  repository.AreaRepository
	userRepo  repository.UserRepository
	tx        OrderTxRunner
	resolver  *timezone.Resolver
	clock     timezone.Clock
	projector *OrderProjector
}

// NewOrderUseCase construye el caso de uso con el reloj del sistema.
func NewOrderUseCase(
	repo repository.OrderRepository,
	areaRepo repository.AreaRepository,
	userRepo repository.UserRepository,
	tx OrderTxRunner,
) *OrderUseCase {
	return &OrderUseCase{
		repo:      repo,
		areaRepo:  areaRepo,
		userRepo:  userRepo,
		tx:        tx,
		resolver:  timezone.NewResolver(),
		clock:     timezone.SystemClock{},
		projector: NewOrderProjector(),
	}
}

// WithClock reemplaza el reloj. Para tests de la regla de mismo día.
func (uc *OrderUseCase) WithClock(c timezone.Clock) *OrderUseCase {
	uc.clock = c
	return uc
}

// Create crea un pedido con sus líneas. El monto total se calcula como la
// suma de cantidad*precio de cada línea.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	area, err := uc.areaRepo.GetByID(ctx, in.AreaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.Order{
		UserID:      in.UserID,
		AreaID:      in.AreaID,
		Status:      entity.OrderStatusCreated,
		Observation: in.Observation,
		CreatedAt:   uc.clock.Now().UTC(),
		Items:       toOrderItems(in.Items),
	}
	order.TotalAmount = orderTotal(order.Items)

	err = uc.tx.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, order.ID)
}

// GetByID obtiene un pedido proyectado a hora de Perú.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return uc.projector.Project(order), nil
}

// List devuelve la página de pedidos que coincide con la búsqueda libre
// (observación/estado + ID numérico), el filtro temporal y el orden
// solicitados. Los errores de fecha se lanzan antes de tocar el
// almacenamiento.
func (uc *OrderUseCase) List(ctx context.Context, req pagination.PageRequest, filter OrderDateFilter) (*pagination.Page[dto.OrderResponse], error) {
	dr, err := uc.resolveFilter(filter)
	if err != nil {
		return nil, err
	}

	spec := repository.OrderListSpec
	pred := spec.Build(req.Query, dr)
	sort := spec.ResolveSort(req)

	page, err := pagination.Paginate(ctx, req,
		func(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
			return uc.repo.List(ctx, pred, sort, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return uc.repo.Count(ctx, pred)
		},
	)
	if err != nil {
		return nil, err
	}
	return pagination.Map(page, func(o *entity.Order) dto.OrderResponse {
		return *uc.projector.Project(o)
	}), nil
}

// resolveFilter traduce el filtro temporal al rango UTC semiabierto. Date
// tiene prioridad; StartDate/EndDate deben enviarse juntos.
func (uc *OrderUseCase) resolveFilter(filter OrderDateFilter) (*timezone.DayRange, error) {
	switch {
	case filter.Date != "":
		dr, err := uc.resolver.DayRange(filter.Date)
		if err != nil {
			return nil, err
		}
		return &dr, nil
	case filter.StartDate != "" && filter.EndDate != "":
		dr, err := uc.resolver.RangeAcross(filter.StartDate, filter.EndDate)
		if err != nil {
			return nil, err
		}
		return &dr, nil
	case filter.StartDate != "" || filter.EndDate != "":
		return nil, fmt.Errorf("%w: startDate y endDate deben enviarse juntos", domain.ErrInvalidRange)
	default:
		return nil, nil
	}
}

// ListByUser devuelve los pedidos de un usuario, más recientes primero.
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *uc.projector.Project(o))
	}
	return out, nil
}

// CheckExisting indica si el área ya colocó un pedido en el día de negocio
// dado (rango UTC semiabierto de ese día).
func (uc *OrderUseCase) CheckExisting(ctx context.Context, areaID int64, date string) (bool, error) {
	dr, err := uc.resolver.DayRange(date)
	if err != nil {
		return false, err
	}
	return uc.repo.ExistsForArea(ctx, areaID, dr)
}

// Update modifica un pedido. Solo se permite el mismo día calendario (hora de
// Perú) en que fue creado: la regla se re-verifica aquí, sobre una lectura
// fresca y contra el instante de la mutación, para que una petición
// reintentada no edite cruzando la medianoche. Items no nil reemplaza las
// líneas completas y recalcula el total.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !uc.resolver.SameBusinessDay(order.CreatedAt, uc.clock.Now()) {
		return nil, domain.ErrSameDayEdit
	}

	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.Observation != nil {
		order.Observation = *in.Observation
	}
	replaceItems := in.Items != nil
	if replaceItems {
		order.Items = toOrderItems(in.Items)
		order.TotalAmount = orderTotal(order.Items)
	}

	err = uc.tx.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Update(ctx, order, replaceItems)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un pedido y sus líneas.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Delete(ctx, id)
	})
}

func toOrderItems(in []dto.OrderItemRequest) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.OrderItem{
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			Price:             it.Price,
			UnitMeasurementID: it.UnitMeasurementID,
		})
	}
	return items
}

func orderTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity.Mul(it.Price))
	}
	return total
}
