package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	nextID int64

	lastPred  query.Predicate
	lastSort  query.Sort
	lastLimit int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*entity.Order{}, nextID: 1}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = f.nextID
	f.nextID++
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(_ context.Context, p query.Predicate, sort query.Sort, limit, _ int) ([]*entity.Order, error) {
	f.lastPred = p
	f.lastSort = sort
	f.lastLimit = limit
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Count(_ context.Context, _ query.Predicate) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ExistsForArea(_ context.Context, areaID int64, dr timezone.DayRange) (bool, error) {
	for _, o := range f.orders {
		if o.AreaID == areaID && dr.Contains(o.CreatedAt) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order, _ bool) error {
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	delete(f.orders, id)
	return nil
}

type fakeAreaRepo struct{ areas map[int64]*entity.Area }

func (f *fakeAreaRepo) Create(context.Context, *entity.Area) error { return nil }
func (f *fakeAreaRepo) GetByID(_ context.Context, id int64) (*entity.Area, error) {
	return f.areas[id], nil
}
func (f *fakeAreaRepo) GetByNameAndCompany(context.Context, string, int64) (*entity.Area, error) {
	return nil, nil
}
func (f *fakeAreaRepo) List(context.Context) ([]*entity.Area, error)                { return nil, nil }
func (f *fakeAreaRepo) ListByCompany(context.Context, int64) ([]*entity.Area, error) { return nil, nil }
func (f *fakeAreaRepo) Update(context.Context, *entity.Area) error                  { return nil }
func (f *fakeAreaRepo) Delete(context.Context, int64) error                         { return nil }

type fakeUserRepo struct{ users map[int64]*entity.User }

func (f *fakeUserRepo) Create(context.Context, *entity.User, []int64) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) List(context.Context, query.Predicate, query.Sort, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(context.Context, query.Predicate) (int64, error)  { return 0, nil }
func (f *fakeUserRepo) Update(context.Context, *entity.User, []int64) error    { return nil }
func (f *fakeUserRepo) UpdatePassword(context.Context, int64, string) error    { return nil }
func (f *fakeUserRepo) Delete(context.Context, int64) error                    { return nil }

// fakeTx ejecuta el callback directamente sobre el repo, sin transacción real.
type fakeTx struct{ repo repository.OrderRepository }

func (f *fakeTx) RunOrders(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(f.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newTestOrderUC(clock timezone.Clock) (*OrderUseCase, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	areas := &fakeAreaRepo{areas: map[int64]*entity.Area{
		1: {ID: 1, Name: "Cocina", CompanyID: 1},
	}}
	users := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, FirstName: "Ana", Email: "ana@example.com", Role: entity.RoleCustomer},
	}}
	uc := NewOrderUseCase(repo, areas, users, &fakeTx{repo: repo}).WithClock(clock)
	return uc, repo
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// limaNoon devuelve el mediodía de Lima de la fecha dada como instante UTC.
func limaNoon(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 17, 0, 0, 0, time.UTC) // 12:00 Lima = 17:00 UTC
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_CalculaTotal(t *testing.T) {
	now := limaNoon(2024, 3, 15)
	uc, _ := newTestOrderUC(timezone.FixedClock(now))

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID: 1,
		AreaID: 1,
		Items: []dto.OrderItemRequest{
			{ProductID: 1, Quantity: dec("2"), Price: dec("3.50"), UnitMeasurementID: 1},
			{ProductID: 2, Quantity: dec("1.5"), Price: dec("10"), UnitMeasurementID: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.TotalAmount.Equal(dec("22")), "2*3.50 + 1.5*10 = 22, obtuvo %s", resp.TotalAmount)
	assert.Equal(t, entity.OrderStatusCreated, resp.Status)
	assert.Equal(t, now, resp.CreatedAt, "CreatedAt es el instante UTC del reloj")
}

func TestOrderCreate_AreaInexistente(t *testing.T) {
	uc, _ := newTestOrderUC(timezone.FixedClock(limaNoon(2024, 3, 15)))

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID: 1,
		AreaID: 99,
		Items:  []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("1"), Price: dec("1"), UnitMeasurementID: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdate_MismoDiaPermitido(t *testing.T) {
	created := limaNoon(2024, 3, 15)
	uc, _ := newTestOrderUC(timezone.FixedClock(created))

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID: 1, AreaID: 1,
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("1"), Price: dec("5"), UnitMeasurementID: 1}},
	})
	require.NoError(t, err)

	// Diez horas después pero el mismo día de Lima (22:00 local).
	uc.WithClock(timezone.FixedClock(created.Add(10 * time.Hour)))

	status := entity.OrderStatusProcess
	updated, err := uc.Update(context.Background(), resp.ID, dto.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcess, updated.Status)
}

func TestOrderUpdate_CruzandoMedianocheDeLima(t *testing.T) {
	// Pedido creado a las 23:30 de Lima del 15 (04:30 UTC del 16).
	created := time.Date(2024, 3, 16, 4, 30, 0, 0, time.UTC)
	uc, _ := newTestOrderUC(timezone.FixedClock(created))

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID: 1, AreaID: 1,
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("1"), Price: dec("5"), UnitMeasurementID: 1}},
	})
	require.NoError(t, err)

	// Una hora después: 00:30 de Lima del 16. Solo una hora pasó, pero ya
	// es otro día calendario de negocio.
	uc.WithClock(timezone.FixedClock(created.Add(time.Hour)))

	status := entity.OrderStatusProcess
	_, err = uc.Update(context.Background(), resp.ID, dto.UpdateOrderRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrSameDayEdit)
}

func TestOrderUpdate_EstadoInvalido(t *testing.T) {
	created := limaNoon(2024, 3, 15)
	uc, _ := newTestOrderUC(timezone.FixedClock(created))

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID: 1, AreaID: 1,
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("1"), Price: dec("5"), UnitMeasurementID: 1}},
	})
	require.NoError(t, err)

	bad := "cancelled"
	_, err = uc.Update(context.Background(), resp.ID, dto.UpdateOrderRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdate_ItemsRecalculanTotal(t *testing.T) {
	created := limaNoon(2024, 3, 15)
	uc, _ := newTestOrderUC(timezone.FixedClock(created))

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID: 1, AreaID: 1,
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("1"), Price: dec("5"), UnitMeasurementID: 1}},
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), resp.ID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: 2, Quantity: dec("3"), Price: dec("4"), UnitMeasurementID: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(dec("12")), "el total se recalcula con las líneas nuevas")
	require.Len(t, updated.Items, 1)
	assert.Equal(t, int64(2), updated.Items[0].ProductID)
}

func TestOrderUpdate_NoEncontrado(t *testing.T) {
	uc, _ := newTestOrderUC(timezone.FixedClock(limaNoon(2024, 3, 15)))

	status := entity.OrderStatusProcess
	resp, err := uc.Update(context.Background(), 999, dto.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestOrderList_FiltroDeUnDia(t *testing.T) {
	uc, repo := newTestOrderUC(timezone.FixedClock(limaNoon(2024, 3, 15)))

	_, err := uc.List(context.Background(),
		pagination.PageRequest{Page: 1, Limit: 10},
		OrderDateFilter{Date: "2024-03-15"},
	)
	require.NoError(t, err)

	require.Len(t, repo.lastPred.Conds, 1)
	d, ok := repo.lastPred.Conds[0].(query.DateRange)
	require.True(t, ok, "el filtro de fecha llega al repositorio como rango")
	assert.Equal(t, time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC), d.Range.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC), d.Range.End)
}

func TestOrderList_RangoIncompleto(t *testing.T) {
	uc, _ := newTestOrderUC(timezone.FixedClock(limaNoon(2024, 3, 15)))

	_, err := uc.List(context.Background(),
		pagination.PageRequest{Page: 1, Limit: 10},
		OrderDateFilter{StartDate: "2024-03-10"},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidRange, "startDate sin endDate se rechaza")

	_, err = uc.List(context.Background(),
		pagination.PageRequest{Page: 1, Limit: 10},
		OrderDateFilter{EndDate: "2024-03-15"},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidRange, "endDate sin startDate se rechaza")
}

func TestOrderList_FechaInvalidaAntesDelStorage(t *testing.T) {
	uc, repo := newTestOrderUC(timezone.FixedClock(limaNoon(2024, 3, 15)))

	_, err := uc.List(context.Background(),
		pagination.PageRequest{Page: 1, Limit: 10},
		OrderDateFilter{Date: "no-es-fecha"},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	assert.Zero(t, repo.lastLimit, "con fecha inválida nunca se consulta el almacenamiento")
}

func TestOrderCheckExisting(t *testing.T) {
	created := limaNoon(2024, 3, 15)
	uc, _ := newTestOrderUC(timezone.FixedClock(created))

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID: 1, AreaID: 1,
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("1"), Price: dec("5"), UnitMeasurementID: 1}},
	})
	require.NoError(t, err)

	exists, err := uc.CheckExisting(context.Background(), 1, "2024-03-15")
	require.NoError(t, err)
	assert.True(t, exists, "el área 1 ya pidió el 15")

	exists, err = uc.CheckExisting(context.Background(), 1, "2024-03-16")
	require.NoError(t, err)
	assert.False(t, exists, "al día siguiente no hay pedido")

	exists, err = uc.CheckExisting(context.Background(), 2, "2024-03-15")
	require.NoError(t, err)
	assert.False(t, exists, "otra área no tiene pedido")
}
