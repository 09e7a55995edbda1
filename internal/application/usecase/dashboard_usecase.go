package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// topN tamaño de los rankings del panel.
const topN = 5

// lastWeekDays días de negocio cubiertos por la serie del panel.
const lastWeekDays = 7

// DashboardUseCase arma el resumen agregado del panel de administración.
type DashboardUseCase struct {
	repo     repository.DashboardRepository
	resolver *timezone.Resolver
	clock    timezone.Clock
}

// NewDashboardUseCase construye el caso de uso con el reloj del sistema.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{
		repo:     repo,
		resolver: timezone.NewResolver(),
		clock:    timezone.SystemClock{},
	}
}

// WithClock reemplaza el reloj. Para tests.
func (uc *DashboardUseCase) WithClock(c timezone.Clock) *DashboardUseCase {
	uc.clock = c
	return uc
}

// Summary ejecuta las consultas del panel en paralelo (son lecturas
// independientes) y ensambla la respuesta. La serie semanal cubre los últimos
// 7 días calendario de Lima, incluido el día en curso.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	type countsResult struct {
		products int64
		orders   int64
		revenue  decimal.Decimal
		err      error
	}
	type topProductsResult struct {
		rows []repository.ProductOrderCount
		err  error
	}
	type topUsersResult struct {
		rows []repository.UserOrderCount
		err  error
	}
	type latestResult struct {
		users    []dto.UserResponse
		products []dto.ProductResponse
		err      error
	}
	type weekResult struct {
		rows []repository.DayOrderStats
		err  error
	}

	countsCh := make(chan countsResult, 1)
	topProductsCh := make(chan topProductsResult, 1)
	topUsersCh := make(chan topUsersResult, 1)
	latestCh := make(chan latestResult, 1)
	weekCh := make(chan weekResult, 1)

	go func() {
		var res countsResult
		res.products, res.err = uc.repo.CountProducts(ctx)
		if res.err == nil {
			res.orders, res.err = uc.repo.CountOrders(ctx)
		}
		if res.err == nil {
			res.revenue, res.err = uc.repo.SumOrderAmounts(ctx)
		}
		countsCh <- res
	}()
	go func() {
		rows, err := uc.repo.TopOrderedProducts(ctx, topN)
		topProductsCh <- topProductsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.TopUsersByOrders(ctx, topN)
		topUsersCh <- topUsersResult{rows, err}
	}()
	go func() {
		var res latestResult
		users, err := uc.repo.LatestUsers(ctx, topN)
		if err != nil {
			latestCh <- latestResult{err: err}
			return
		}
		for _, u := range users {
			res.users = append(res.users, *toUserResponse(u))
		}
		products, err := uc.repo.LatestProducts(ctx, topN)
		if err != nil {
			latestCh <- latestResult{err: err}
			return
		}
		for _, p := range products {
			res.products = append(res.products, *toProductResponse(p))
		}
		latestCh <- res
	}()
	go func() {
		since := uc.weekStart()
		rows, err := uc.repo.OrdersByBusinessDay(ctx, since)
		weekCh <- weekResult{rows, err}
	}()

	counts := <-countsCh
	topProducts := <-topProductsCh
	topUsers := <-topUsersCh
	latest := <-latestCh
	week := <-weekCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", counts.err)
	}
	if topProducts.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", topProducts.err)
	}
	if topUsers.err != nil {
		return nil, fmt.Errorf("dashboard: top usuarios: %w", topUsers.err)
	}
	if latest.err != nil {
		return nil, fmt.Errorf("dashboard: recientes: %w", latest.err)
	}
	if week.err != nil {
		return nil, fmt.Errorf("dashboard: serie semanal: %w", week.err)
	}

	resp := &dto.DashboardResponse{
		TotalProducts:  counts.products,
		TotalOrders:    counts.orders,
		TotalRevenue:   counts.revenue,
		TopProducts:    make([]dto.TopProductResponse, 0, len(topProducts.rows)),
		TopUsers:       make([]dto.TopUserResponse, 0, len(topUsers.rows)),
		LatestUsers:    latest.users,
		LatestProducts: latest.products,
		LastWeek:       make([]dto.DaySalesResponse, 0, len(week.rows)),
	}
	for _, r := range topProducts.rows {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductResponse{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
		})
	}
	for _, r := range topUsers.rows {
		resp.TopUsers = append(resp.TopUsers, dto.TopUserResponse{
			UserID:     r.UserID,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			Email:      r.Email,
			OrderCount: r.OrderCount,
		})
	}
	for _, r := range week.rows {
		resp.LastWeek = append(resp.LastWeek, dto.DaySalesResponse{
			Date:        r.BusinessDate,
			OrderCount:  r.OrderCount,
			TotalAmount: r.TotalAmount,
		})
	}
	return resp, nil
}

// weekStart devuelve el inicio UTC del día de negocio ubicado 6 días antes
// del día de Lima en curso, de modo que la serie cubra 7 días completos.
func (uc *DashboardUseCase) weekStart() time.Time {
	today := uc.resolver.BusinessDate(uc.clock.Now())
	dr, err := uc.resolver.DayRange(today)
	if err != nil {
		// today es siempre canónico; si algo falla, caer a 7x24h atrás.
		return uc.clock.Now().UTC().Add(-lastWeekDays * 24 * time.Hour)
	}
	return dr.Start.AddDate(0, 0, -(lastWeekDays - 1))
}
