package usecase

import (
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// Formatos de presentación en hora de Perú.
const (
	displayDateLayout     = "2006-01-02"
	displayTimeLayout     = "15:04:05"
	displayDateTimeLayout = "2006-01-02 15:04:05"
)

// OrderProjector proyecta pedidos a su DTO de respuesta añadiendo los campos
// de presentación en hora de Perú. Transformación pura de solo lectura: los
// instantes UTC almacenados no se modifican nunca.
type OrderProjector struct {
	loc *time.Location
}

// NewOrderProjector construye el proyector sobre la zona de negocio.
func NewOrderProjector() *OrderProjector {
	return &OrderProjector{loc: timezone.Location()}
}

// NewOrderProjectorIn construye el proyector sobre una zona arbitraria. Para tests.
func NewOrderProjectorIn(l *time.Location) *OrderProjector {
	return &OrderProjector{loc: l}
}

// Project arma la respuesta del pedido con los campos derivados de hora de
// Perú (solo fecha, solo hora y combinada). UpdatedAt nil se tolera: los
// campos derivados quedan nil también.
func (pr *OrderProjector) Project(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	createdLocal := o.CreatedAt.In(pr.loc)
	resp := &dto.OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		AreaID:       o.AreaID,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		Observation:  o.Observation,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		CreatedDate:  createdLocal.Format(displayDateLayout),
		CreatedTime:  createdLocal.Format(displayTimeLayout),
		CreatedLocal: createdLocal.Format(displayDateTimeLayout),
		Items:        make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	if o.UpdatedAt != nil {
		s := o.UpdatedAt.In(pr.loc).Format(displayDateTimeLayout)
		resp.UpdatedLocal = &s
	}
	if o.User != nil {
		resp.User = &dto.OrderUserResponse{
			ID:        o.User.ID,
			FirstName: o.User.FirstName,
			LastName:  o.User.LastName,
			Email:     o.User.Email,
		}
	}
	if o.Area != nil {
		resp.Area = toAreaResponse(o.Area)
	}
	for i := range o.Items {
		it := &o.Items[i]
		itemResp := dto.OrderItemResponse{
			ID:                it.ID,
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			Price:             it.Price,
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
