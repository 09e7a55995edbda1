package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

func TestProject_CamposEnHoraDePeru(t *testing.T) {
	pr := NewOrderProjector()

	// 03:00 UTC del 16 son las 22:00 del 15 en Lima.
	o := &entity.Order{
		ID:          7,
		UserID:      1,
		AreaID:      2,
		Status:      entity.OrderStatusCreated,
		TotalAmount: decimal.RequireFromString("15.50"),
		CreatedAt:   time.Date(2024, 3, 16, 3, 0, 0, 0, time.UTC),
	}

	resp := pr.Project(o)
	require.NotNil(t, resp)

	assert.Equal(t, "2024-03-15", resp.CreatedDate, "la fecha de presentación es la de Lima, no la UTC")
	assert.Equal(t, "22:00:00", resp.CreatedTime)
	assert.Equal(t, "2024-03-15 22:00:00", resp.CreatedLocal)
	assert.Equal(t, o.CreatedAt, resp.CreatedAt, "el instante UTC almacenado no se toca")
}

func TestProject_UpdatedAtNil(t *testing.T) {
	pr := NewOrderProjector()

	resp := pr.Project(&entity.Order{
		ID:        1,
		CreatedAt: time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC),
	})
	require.NotNil(t, resp)

	assert.Nil(t, resp.UpdatedAt, "pedido nunca modificado")
	assert.Nil(t, resp.UpdatedLocal, "sin UpdatedAt no hay proyección local")
	assert.NotNil(t, resp.Items, "items siempre serializa como lista, nunca null")
	assert.Empty(t, resp.Items)
}

func TestProject_UpdatedAtProyectado(t *testing.T) {
	pr := NewOrderProjector()

	updated := time.Date(2024, 3, 16, 3, 30, 0, 0, time.UTC)
	resp := pr.Project(&entity.Order{
		ID:        1,
		CreatedAt: time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC),
		UpdatedAt: &updated,
	})
	require.NotNil(t, resp.UpdatedLocal)
	assert.Equal(t, "2024-03-15 22:30:00", *resp.UpdatedLocal)
}

func TestProject_RelacionesCargadas(t *testing.T) {
	pr := NewOrderProjector()

	o := &entity.Order{
		ID:        1,
		CreatedAt: time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC),
		User:      &entity.User{ID: 3, FirstName: "Ana", LastName: "Pérez", Email: "ana@example.com"},
		Area:      &entity.Area{ID: 2, Name: "Cocina", CompanyID: 1},
		Items: []entity.OrderItem{
			{
				ID:                10,
				ProductID:         5,
				Quantity:          decimal.RequireFromString("2"),
				Price:             decimal.RequireFromString("3.50"),
				UnitMeasurementID: 1,
				Product:           &entity.Product{ID: 5, Name: "Pan"},
				UnitMeasurement:   &entity.UnitMeasurement{ID: 1, Name: "Unidad"},
			},
		},
	}

	resp := pr.Project(o)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Ana", resp.User.FirstName)
	require.NotNil(t, resp.Area)
	assert.Equal(t, "Cocina", resp.Area.Name)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Items[0].Product)
	assert.Equal(t, "Pan", resp.Items[0].Product.Name)
	require.NotNil(t, resp.Items[0].UnitMeasurement)
}

func TestProject_Nil(t *testing.T) {
	assert.Nil(t, NewOrderProjector().Project(nil))
}
