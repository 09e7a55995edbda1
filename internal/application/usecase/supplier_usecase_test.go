package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

func TestResolvePurchaseDate_VaciaUsaElReloj(t *testing.T) {
	now := time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC)
	uc := NewSupplierUseCase(nil, nil, nil).WithClock(timezone.FixedClock(now))

	got, err := uc.resolvePurchaseDate("")
	require.NoError(t, err)
	assert.Equal(t, now, got)
}

func TestResolvePurchaseDate_FechaPlanaAnclaMedianocheDeLima(t *testing.T) {
	uc := NewSupplierUseCase(nil, nil, nil)

	got, err := uc.resolvePurchaseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC), got,
		"fecha plana = medianoche de Lima de ese día, en UTC")
}

func TestResolvePurchaseDate_TimestampSeTomaTalCual(t *testing.T) {
	uc := NewSupplierUseCase(nil, nil, nil)

	got, err := uc.resolvePurchaseDate("2024-03-15T20:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC), got,
		"un timestamp completo es un instante, no se reinterpreta")
}

func TestResolvePurchaseDate_Invalida(t *testing.T) {
	uc := NewSupplierUseCase(nil, nil, nil)

	_, err := uc.resolvePurchaseDate("ayer")
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
}
