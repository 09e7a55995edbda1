package usecase

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

// OrderTxRunner ejecuta un callback con un repo de pedidos atado a una
// transacción, para que encabezado y líneas se escriban atómicamente.
type OrderTxRunner interface {
	RunOrders(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// PurchaseTxRunner análogo para compras.
type PurchaseTxRunner interface {
	RunPurchases(ctx context.Context, fn func(purchaseRepo repository.PurchaseRepository) error) error
}
