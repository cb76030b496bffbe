package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mwell-store/internal/auth"
	"mwell-store/internal/cart"
	"mwell-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	multiVitamin = model.Product{ID: "mv-001", Name: "Multi Vitamin", Price: 959, Category: "Daily Essentials", InStock: true}
	menCare      = model.Product{ID: "mc-002", Name: "Men Care", Price: 1199, Category: "Personal Care", InStock: true}
)

// seededCart stores a cart for the owner in a fresh memory store.
func seededCart(t *testing.T, owner uuid.UUID, coupon string, items ...cart.LineItem) cart.Store {
	t.Helper()
	store := cart.NewMemoryStore()
	c := cart.New()
	c.Items = append(c.Items, items...)
	if coupon != "" {
		c.ApplyCoupon(coupon)
	}
	require.NoError(t, store.Save(context.Background(), owner.String(), c))
	return store
}

func TestOrderService_Checkout_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	owner := uuid.New()

	// The stored snapshot is stale; checkout reprices at the catalog price.
	stale := multiVitamin
	stale.Price = 1
	store := seededCart(t, owner, "",
		cart.LineItem{Product: stale, Quantity: 1},
		cart.LineItem{Product: menCare, Quantity: 1},
	)

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, store, logger)

	mockProductRepo.On("GetByIDs", ctx, []string{"mv-001", "mc-002"}).Return([]model.Product{multiVitamin, menCare}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := service.Checkout(ctx, owner, &model.CheckoutRequest{PaymentMethod: "card"})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, owner, order.OwnerID)
	assert.Equal(t, "CARD", order.PaymentMethod)
	assert.Nil(t, order.CouponCode)
	assert.Equal(t, 2158.0, order.Subtotal)
	assert.Equal(t, 20.0, order.Handling)
	assert.InDelta(t, 2158+388.44+20, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 959.0, order.Items[0].UnitPrice)
	assert.Equal(t, order.ID, order.Items[1].OrderID)

	remaining, err := store.Load(ctx, owner.String())
	require.NoError(t, err)
	assert.Empty(t, remaining.Items)

	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_Checkout_WithCoupon(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	owner := uuid.New()

	store := seededCart(t, owner, "girishsir90", cart.LineItem{Product: multiVitamin, Quantity: 2})

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)
	service := NewOrderService(mockOrderRepo, mockProductRepo, store, logger)

	mockProductRepo.On("GetByIDs", ctx, []string{"mv-001"}).Return([]model.Product{multiVitamin}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.MatchedBy(func(o *model.Order) bool {
		return o.CouponCode != nil && *o.CouponCode == "GIRISHSIR90"
	})).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.Anything).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := service.Checkout(ctx, owner, nil)

	require.NoError(t, err)
	assert.Equal(t, "COD", order.PaymentMethod)
	assert.InDelta(t, 1726.2, order.CouponDiscount, 0.001)
	assert.InDelta(t, 246.32, order.Total, 0.001)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	owner := uuid.New()

	t.Run("Empty cart", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		service := NewOrderService(mockOrderRepo, new(MockProductRepository), cart.NewMemoryStore(), logger)

		_, err := service.Checkout(ctx, owner, nil)

		assert.ErrorIs(t, err, model.ErrEmptyCart)
		mockOrderRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
	})

	t.Run("Unknown payment method", func(t *testing.T) {
		service := NewOrderService(new(MockOrderRepository), new(MockProductRepository), cart.NewMemoryStore(), logger)

		_, err := service.Checkout(ctx, owner, &model.CheckoutRequest{PaymentMethod: "bitcoin"})

		var de *model.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "paymentMethod", de.Field)
	})

	t.Run("Product removed from catalog", func(t *testing.T) {
		store := seededCart(t, owner, "", cart.LineItem{Product: multiVitamin, Quantity: 1})
		mockProductRepo := new(MockProductRepository)
		mockProductRepo.On("GetByIDs", ctx, []string{"mv-001"}).Return([]model.Product{}, nil)
		service := NewOrderService(new(MockOrderRepository), mockProductRepo, store, logger)

		_, err := service.Checkout(ctx, owner, nil)

		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Cart store failure", func(t *testing.T) {
		mockStore := new(MockCartStore)
		mockStore.On("Load", ctx, owner.String()).Return(nil, errors.New("redis down"))
		service := NewOrderService(new(MockOrderRepository), new(MockProductRepository), mockStore, logger)

		_, err := service.Checkout(ctx, owner, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis down")
	})
}

func TestOrderService_Checkout_TransactionRollback(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	owner := uuid.New()

	store := seededCart(t, owner, "", cart.LineItem{Product: multiVitamin, Quantity: 1})

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)
	service := NewOrderService(mockOrderRepo, mockProductRepo, store, logger)

	mockProductRepo.On("GetByIDs", ctx, []string{"mv-001"}).Return([]model.Product{multiVitamin}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.Anything).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.Anything).Return(errors.New("insert failed"))
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := service.Checkout(ctx, owner, nil)

	require.Error(t, err)
	assert.Nil(t, order)
	mockTx.AssertExpectations(t)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)

	// The cart survives a failed checkout.
	c, err := store.Load(ctx, owner.String())
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestOrderService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	owner := uuid.New()
	orderID := uuid.New()
	stored := &model.Order{ID: orderID, OwnerID: owner, CreatedAt: time.Now()}

	tests := []struct {
		name     string
		caller   auth.Identity
		found    *model.Order
		repoErr  error
		expected error
	}{
		{name: "Owner", caller: auth.Identity{UserID: owner, Role: model.RoleUser}, found: stored},
		{name: "Admin sees any order", caller: auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}, found: stored},
		{name: "Other user", caller: auth.Identity{UserID: uuid.New(), Role: model.RoleUser}, found: stored, expected: model.ErrOrderNotFound},
		{name: "Missing", caller: auth.Identity{UserID: owner, Role: model.RoleUser}, expected: model.ErrOrderNotFound},
		{name: "Repository error", caller: auth.Identity{UserID: owner}, repoErr: errors.New("database error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			service := NewOrderService(mockOrderRepo, new(MockProductRepository), cart.NewMemoryStore(), logger)

			if tt.found != nil {
				mockOrderRepo.On("GetByID", ctx, orderID).Return(tt.found, nil)
			} else {
				mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, tt.repoErr)
			}

			order, err := service.GetByID(ctx, tt.caller, orderID)

			switch {
			case tt.expected != nil:
				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, order)
			case tt.repoErr != nil:
				require.Error(t, err)
				assert.Nil(t, order)
			default:
				require.NoError(t, err)
				assert.Equal(t, orderID, order.ID)
			}
			mockOrderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	user := auth.Identity{UserID: uuid.New(), Role: model.RoleUser}
	admin := auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}

	t.Run("User is scoped to own orders", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		service := NewOrderService(mockOrderRepo, new(MockProductRepository), cart.NewMemoryStore(), logger)
		mockOrderRepo.On("List", ctx, mock.MatchedBy(func(id *uuid.UUID) bool {
			return id != nil && *id == user.UserID
		}), 10, 0).Return([]model.Order{}, nil)

		orders, err := service.List(ctx, user, 0, -3)

		require.NoError(t, err)
		assert.Empty(t, orders)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Admin lists everyone", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		service := NewOrderService(mockOrderRepo, new(MockProductRepository), cart.NewMemoryStore(), logger)
		mockOrderRepo.On("List", ctx, (*uuid.UUID)(nil), 100, 5).Return([]model.Order{{ID: uuid.New()}}, nil)

		orders, err := service.List(ctx, admin, 500, 5)

		require.NoError(t, err)
		assert.Len(t, orders, 1)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		service := NewOrderService(mockOrderRepo, new(MockProductRepository), cart.NewMemoryStore(), logger)
		mockOrderRepo.On("List", ctx, mock.Anything, 10, 0).Return(nil, errors.New("database error"))

		_, err := service.List(ctx, user, 10, 0)

		require.Error(t, err)
	})
}
