package handler

import (
	"context"
	"net/http"

	"mwell-store/internal/auth"
	"mwell-store/internal/model"
	"mwell-store/internal/pricing"
	"mwell-store/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	testUserID  = uuid.MustParse("8a6e0804-2bd0-4672-b79d-d97027f9071a")
	testCaller  = auth.Identity{UserID: testUserID, Email: "juan@example.com", Role: model.RoleUser}
	testAdmin   = auth.Identity{UserID: uuid.MustParse("0f9c7a3e-5d2b-4e61-9a8f-3c4b5d6e7f80"), Email: "admin@mwell.com.ph", Role: model.RoleAdmin}
	testApptID  = uuid.MustParse("b5e2c1a4-7d3f-4a9e-8c6b-1f2e3d4c5b6a")
	testOrderID = uuid.MustParse("c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f")
)

// asCaller attaches an authenticated identity to the request.
func asCaller(r *http.Request, id auth.Identity) *http.Request {
	return r.WithContext(auth.WithIdentity(r.Context(), id))
}

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) view(args mock.Arguments) (*service.CartView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) View(ctx context.Context, sessionID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID))
}

func (m *MockCartService) Add(ctx context.Context, sessionID, productID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID, productID))
}

func (m *MockCartService) Increment(ctx context.Context, sessionID, productID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID, productID))
}

func (m *MockCartService) Decrement(ctx context.Context, sessionID, productID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID, productID))
}

func (m *MockCartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID, productID, quantity))
}

func (m *MockCartService) Remove(ctx context.Context, sessionID, productID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID, productID))
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID))
}

func (m *MockCartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID, code))
}

func (m *MockCartService) ClearCoupon(ctx context.Context, sessionID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, sessionID))
}

// MockPricingService is a mock implementation of PricingService.
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Quote(ctx context.Context, req *model.QuoteRequest) (*pricing.Summary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Summary), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, ownerID uuid.UUID, req *model.CheckoutRequest) (*model.Order, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, caller auth.Identity, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, caller auth.Identity, limit, offset int) ([]model.Order, error) {
	args := m.Called(ctx, caller, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockAppointmentService is a mock implementation of AppointmentService.
type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) List(ctx context.Context, ownerID uuid.UUID) (*model.AppointmentListResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppointmentListResponse), args.Error(1)
}

func (m *MockAppointmentService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.AppointmentView, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppointmentView), args.Error(1)
}

func (m *MockAppointmentService) Create(ctx context.Context, ownerID uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppointmentView), args.Error(1)
}

func (m *MockAppointmentService) Update(ctx context.Context, ownerID, id uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error) {
	args := m.Called(ctx, ownerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppointmentView), args.Error(1)
}

func (m *MockAppointmentService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockReviewService is a mock implementation of ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewService) Add(ctx context.Context, userID uuid.UUID, req *model.ReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

// MockWishlistService is a mock implementation of WishlistService.
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) List(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) Add(ctx context.Context, userID uuid.UUID, productID string) (*model.WishlistItem, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) Remove(ctx context.Context, userID uuid.UUID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}
