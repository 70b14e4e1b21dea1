package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hashimadil/storefront-backend/api/middleware"
	ordersvc "github.com/hashimadil/storefront-backend/internal/orders"
	"github.com/hashimadil/storefront-backend/pkg/logger"
)

type stubOrders struct {
	createFn func(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error)
	updateFn func(ctx context.Context, id uuid.UUID, status string) (*ordersvc.OrderDTO, error)
}

func (s *stubOrders) Create(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return &ordersvc.OrderDTO{ID: uuid.New()}, nil
}

func (s *stubOrders) Get(ctx context.Context, id uuid.UUID) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: id}, nil
}

func (s *stubOrders) List(ctx context.Context) ([]ordersvc.OrderDTO, error) {
	return []ordersvc.OrderDTO{{ID: uuid.New()}}, nil
}

func (s *stubOrders) ListItems(ctx context.Context) ([]ordersvc.OrderItemDTO, error) {
	return []ordersvc.OrderItemDTO{}, nil
}

func (s *stubOrders) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ordersvc.OrderDTO, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, status)
	}
	return &ordersvc.OrderDTO{ID: id}, nil
}

func (s *stubOrders) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func controllerLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

const orderBody = `{
	"order": {
		"customer_name": "Hash",
		"customer_email": "hash@example.com",
		"customer_phone": "+14165550100",
		"customer_address": "12 Queen St",
		"total_amount": "170"
	},
	"items": [
		{"product_id": "p-1", "size_label": "M", "quantity": 2, "price_at_purchase": "85"}
	]
}`

func TestCreateOrderAttachesActingUser(t *testing.T) {
	userID := uuid.New()
	var captured ordersvc.CreateOrderInput
	svc := &stubOrders{
		createFn: func(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error) {
			captured = input
			return &ordersvc.OrderDTO{ID: uuid.New(), UserID: input.UserID}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(orderBody))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	resp := httptest.NewRecorder()

	CreateOrder(svc, controllerLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.UserID == nil || *captured.UserID != userID {
		t.Fatalf("expected acting user attached got %v", captured.UserID)
	}
	if len(captured.Items) != 1 || captured.Items[0].Quantity != 2 {
		t.Fatalf("expected decoded items got %+v", captured.Items)
	}
}

func TestCreateOrderRejectsMissingUserContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(orderBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	CreateOrder(&stubOrders{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user context got %d", resp.Code)
	}
}

func TestCreateOrderRejectsMissingItems(t *testing.T) {
	body := `{"order": {"customer_name": "Hash", "customer_email": "hash@example.com", "customer_phone": "+1416", "customer_address": "12 Queen St", "total_amount": "10"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	CreateOrder(&stubOrders{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing items got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatusRejectsBadID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/orders/not-a-uuid/status", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	resp := httptest.NewRecorder()

	AdminUpdateOrderStatus(&stubOrders{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad order id got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatusDelegates(t *testing.T) {
	orderID := uuid.New()
	var gotStatus string
	svc := &stubOrders{
		updateFn: func(ctx context.Context, id uuid.UUID, status string) (*ordersvc.OrderDTO, error) {
			gotStatus = status
			return &ordersvc.OrderDTO{ID: id}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", orderID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	resp := httptest.NewRecorder()

	AdminUpdateOrderStatus(svc, controllerLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotStatus != "shipped" {
		t.Fatalf("expected status passed through got %q", gotStatus)
	}
}

func TestAdminListOrdersReturnsEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp := httptest.NewRecorder()

	AdminListOrders(&stubOrders{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"data"`) {
		t.Fatalf("expected data envelope got %s", resp.Body.String())
	}
}
