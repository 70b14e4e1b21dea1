package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hashimadil/storefront-backend/api/middleware"
	cartsvc "github.com/hashimadil/storefront-backend/internal/cart"
	ordersvc "github.com/hashimadil/storefront-backend/internal/orders"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
)

type stubCart struct {
	addFn      func(ctx context.Context, userID uuid.UUID, req cartsvc.AddItemRequest) (*cartsvc.CartDTO, error)
	checkoutFn func(ctx context.Context, userID uuid.UUID, req cartsvc.CheckoutRequest) (*ordersvc.OrderDTO, error)
}

func (s *stubCart) Get(ctx context.Context, userID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{UserID: userID}, nil
}

func (s *stubCart) AddItem(ctx context.Context, userID uuid.UUID, req cartsvc.AddItemRequest) (*cartsvc.CartDTO, error) {
	if s.addFn != nil {
		return s.addFn(ctx, userID, req)
	}
	return &cartsvc.CartDTO{UserID: userID}, nil
}

func (s *stubCart) RemoveItem(ctx context.Context, userID uuid.UUID, req cartsvc.RemoveItemRequest) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{UserID: userID}, nil
}

func (s *stubCart) Clear(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (s *stubCart) Checkout(ctx context.Context, userID uuid.UUID, req cartsvc.CheckoutRequest) (*ordersvc.OrderDTO, error) {
	if s.checkoutFn != nil {
		return s.checkoutFn(ctx, userID, req)
	}
	return &ordersvc.OrderDTO{ID: uuid.New()}, nil
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

const checkoutBody = `{
	"customer_name": "Hash",
	"customer_email": "hash@example.com",
	"customer_phone": "+14165550100",
	"customer_address": "12 Queen St"
}`

func TestGetCartUsesActingUser(t *testing.T) {
	userID := uuid.New()
	req := withUser(httptest.NewRequest(http.MethodGet, "/api/cart", nil), userID)
	resp := httptest.NewRecorder()

	GetCart(&stubCart{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), userID.String()) {
		t.Fatalf("expected cart scoped to acting user got %s", resp.Body.String())
	}
}

func TestGetCartRejectsMissingUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp := httptest.NewRecorder()

	GetCart(&stubCart{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user context got %d", resp.Code)
	}
}

func TestAddCartItemDecodesPayload(t *testing.T) {
	productID := uuid.New()
	var captured cartsvc.AddItemRequest
	svc := &stubCart{
		addFn: func(ctx context.Context, userID uuid.UUID, req cartsvc.AddItemRequest) (*cartsvc.CartDTO, error) {
			captured = req
			return &cartsvc.CartDTO{UserID: userID}, nil
		},
	}

	body := `{"product_id":"` + productID.String() + `","size_label":"M","quantity":3}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body)), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	AddCartItem(svc, controllerLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.ProductID != productID.String() || captured.Quantity != 3 {
		t.Fatalf("expected decoded payload got %+v", captured)
	}
}

func TestAddCartItemAcceptsProductAndSizeOnly(t *testing.T) {
	productID := uuid.New()
	var captured cartsvc.AddItemRequest
	svc := &stubCart{
		addFn: func(ctx context.Context, userID uuid.UUID, req cartsvc.AddItemRequest) (*cartsvc.CartDTO, error) {
			captured = req
			return &cartsvc.CartDTO{UserID: userID}, nil
		},
	}

	body := `{"product_id":"` + productID.String() + `","size_label":"M"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body)), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	AddCartItem(svc, controllerLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 without explicit quantity got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.ProductID != productID.String() || captured.Quantity != 0 {
		t.Fatalf("expected quantity left for the service default got %+v", captured)
	}
}

func TestAddCartItemRejectsNegativeQuantity(t *testing.T) {
	body := `{"product_id":"` + uuid.NewString() + `","size_label":"M","quantity":-1}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body)), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	AddCartItem(&stubCart{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative quantity got %d", resp.Code)
	}
}

func TestCheckoutReturnsCreatedOrder(t *testing.T) {
	orderID := uuid.New()
	svc := &stubCart{
		checkoutFn: func(ctx context.Context, userID uuid.UUID, req cartsvc.CheckoutRequest) (*ordersvc.OrderDTO, error) {
			return &ordersvc.OrderDTO{ID: orderID}, nil
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody)), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	Checkout(svc, controllerLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), orderID.String()) {
		t.Fatalf("expected order in response got %s", resp.Body.String())
	}
}

func TestCheckoutSurfacesClosedStore(t *testing.T) {
	svc := &stubCart{
		checkoutFn: func(ctx context.Context, userID uuid.UUID, req cartsvc.CheckoutRequest) (*ordersvc.OrderDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "the store is currently closed")
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody)), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	Checkout(svc, controllerLogger())(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for closed store got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "closed") {
		t.Fatalf("expected closed-store message got %s", resp.Body.String())
	}
}

func TestCheckoutRejectsIncompleteContact(t *testing.T) {
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"customer_name":"Hash"}`)), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	Checkout(&stubCart{}, controllerLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete contact got %d", resp.Code)
	}
}
