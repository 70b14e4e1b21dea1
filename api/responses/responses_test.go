package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	"github.com/hashimadil/storefront-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestWriteSuccessWrapsData(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteSuccess(resp, map[string]string{"hello": "world"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope got %v", body)
	}
	if data["hello"] != "world" {
		t.Fatalf("expected payload preserved got %v", data)
	}
}

func TestWriteSuccessStatusSetsCode(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteSuccessStatus(resp, http.StatusCreated, map[string]string{"id": "1"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestWriteErrorExposesValidationMessage(t *testing.T) {
	resp := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
		WithDetails(map[string]string{"quantity": "gte"})
	WriteError(context.Background(), testLogger(), resp, err)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	apiErr := body["error"].(map[string]any)
	if apiErr["message"] != "quantity must be positive" {
		t.Fatalf("expected typed message got %v", apiErr["message"])
	}
	if apiErr["details"] == nil {
		t.Fatalf("expected validation details to pass through")
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	resp := httptest.NewRecorder()
	err := pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("pq: connection reset"), "query users")
	WriteError(context.Background(), testLogger(), resp, err)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	apiErr := body["error"].(map[string]any)
	if apiErr["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", apiErr["message"])
	}
	if apiErr["details"] != nil {
		t.Fatalf("internal details leaked: %v", apiErr["details"])
	}
}

func TestWriteErrorWrapsUntypedErrors(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), resp, errors.New("boom"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped error got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	apiErr := body["error"].(map[string]any)
	if apiErr["code"] != string(pkgerrors.CodeInternal) {
		t.Fatalf("expected internal code got %v", apiErr["code"])
	}
}
