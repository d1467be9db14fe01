package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

func TestHandleListProducts(t *testing.T) {
	t.Parallel()

	active := []domain.Product{
		{ID: "P1", Name: "Absolutely Nothing", Price: 500, Active: true},
		{ID: "P2", Name: "Premium Nothing", Price: 1500, Active: true, Featured: true},
	}
	featured := active[1:]

	t.Run("lists active products", func(t *testing.T) {
		t.Parallel()
		svc := &stubProductLister{active: active, featured: featured}

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rec := httptest.NewRecorder()

		HandleListProducts(svc, testLogger(), false).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"id":"P1"`) || !strings.Contains(body, `"id":"P2"`) {
			t.Fatalf("expected both products, got %q", body)
		}
	})

	t.Run("lists featured only", func(t *testing.T) {
		t.Parallel()
		svc := &stubProductLister{active: active, featured: featured}

		req := httptest.NewRequest(http.MethodGet, "/products/featured", nil)
		rec := httptest.NewRecorder()

		HandleListProducts(svc, testLogger(), true).ServeHTTP(rec, req)

		body := rec.Body.String()
		if strings.Contains(body, `"id":"P1"`) {
			t.Fatalf("expected featured subset only, got %q", body)
		}
		if !strings.Contains(body, `"id":"P2"`) {
			t.Fatalf("expected featured product, got %q", body)
		}
	})

	t.Run("storage failure stays generic", func(t *testing.T) {
		t.Parallel()
		svc := &stubProductLister{err: errors.New("pg down")}

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rec := httptest.NewRecorder()

		HandleListProducts(svc, testLogger(), false).ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "pg down") {
			t.Fatalf("expected internal detail suppressed, got %q", rec.Body.String())
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		svc := &stubProductLister{}

		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		rec := httptest.NewRecorder()

		HandleListProducts(svc, testLogger(), false).ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected status 405, got %d", rec.Code)
		}
	})
}

type stubProductLister struct {
	active   []domain.Product
	featured []domain.Product
	err      error
}

func (s *stubProductLister) ListActive(_ context.Context) ([]domain.Product, error) {
	return s.active, s.err
}

func (s *stubProductLister) ListFeatured(_ context.Context) ([]domain.Product, error) {
	return s.featured, s.err
}
