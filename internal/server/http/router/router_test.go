package router

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/semagency/orderbot/internal/config"
	"github.com/semagency/orderbot/internal/domain/model"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
	pkgAuth "github.com/semagency/orderbot/internal/pkg/auth"
)

type stubFacade struct {
	orders  map[int64]*model.Order
	pending []model.Order
	err     error
}

func (s *stubFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *stubFacade) PendingOrders(ctx context.Context, actorID int64) ([]model.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pending, nil
}

type stubChecker struct {
	err error
}

func (s *stubChecker) HealthCheck(ctx context.Context) error { return s.err }

const opsToken = "ops-secret"

func newTestRouter(t *testing.T, facade *stubFacade, checker *stubChecker) http.Handler {
	t.Helper()
	verifier := pkgAuth.NewBcryptVerifier(4)
	hash, err := verifier.Hash(opsToken)
	if err != nil {
		t.Fatalf("failed to hash token: %v", err)
	}
	cfg := &config.Config{AdminID: 555, OpsTokenHash: hash}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, checker, verifier, cfg, logger)
}

func doRequest(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestRouter(t, &stubFacade{}, &stubChecker{})
	rec := doRequest(h, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	h = newTestRouter(t, &stubFacade{}, &stubChecker{err: errors.New("db down")})
	rec = doRequest(h, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestOpsEndpointsRequireToken(t *testing.T) {
	h := newTestRouter(t, &stubFacade{}, &stubChecker{})

	if rec := doRequest(h, http.MethodGet, "/api/orders/pending", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := doRequest(h, http.MethodGet, "/api/orders/pending", "wrong"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rec.Code)
	}
	if rec := doRequest(h, http.MethodGet, "/api/orders/pending", opsToken); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}
}

func TestEmptyTokenHashLocksEndpoints(t *testing.T) {
	verifier := pkgAuth.NewBcryptVerifier(4)
	cfg := &config.Config{AdminID: 555}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	h := Setup(&stubFacade{}, &stubChecker{}, verifier, cfg, logger)

	if rec := doRequest(h, http.MethodGet, "/api/orders/pending", "anything"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unset hash, got %d", rec.Code)
	}
}

func TestGetOrder(t *testing.T) {
	facade := &stubFacade{orders: map[int64]*model.Order{
		5: {ID: 5, UserID: 7, Service: "web", Details: "landing", TotalPrice: 100000,
			Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending},
	}}
	h := newTestRouter(t, facade, &stubChecker{})

	rec := doRequest(h, http.MethodGet, "/api/orders/5", opsToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total_price":100000`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	if rec := doRequest(h, http.MethodGet, "/api/orders/99", opsToken); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec := doRequest(h, http.MethodGet, "/api/orders/abc", opsToken); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListUserOrders(t *testing.T) {
	facade := &stubFacade{orders: map[int64]*model.Order{
		1: {ID: 1, UserID: 7, Service: "web", TotalPrice: 100000},
	}}
	h := newTestRouter(t, facade, &stubChecker{})

	rec := doRequest(h, http.MethodGet, "/api/users/7/orders", opsToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if rec := doRequest(h, http.MethodGet, "/api/users/8/orders", opsToken); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for empty history, got %d", rec.Code)
	}
}
