package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/handlers"
	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/testutil"
)

func TestProjectionHandler_FundProjection(t *testing.T) {
	newSeededHandler := func(t *testing.T) *handlers.ProjectionHandler {
		t.Helper()
		repo := testutil.NewTestRepository(t)
		testutil.NewFund().
			WithTicker("ABCD11").
			WithRecord(testutil.NewRecord().WithMonth("2024-01").WithUnits(100, 10).WithDividend(0.5)).
			Build(t, repo)
		return handlers.NewProjectionHandler(testutil.NewTestProjectionService(t, repo))
	}

	t.Run("projects income with reinvestment", func(t *testing.T) {
		handler := newSeededHandler(t)

		req := testutil.NewRequestWithBody(http.MethodGet,
			"/api/fund/ABCD11/projection?months=1&monthly_units=0&window=0",
			map[string]string{"ticker": "ABCD11"}, nil)
		w := httptest.NewRecorder()

		handler.FundProjection(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var points []model.ProjectionPoint
		if err := json.NewDecoder(w.Body).Decode(&points); err != nil {
			t.Fatal(err)
		}
		if len(points) != 1 {
			t.Fatalf("got %d points, want 1", len(points))
		}
		p := points[0]
		if p.Month != "2024-02" || p.ProjectedIncome != 50.0 || p.CombinedUnits != 105 || p.CombinedIncome != 52.5 {
			t.Errorf("point = %+v", p)
		}
	})

	t.Run("returns 404 for an unknown ticker", func(t *testing.T) {
		handler := newSeededHandler(t)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/fund/NOPE11/projection",
			map[string]string{"ticker": "NOPE11"})
		w := httptest.NewRecorder()

		handler.FundProjection(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns 400 for a malformed months parameter", func(t *testing.T) {
		handler := newSeededHandler(t)

		req := testutil.NewRequestWithBody(http.MethodGet, "/api/fund/ABCD11/projection?months=soon",
			map[string]string{"ticker": "ABCD11"}, nil)
		w := httptest.NewRecorder()

		handler.FundProjection(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for an out-of-range horizon", func(t *testing.T) {
		handler := newSeededHandler(t)

		req := testutil.NewRequestWithBody(http.MethodGet, "/api/fund/ABCD11/projection?months=100000",
			map[string]string{"ticker": "ABCD11"}, nil)
		w := httptest.NewRecorder()

		handler.FundProjection(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestProjectionHandler_PortfolioProjection(t *testing.T) {
	t.Run("returns empty array for an empty portfolio", func(t *testing.T) {
		repo := testutil.NewTestRepository(t)
		handler := handlers.NewProjectionHandler(testutil.NewTestProjectionService(t, repo))

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/projection", nil)
		w := httptest.NewRecorder()

		handler.PortfolioProjection(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var points []model.ProjectionPoint
		if err := json.NewDecoder(w.Body).Decode(&points); err != nil {
			t.Fatal(err)
		}
		if len(points) != 0 {
			t.Errorf("got %d points, want 0", len(points))
		}
	})

	t.Run("applies the per-fund plan", func(t *testing.T) {
		repo := testutil.NewTestRepository(t)
		testutil.NewFund().
			WithTicker("ABCD11").
			WithRecord(testutil.NewRecord().WithMonth("2024-01").WithUnits(100, 10).WithDividend(0.5)).
			Build(t, repo)
		handler := handlers.NewProjectionHandler(testutil.NewTestProjectionService(t, repo))

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/projection?months=1&plan=ABCD11:10", nil)
		w := httptest.NewRecorder()

		handler.PortfolioProjection(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var points []model.ProjectionPoint
		if err := json.NewDecoder(w.Body).Decode(&points); err != nil {
			t.Fatal(err)
		}
		if len(points) != 1 {
			t.Fatalf("got %d points, want 1", len(points))
		}
		if points[0].ProjectedUnits != 110 || points[0].ProjectedIncome != 55.0 {
			t.Errorf("point = %+v", points[0])
		}
		if points[0].ReinvestedUnits != 0 {
			t.Errorf("portfolio projection should never reinvest, got %v", points[0].ReinvestedUnits)
		}
	})
}
