package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
	healthuc "github.com/roadsafe-cloud/roadsafe/internal/usecase/health"
	interventionuc "github.com/roadsafe-cloud/roadsafe/internal/usecase/intervention"
	recommenduc "github.com/roadsafe-cloud/roadsafe/internal/usecase/recommend"
)

// mockInterventions implements InterventionService for tests.
type mockInterventions struct {
	createFn func(ctx context.Context, iv domiv.Intervention) (string, error)
	getFn    func(ctx context.Context, id string) (domiv.Intervention, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, q interventionuc.ListQuery) ([]domiv.Intervention, error)
}

func (m *mockInterventions) Create(ctx context.Context, iv domiv.Intervention) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, iv)
	}
	return "id-1", nil
}

func (m *mockInterventions) Get(ctx context.Context, id string) (domiv.Intervention, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domiv.Intervention{}, nil
}

func (m *mockInterventions) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockInterventions) List(
	ctx context.Context, q interventionuc.ListQuery,
) ([]domiv.Intervention, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, nil
}

// mockRecommender implements Recommender for tests.
type mockRecommender struct {
	recommendFn func(ctx context.Context, req recommenduc.Request) (recommenduc.Result, error)
}

func (m *mockRecommender) Recommend(
	ctx context.Context, req recommenduc.Request,
) (recommenduc.Result, error) {
	if m.recommendFn != nil {
		return m.recommendFn(ctx, req)
	}
	return recommenduc.Result{}, nil
}

// mockHealth implements HealthChecker for tests.
type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(context.Context) healthuc.Report {
	if m.report.Status == "" {
		return healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
		}
	}
	return m.report
}

// newTestServer builds a router around the given mocks.
func newTestServer(
	t *testing.T,
	iv *mockInterventions,
	rec *mockRecommender,
	h *mockHealth,
) *httptest.Server {
	t.Helper()
	if iv == nil {
		iv = &mockInterventions{}
	}
	if rec == nil {
		rec = &mockRecommender{}
	}
	if h == nil {
		h = &mockHealth{}
	}

	s := NewServer(iv, rec, h, zap.NewNop())
	r := chirouter.NewRouter()
	s.Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, http.NoBody)
	} else {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
	}
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}
