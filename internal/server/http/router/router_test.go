package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nedcgroup/backoffice/internal/app"
	"github.com/nedcgroup/backoffice/internal/config"
	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/listview"
	"github.com/nedcgroup/backoffice/internal/pkg/metrics"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	testhelpers "github.com/nedcgroup/backoffice/internal/test"
	"github.com/nedcgroup/backoffice/internal/usecase"
)

var companyRow = regexp.MustCompile(`data-company-id="([^"]+)"`)

// companyStore is a tiny in-memory backend for company actions.
type companyStore struct {
	mu        sync.Mutex
	companies []model.Company
}

func (s *companyStore) list() []model.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.companies)
}

func (s *companyStore) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.companies {
		if c.ID == id {
			s.companies = slices.Delete(s.companies, i, i+1)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *companyStore) find(id string) (model.Company, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.ID == id {
			return c, true
		}
	}
	return model.Company{}, false
}

type harness struct {
	engine   *gin.Engine
	client   *testhelpers.BackendStub
	audits   *testhelpers.AuditRepositoryStub
	store    *companyStore
	sessions *session.Manager
	cookie   *http.Cookie
}

func newHarness(t *testing.T, cfg *config.Config, companies []model.Company) *harness {
	t.Helper()
	if cfg.PageSize == 0 {
		cfg.PageSize = 10
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := &companyStore{companies: companies}
	client := &testhelpers.BackendStub{
		ListCompaniesFn: func(context.Context, string, model.CompanyQuery) (*model.CompanyList, error) {
			list := store.list()
			return &model.CompanyList{Companies: list, Total: len(list)}, nil
		},
		GetCompanyFn: func(_ context.Context, _ string, id string) (*model.Company, error) {
			c, ok := store.find(id)
			if !ok {
				return nil, domainErrors.ErrNotFound
			}
			return &c, nil
		},
		DeleteCompanyFn: func(_ context.Context, _ string, id string) error {
			return store.remove(id)
		},
	}
	audits := &testhelpers.AuditRepositoryStub{}
	facade := app.NewBackofficeFacade(
		usecase.NewAuthUseCase(client),
		usecase.NewCompanyUseCase(client, cfg),
		usecase.NewOrderUseCase(client, cfg),
		usecase.NewInvoiceUseCase(client, cfg),
		usecase.NewPaymentUseCase(client),
		usecase.NewAdminUseCase(client, cfg),
		usecase.NewAuditUseCase(audits, logger),
	)
	sessions := testhelpers.NewSessionManager(t)

	engine, err := Setup(Params{
		Facade:   facade,
		Sessions: sessions,
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics.New(),
	})
	require.NoError(t, err)

	return &harness{
		engine:   engine,
		client:   client,
		audits:   audits,
		store:    store,
		sessions: sessions,
		cookie:   testhelpers.SessionCookie(t, sessions, session.Identity{Admin: "eva@nedc.se", Token: "tok"}),
	}
}

func (h *harness) do(method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp := httptest.NewRecorder()
	h.engine.ServeHTTP(resp, req)
	return resp
}

// follow renders the redirect target carrying the flash cookie of resp.
func (h *harness) follow(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, resp.Code)
	cookies := []*http.Cookie{h.cookie}
	if flash := testhelpers.CookieByName(resp.Result(), session.FlashCookieName); flash != nil {
		cookies = append(cookies, flash)
	}
	next := h.do(http.MethodGet, resp.Header().Get("Location"), nil, cookies...)
	require.Equal(t, http.StatusOK, next.Code)
	return next.Body.String()
}

func renderedCompanyIDs(body string) []string {
	ids := []string{}
	for _, m := range companyRow.FindAllStringSubmatch(body, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

func sampleCompanies(n int) []model.Company {
	cities := []string{"Malmö", "Lund", "Ystad"}
	companies := make([]model.Company, n)
	for i := range companies {
		companies[i] = model.Company{
			ID:     fmt.Sprintf("c%02d", i),
			Name:   fmt.Sprintf("Kiosk %02d", i),
			City:   cities[i%len(cities)],
			Active: i%2 == 0,
		}
	}
	return companies
}

func TestCompanyListMatchesLocalFilter(t *testing.T) {
	companies := sampleCompanies(30)
	h := newHarness(t, &config.Config{PageSize: 100}, companies)

	cases := []struct {
		search string
		status string
	}{
		{"", ""},
		{"", "all"},
		{"lund", "all"},
		{"LUND", "active"},
		{"kiosk 1", "inactive"},
		{"  malmö ", "active"},
		{"", "inactive"},
		{"no such shop", "all"},
	}

	for _, tc := range cases {
		t.Run(tc.search+"/"+tc.status, func(t *testing.T) {
			expected := listview.Filter(companies, listview.Criteria[model.Company]{
				Query:  tc.search,
				Status: tc.status,
				Fields: func(c model.Company) []string { return []string{c.Name, c.City} },
				Active: func(c model.Company) bool { return c.Active },
			})
			want := []string{}
			for _, c := range expected {
				want = append(want, c.ID)
			}

			target := "/companies?" + url.Values{"search": {tc.search}, "status": {tc.status}}.Encode()
			resp := h.do(http.MethodGet, target, nil, h.cookie)

			require.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, want, renderedCompanyIDs(resp.Body.String()))
		})
	}
}

func TestCompanyListClampsPage(t *testing.T) {
	h := newHarness(t, &config.Config{PageSize: 10}, sampleCompanies(25))

	cases := map[string]string{
		"/companies?page=999":                   "Page 3 of 3",
		"/companies?page=-5":                    "Page 1 of 3",
		"/companies?page=abc":                   "Page 1 of 3",
		"/companies?page=2":                     "Page 2 of 3",
		"/companies?page=7&search=no+such+shop": "Page 1 of 1",
		"/companies?status=active&page=9":       "Page 2 of 2",
	}
	for target, want := range cases {
		resp := h.do(http.MethodGet, target, nil, h.cookie)
		require.Equal(t, http.StatusOK, resp.Code, target)
		assert.Contains(t, resp.Body.String(), want, target)
	}

	resp := h.do(http.MethodGet, "/companies?page=999", nil, h.cookie)
	assert.Equal(t, []string{"c20", "c21", "c22", "c23", "c24"}, renderedCompanyIDs(resp.Body.String()))
}

func TestProtectedPagesRedirectToLogin(t *testing.T) {
	h := newHarness(t, &config.Config{}, sampleCompanies(3))

	paths := []string{
		"/companies",
		"/companies?search=kiosk&page=2",
		"/companies/new",
		"/companies/c01",
		"/companies/c01/edit",
		"/companies/c01/delete?name=Kiosk",
		"/companies/c01/payments",
		"/companies/c01/payments/p1/edit",
		"/orders/lyca",
		"/orders/telia/o1",
		"/invoices",
		"/invoices/i1",
		"/admins",
		"/admins/new",
		"/admins/a1/edit",
		"/activity",
	}
	for _, path := range paths {
		resp := h.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusSeeOther, resp.Code, path)
		assert.Equal(t, "/login?redirectTo="+url.QueryEscape(path), resp.Header().Get("Location"), path)
	}
	assert.Empty(t, h.client.Calls(), "no backend call without a session")

	resp := h.do(http.MethodGet, "/", nil)
	assert.Equal(t, "/login", resp.Header().Get("Location"))

	forged := &http.Cookie{Name: session.CookieName, Value: "tok.forged"}
	resp = h.do(http.MethodGet, "/invoices", nil, forged)
	assert.Equal(t, "/login?redirectTo=%2Finvoices", resp.Header().Get("Location"))
}

func TestRejectedTokenEndsSession(t *testing.T) {
	h := newHarness(t, &config.Config{}, nil)
	h.client.ListCompaniesFn = func(context.Context, string, model.CompanyQuery) (*model.CompanyList, error) {
		return nil, domainErrors.ErrUnauthorized
	}

	resp := h.do(http.MethodGet, "/companies?status=active", nil, h.cookie)

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/login?redirectTo=%2Fcompanies%3Fstatus%3Dactive", resp.Header().Get("Location"))
	cleared := testhelpers.CookieByName(resp.Result(), session.CookieName)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestLoginReturnsToRequestedPage(t *testing.T) {
	h := newHarness(t, &config.Config{}, nil)

	page := h.do(http.MethodGet, "/login?redirectTo=%2Finvoices", nil)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `value="/invoices"`)

	resp := h.do(http.MethodPost, "/login", url.Values{
		"email":      {"eva@nedc.se"},
		"password":   {"secret"},
		"redirectTo": {"/invoices"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/invoices", resp.Header().Get("Location"))

	cookie := testhelpers.CookieByName(resp.Result(), session.CookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	id, err := h.sessions.Identity(req)
	require.NoError(t, err)
	assert.Equal(t, "eva@nedc.se", id.Admin)
	assert.Equal(t, "token", id.Token)
}

func TestLoginIgnoresOffsiteRedirect(t *testing.T) {
	h := newHarness(t, &config.Config{}, nil)

	resp := h.do(http.MethodPost, "/login", url.Values{
		"email":      {"eva@nedc.se"},
		"password":   {"secret"},
		"redirectTo": {"//evil.example/x"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/companies", resp.Header().Get("Location"))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	h := newHarness(t, &config.Config{}, sampleCompanies(3))

	confirm := h.do(http.MethodGet, "/companies/c01/delete?name=Kiosk+01", nil, h.cookie)
	require.Equal(t, http.StatusOK, confirm.Code)
	assert.Contains(t, confirm.Body.String(), "Delete company Kiosk 01?")
	assert.Contains(t, confirm.Body.String(), `name="confirm" value="yes"`)
	assert.Empty(t, h.client.CallsTo("DeleteCompany"), "showing the dialog deletes nothing")

	cancelled := h.do(http.MethodPost, "/companies/c01/delete", url.Values{}, h.cookie)
	assert.Equal(t, "/companies/c01", cancelled.Header().Get("Location"))
	assert.Empty(t, h.client.CallsTo("DeleteCompany"))
	assert.Len(t, h.store.list(), 3)

	resp := h.do(http.MethodPost, "/companies/c01/delete", url.Values{"confirm": {"yes"}}, h.cookie)
	assert.Equal(t, "/companies", resp.Header().Get("Location"))
	require.Len(t, h.client.CallsTo("DeleteCompany"), 1)
	assert.Equal(t, "c01", h.client.CallsTo("DeleteCompany")[0].ID)

	body := h.follow(t, resp)
	assert.Contains(t, body, "Company was deleted.")
	assert.Equal(t, []string{"c00", "c02"}, renderedCompanyIDs(body))
}

func TestFailedDeleteKeepsCompany(t *testing.T) {
	h := newHarness(t, &config.Config{}, sampleCompanies(2))
	h.client.DeleteCompanyFn = func(context.Context, string, string) error {
		return errors.New("backend down")
	}

	resp := h.do(http.MethodPost, "/companies/c00/delete", url.Values{"confirm": {"yes"}}, h.cookie)
	assert.Equal(t, "/companies/c00", resp.Header().Get("Location"))

	body := h.follow(t, resp)
	assert.Contains(t, body, "toast-error")
	assert.Len(t, h.store.list(), 2)
}

func TestToggleStatusFailureKeepsState(t *testing.T) {
	h := newHarness(t, &config.Config{}, sampleCompanies(2))
	h.client.SetCompanyStatusFn = func(context.Context, string, string, bool) (*model.Company, error) {
		return nil, errors.New("backend down")
	}

	resp := h.do(http.MethodPost, "/companies/c00/status", url.Values{
		"active":     {"false"},
		"redirectTo": {"/companies"},
	}, h.cookie)
	assert.Equal(t, "/companies", resp.Header().Get("Location"))

	body := h.follow(t, resp)
	assert.Contains(t, body, "toast-error")
	assert.NotContains(t, body, "is now")
	company, _ := h.store.find("c00")
	assert.True(t, company.Active)
}

func TestToggleStatusReportsBackendState(t *testing.T) {
	h := newHarness(t, &config.Config{}, sampleCompanies(2))
	h.client.SetCompanyStatusFn = func(_ context.Context, _ string, id string, _ bool) (*model.Company, error) {
		// the backend refuses to deactivate and answers with the unchanged company
		return &model.Company{ID: id, Name: "Kiosk 00", Active: true}, nil
	}

	resp := h.do(http.MethodPost, "/companies/c00/status", url.Values{"active": {"false"}}, h.cookie)
	assert.Equal(t, "/companies/c00", resp.Header().Get("Location"))

	body := h.follow(t, resp)
	assert.Contains(t, body, "Company Kiosk 00 is now active.")
	assert.Contains(t, body, "toast-success")
}

func TestToggleStatusIsAudited(t *testing.T) {
	h := newHarness(t, &config.Config{}, sampleCompanies(1))

	h.do(http.MethodPost, "/companies/c00/status", url.Values{"active": {"false"}}, h.cookie)

	entries := h.audits.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, app.ActionToggleStatus, entries[0].Action)
	assert.Equal(t, "eva@nedc.se", entries[0].Admin)
	assert.Equal(t, "c00", entries[0].EntityID)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHarness(t, &config.Config{MetricsEnabled: true}, nil)

	resp := h.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())

	h.do(http.MethodGet, "/companies", nil, h.cookie)
	resp = h.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `backoffice_http_request_duration_seconds_count{method="GET",route="/companies",status="200"} 1`)

	h.audits.PingErr = errors.New("db down")
	resp = h.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestMetricsDisabled(t *testing.T) {
	h := newHarness(t, &config.Config{}, nil)

	resp := h.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "does not exist")
}

func TestRootRedirectsHome(t *testing.T) {
	h := newHarness(t, &config.Config{}, nil)

	resp := h.do(http.MethodGet, "/", nil, h.cookie)
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/companies", resp.Header().Get("Location"))
}

func TestGzipWhenAccepted(t *testing.T) {
	h := newHarness(t, &config.Config{}, sampleCompanies(1))

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.AddCookie(h.cookie)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	h.engine.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "gzip", resp.Header().Get("Content-Encoding"))
}
