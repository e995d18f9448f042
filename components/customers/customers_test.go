package customers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-northwind/pkg/client"
	"github.com/goliatone/go-northwind/pkg/testsupport"
)

const (
	acmeList    = `[{"customerId":1,"customerName":"Acme","city":"Berlin","country":"Germany"}]`
	betaRevenue = `[{"customer":{"customerId":2,"customerName":"Beta","country":"FR"},"totalOrderCount":5,"totalRevenue":1234.5}]`
)

func newServer(t *testing.T, api *testsupport.FakeAPI, fns ...OptionFn) http.Handler {
	t.Helper()
	backend, err := client.New(api.BaseURL())
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	c, err := New(append([]OptionFn{WithBackend(backend)}, fns...)...)
	if err != nil {
		t.Fatalf("component: %v", err)
	}
	r := chi.NewRouter()
	c.Mount(r)
	return r
}

func scripted(t *testing.T) *testsupport.FakeAPI {
	t.Helper()
	api := testsupport.NewFakeAPI(t)
	api.Respond("GET /public/customers", http.StatusOK, acmeList)
	api.Respond("GET /public/customers-with-revenue", http.StatusOK, betaRevenue)
	return api
}

func do(h http.Handler, method, target string, form url.Values, accept string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome_RendersBothTables(t *testing.T) {
	h := newServer(t, scripted(t))

	rec := do(h, http.MethodGet, "/", nil, "text/html")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	doc := testsupport.ParseHTML(t, rec.Body.Bytes())
	if got := testsupport.CountElements(doc, "tbody", "tr"); got != 1 {
		t.Fatalf("expected one customer row, got %d", got)
	}
	body := rec.Body.String()
	for _, want := range []string{"Acme", "Berlin", "Showing 1 customers", "Beta", "$1,234.50", "/sw.js", "/manifest.webmanifest"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestCustomerFragment_NegotiatesPlainText(t *testing.T) {
	h := newServer(t, scripted(t))

	rec := do(h, http.MethodGet, "/customers", nil, "text/plain")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Acme") || strings.Contains(body, "<table") {
		t.Fatalf("unexpected plain text table: %s", body)
	}
}

func TestRevenueFragment_InvalidLimitFallsBack(t *testing.T) {
	api := scripted(t)
	h := newServer(t, api)

	rec := do(h, http.MethodGet, "/revenue?limit=abc", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	calls := api.CallsTo(http.MethodGet)
	if len(calls) != 1 || calls[0].Query != "skip=0&take=10" {
		t.Fatalf("unexpected upstream calls %+v", calls)
	}

	do(h, http.MethodGet, "/revenue?limit=3", nil, "")
	calls = api.CallsTo(http.MethodGet)
	if calls[len(calls)-1].Query != "skip=0&take=3" {
		t.Fatalf("unexpected limit query %q", calls[len(calls)-1].Query)
	}
}

func TestCreate_StripsIdentifierAndRedirects(t *testing.T) {
	api := scripted(t)
	api.Respond("POST /public/customers", http.StatusCreated, `{}`)
	h := newServer(t, api)

	form := url.Values{"customerId": {"99"}, "customerName": {"Gamma"}, "city": {"Oslo"}}
	rec := do(h, http.MethodPost, "/customers", form, "")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("unexpected redirect %q", loc)
	}
	posts := api.CallsTo(http.MethodPost)
	if len(posts) != 1 {
		t.Fatalf("expected one POST, got %d", len(posts))
	}
	if _, ok := posts[0].Body["customerId"]; ok {
		t.Fatalf("payload carries identifier: %v", posts[0].Body)
	}
	if posts[0].Body["customerName"] != "Gamma" || posts[0].Body["city"] != "Oslo" {
		t.Fatalf("unexpected payload %v", posts[0].Body)
	}
}

func TestCreate_FailureKeepsDialogOpen(t *testing.T) {
	api := scripted(t)
	api.Respond("POST /public/customers", http.StatusInternalServerError, `{}`)
	h := newServer(t, api)

	rec := do(h, http.MethodPost, "/customers", url.Values{"customerName": {"Gamma"}}, "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Error creating customer: HTTP error! status: 500") {
		t.Fatalf("expected alert in body: %s", body)
	}
	if !strings.Contains(body, `value="Gamma"`) {
		t.Fatalf("expected submitted value kept in dialog")
	}
}

func TestEdit_PrefillsDialog(t *testing.T) {
	h := newServer(t, scripted(t))

	rec := do(h, http.MethodGet, "/customers/1/edit", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	doc := testsupport.ParseHTML(t, rec.Body.Bytes())
	ids := testsupport.FindByAttr(doc, "name", "customerId")
	if len(ids) != 1 {
		t.Fatalf("expected identifier input, got %d", len(ids))
	}
	if _, ok := testsupport.Attr(ids[0], "readonly"); !ok {
		t.Fatalf("identifier must be read-only in edit mode")
	}
	names := testsupport.FindByAttr(doc, "name", "customerName")
	if len(names) != 1 {
		t.Fatalf("expected name input, got %d", len(names))
	}
	if v, _ := testsupport.Attr(names[0], "value"); v != "Acme" {
		t.Fatalf("unexpected prefill %q", v)
	}
}

func TestEdit_UnknownRecordIsReported(t *testing.T) {
	h := newServer(t, scripted(t))

	rec := do(h, http.MethodGet, "/customers/42/edit", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Customer Not Found") {
		t.Fatalf("expected not found notice")
	}

	rec = do(h, http.MethodGet, "/customers/abc/edit", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdate_SendsPut(t *testing.T) {
	api := scripted(t)
	api.Respond("PUT /public/customers/1", http.StatusOK, `{}`)
	h := newServer(t, api)

	rec := do(h, http.MethodPost, "/customers/1", url.Values{"city": {"Hamburg"}, "customerId": {"7"}}, "")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	puts := api.CallsTo(http.MethodPut)
	if len(puts) != 1 || puts[0].Path != "/public/customers/1" {
		t.Fatalf("unexpected PUT calls %+v", puts)
	}
	if puts[0].Body["city"] != "Hamburg" || puts[0].Body["customerName"] != "Acme" || puts[0].Body["customerId"] != "1" {
		t.Fatalf("unexpected payload %v", puts[0].Body)
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	api := scripted(t)
	api.Respond("DELETE /public/customers/1", http.StatusNoContent, ``)
	h := newServer(t, api)

	rec := do(h, http.MethodPost, "/customers/1/delete", url.Values{}, "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/customers/1/delete" {
		t.Fatalf("expected redirect to confirmation, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if got := len(api.CallsTo(http.MethodDelete)); got != 0 {
		t.Fatalf("unconfirmed delete issued %d calls", got)
	}

	rec = do(h, http.MethodGet, "/customers/1/delete", nil, "")
	if !strings.Contains(rec.Body.String(), "Are you sure you want to delete customer 1?") {
		t.Fatalf("expected confirmation prompt")
	}

	rec = do(h, http.MethodPost, "/customers/1/delete", url.Values{"confirm": {"yes"}}, "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	deletes := api.CallsTo(http.MethodDelete)
	if len(deletes) != 1 || deletes[0].Path != "/public/customers/1" {
		t.Fatalf("expected exactly one DELETE, got %+v", deletes)
	}
}

func TestDelete_FailureShowsAlert(t *testing.T) {
	api := scripted(t)
	api.Respond("DELETE /public/customers/1", http.StatusConflict, `{}`)
	h := newServer(t, api)

	rec := do(h, http.MethodPost, "/customers/1/delete", url.Values{"confirm": {"yes"}}, "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error deleting customer: HTTP error! status: 409") {
		t.Fatalf("expected delete alert")
	}
}

func TestMountedUnderBasePath(t *testing.T) {
	h := newServer(t, scripted(t), WithBasePath("/admin/"))

	rec := do(h, http.MethodGet, "/admin/", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`href="/admin/customers/1/edit"`, `href="/admin/customers/new"`, "/admin/sw.js", "/admin/assets/northwind.css"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}

	rec = do(h, http.MethodGet, "/admin/assets/northwind.css", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected asset, got %d", rec.Code)
	}
	rec = do(h, http.MethodGet, "/admin/healthz", nil, "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestGuard_BlocksRequests(t *testing.T) {
	h := newServer(t, scripted(t), WithGuard(func(*http.Request) error {
		return client.StatusError{Code: http.StatusUnauthorized}
	}))

	rec := do(h, http.MethodGet, "/", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNew_RequiresBackend(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without backend")
	}
}
