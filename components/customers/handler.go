package customers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-northwind/pkg/admin"
	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/editor"
	"github.com/goliatone/go-northwind/pkg/field"
	"github.com/goliatone/go-northwind/pkg/render"
)

// HTTPError lets a guard error pick the response status.
type HTTPError interface {
	error
	StatusCode() int
}

type handler struct {
	opts  Options
	paths admin.Paths
}

// session is the per-request pair of tables plus the alerts they raised.
type session struct {
	customers *admin.CustomerTable
	revenue   *admin.RevenueTable
	alerts    *admin.AlertLog
}

func (h *handler) session(confirm admin.Confirmer, limit int) (*session, error) {
	alerts := &admin.AlertLog{}
	common := []admin.Option{
		admin.WithLogger(h.opts.Logger),
		admin.WithTimeout(h.opts.Timeout),
		admin.WithPaths(h.paths),
		admin.WithNotifier(alerts),
		admin.WithConfirmer(confirm),
		admin.WithMoneyFormatter(h.opts.Money),
		admin.WithLimit(limit),
	}
	ct, err := admin.NewCustomerTable(h.opts.Backend, h.opts.Layout, common...)
	if err != nil {
		return nil, err
	}
	rt, err := admin.NewRevenueTable(h.opts.Backend, common...)
	if err != nil {
		return nil, err
	}
	return &session{customers: ct, revenue: rt, alerts: alerts}, nil
}

func (s *session) refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.customers.Refresh(ctx)
	}()
	go func() {
		defer wg.Done()
		s.revenue.Refresh(ctx)
	}()
	wg.Wait()
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) home(w http.ResponseWriter, r *http.Request) {
	s, ok := h.open(w, r, admin.Answer(false))
	if !ok {
		return
	}
	s.refresh(r.Context())
	h.page(w, r, http.StatusOK, s, nil, nil)
}

func (h *handler) customerFragment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.open(w, r, admin.Answer(false))
	if !ok {
		return
	}
	s.customers.Refresh(r.Context())
	h.table(w, r, s.customers.View())
}

func (h *handler) revenueFragment(w http.ResponseWriter, r *http.Request) {
	limit := h.opts.RevenueLimit
	if raw, present := r.URL.Query()["limit"]; present && len(raw) > 0 {
		limit = admin.ParseLimit(raw[0])
	}
	s, err := h.session(admin.Answer(false), limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	s.revenue.Refresh(r.Context())
	h.table(w, r, s.revenue.View())
}

func (h *handler) newDialog(w http.ResponseWriter, r *http.Request) {
	s, ok := h.open(w, r, admin.Answer(false))
	if !ok {
		return
	}
	s.refresh(r.Context())
	dialog := admin.DialogView(s.customers.Create(), h.paths)
	h.page(w, r, http.StatusOK, s, &dialog, nil)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	s, ok := h.open(w, r, admin.Answer(false))
	if !ok {
		return
	}
	d := s.customers.Create()
	applyForm(d.Fields, r.PostForm)
	h.submit(w, r, s, d)
}

func (h *handler) editDialog(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	s, ok := h.open(w, r, admin.Answer(false))
	if !ok {
		return
	}
	s.refresh(r.Context())
	d, err := s.customers.Edit(id)
	if err != nil {
		h.missing(w, r, s, id, err)
		return
	}
	dialog := admin.DialogView(d, h.paths)
	h.page(w, r, http.StatusOK, s, &dialog, nil)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	s, ok := h.open(w, r, admin.Answer(false))
	if !ok {
		return
	}
	s.customers.Refresh(r.Context())
	d, err := s.customers.Edit(id)
	if err != nil {
		s.revenue.Refresh(r.Context())
		h.missing(w, r, s, id, err)
		return
	}
	applyForm(d.Fields, r.PostForm)
	h.submit(w, r, s, d)
}

func (h *handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	s, ok := h.open(w, r, admin.Answer(false))
	if !ok {
		return
	}
	s.refresh(r.Context())
	dialog := admin.ConfirmDeleteView(id, h.paths)
	h.page(w, r, http.StatusOK, s, &dialog, nil)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	confirmed := strings.EqualFold(strings.TrimSpace(r.PostForm.Get("confirm")), "yes")
	if !confirmed {
		http.Redirect(w, r, h.paths.Delete(id), http.StatusSeeOther)
		return
	}
	s, ok := h.open(w, r, admin.Answer(true))
	if !ok {
		return
	}
	if _, err := s.customers.Delete(r.Context(), id); err != nil {
		s.refresh(r.Context())
		h.page(w, r, statusFor(err), s, nil, s.alerts.Alerts())
		return
	}
	http.Redirect(w, r, h.paths.Home(), http.StatusSeeOther)
}

// submit saves the open dialog. Success redirects home; failure re-renders
// the page with the dialog still open and the alert shown.
func (h *handler) submit(w http.ResponseWriter, r *http.Request, s *session, d *editor.Dialog) {
	if err := s.customers.Submit(r.Context()); err != nil {
		s.refresh(r.Context())
		dialog := admin.DialogView(d, h.paths)
		h.page(w, r, statusFor(err), s, &dialog, s.alerts.Alerts())
		return
	}
	http.Redirect(w, r, h.paths.Home(), http.StatusSeeOther)
}

func (h *handler) missing(w http.ResponseWriter, r *http.Request, s *session, id int, err error) {
	status := http.StatusInternalServerError
	message := err.Error()
	if errors.Is(err, editor.ErrRecordNotFound) {
		status = http.StatusNotFound
		message = fmt.Sprintf("Customer %d is not in the current list.", id)
	}
	dialog := admin.NoticeView("Customer Not Found", message, h.paths)
	h.page(w, r, status, s, &dialog, nil)
}

func (h *handler) open(w http.ResponseWriter, _ *http.Request, confirm admin.Confirmer) (*session, bool) {
	s, err := h.session(confirm, h.opts.RevenueLimit)
	if err != nil {
		h.fail(w, err)
		return nil, false
	}
	return s, true
}

func (h *handler) renderer(r *http.Request) (render.Renderer, error) {
	return h.opts.Registry.ForAccept(r.Header.Get("Accept"), h.opts.DefaultRenderer)
}

func (h *handler) table(w http.ResponseWriter, r *http.Request, view render.TableView) {
	rnd, err := h.renderer(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	out, err := rnd.RenderTable(r.Context(), view)
	if err != nil {
		h.fail(w, err)
		return
	}
	write(w, rnd.ContentType(), http.StatusOK, out)
}

func (h *handler) page(w http.ResponseWriter, r *http.Request, status int, s *session, dialog *render.DialogView, alerts []string) {
	rnd, err := h.renderer(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	out, err := h.buildPage(r, rnd, s, dialog, alerts)
	if err != nil {
		h.fail(w, err)
		return
	}
	write(w, rnd.ContentType(), status, out)
}

func (h *handler) buildPage(r *http.Request, rnd render.Renderer, s *session, dialog *render.DialogView, alerts []string) ([]byte, error) {
	ctx := r.Context()
	chromeView, err := h.chrome(r)
	if err != nil {
		return nil, err
	}

	customersOut, err := rnd.RenderTable(ctx, s.customers.View())
	if err != nil {
		return nil, err
	}
	revenueOut, err := rnd.RenderTable(ctx, s.revenue.View())
	if err != nil {
		return nil, err
	}

	page := render.Page{
		Title:  chromeView.AppName,
		Chrome: chromeView,
		Sections: []render.Section{
			{ID: "customers", Title: "Customers", Icon: "users", Body: string(customersOut)},
			{ID: "revenue", Title: "Top Customers by Revenue", Icon: "chart line", Body: string(revenueOut)},
			{ID: "about", Title: "About", Icon: "info circle", Body: aboutText(rnd, chromeView)},
		},
		Alerts:        render.MergeMessages(nil, alerts...),
		ServiceWorker: h.opts.Shim.WorkerPath(h.opts.BasePath),
		ManifestHref:  h.opts.Shim.ManifestPath(h.opts.BasePath),
	}
	if dialog != nil {
		out, err := rnd.RenderDialog(ctx, *dialog)
		if err != nil {
			return nil, err
		}
		page.Dialog = string(out)
	}
	return rnd.RenderPage(ctx, page)
}

// chrome honours ?theme= and ?variant= and falls back to the configured
// selection when the requested one does not exist.
func (h *handler) chrome(r *http.Request) (render.Chrome, error) {
	query := r.URL.Query()
	name := strings.TrimSpace(query.Get("theme"))
	variant := strings.TrimSpace(query.Get("variant"))
	if name == "" && variant == "" {
		return h.opts.Chrome.Build(h.opts.Theme, h.opts.Variant)
	}
	if name == "" {
		name = h.opts.Theme
	}
	out, err := h.opts.Chrome.Build(name, variant)
	if err != nil {
		h.opts.Logger.Debug().Err(err).Str("theme", name).Str("variant", variant).Msg("theme selection rejected")
		return h.opts.Chrome.Build(h.opts.Theme, h.opts.Variant)
	}
	return out, nil
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	h.opts.Logger.Error().Err(err).Msg("render failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func aboutText(rnd render.Renderer, c render.Chrome) string {
	text := c.AppName + " customer directory administration."
	if c.Version != "" {
		text = fmt.Sprintf("%s %s customer directory administration.", c.AppName, c.Version)
	}
	if strings.HasPrefix(rnd.ContentType(), "text/html") {
		return "<p>" + html.EscapeString(text) + "</p>"
	}
	return text
}

// applyForm copies submitted values into the editable inputs. Read-only and
// disabled inputs keep their values.
func applyForm(group *field.Group, form url.Values) {
	for _, in := range group.Inputs() {
		cfg := in.Config()
		if cfg.ReadOnly || cfg.Disabled {
			continue
		}
		if values, ok := form[cfg.Name]; ok && len(values) > 0 {
			in.Commit(values[0])
		}
	}
}

func recordID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := customers.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// statusFor maps an upstream failure to the response status.
func statusFor(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func write(w http.ResponseWriter, contentType string, status int, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
