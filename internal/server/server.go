package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/iwvelando/food-cpi/internal/chart"
	"github.com/iwvelando/food-cpi/internal/dashboard"
	"github.com/iwvelando/food-cpi/pkg/constants"
	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/iwvelando/food-cpi/pkg/locale"
	"github.com/iwvelando/food-cpi/pkg/validation"
	"github.com/klauspost/compress/gzhttp"
	servertiming "github.com/mitchellh/go-server-timing"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

var errUnknownCategory = errors.New("unknown category")

type handler struct {
	logger       *zap.Logger
	dashboard    *dashboard.Dashboard
	version      string
	chartLimiter *rate.Limiter
}

// Option configures the handler returned by NewHandler.
type Option func(*handler)

// WithChartRateLimit limits chart rendering to perSecond requests per second
// across all clients, with bursts of up to burst requests. A non-positive
// rate leaves rendering unlimited.
func WithChartRateLimit(perSecond float64, burst int) Option {
	return func(h *handler) {
		if perSecond <= 0 {
			h.chartLimiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		h.chartLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// query is the parsed state of a dashboard request.
type query struct {
	direction cpi.Direction
	count     int
	lang      locale.Language
	category  string
}

// NewHandler constructs the HTTP handler that serves the dashboard page, the
// charts and the JSON API.
func NewHandler(logger *zap.Logger, d *dashboard.Dashboard, version string, opts ...Option) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, dashboard: d, version: trimmedVersion}
	for _, opt := range opts {
		opt(h)
	}

	mux := http.NewServeMux()

	// JSON API
	mux.HandleFunc("/api/ranking", h.handleRanking)
	mux.HandleFunc("/api/trend", h.handleTrend)
	mux.HandleFunc("/api/categories", h.handleCategories)
	mux.HandleFunc("/api/version", h.handleVersion)

	// Rendered charts
	mux.HandleFunc("/chart/", h.handleChart)

	// Web UI
	mux.HandleFunc("/about", h.handleAbout)
	mux.HandleFunc("/", h.handleIndex)

	return LogRequests(logger, gzhttp.GzipHandler(servertiming.Middleware(mux, nil)))
}

// parseQuery reads view, n, lang and category from the query string. lang
// falls back to Accept-Language and category to the default category.
func (h *handler) parseQuery(r *http.Request) (query, error) {
	values := r.URL.Query()
	q := query{count: constants.DefaultRankCount}

	direction, err := cpi.ParseDirection(values.Get("view"))
	if err != nil {
		return q, err
	}
	q.direction = direction

	if raw := strings.TrimSpace(values.Get("n")); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("invalid count %q", raw)
		}
		if err := validation.ValidateCount(count); err != nil {
			return q, err
		}
		q.count = count
	}

	if values.Has("lang") {
		raw := values.Get("lang")
		if !locale.Valid(raw) {
			return q, fmt.Errorf("invalid language %q (expected %s or %s)", raw, constants.LanguageEnglish, constants.LanguageFrench)
		}
		q.lang = locale.Parse(raw)
	} else {
		q.lang = locale.Parse(r.Header.Get("Accept-Language"))
	}

	q.category = values.Get("category")
	if q.category == "" {
		q.category = h.dashboard.DefaultCategory()
	} else if !h.dashboard.HasCategory(q.category) {
		return q, fmt.Errorf("%w: %q", errUnknownCategory, q.category)
	}

	return q, nil
}

func (h *handler) parseOrRespond(w http.ResponseWriter, r *http.Request, op string) (query, bool) {
	q, err := h.parseQuery(r)
	if err == nil {
		return q, true
	}
	status := http.StatusBadRequest
	if errors.Is(err, errUnknownCategory) {
		status = http.StatusNotFound
	}
	h.respondErrorWithOp(w, status, err.Error(), op)
	return q, false
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	return true
}

type rankingResponse struct {
	Month    string            `json:"month"`
	View     string            `json:"view"`
	Language string            `json:"language"`
	Entries  []cpi.RankedEntry `json:"entries"`
}

func (h *handler) handleRanking(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	q, ok := h.parseOrRespond(w, r, "server.handleRanking")
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, rankingResponse{
		Month:    h.dashboard.LatestMonth(),
		View:     q.direction.String(),
		Language: q.lang.String(),
		Entries:  h.dashboard.Rank(q.direction, q.count, q.lang),
	})
}

type trendResponse struct {
	Category string           `json:"category"`
	Label    string           `json:"label"`
	Points   []cpi.TrendPoint `json:"points"`
}

func (h *handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	q, ok := h.parseOrRespond(w, r, "server.handleTrend")
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, trendResponse{
		Category: q.category,
		Label:    h.dashboard.Label(q.category, q.lang),
		Points:   h.dashboard.Trend(q.category),
	})
}

type categoriesResponse struct {
	Language   string                     `json:"language"`
	Default    string                     `json:"default"`
	Categories []dashboard.CategoryOption `json:"categories"`
}

func (h *handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	q, ok := h.parseOrRespond(w, r, "server.handleCategories")
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, categoriesResponse{
		Language:   q.lang.String(),
		Default:    h.dashboard.DefaultCategory(),
		Categories: h.dashboard.CategoryOptions(q.lang),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// handleChart serves /chart/ranking.svg and /chart/trend.svg, or .png.
func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleChart"
	if !allowGet(w, r) {
		return
	}

	file := strings.TrimPrefix(r.URL.Path, "/chart/")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)
	f, err := chart.ParseFormat(ext)
	if err != nil || ext == "" || (name != "ranking" && name != "trend") {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("unknown chart %q", file), op)
		return
	}

	q, ok := h.parseOrRespond(w, r, op)
	if !ok {
		return
	}

	if h.chartLimiter != nil && !h.chartLimiter.Allow() {
		w.Header().Set("Retry-After", "1")
		h.respondErrorWithOp(w, http.StatusTooManyRequests, "too many chart requests", op)
		return
	}

	var metric *servertiming.Metric
	if timing := servertiming.FromContext(r.Context()); timing != nil {
		metric = timing.NewMetric("render").Start()
	}

	var buf bytes.Buffer
	if name == "ranking" {
		entries := h.dashboard.Rank(q.direction, q.count, q.lang)
		err = chart.RenderRanking(&buf, f, entries, q.direction, h.dashboard.LatestMonth(), q.lang)
	} else {
		err = chart.RenderTrend(&buf, f, h.dashboard.Trend(q.category), h.dashboard.Label(q.category, q.lang), q.lang)
	}
	if metric != nil {
		metric.Stop()
	}
	if errors.Is(err, chart.ErrNotEnoughData) {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write chart",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowGet(w, r) {
		return
	}
	q, ok := h.parseOrRespond(w, r, "server.handleIndex")
	if !ok {
		return
	}

	h.render(w, "dashboard.html", h.dashboardPage(q), "server.handleIndex")
}

func (h *handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	q, ok := h.parseOrRespond(w, r, "server.handleAbout")
	if !ok {
		return
	}

	h.render(w, "about.html", h.basePage(q), "server.handleAbout")
}

func (h *handler) render(w http.ResponseWriter, name string, data interface{}, op string) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render page: %v", err), op)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write page",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

// link returns path with the query of q, overridden by the key/value pairs.
func link(p string, q query, overrides ...string) string {
	values := url.Values{}
	values.Set("view", q.direction.String())
	values.Set("n", strconv.Itoa(q.count))
	values.Set("lang", q.lang.String())
	values.Set("category", q.category)
	for i := 0; i+1 < len(overrides); i += 2 {
		values.Set(overrides[i], overrides[i+1])
	}
	return p + "?" + values.Encode()
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("dashboard request failed", fields...)
	} else {
		h.logger.Debug("dashboard request rejected", fields...)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
