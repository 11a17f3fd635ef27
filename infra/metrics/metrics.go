package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CrestNiraj12/travelgram/domain"
)

// Metrics counts sheet fetches and participant interactions. It implements
// app.InteractionTracker and sheets.FetchObserver.
type Metrics struct {
	registry *prometheus.Registry

	fetchHist    *prometheus.HistogramVec
	sessions     *prometheus.CounterVec
	likes        *prometheus.CounterVec
	commentCount *prometheus.CounterVec
}

// New registers all collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		fetchHist: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travelgram_sheet_fetch_seconds",
			Help:    "histogram of sheet export fetches",
			Buckets: prometheus.ExponentialBucketsRange(0.01, 30, 12),
		}, []string{"sheet", "ok"}),
		sessions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travelgram_sessions_started_total",
			Help: "sessions started per condition",
		}, []string{"condition"}),
		likes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travelgram_likes_total",
			Help: "like and unlike actions per condition",
		}, []string{"condition", "liked"}),
		commentCount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travelgram_comments_total",
			Help: "comments written per condition",
		}, []string{"condition"}),
	}
}

// ObserveFetch records one sheet download.
func (m *Metrics) ObserveFetch(sheet string, elapsed time.Duration, err error) {
	m.fetchHist.WithLabelValues(sheet, strconv.FormatBool(err == nil)).Observe(elapsed.Seconds())
}

// SessionStarted counts a participant passing the entry form.
func (m *Metrics) SessionStarted(condition domain.Condition) {
	m.sessions.WithLabelValues(string(condition)).Inc()
}

// Liked counts a like toggle.
func (m *Metrics) Liked(condition domain.Condition, _ string, liked bool) {
	m.likes.WithLabelValues(string(condition), strconv.FormatBool(liked)).Inc()
}

// Commented counts a new comment.
func (m *Metrics) Commented(condition domain.Condition, _ string) {
	m.commentCount.WithLabelValues(string(condition)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics endpoint on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("metrics server failed", "error", err)
	}
}
