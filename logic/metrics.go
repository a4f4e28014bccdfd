package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"skimbox/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks skimbox/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartDispatchRun() IRequestObserver
	StartSourceFetch(label string) IRequestObserver
	StartMailSend() IRequestObserver
	DigestSent()
	DigestSkipped(reason string)
	DigestErrored()
	ActionHandled(action string)
	SignatureRejected()
	ServiceStarted()
	ActiveUsers(count int)
	CandidatePoolSize(size int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg               *shared.Config
	dispatchRuns      *prometheus.HistogramVec
	sourceFetches     *prometheus.HistogramVec
	mailSends         *prometheus.HistogramVec
	digestsSent       prometheus.Counter
	digestsSkipped    *prometheus.CounterVec
	digestsErrored    prometheus.Counter
	actionsHandled    *prometheus.CounterVec
	sigsRejected      prometheus.Counter
	serviceStarted    prometheus.Counter
	activeUsers       prometheus.Gauge
	candidatePoolSize prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.dispatchRuns = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "dispatch_run_duration",
		Help: "Duration in seconds of daily dispatch runs.",
	}, []string{"label"})
	prometheus.Register(res.dispatchRuns)

	res.sourceFetches = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "source_fetch_duration",
		Help: "Duration in seconds of source API requests made.",
	}, []string{"label"})
	prometheus.Register(res.sourceFetches)

	res.mailSends = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "mail_send_duration",
		Help: "Duration in seconds of mail API requests made.",
	}, []string{"label"})
	prometheus.Register(res.mailSends)

	res.digestsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "digests_sent",
		Help: "Number of digests sent",
	})
	prometheus.Register(res.digestsSent)

	res.digestsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "digests_skipped",
		Help: "Number of digests skipped",
	}, []string{"reason"})
	prometheus.Register(res.digestsSkipped)

	res.digestsErrored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "digests_errored",
		Help: "Number of digest dispatches that errored",
	})
	prometheus.Register(res.digestsErrored)

	res.actionsHandled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "actions_handled",
		Help: "Number of one-tap actions handled",
	}, []string{"action"})
	prometheus.Register(res.actionsHandled)

	res.sigsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "signatures_rejected",
		Help: "Number of action links rejected for a bad signature",
	})
	prometheus.Register(res.sigsRejected)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.activeUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_user_count",
		Help: "Number of active users in the last dispatch run",
	})
	prometheus.Register(res.activeUsers)

	res.candidatePoolSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "candidate_pool_size",
		Help: "Size of the last candidate pool built",
	})
	prometheus.Register(res.candidatePoolSize)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartDispatchRun() IRequestObserver {
	return &requestObserver{"daily", time.Now(), m.dispatchRuns}
}

func (m *metrics) StartSourceFetch(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.sourceFetches}
}

func (m *metrics) StartMailSend() IRequestObserver {
	return &requestObserver{"send", time.Now(), m.mailSends}
}

func (m *metrics) DigestSent() {
	m.digestsSent.Add(1)
}

func (m *metrics) DigestSkipped(reason string) {
	m.digestsSkipped.WithLabelValues(reason).Add(1)
}

func (m *metrics) DigestErrored() {
	m.digestsErrored.Add(1)
}

func (m *metrics) ActionHandled(action string) {
	m.actionsHandled.WithLabelValues(action).Add(1)
}

func (m *metrics) SignatureRejected() {
	m.sigsRejected.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) ActiveUsers(count int) {
	m.activeUsers.Set(float64(count))
}

func (m *metrics) CandidatePoolSize(size int) {
	m.candidatePoolSize.Set(float64(size))
}
