package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Signups = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eventscore", Name: "signups_total", Help: "Successful signups",
	})
	Logins = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eventscore", Name: "logins_total", Help: "Successful logins",
	})
	PasswordResets = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eventscore", Name: "password_resets_total", Help: "Completed password resets",
	})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eventscore", Name: "handler_errors_total", Help: "Handler errors",
	})
	MailJobs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventscore", Name: "mail_jobs_total", Help: "Mail jobs processed by the worker",
	}, []string{"status"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "eventscore", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(Signups, Logins, PasswordResets, HandlerErrors, MailJobs, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
