package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/metrics"
	"github.com/julienschmidt/httprouter"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// Instrument records request count and duration under a fixed path label so
// parameterized routes do not explode the cardinality.
func Instrument(path string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		startTime := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(sr, r, ps)

		duration := time.Since(startTime).Seconds()
		status := strconv.Itoa(sr.status)
		metrics.TotalRequests.WithLabelValues(r.Method, path, status).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
	}
}
