package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// sanitize strips CR/LF from request-supplied values so they cannot forge
// extra log lines.
var sanitize = strings.NewReplacer("\n", "", "\r", "").Replace

// Logger logs one line per request: method, path, status and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		log.Printf("%s %s %d %s",
			sanitize(r.Method), sanitize(r.URL.Path), sw.status, time.Since(start))
	})
}

// statusWriter records the status code written by the handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
