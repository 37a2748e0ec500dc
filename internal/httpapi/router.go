package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"eduquiz/internal/quiz"
)

const defaultMaxLogBytes = 512

func NewRouter(service *quiz.Service) http.Handler {
	api := NewAPI(service)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /session", api.HandleSession)
	mux.HandleFunc("POST /session/select", api.HandleSelect)
	mux.HandleFunc("POST /session/confirm", api.intent(api.confirm))
	mux.HandleFunc("POST /session/hint", api.intent(api.hint))
	mux.HandleFunc("POST /session/fifty-fifty", api.intent(api.fiftyFifty))
	mux.HandleFunc("POST /session/skip", api.intent(api.skip))
	mux.HandleFunc("POST /session/advance", api.intent(api.advance))
	mux.HandleFunc("POST /session/reset", api.intent(api.reset))
	mux.HandleFunc("POST /session/record", api.intent(api.record))
	mux.HandleFunc("GET /results", api.HandleResults)

	return logRequests(mux, defaultMaxLogBytes)
}

// logRequests logs method, path, status, duration and a truncated body.
func logRequests(next http.Handler, maxLogBytes int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    maxLogBytes,
		}
		next.ServeHTTP(recorder, r)

		body := bytes.TrimSpace(recorder.logBody.Bytes())
		suffix := ""
		if recorder.truncated {
			suffix = "..."
		}
		log.Printf("%s %s -> %d (%d bytes, %s) %s%s",
			r.Method, r.URL.Path, recorder.statusCode, recorder.bytesWritten,
			time.Since(started).Round(time.Microsecond), body, suffix)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	maxLogBytes  int
	logBody      bytes.Buffer
	bytesWritten int
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if remaining := r.maxLogBytes - r.logBody.Len(); remaining > 0 {
		if len(p) > remaining {
			r.logBody.Write(p[:remaining])
			r.truncated = true
		} else {
			r.logBody.Write(p)
		}
	} else if len(p) > 0 {
		r.truncated = true
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytesWritten += n
	return n, err
}
