package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	cookieMaxAge    = 60 * 60 * 48
	cookiePrefix    = "eats_"
	CookieSessionID = cookiePrefix + "session-id"
)

type ctxKeyLog struct{}
type ctxKeyRequestID struct{}
type ctxKeySessionID struct{}

type responseRecorder struct {
	b      int
	status int
	w      http.ResponseWriter
}

func (r *responseRecorder) Header() http.Header { return r.w.Header() }

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.w.Write(p)
	r.b += n
	return n, err
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.w.WriteHeader(statusCode)
}

// logHandler puts a request-scoped logger into the context and logs one line
// per finished request.
type logHandler struct {
	log  logrus.FieldLogger
	next http.Handler
}

func (lh *logHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := uuid.New()
	ctx = context.WithValue(ctx, ctxKeyRequestID{}, requestID.String())

	start := time.Now()
	rr := &responseRecorder{w: w}
	log := lh.log.WithFields(logrus.Fields{
		"http.req.path":   r.URL.Path,
		"http.req.method": r.Method,
		"http.req.id":     requestID.String(),
	})
	if v, ok := ctx.Value(ctxKeySessionID{}).(string); ok {
		log = log.WithField("session", v)
	}
	log.Debug("request started")
	defer func() {
		log.WithFields(logrus.Fields{
			"http.resp.took_ms": int64(time.Since(start) / time.Millisecond),
			"http.resp.status":  rr.status,
			"http.resp.bytes":   rr.b,
		}).Debug("request complete")
	}()

	ctx = context.WithValue(ctx, ctxKeyLog{}, log)
	lh.next.ServeHTTP(rr, r.WithContext(ctx))
}

// ensureSessionID issues the session cookie on first contact. The id keys the
// visitor's search state and carts.
func ensureSessionID(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		c, err := r.Cookie(CookieSessionID)
		if err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieSessionID,
				Value:    sessionID,
				MaxAge:   cookieMaxAge,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), ctxKeySessionID{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func sessionID(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKeySessionID{}).(string); ok {
		return v
	}
	return ""
}

func requestLogger(r *http.Request, fallback logrus.FieldLogger) logrus.FieldLogger {
	if log, ok := r.Context().Value(ctxKeyLog{}).(logrus.FieldLogger); ok {
		return log
	}
	return fallback
}
