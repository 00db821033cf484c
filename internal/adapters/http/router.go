package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sttve/mail-classifier-ai/internal/config"
	"github.com/sttve/mail-classifier-ai/internal/core/domain"
	"github.com/sttve/mail-classifier-ai/internal/core/ports"
	"github.com/sttve/mail-classifier-ai/internal/observability/metrics"
)

const (
	serviceName      = "api"
	maxUploadBytes   = 10 << 20
	emailTextField   = "email_text"
	emailFileField   = "file"
	healthzPath      = "/healthz"
	metricsPath      = "/metrics"
	registerPath     = "/v1/auth/register"
	loginPath        = "/v1/auth/login"
	logoutPath       = "/v1/auth/logout"
	processEmailPath = "/v1/process_email"
)

type Router struct {
	cfg       config.Config
	processor ports.EmailProcessor
	accounts  ports.AccountService
	sessions  *SessionManager
	metrics   *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	processor ports.EmailProcessor,
	accounts ports.AccountService,
	sessions *SessionManager,
	serverMetrics *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:       cfg,
		processor: processor,
		accounts:  accounts,
		sessions:  sessions,
		metrics:   serverMetrics,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(healthzPath, rt.healthz)
	if rt.metrics != nil {
		mux.Handle(metricsPath, rt.metrics.Handler())
	}
	mux.HandleFunc(registerPath, rt.register)
	mux.HandleFunc(loginPath, rt.login)
	mux.HandleFunc(logoutPath, rt.sessions.requireSession(rt.logout))
	mux.HandleFunc(processEmailPath, rt.sessions.requireSession(rt.processEmail))

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxConcurrent, time.Duration(rt.cfg.APIQueueWaitMillis)*time.Millisecond)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) processEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	input, err := resolveInput(r)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	result, err := rt.processor.Process(r.Context(), input)
	if err != nil {
		slog.Warn("process_email_failed",
			"request_id", requestIDFromContext(r.Context()),
			"error", err,
		)
		writeError(w, err)
		return
	}

	if !result.Generated {
		slog.Warn("reply_generation_fallback",
			"request_id", requestIDFromContext(r.Context()),
			"category", string(result.Category),
		)
	}

	if rt.metrics != nil {
		rt.metrics.RecordClassification(serviceName, string(result.Category), result.Generated, time.Since(start))
	}

	writeJSON(w, http.StatusOK, result)
}

// resolveInput prefers pasted text over an uploaded file when both are sent.
func resolveInput(r *http.Request) (domain.RawInput, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && err != http.ErrNotMultipart {
		return domain.RawInput{}, domain.WrapError(domain.ErrMalformedRequest, "parse multipart form", err)
	}

	if text := strings.TrimSpace(r.FormValue(emailTextField)); text != "" {
		return domain.TextInput(text), nil
	}

	file, fileHeader, err := r.FormFile(emailFileField)
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return domain.EmptyInput(), nil
		}
		return domain.RawInput{}, domain.WrapError(domain.ErrMalformedRequest, "read form file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.RawInput{}, domain.WrapError(domain.ErrExtraction, "read upload", err)
	}
	return domain.FileInput(fileHeader.Filename, data), nil
}
