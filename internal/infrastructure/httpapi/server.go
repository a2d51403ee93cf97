package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"SignalScanner/internal/domain"
	"SignalScanner/internal/logging"
	"SignalScanner/internal/usecase"
)

const internalErrorMessage = "analysis failed, please retry later"

// Analyzer runs one signal scan; *usecase.Pipeline satisfies it.
type Analyzer interface {
	Run(ctx context.Context, company string) (domain.Report, error)
}

// Handler serves the analyze endpoint.
type Handler struct {
	analyzer    Analyzer
	signalLimit int
	logger      *slog.Logger
}

// NewHandler caps returned signals at signalLimit (0 = unlimited).
func NewHandler(analyzer Analyzer, signalLimit int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{analyzer: analyzer, signalLimit: signalLimit, logger: logger}
}

// NewServer registers routes on a fresh echo instance.
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = h.HandleError
	e.Use(middleware.Recover())

	e.POST("/analyze", h.Analyze)
	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return e
}

// Analyze handles POST /analyze.
func (h *Handler) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Company name required"})
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Company name required"})
	}

	ctx := c.Request().Context()
	report, err := h.analyzer.Run(ctx, company)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCompany) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Company name required"})
		}
		h.logger.ErrorContext(ctx, "analyze failed", "company", company, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
	}

	return c.JSON(http.StatusOK, NewReportResponse(report, h.signalLimit))
}

// Health handles GET /healthz.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HandleError renders errors that escape a handler, including recovered panics,
// as ErrorResponse. Server-side failures get a generic message; details are logged.
func (h *Handler) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	message := http.StatusText(code)
	if code >= http.StatusInternalServerError {
		h.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = internalErrorMessage
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, ErrorResponse{Error: message})
	}
	if writeErr != nil {
		h.logger.Warn("write error response", "error", writeErr)
	}
}
