// Package handler exposes the establishment HTTP endpoints. It owns the
// transport concerns for the context: decoding and capping request bodies,
// translating coded errors into the shared envelope, and mounting the
// middleware chain every establishment route runs behind.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"edubase/internal/establishment/domain"
	"edubase/internal/establishment/service"
	"edubase/internal/platform/metrics"
	"edubase/internal/platform/middleware"
	dErrors "edubase/pkg/domain-errors"
	"edubase/pkg/platform/httputil"
	"edubase/pkg/platform/middleware/requesttime"
	"edubase/pkg/requestcontext"
)

// Service defines the interface for establishment operations.
type Service interface {
	Register(ctx context.Context, in service.RegisterInput) (domain.Establishment, error)
	Lookup(ctx context.Context, urn domain.URN) (domain.Establishment, error)
	List(ctx context.Context) ([]domain.Establishment, error)
}

// Handler wires establishment endpoints to the establishment service.
type Handler struct {
	logger  *slog.Logger
	service Service
	metrics *metrics.Metrics
}

// New creates a new establishment Handler.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

// Register registers the establishment routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	establishmentRouter := chi.NewRouter()
	establishmentRouter.Use(middleware.Recovery(h.logger))
	establishmentRouter.Use(middleware.RequestID)
	establishmentRouter.Use(middleware.ClientMetadata)
	establishmentRouter.Use(requesttime.Middleware)
	establishmentRouter.Use(middleware.Logger(h.logger))
	establishmentRouter.Use(middleware.Timeout(30 * time.Second))
	establishmentRouter.Use(middleware.ContentTypeJSON)
	establishmentRouter.Use(middleware.LatencyMiddleware(h.metrics))
	establishmentRouter.Post("/establishments", h.handleRegister)
	establishmentRouter.Get("/establishments", h.handleList)
	establishmentRouter.Get("/establishments/{urn}", h.handleLookup)
	establishmentRouter.Get("/establishments/{urn}/inspections", h.handleInspections)

	r.Mount("/", establishmentRouter)
}

// handleRegister registers a new establishment from the request body.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterEstablishmentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	est, err := h.service.Register(ctx, req.Input())
	if err != nil {
		if clientError(err) {
			h.logger.WarnContext(ctx, "establishment rejected",
				"request_id", requestID,
				"urn", req.URN,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to register establishment",
			"request_id", requestID,
			"urn", req.URN,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to register establishment"))
		return
	}

	h.logger.InfoContext(ctx, "establishment registered",
		"request_id", requestID,
		"urn", est.ID().String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, FromEstablishment(est))
}

// handleLookup returns the establishment registered under the {urn} path
// parameter.
func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	urn, err := parseURNParam(chi.URLParam(r, "urn"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid urn parameter",
			"request_id", requestID,
			"urn", chi.URLParam(r, "urn"),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	est, err := h.service.Lookup(ctx, urn)
	if err != nil {
		if clientError(err) {
			h.logger.WarnContext(ctx, "establishment lookup rejected",
				"request_id", requestID,
				"urn", urn.String(),
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to look up establishment",
			"request_id", requestID,
			"urn", urn.String(),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to look up establishment"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromEstablishment(est))
}

// handleList returns every registered establishment ordered by URN.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	ests, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list establishments",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list establishments"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromEstablishments(ests))
}

func (h *Handler) handleInspections(w http.ResponseWriter, r *http.Request) {
	h.notImplemented(w, "/establishments/{urn}/inspections")
}

func (h *Handler) notImplemented(w http.ResponseWriter, path string) {
	h.logger.Warn("Not implemented", slog.String("path", path))
	http.Error(w, "Not implemented", http.StatusNotImplemented)
}

// clientError reports whether err carries a code the caller can act on.
// Anything else is logged as a server failure and masked in the response.
func clientError(err error) bool {
	for _, code := range []dErrors.Code{
		dErrors.CodeInvalidInput,
		dErrors.CodeValidation,
		dErrors.CodeInvariantViolation,
		dErrors.CodeConflict,
		dErrors.CodeNotFound,
	} {
		if dErrors.Is(err, code) {
			return true
		}
	}
	return false
}
