// Package service orchestrates the Establishment context. It composes the
// domain constructors bottom-up, persists through the store, and translates
// infrastructure facts into coded domain errors. It keeps orchestration out
// of handlers and domain logic thin.
package service

import (
	"context"
	"errors"
	"log/slog"

	"edubase/internal/establishment/domain"
	"edubase/internal/platform/metrics"
	dErrors "edubase/pkg/domain-errors"
	"edubase/pkg/platform/sentinel"
	"edubase/pkg/requestcontext"
)

// Store defines the persistence interface the service consumes.
type Store interface {
	Save(ctx context.Context, est domain.Establishment) error
	FindByURN(ctx context.Context, urn domain.URN) (domain.Establishment, error)
	List(ctx context.Context) ([]domain.Establishment, error)
}

// RegisterInput carries the raw fields for registering an establishment.
// Validation belongs to the domain constructors, not to this struct.
type RegisterInput struct {
	URN             int
	Name            string
	WebsiteURL      string
	TelephoneNumber string
}

type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: m,
	}
}

// Register builds the aggregate bottom-up: identifier and details first, so
// their constructors validate the raw fields, then the establishment itself.
// The first validation failure is returned as-is; its message is client-safe.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.Establishment, error) {
	urn, err := domain.NewURN(in.URN)
	if err != nil {
		return domain.Establishment{}, err
	}

	details, err := domain.NewDetails(in.Name, in.WebsiteURL, in.TelephoneNumber)
	if err != nil {
		return domain.Establishment{}, err
	}

	est, err := domain.NewEstablishment(urn, details)
	if err != nil {
		return domain.Establishment{}, err
	}

	if err := s.store.Save(ctx, est); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			s.logger.WarnContext(ctx, "establishment already registered",
				"request_id", requestcontext.RequestID(ctx),
				"urn", urn.String(),
			)
			return domain.Establishment{}, dErrors.Wrap(err, dErrors.CodeConflict, "establishment already registered")
		}
		return domain.Establishment{}, dErrors.Wrap(err, dErrors.CodeInternal, "saving establishment")
	}

	if s.metrics != nil {
		s.metrics.IncrementEstablishmentsRegistered()
	}
	return est, nil
}

// Lookup returns the establishment registered under urn.
func (s *Service) Lookup(ctx context.Context, urn domain.URN) (domain.Establishment, error) {
	est, err := s.store.FindByURN(ctx, urn)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domain.Establishment{}, dErrors.Wrap(err, dErrors.CodeNotFound, "establishment not found")
		}
		return domain.Establishment{}, dErrors.Wrap(err, dErrors.CodeInternal, "looking up establishment")
	}
	return est, nil
}

// List returns all registered establishments ordered by URN.
func (s *Service) List(ctx context.Context) ([]domain.Establishment, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "listing establishments")
	}
	return all, nil
}
