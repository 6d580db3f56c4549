package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"rollcall/internal/legislators/models"
	"rollcall/internal/legislators/roles"
	"rollcall/internal/metadata"
	"rollcall/internal/platform/metrics"
	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type LegislatorStore interface {
	FindByID(ctx context.Context, id string) (*models.Legislator, error)
}

type CommitteeStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]*models.Committee, error)
}

type VoteStore interface {
	FindByID(ctx context.Context, id string) (*models.Vote, error)
}

type BillStore interface {
	FindByID(ctx context.Context, id string) (*models.Bill, error)
}

// Service loads legislator, vote and bill documents and binds them to their
// jurisdiction metadata for role resolution.
type Service struct {
	legislators LegislatorStore
	committees  CommitteeStore
	votes       VoteStore
	bills       BillStore
	registry    metadata.Registry
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service. All stores and the registry are required.
func New(legislators LegislatorStore, committees CommitteeStore, votes VoteStore, bills BillStore, registry metadata.Registry, opts ...Option) (*Service, error) {
	switch {
	case legislators == nil:
		return nil, errors.New("legislator store is required")
	case committees == nil:
		return nil, errors.New("committee store is required")
	case votes == nil:
		return nil, errors.New("vote store is required")
	case bills == nil:
		return nil, errors.New("bill store is required")
	case registry == nil:
		return nil, errors.New("metadata registry is required")
	}
	s := &Service{
		legislators: legislators,
		committees:  committees,
		votes:       votes,
		bills:       bills,
		registry:    registry,
		logger:      slog.New(slog.DiscardHandler),
		tracer:      otel.Tracer("rollcall/internal/legislators/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Legislator loads a legislator and binds it to its jurisdiction. Each call
// returns a new instance with empty caches.
func (s *Service) Legislator(ctx context.Context, legID string) (*roles.Legislator, error) {
	ctx, span := s.tracer.Start(ctx, "legislators.Legislator", trace.WithAttributes(
		attribute.String("leg_id", legID),
	))
	defer span.End()

	if legID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "legislator id is required")
	}
	doc, err := s.findLegislator(ctx, legID)
	if err != nil {
		return nil, fail(span, err)
	}
	leg, err := s.bind(ctx, doc)
	if err != nil {
		return nil, fail(span, err)
	}
	return leg, nil
}

// VoteRole resolves the role a legislator held when a vote was taken. The
// legislator and vote are fetched concurrently. A missing term in the
// legislator's history is reported as CodeUnprocessable wrapping
// models.ErrMissingTermData; an undetermined role is not an error.
// Each call binds a fresh roles.Legislator, so its vote memo does not carry
// across calls; callers that need reuse should hold a *roles.Legislator.
func (s *Service) VoteRole(ctx context.Context, legID, voteID string) (roles.Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "legislators.VoteRole", trace.WithAttributes(
		attribute.String("leg_id", legID),
		attribute.String("vote_id", voteID),
	))
	defer span.End()

	if legID == "" || voteID == "" {
		return roles.Resolution{}, dErrors.New(dErrors.CodeBadRequest, "legislator id and vote id are required")
	}

	var (
		doc  *models.Legislator
		vote *models.Vote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = s.findLegislator(gctx, legID)
		return err
	})
	g.Go(func() error {
		var err error
		vote, err = s.findVote(gctx, voteID)
		return err
	})
	if err := g.Wait(); err != nil {
		return roles.Resolution{}, fail(span, err)
	}

	leg, err := s.bind(ctx, doc)
	if err != nil {
		return roles.Resolution{}, fail(span, err)
	}

	res, err := leg.VoteRole(ctx, vote)
	if err != nil {
		if errors.Is(err, models.ErrMissingTermData) {
			s.metrics.IncrementOutcome("missing_term")
			s.logger.WarnContext(ctx, "vote role: legislator has no history for term",
				"leg_id", legID,
				"vote_id", voteID,
				"error", err.Error(),
			)
			return roles.Resolution{}, fail(span, dErrors.Wrap(err, dErrors.CodeUnprocessable,
				fmt.Sprintf("legislator %s has no historical data for the vote's term", legID)))
		}
		return roles.Resolution{}, fail(span, translate(err, fmt.Sprintf("bill for vote %s", voteID)))
	}

	s.metrics.IncrementOutcome(string(res.Outcome))
	span.SetAttributes(
		attribute.String("outcome", string(res.Outcome)),
		attribute.Int("candidates", res.Candidates),
	)
	s.logger.DebugContext(ctx, "vote role resolved",
		"leg_id", legID,
		"vote_id", voteID,
		"outcome", res.Outcome,
		"term", res.Term,
		"candidates", res.Candidates,
	)
	return res, nil
}

// SessionsFor returns the display names of a term's sessions in a
// jurisdiction.
func (s *Service) SessionsFor(ctx context.Context, abbr, term string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "legislators.SessionsFor", trace.WithAttributes(
		attribute.String("jurisdiction", abbr),
		attribute.String("term", term),
	))
	defer span.End()

	ix, err := s.index(ctx, abbr)
	if err != nil {
		return nil, fail(span, err)
	}
	names, ok := ix.SessionsFor(term)
	if !ok {
		return nil, fail(span, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("term %s not found", term)))
	}
	return names, nil
}

func (s *Service) bind(ctx context.Context, doc *models.Legislator) (*roles.Legislator, error) {
	ix, err := s.index(ctx, doc.State)
	if err != nil {
		return nil, err
	}
	return roles.New(doc, ix, s.committees, s.bills,
		roles.WithLogger(s.logger),
		roles.WithMetrics(s.metrics),
	), nil
}

func (s *Service) index(ctx context.Context, abbr string) (*metadata.Index, error) {
	start := time.Now()
	meta, err := s.registry.Get(ctx, abbr)
	s.metrics.ObserveLookupLatency("metadata", time.Since(start))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("jurisdiction %s", abbr))
	}
	return metadata.NewIndex(meta), nil
}

func (s *Service) findLegislator(ctx context.Context, legID string) (*models.Legislator, error) {
	start := time.Now()
	doc, err := s.legislators.FindByID(ctx, legID)
	s.metrics.ObserveLookupLatency("legislator", time.Since(start))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("legislator %s", legID))
	}
	return doc, nil
}

func (s *Service) findVote(ctx context.Context, voteID string) (*models.Vote, error) {
	start := time.Now()
	vote, err := s.votes.FindByID(ctx, voteID)
	s.metrics.ObserveLookupLatency("vote", time.Since(start))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("vote %s", voteID))
	}
	return vote, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// translate maps store and registry errors onto domain codes.
func translate(err error, subject string) error {
	if _, ok := dErrors.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, subject+" not found")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, subject+" unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, subject+" failed")
	}
}
