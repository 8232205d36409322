// Package service orchestrates one wallet scoring request end to end:
// template, provider aggregation, overrides, tiers, composite and traits.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/beastscore/internal/adapters/template"
	"github.com/okian/beastscore/internal/aggregate"
	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/internal/domain/override"
	"github.com/okian/beastscore/internal/domain/scoring"
	"github.com/okian/beastscore/internal/domain/tier"
	"github.com/okian/beastscore/internal/domain/traits"
	"github.com/okian/beastscore/pkg/logger"
	"github.com/okian/beastscore/pkg/metrics"
)

const (
	defaultNetwork = "base-mainnet"
	beastURLPrefix = "https://app.basebeast.xyz/beast/"
)

// Collector gathers provider-backed raw metrics.
type Collector interface {
	Collect(ctx context.Context, addr model.Address) (model.RawMetrics, aggregate.Sources)
}

// Templates supplies the baseline documents.
type Templates interface {
	LoadProfile(ctx context.Context) (*template.Document, error)
	LoadBeastMetadata(ctx context.Context) (map[string]any, error)
}

// Service computes wallet profiles. It holds only read-only collaborators and
// is safe for concurrent use.
type Service struct {
	log       logger.Logger
	collector Collector
	overrides *override.Resolver
	templates Templates
	engine    *scoring.Engine
	network   string
	now       func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAggregator sets the provider collector.
func WithAggregator(c Collector) Option {
	return func(s *Service) {
		if c != nil {
			s.collector = c
		}
	}
}

// WithOverrides sets the manual override table.
func WithOverrides(r *override.Resolver) Option {
	return func(s *Service) { s.overrides = r }
}

// WithTemplates sets the template source.
func WithTemplates(t Templates) Option {
	return func(s *Service) { s.templates = t }
}

// WithNetwork sets the network name written into profiles.
func WithNetwork(network string) Option {
	return func(s *Service) {
		if network != "" {
			s.network = network
		}
	}
}

// WithClock replaces time.Now for updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service. Without an aggregator every family reports zeros.
func New(opts ...Option) *Service {
	s := &Service{
		collector: aggregate.New(),
		engine:    scoring.NewEngine(),
		network:   defaultNetwork,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("service")
	}
	return s
}

// ComputeWalletProfile scores address. Provider failures degrade to zeros;
// only an invalid address or a template failure is returned as an error.
func (s *Service) ComputeWalletProfile(ctx context.Context, address string) (*model.Profile, error) {
	start := time.Now()
	p, err := s.compute(ctx, address)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.RecordProfile(result, float64(time.Since(start).Milliseconds()))
	return p, err
}

func (s *Service) compute(ctx context.Context, address string) (*model.Profile, error) {
	addr, err := model.ParseAddress(address)
	if err != nil {
		return nil, fmt.Errorf("compute profile %q: %w", address, err)
	}
	requestID := RequestIDFrom(ctx)

	doc, err := s.loadProfile(ctx)
	if err != nil {
		s.log.Error(ctx, "template load failed",
			logger.String("request_id", requestID),
			logger.String("address", addr.String()),
			logger.Error(err))
		return nil, err
	}

	raw := model.NewRawMetrics()
	raw[model.Builder] = doc.RawValue(model.Builder)
	raw[model.Social] = doc.RawValue(model.Social)

	collected, sources := s.collector.Collect(ctx, addr)
	for m, v := range collected {
		raw[m] = v
	}

	for _, m := range s.overrides.Apply(addr, raw) {
		metrics.RecordOverride(string(m))
		s.log.Debug(ctx, "override applied",
			logger.String("address", addr.String()),
			logger.String("metric", string(m)),
			logger.Float64("value", raw[m]))
	}

	scores := s.score(raw)
	p := &model.Profile{
		RequestID: requestID,
		Address:   addr,
		Network:   s.network,
		UpdatedAt: s.now().UTC(),
		Scores:    scores,
		Beast:     traits.Build(scores.Tiers, scores.Overall.Tier, doc.SpeciesID()),
		Sources:   sources,
	}
	doc.Apply(p)
	p.Document = doc.Map()

	metrics.RecordOverallTier(scores.Overall.Tier.Int())
	s.log.Info(ctx, "wallet profile computed",
		logger.String("request_id", requestID),
		logger.String("address", addr.String()),
		logger.Float64("tx_count", raw[model.TxCount]),
		logger.Float64("activity_days", raw[model.ActivityDays]),
		logger.Float64("nft_mints", raw[model.NFTMints]),
		logger.Int("overall_tier", scores.Overall.Tier.Int()),
		logger.Int("overall_score", scores.Overall.Score),
		logger.String("rarity", p.Beast.Rarity),
		logger.String("user_type", p.Beast.UserType))
	return p, nil
}

// score clamps raw in place, then tiers and composes it.
func (s *Service) score(raw model.RawMetrics) model.ScoreSet {
	set := model.ScoreSet{
		Metrics: make(map[model.Metric]model.MetricRecord, len(model.Metrics)),
		Tiers:   make(model.Tiers, len(model.Metrics)),
	}
	for _, m := range model.Metrics {
		rec := tier.Record(m, raw[m])
		raw[m] = rec.RawValue
		set.Metrics[m] = rec
		set.Tiers[m] = rec.Tier
	}
	set.Overall = s.engine.Compute(set.Tiers)
	return set
}

func (s *Service) loadProfile(ctx context.Context) (*template.Document, error) {
	if s.templates == nil {
		return nil, fmt.Errorf("%w: no template source configured", ErrTemplateLoad)
	}
	doc, err := s.templates.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	return doc, nil
}

// BeastMetadata returns the token metadata document for tokenID.
func (s *Service) BeastMetadata(ctx context.Context, tokenID string) (map[string]any, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		tokenID = "0"
	}
	if s.templates == nil {
		return nil, fmt.Errorf("%w: no template source configured", ErrTemplateLoad)
	}
	meta, err := s.templates.LoadBeastMetadata(ctx)
	if err != nil {
		s.log.Error(ctx, "metadata template load failed", logger.String("token_id", tokenID), logger.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	meta["name"] = "Base Beast #" + tokenID
	meta["external_url"] = beastURLPrefix + tokenID
	return meta, nil
}

type requestIDKey struct{}

// ContextWithRequestID attaches a request id to ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id in ctx, or a new random one.
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
