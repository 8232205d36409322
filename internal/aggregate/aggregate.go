// Package aggregate collects raw wallet metrics from ordered provider lists.
//
// Each metric family has its own list of clients. Clients are tried strictly
// in order and the first structurally valid response is adopted whole; data
// from different providers is never merged. A family whose clients all fail
// reports zeros.
package aggregate

import (
	"context"
	"errors"
	"time"

	"github.com/okian/beastscore/internal/adapters/provider"
	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/pkg/logger"
	"github.com/okian/beastscore/pkg/metrics"
)

// Outcome is the result of folding over one family's clients.
type Outcome[T any] struct {
	Value    T
	Provider string
	OK       bool
}

// Sources maps a family to the provider that served it. Exhausted families
// are absent.
type Sources map[string]string

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithTxListers sets the transaction family, highest priority first.
func WithTxListers(clients ...provider.TxLister) Option {
	return func(a *Aggregator) { a.tx = clients }
}

// WithNFTListers sets the NFT family, highest priority first.
func WithNFTListers(clients ...provider.NFTTransferLister) Option {
	return func(a *Aggregator) { a.nft = clients }
}

// WithSwapListers sets the swap family, highest priority first.
func WithSwapListers(clients ...provider.SwapLister) Option {
	return func(a *Aggregator) { a.swaps = clients }
}

// WithPortfolioSummarizers sets the liquidity family, highest priority first.
func WithPortfolioSummarizers(clients ...provider.PortfolioSummarizer) Option {
	return func(a *Aggregator) { a.portfolio = clients }
}

// WithLogger sets the aggregator logger.
func WithLogger(l logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// Aggregator is immutable after construction and safe for concurrent use.
type Aggregator struct {
	tx        []provider.TxLister
	nft       []provider.NFTTransferLister
	swaps     []provider.SwapLister
	portfolio []provider.PortfolioSummarizer
	log       logger.Logger
}

// New creates an aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Collect fetches every family sequentially and returns the provider-backed
// metrics: activity_days, tx_count, gas_spent, nft_mints, defi_swaps,
// defi_volume and liquidity_yield. It never fails.
func (a *Aggregator) Collect(ctx context.Context, addr model.Address) (model.RawMetrics, Sources) {
	raw := model.RawMetrics{}
	sources := Sources{}

	txs := firstSuccess(ctx, a.log, provider.FamilyTx, addr, a.tx,
		func(ctx context.Context, c provider.TxLister) ([]provider.Transaction, error) {
			return c.ListTransactions(ctx, addr)
		})
	stats := DeriveTxStats(addr, txs.Value)
	raw[model.TxCount] = float64(stats.Count)
	raw[model.ActivityDays] = float64(stats.ActiveDays)
	raw[model.GasSpent] = stats.GasETH
	note(sources, provider.FamilyTx, txs)

	nfts := firstSuccess(ctx, a.log, provider.FamilyNFT, addr, a.nft,
		func(ctx context.Context, c provider.NFTTransferLister) ([]provider.NFTTransfer, error) {
			return c.ListNFTTransfers(ctx, addr)
		})
	raw[model.NFTMints] = float64(CountMints(addr, nfts.Value))
	note(sources, provider.FamilyNFT, nfts)

	swaps := firstSuccess(ctx, a.log, provider.FamilySwaps, addr, a.swaps,
		func(ctx context.Context, c provider.SwapLister) ([]provider.Swap, error) {
			return c.ListSwaps(ctx, addr)
		})
	count, volume := SwapStats(swaps.Value)
	raw[model.DefiSwaps] = float64(count)
	raw[model.DefiVolume] = volume
	note(sources, provider.FamilySwaps, swaps)

	liq := firstSuccess(ctx, a.log, provider.FamilyLiquidity, addr, a.portfolio,
		func(ctx context.Context, c provider.PortfolioSummarizer) (provider.PortfolioSummary, error) {
			return c.PortfolioSummary(ctx, addr)
		})
	raw[model.LiquidityYield] = LiquidityUSD(liq.Value)
	note(sources, provider.FamilyLiquidity, liq)

	return raw, sources
}

func note[T any](s Sources, family string, o Outcome[T]) {
	if o.OK {
		s[family] = o.Provider
	}
}

// firstSuccess calls clients in order and returns the first success. The zero
// Outcome is returned when every client fails.
func firstSuccess[C provider.Named, T any](
	ctx context.Context,
	log logger.Logger,
	family string,
	addr model.Address,
	clients []C,
	call func(context.Context, C) (T, error),
) Outcome[T] {
	for i, c := range clients {
		start := time.Now()
		v, err := call(ctx, c)
		took := time.Since(start)
		metrics.RecordProviderRequest(c.Name(), family, outcomeLabel(err), float64(took.Milliseconds()))

		if err == nil {
			log.Debug(ctx, "provider served family",
				logger.String("provider", c.Name()),
				logger.String("family", family),
				logger.String("address", addr.String()),
				logger.Duration("took", took))
			return Outcome[T]{Value: v, Provider: c.Name(), OK: true}
		}

		log.Warn(ctx, "provider failed, advancing",
			logger.String("provider", c.Name()),
			logger.String("family", family),
			logger.String("address", addr.String()),
			logger.String("outcome", outcomeLabel(err)),
			logger.Int("remaining", len(clients)-i-1),
			logger.Error(err))
	}

	metrics.RecordFamilyExhausted(family)
	log.Warn(ctx, "all providers failed, using zero defaults",
		logger.String("family", family),
		logger.String("address", addr.String()),
		logger.Int("providers", len(clients)))
	return Outcome[T]{}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, provider.ErrMissingCredentials):
		return metrics.OutcomeNoCreds
	case errors.Is(err, provider.ErrMalformed):
		return metrics.OutcomeMalformed
	default:
		return metrics.OutcomeUnavailable
	}
}
