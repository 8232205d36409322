// Package provider contains HTTP clients for the wallet data sources.
//
// Each client exposes one or more capability interfaces. Clients never retry
// and never fall back on their own; the aggregator decides what to do with a
// failure. Paginated calls stop after MaxPages pages.
package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/beastscore/internal/domain/model"
)

// MaxPages bounds every paginated fetch.
const MaxPages = 5

// Family names used for logs and metrics.
const (
	FamilyTx        = "tx"
	FamilyNFT       = "nft"
	FamilySwaps     = "swaps"
	FamilyLiquidity = "liquidity"
)

// Named is implemented by every client.
type Named interface {
	Name() string
}

// TxLister lists the normal transactions of an address.
type TxLister interface {
	Named
	ListTransactions(ctx context.Context, addr model.Address) ([]Transaction, error)
}

// NFTTransferLister lists NFT transfers involving an address.
type NFTTransferLister interface {
	Named
	ListNFTTransfers(ctx context.Context, addr model.Address) ([]NFTTransfer, error)
}

// SwapLister lists DEX swaps made by an address.
type SwapLister interface {
	Named
	ListSwaps(ctx context.Context, addr model.Address) ([]Swap, error)
}

// PortfolioSummarizer reports the DeFi position value of an address.
type PortfolioSummarizer interface {
	Named
	PortfolioSummary(ctx context.Context, addr model.Address) (PortfolioSummary, error)
}

// Transaction is a normalized chain transaction. Timestamp is zero when the
// provider value could not be parsed.
type Transaction struct {
	From      model.Address
	To        model.Address
	Timestamp time.Time
	GasUsed   decimal.Decimal
	GasPrice  decimal.Decimal // wei
	Failed    bool
}

// NFTTransfer is a normalized NFT transfer event.
type NFTTransfer struct {
	From model.Address
	To   model.Address
	Spam bool
}

// Swap is a normalized DEX swap.
type Swap struct {
	ValueUSD decimal.Decimal
}

// PortfolioSummary is the DeFi position value of a wallet.
type PortfolioSummary struct {
	HeldUSD      decimal.Decimal
	UnclaimedUSD decimal.Decimal
}
