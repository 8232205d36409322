package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/pkg/logger"
)

// Moralis defaults.
const (
	MoralisURL     = "https://deep-index.moralis.io/api/v2.2"
	MoralisChain   = "base"
	moralisPageLen = "100"
)

// Moralis is the indexer client. It implements TxLister, NFTTransferLister,
// SwapLister and PortfolioSummarizer. An API key is always required.
type Moralis struct {
	base
}

// NewMoralis creates a Moralis client. An empty baseURL selects MoralisURL.
func NewMoralis(apiKey, baseURL string, opts ...Option) *Moralis {
	if baseURL == "" {
		baseURL = MoralisURL
	}
	opts = append([]Option{WithAPIKey(apiKey), WithChain(MoralisChain), WithRequiredAPIKey()}, opts...)
	m := &Moralis{base: newBase("moralis", baseURL, opts)}
	m.baseURL = strings.TrimRight(m.baseURL, "/")
	return m
}

type moralisPage struct {
	Cursor string          `json:"cursor"`
	Result json.RawMessage `json:"result"`
}

type moralisTx struct {
	FromAddress    string `json:"from_address"`
	ToAddress      string `json:"to_address"`
	BlockTimestamp string `json:"block_timestamp"`
	ReceiptGasUsed Number `json:"receipt_gas_used"`
	GasPrice       Number `json:"gas_price"`
	ReceiptStatus  string `json:"receipt_status"`
}

type moralisNFTTransfer struct {
	FromAddress  string `json:"from_address"`
	ToAddress    string `json:"to_address"`
	PossibleSpam Flag   `json:"possible_spam"`
	Category     string `json:"category"`
}

type moralisSwap struct {
	TotalValueUSD Number `json:"totalValueUsd"`
}

type moralisDefiSummary struct {
	TotalUSDValue          *Number `json:"total_usd_value"`
	TotalUnclaimedUSDValue *Number `json:"total_unclaimed_usd_value"`
}

// ListTransactions implements TxLister via the wallet history endpoint.
func (m *Moralis) ListTransactions(ctx context.Context, addr model.Address) ([]Transaction, error) {
	rows, err := moralisPages[moralisTx](ctx, m, m.baseURL+"/wallets/"+addr.String()+"/history", FamilyTx)
	if err != nil {
		return nil, err
	}
	out := make([]Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, Transaction{
			From:      model.Canonical(r.FromAddress),
			To:        model.Canonical(r.ToAddress),
			Timestamp: isoTime(r.BlockTimestamp),
			GasUsed:   r.ReceiptGasUsed.Decimal,
			GasPrice:  r.GasPrice.Decimal,
			Failed:    r.ReceiptStatus == "0",
		})
	}
	return out, nil
}

// ListNFTTransfers implements NFTTransferLister.
func (m *Moralis) ListNFTTransfers(ctx context.Context, addr model.Address) ([]NFTTransfer, error) {
	rows, err := moralisPages[moralisNFTTransfer](ctx, m, m.baseURL+"/"+addr.String()+"/nft/transfers", FamilyNFT)
	if err != nil {
		return nil, err
	}
	out := make([]NFTTransfer, 0, len(rows))
	for _, r := range rows {
		out = append(out, NFTTransfer{
			From: model.Canonical(r.FromAddress),
			To:   model.Canonical(r.ToAddress),
			Spam: bool(r.PossibleSpam) || strings.EqualFold(r.Category, "spam"),
		})
	}
	return out, nil
}

// ListSwaps implements SwapLister.
func (m *Moralis) ListSwaps(ctx context.Context, addr model.Address) ([]Swap, error) {
	rows, err := moralisPages[moralisSwap](ctx, m, m.baseURL+"/wallets/"+addr.String()+"/swaps", FamilySwaps)
	if err != nil {
		return nil, err
	}
	out := make([]Swap, 0, len(rows))
	for _, r := range rows {
		out = append(out, Swap{ValueUSD: r.TotalValueUSD.Decimal})
	}
	return out, nil
}

// PortfolioSummary implements PortfolioSummarizer. A summary with neither
// value field is malformed.
func (m *Moralis) PortfolioSummary(ctx context.Context, addr model.Address) (PortfolioSummary, error) {
	if err := m.checkCredentials(); err != nil {
		return PortfolioSummary{}, err
	}
	var raw json.RawMessage
	if err := m.getJSON(ctx, m.baseURL+"/wallets/"+addr.String()+"/defi/summary",
		url.Values{"chain": {m.chain}}, m.header(), FamilyLiquidity, &raw); err != nil {
		return PortfolioSummary{}, err
	}
	var s moralisDefiSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		return PortfolioSummary{}, fmt.Errorf("%s: %w: summary is not an object: %v", m.name, ErrMalformed, err)
	}
	if s.TotalUSDValue == nil && s.TotalUnclaimedUSDValue == nil {
		return PortfolioSummary{}, fmt.Errorf("%s: %w: summary has no value fields", m.name, ErrMalformed)
	}
	var out PortfolioSummary
	if s.TotalUSDValue != nil {
		out.HeldUSD = s.TotalUSDValue.Decimal
	}
	if s.TotalUnclaimedUSDValue != nil {
		out.UnclaimedUSD = s.TotalUnclaimedUSDValue.Decimal
	}
	return out, nil
}

func (m *Moralis) header() http.Header {
	return http.Header{"X-API-Key": {m.apiKey}}
}

// moralisPages follows the response cursor for at most MaxPages pages.
func moralisPages[T any](ctx context.Context, m *Moralis, endpoint, family string) ([]T, error) {
	if err := m.checkCredentials(); err != nil {
		return nil, err
	}
	var (
		all    []T
		cursor string
	)
	for page := 1; page <= MaxPages; page++ {
		q := url.Values{}
		q.Set("chain", m.chain)
		q.Set("limit", moralisPageLen)
		q.Set("order", "ASC")
		if cursor != "" {
			q.Set("cursor", cursor)
		}
		var p moralisPage
		if err := m.getJSON(ctx, endpoint, q, m.header(), family, &p); err != nil {
			return nil, err
		}
		var rows []T
		if len(p.Result) == 0 || json.Unmarshal(p.Result, &rows) != nil || rows == nil {
			return nil, fmt.Errorf("%s: %w: response has no result list", m.name, ErrMalformed)
		}
		all = append(all, rows...)
		m.log.Debug(ctx, "moralis page fetched",
			logger.String("endpoint", endpoint),
			logger.Int("page", page),
			logger.Int("rows", len(rows)),
			logger.Bool("has_cursor", p.Cursor != ""))
		if p.Cursor == "" {
			break
		}
		cursor = p.Cursor
	}
	return all, nil
}
