package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/pkg/logger"
)

// Default explorer endpoints.
const (
	EtherscanV2URL  = "https://api.etherscan.io/v2/api"
	BlockscoutURL   = "https://base.blockscout.com/api"
	BaseChainID     = "8453"
	explorerPageLen = 1000
)

// emptyMessages are the status "0" messages that mean "valid, no rows".
var emptyMessages = []string{
	"no transactions found",
	"no token transfers found",
	"no records found",
}

// Explorer speaks the Etherscan-compatible account API. Etherscan v2 and
// Blockscout both serve it. It implements TxLister and NFTTransferLister.
type Explorer struct {
	base
}

// NewExplorer creates an explorer client for baseURL.
func NewExplorer(name, baseURL string, opts ...Option) *Explorer {
	return &Explorer{base: newBase(name, baseURL, opts)}
}

// NewEtherscan creates the Etherscan v2 client for the given chain id. An API
// key is required.
func NewEtherscan(apiKey, chainID string, opts ...Option) *Explorer {
	opts = append([]Option{WithAPIKey(apiKey), WithChain(chainID), WithRequiredAPIKey()}, opts...)
	return NewExplorer("etherscan", EtherscanV2URL, opts...)
}

// NewBlockscout creates a Blockscout client. The API key is optional.
func NewBlockscout(baseURL string, opts ...Option) *Explorer {
	if baseURL == "" {
		baseURL = BlockscoutURL
	}
	return NewExplorer("blockscout", baseURL, opts...)
}

type explorerEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type explorerTx struct {
	From      string `json:"from"`
	To        string `json:"to"`
	TimeStamp Number `json:"timeStamp"`
	GasUsed   Number `json:"gasUsed"`
	GasPrice  Number `json:"gasPrice"`
	IsError   string `json:"isError"`
}

type explorerNFTTransfer struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ListTransactions implements TxLister using action=txlist.
func (e *Explorer) ListTransactions(ctx context.Context, addr model.Address) ([]Transaction, error) {
	rows, err := explorerPages[explorerTx](ctx, e, "txlist", FamilyTx, addr)
	if err != nil {
		return nil, err
	}
	out := make([]Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, Transaction{
			From:      model.Canonical(r.From),
			To:        model.Canonical(r.To),
			Timestamp: unixSeconds(r.TimeStamp),
			GasUsed:   r.GasUsed.Decimal,
			GasPrice:  r.GasPrice.Decimal,
			Failed:    r.IsError == "1",
		})
	}
	return out, nil
}

// ListNFTTransfers implements NFTTransferLister using action=tokennfttx.
// The account API carries no spam classification.
func (e *Explorer) ListNFTTransfers(ctx context.Context, addr model.Address) ([]NFTTransfer, error) {
	rows, err := explorerPages[explorerNFTTransfer](ctx, e, "tokennfttx", FamilyNFT, addr)
	if err != nil {
		return nil, err
	}
	out := make([]NFTTransfer, 0, len(rows))
	for _, r := range rows {
		out = append(out, NFTTransfer{From: model.Canonical(r.From), To: model.Canonical(r.To)})
	}
	return out, nil
}

func (e *Explorer) query(action string, addr model.Address, page int) url.Values {
	q := url.Values{}
	if e.chain != "" {
		q.Set("chainid", e.chain)
	}
	q.Set("module", "account")
	q.Set("action", action)
	q.Set("address", addr.String())
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("page", strconv.Itoa(page))
	q.Set("offset", strconv.Itoa(explorerPageLen))
	q.Set("sort", "asc")
	if e.apiKey != "" {
		q.Set("apikey", e.apiKey)
	}
	return q
}

// explorerPages walks pages 1..MaxPages. The page number is the cursor; a
// short or empty page ends the walk.
func explorerPages[T any](ctx context.Context, e *Explorer, action, family string, addr model.Address) ([]T, error) {
	if err := e.checkCredentials(); err != nil {
		return nil, err
	}
	var all []T
	for page := 1; page <= MaxPages; page++ {
		var env explorerEnvelope
		if err := e.getJSON(ctx, e.baseURL, e.query(action, addr, page), nil, family, &env); err != nil {
			return nil, err
		}
		rows, err := decodeExplorerResult[T](e.name, env)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		e.log.Debug(ctx, "explorer page fetched",
			logger.String("provider", e.name),
			logger.String("action", action),
			logger.Int("page", page),
			logger.Int("rows", len(rows)))
		if len(rows) < explorerPageLen {
			break
		}
	}
	return all, nil
}

func decodeExplorerResult[T any](name string, env explorerEnvelope) ([]T, error) {
	switch env.Status {
	case "1":
		var rows []T
		if err := json.Unmarshal(env.Result, &rows); err != nil {
			return nil, fmt.Errorf("%s: %w: result is not a list: %v", name, ErrMalformed, err)
		}
		if rows == nil {
			return nil, fmt.Errorf("%s: %w: result is missing", name, ErrMalformed)
		}
		return rows, nil
	case "0":
		if isEmptyMessage(env.Message) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w: %s: %s", name, ErrUnavailable, env.Message, rawSnippet(env.Result))
	default:
		return nil, fmt.Errorf("%s: %w: unexpected status %q", name, ErrMalformed, env.Status)
	}
}

func isEmptyMessage(msg string) bool {
	msg = strings.ToLower(strings.TrimSpace(msg))
	for _, m := range emptyMessages {
		if msg == m {
			return true
		}
	}
	return false
}

func rawSnippet(raw json.RawMessage) string {
	const limit = 120
	s := string(raw)
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
