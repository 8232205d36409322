package service

import (
	"net/http"

	"github.com/okian/beastscore/internal/adapters/provider"
	"github.com/okian/beastscore/internal/adapters/template"
	"github.com/okian/beastscore/internal/aggregate"
	"github.com/okian/beastscore/internal/config"
	"github.com/okian/beastscore/internal/domain/override"
	"github.com/okian/beastscore/pkg/logger"
)

// FromConfig builds a Service with the provider chains, templates and
// overrides described by cfg. Providers are tried in this order:
//
//	tx:        etherscan, blockscout, moralis
//	nft:       moralis, etherscan, blockscout
//	swaps:     moralis
//	liquidity: moralis
//
// Only Moralis serves swap history and DeFi summaries, so those chains have a
// single entry.
func FromConfig(cfg *config.Config, log logger.Logger) *Service {
	hc := &http.Client{Timeout: cfg.HTTPTimeout()}
	plog := log.Named("provider")

	etherscan := provider.NewEtherscan(cfg.EtherscanAPIKey, cfg.ChainID,
		provider.WithHTTPClient(hc),
		provider.WithBaseURL(cfg.EtherscanBaseURL),
		provider.WithLogger(plog))
	blockscout := provider.NewBlockscout(cfg.BlockscoutBaseURL,
		provider.WithHTTPClient(hc),
		provider.WithLogger(plog))
	moralis := provider.NewMoralis(cfg.MoralisAPIKey, cfg.MoralisBaseURL,
		provider.WithHTTPClient(hc),
		provider.WithChain(cfg.MoralisChain),
		provider.WithLogger(plog))

	agg := aggregate.New(
		aggregate.WithTxListers(etherscan, blockscout, moralis),
		aggregate.WithNFTListers(moralis, etherscan, blockscout),
		aggregate.WithSwapListers(moralis),
		aggregate.WithPortfolioSummarizers(moralis),
		aggregate.WithLogger(log.Named("aggregate")),
	)

	return New(
		WithLogger(log.Named("service")),
		WithAggregator(agg),
		WithOverrides(override.New(cfg.Overrides)),
		WithTemplates(template.NewLoader(cfg.TemplatePath, cfg.MetadataTemplatePath)),
		WithNetwork(cfg.Network),
	)
}
