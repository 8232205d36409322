package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	service "github.com/okian/beastscore/internal/app"
	"github.com/okian/beastscore/internal/config"
	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFromConfig(t *testing.T) {
	Convey("Given a config with no API keys and a failing Blockscout", t, func() {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&hits, 1)
			_, _ = w.Write([]byte(`{"status":"0","message":"NOTOK","result":"rate limited"}`))
		}))
		defer srv.Close()

		cfg := config.New()
		cfg.BlockscoutBaseURL = srv.URL
		cfg.TemplatePath = "../../assets/templates/wallet_profile_example.json"
		cfg.MetadataTemplatePath = "../../assets/templates/beast_0_metadata.json"
		builder := 72.0
		cfg.Overrides = map[string]model.ManualOverride{wallet: {BuilderScore: &builder}}

		svc := service.FromConfig(cfg, logger.Nop())

		Convey("Scoring degrades to zeros but keeps the override", func() {
			p, err := svc.ComputeWalletProfile(context.Background(), wallet)
			So(err, ShouldBeNil)
			So(p.Network, ShouldEqual, "base-mainnet")
			So(p.Scores.Metrics[model.TxCount].RawValue, ShouldEqual, 0.0)
			So(p.Scores.Metrics[model.Builder].RawValue, ShouldEqual, 72.0)
			So(p.Scores.Tiers[model.Builder], ShouldEqual, model.Tier4)
			So(p.Sources, ShouldBeEmpty)
			So(atomic.LoadInt32(&hits), ShouldBeGreaterThan, int32(0))
		})

		Convey("The shipped metadata template is served", func() {
			meta, err := svc.BeastMetadata(context.Background(), "7")
			So(err, ShouldBeNil)
			So(meta["external_url"], ShouldEqual, "https://app.basebeast.xyz/beast/7")
		})
	})
}

func TestFromConfigSingleProviderFamilies(t *testing.T) {
	Convey("Given Moralis serving only swaps and the DeFi summary", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasSuffix(r.URL.Path, "/swaps"):
				_, _ = w.Write([]byte(`{"cursor":"","result":[{"totalValueUsd":"150.5"},{"totalValueUsd":49.5}]}`))
			case strings.HasSuffix(r.URL.Path, "/defi/summary"):
				_, _ = w.Write([]byte(`{"total_usd_value":"900","total_unclaimed_usd_value":"100"}`))
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
		}))
		defer srv.Close()

		cfg := config.New()
		cfg.MoralisAPIKey = "test-key"
		cfg.MoralisBaseURL = srv.URL
		cfg.BlockscoutBaseURL = srv.URL
		cfg.TemplatePath = "../../assets/templates/wallet_profile_example.json"

		p, err := service.FromConfig(cfg, logger.Nop()).ComputeWalletProfile(context.Background(), wallet)
		So(err, ShouldBeNil)

		Convey("Swaps and liquidity come from Moralis alone", func() {
			So(p.Sources, ShouldResemble, map[string]string{"swaps": "moralis", "liquidity": "moralis"})
			So(p.Scores.Metrics[model.DefiSwaps].RawValue, ShouldEqual, 2.0)
			So(p.Scores.Metrics[model.DefiVolume].RawValue, ShouldEqual, 200.0)
			So(p.Scores.Metrics[model.LiquidityYield].RawValue, ShouldEqual, 1000.0)
			So(p.Scores.Metrics[model.TxCount].RawValue, ShouldEqual, 0.0)
		})
	})
}
