package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	service "github.com/okian/beastscore/internal/app"
	"github.com/okian/beastscore/internal/config"
	"github.com/okian/beastscore/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainConfiguration(t *testing.T) {
	convey.Convey("Given BEAST_ environment variables", t, func() {
		t.Setenv("BEAST_ADDR", ":8080")
		t.Setenv("BEAST_NETWORK", "base-sepolia")
		t.Setenv("BEAST_DOTENV", "testdata/does-not-exist.env")

		convey.Convey("Then configuration is loadable", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.Network, convey.ShouldEqual, "base-sepolia")
		})
	})

	convey.Convey("Given an empty listen address", t, func() {
		t.Setenv("BEAST_ADDR", "")
		t.Setenv("BEAST_DOTENV", "testdata/does-not-exist.env")

		convey.Convey("Then configuration loading fails", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}

func TestNewServer(t *testing.T) {
	convey.Convey("Given the assembled HTTP server", t, func() {
		cfg := config.New()
		cfg.Network = "base-sepolia"
		cfg.TemplatePath = "../assets/templates/wallet_profile_example.json"
		cfg.MetadataTemplatePath = "../assets/templates/beast_0_metadata.json"
		srv := newServer(context.Background(), cfg, service.FromConfig(cfg, logger.Nop()))

		convey.So(srv.Addr, convey.ShouldEqual, ":4000")
		convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, readHeaderTimeout)

		get := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
			return w
		}

		convey.Convey("Then the status route reports the network", func() {
			w := get("/")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			var body map[string]any
			convey.So(json.Unmarshal(w.Body.Bytes(), &body), convey.ShouldBeNil)
			convey.So(body["network"], convey.ShouldEqual, "base-sepolia")
			convey.So(body["version"], convey.ShouldEqual, version)
		})

		convey.Convey("Then docs, health and metadata are routed", func() {
			convey.So(get("/api-docs").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/openapi.yaml").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/healthz").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/api/beast/3/metadata").Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("Then an invalid wallet is a bad request", func() {
			convey.So(get("/api/wallet/nope/score").Code, convey.ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestSystemMetricsUpdater(t *testing.T) {
	convey.Convey("Given a short-lived context", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		convey.Convey("Then the updater returns once it is done", func() {
			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}
