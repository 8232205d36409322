package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/beastscore/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

const overrideAddr = "0xabcdef0123456789abcdef0123456789abcdef01"

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		_ = os.Setenv("BEAST_DOTENV", filepath.Join(t.TempDir(), "missing.env"))
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":4000")
				convey.So(cfg.HTTPTimeoutMS, convey.ShouldEqual, 15_000)
				convey.So(cfg.BatchWorkers, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("BEAST_ADDR", ":8080")
			_ = os.Setenv("BEAST_MORALIS_API_KEY", "moralis-key")
			_ = os.Setenv("BEAST_ETHERSCAN_API_KEY", "etherscan-key")
			_ = os.Setenv("BEAST_HTTP_TIMEOUT_MS", "2500")
			_ = os.Setenv("BEAST_BATCH_WORKERS", "16")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MoralisAPIKey, convey.ShouldEqual, "moralis-key")
				convey.So(cfg.EtherscanAPIKey, convey.ShouldEqual, "etherscan-key")
				convey.So(cfg.HTTPTimeoutMS, convey.ShouldEqual, 2500)
				convey.So(cfg.BatchWorkers, convey.ShouldEqual, 16)
			})
		})

		convey.Convey("When loading config with YAML file and overrides", func() {
			tmpFile := createTempConfigFile(t, `
addr: ":9090"
network: "base-sepolia"
overrides:
  "`+overrideAddr+`":
    builder_score: 65
    social_score: 30.5
`)
			_ = os.Setenv("BEAST_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Network, convey.ShouldEqual, "base-sepolia")
				convey.So(cfg.ChainID, convey.ShouldEqual, "8453") // From defaults
				o, ok := cfg.Overrides[overrideAddr]
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(*o.BuilderScore, convey.ShouldEqual, 65.0)
				convey.So(*o.SocialScore, convey.ShouldEqual, 30.5)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(t, `
addr: ":9090"
batch_workers: 24
`)
			_ = os.Setenv("BEAST_CONFIG", tmpFile)
			_ = os.Setenv("BEAST_ADDR", ":8080")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")    // Overridden by env
				convey.So(cfg.BatchWorkers, convey.ShouldEqual, 24) // From file
			})
		})

		convey.Convey("When a .env file is present", func() {
			dotenv := filepath.Join(t.TempDir(), "test.env")
			convey.So(os.WriteFile(dotenv, []byte("BEAST_MORALIS_API_KEY=from-dotenv\nBEAST_ADDR=:7000\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("BEAST_DOTENV", dotenv)
			_ = os.Setenv("BEAST_ADDR", ":8080")

			cfg, err := config.Load(ctx)

			convey.Convey("Then its values fill in but do not replace the environment", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.MoralisAPIKey, convey.ShouldEqual, "from-dotenv")
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv("BEAST_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("BEAST_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("BEAST_ADDR", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("BEAST_HTTP_TIMEOUT_MS", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the timeout is zero", func() {
			_ = os.Setenv("BEAST_HTTP_TIMEOUT_MS", "0")

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When an override score is out of range", func() {
			tmpFile := createTempConfigFile(t, `
overrides:
  "`+overrideAddr+`":
    builder_score: 150
`)
			_ = os.Setenv("BEAST_CONFIG", tmpFile)

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "builder_score")
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"BEAST_CONFIG",
		"BEAST_DOTENV",
		"BEAST_ADDR",
		"BEAST_MORALIS_API_KEY",
		"BEAST_ETHERSCAN_API_KEY",
		"BEAST_HTTP_TIMEOUT_MS",
		"BEAST_BATCH_WORKERS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "beast-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
