package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(reg), WithNamespace("test"), WithConstLabels(map[string]string{"env": "ci"}))

		Convey("Profile and provider counters accumulate by label", func() {
			m.RecordProfile("ok", 12)
			m.RecordProfile("ok", 30)
			m.RecordProfile("error", 1)
			m.RecordProviderRequest("etherscan", "tx", OutcomeUnavailable, 40)
			m.RecordProviderPage("moralis", "nft")
			m.RecordFamilyExhausted("swaps")

			So(testutil.ToFloat64(m.profilesComputed.WithLabelValues("ok")), ShouldEqual, 2.0)
			So(testutil.ToFloat64(m.profilesComputed.WithLabelValues("error")), ShouldEqual, 1.0)
			So(testutil.ToFloat64(m.providerRequests.WithLabelValues("etherscan", "tx", OutcomeUnavailable)), ShouldEqual, 1.0)
			So(testutil.ToFloat64(m.providerPages.WithLabelValues("moralis", "nft")), ShouldEqual, 1.0)
			So(testutil.ToFloat64(m.familyExhausted.WithLabelValues("swaps")), ShouldEqual, 1.0)
		})

		Convey("Batch and system gauges hold the last value", func() {
			m.RecordBatchAddress("scored")
			m.RecordBatchDuplicate()
			m.UpdateWorkerCount(4)
			m.UpdateWorkerCount(2)
			m.UpdateSystemMemoryUsage(2048)
			m.UpdateSystemGoroutineCount(9)

			So(testutil.ToFloat64(m.batchAddresses.WithLabelValues("scored")), ShouldEqual, 1.0)
			So(testutil.ToFloat64(m.batchDuplicates), ShouldEqual, 1.0)
			So(testutil.ToFloat64(m.workerCount), ShouldEqual, 2.0)
			So(testutil.ToFloat64(m.systemMemoryUsage), ShouldEqual, 2048.0)
			So(testutil.ToFloat64(m.systemGoroutineCount), ShouldEqual, 9.0)
		})

		Convey("Collectors are exposed with namespace and const labels", func() {
			m.RecordHTTPRequest("/api/wallet/{address}/score", "GET", "200", 5)
			m.RecordOverride("builder")
			m.RecordOverallTier(3)

			expected := `
# HELP test_score_overrides_applied_total Manual overrides applied by metric
# TYPE test_score_overrides_applied_total counter
test_score_overrides_applied_total{env="ci",metric="builder"} 1
`
			So(testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_score_overrides_applied_total"), ShouldBeNil)

			n, err := testutil.GatherAndCount(reg, "test_score_http_requests_total")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
		})
	})
}

func TestGlobalManager(t *testing.T) {
	Convey("Package helpers write to the custom registry", t, func() {
		RecordBatchDuplicate()
		RecordErrorByEndpoint("/healthz", "GET", "internal")

		n, err := testutil.GatherAndCount(GetRegistry(), "beast_score_batch_duplicates_total")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 1)
		So(testutil.ToFloat64(globalManager.batchDuplicates), ShouldBeGreaterThanOrEqualTo, 1.0)
	})
}
