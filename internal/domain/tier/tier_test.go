package tier_test

import (
	"math"
	"testing"

	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/internal/domain/tier"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMappers(t *testing.T) {
	Convey("Given the tier ladders", t, func() {
		Convey("Thresholds are inclusive", func() {
			So(tier.TxCount(0), ShouldEqual, model.Tier0)
			So(tier.TxCount(1), ShouldEqual, model.Tier1)
			So(tier.TxCount(9), ShouldEqual, model.Tier1)
			So(tier.TxCount(10), ShouldEqual, model.Tier2)
			So(tier.TxCount(50), ShouldEqual, model.Tier3)
			So(tier.TxCount(200), ShouldEqual, model.Tier4)
			So(tier.TxCount(1000), ShouldEqual, model.Tier5)
			So(tier.TxCount(1e9), ShouldEqual, model.Tier5)
		})

		Convey("Each metric follows its own ladder", func() {
			So(tier.ActivityDays(365), ShouldEqual, model.Tier5)
			So(tier.ActivityDays(59), ShouldEqual, model.Tier2)
			So(tier.Builder(65), ShouldEqual, model.Tier3)
			So(tier.Social(90), ShouldEqual, model.Tier5)
			So(tier.DefiSwaps(5), ShouldEqual, model.Tier2)
			So(tier.DefiVolume(999.99), ShouldEqual, model.Tier2)
			So(tier.LiquidityYield(1_000_000), ShouldEqual, model.Tier5)
			So(tier.NFTMints(3), ShouldEqual, model.Tier2)
			So(tier.GasSpent(0.00005), ShouldEqual, model.Tier0)
			So(tier.GasSpent(0.02), ShouldEqual, model.Tier3)
		})

		Convey("Non-finite and negative values map to tier 0", func() {
			for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1, -1e9} {
				for _, m := range model.Metrics {
					So(tier.Map(m, v), ShouldEqual, model.Tier0)
				}
			}
		})

		Convey("Unknown metrics map to tier 0", func() {
			So(tier.Map(model.Metric("karma"), 1e6), ShouldEqual, model.Tier0)
		})

		Convey("Every threshold opens its tier", func() {
			for _, m := range model.Metrics {
				l, ok := tier.LadderFor(m)
				So(ok, ShouldBeTrue)
				for i, threshold := range l {
					if i > 0 {
						So(threshold, ShouldBeGreaterThan, l[i-1])
					}
					So(tier.Map(m, threshold), ShouldEqual, model.TierFromInt(i+1))
				}
			}
			_, ok := tier.LadderFor(model.Metric("karma"))
			So(ok, ShouldBeFalse)
		})

		Convey("Mappers are monotonic", func() {
			for _, m := range model.Metrics {
				prev := model.Tier0
				for v := 0.0; v <= 2_000_000; v = v*1.7 + 0.00003 {
					cur := tier.Map(m, v)
					So(cur, ShouldBeGreaterThanOrEqualTo, prev)
					prev = cur
				}
			}
		})
	})
}

func TestMapAll(t *testing.T) {
	Convey("MapAll tiers every canonical metric", t, func() {
		raw := model.RawMetrics{model.TxCount: 12}
		tiers := tier.MapAll(raw)
		So(len(tiers), ShouldEqual, len(model.Metrics))
		So(tiers[model.TxCount], ShouldEqual, model.Tier2)
		So(tiers[model.Social], ShouldEqual, model.Tier0)
	})
}

func TestLabels(t *testing.T) {
	Convey("Given label tables", t, func() {
		Convey("Known metric tiers resolve", func() {
			So(tier.Label(model.TxCount, model.Tier2), ShouldEqual, "Active User")
			So(tier.Label(model.Builder, model.Tier5), ShouldEqual, "Ecosystem Architect")
			So(tier.OverallLabels.At(model.Tier0), ShouldEqual, "Newcomer")
		})

		Convey("Out-of-range tiers and unknown metrics are Unknown", func() {
			So(tier.Label(model.TxCount, model.Tier(9)), ShouldEqual, tier.UnknownLabel)
			So(tier.Label(model.Metric("karma"), model.Tier1), ShouldEqual, tier.UnknownLabel)
		})

		Convey("Every metric has six distinct non-empty labels", func() {
			for _, m := range model.Metrics {
				seen := map[string]bool{}
				for i := 0; i <= int(model.MaxTier); i++ {
					l := tier.Label(m, model.Tier(i))
					So(l, ShouldNotBeEmpty)
					So(l, ShouldNotEqual, tier.UnknownLabel)
					So(seen[l], ShouldBeFalse)
					seen[l] = true
				}
			}
		})

		Convey("Record clamps the raw value", func() {
			rec := tier.Record(model.DefiVolume, math.NaN())
			So(rec.RawValue, ShouldEqual, 0.0)
			So(rec.Tier, ShouldEqual, model.Tier0)
			So(rec.TierLabel, ShouldEqual, "No Volume")
		})
	})
}
