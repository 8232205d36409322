package scoring_test

import (
	"testing"

	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngine(t *testing.T) {
	Convey("Given the default engine", t, func() {
		e := scoring.NewEngine()

		Convey("A mixed wallet scores over all nine metrics", func() {
			got := e.Compute(model.Tiers{
				model.TxCount:      model.Tier2,
				model.ActivityDays: model.Tier1,
				model.Builder:      model.Tier3,
				model.Social:       model.Tier2,
			})
			So(got.Tier, ShouldEqual, model.Tier1)
			So(got.Score, ShouldEqual, 18)
			So(got.Label, ShouldEqual, "Base Explorer")
		})

		Convey("Empty tiers score zero", func() {
			got := e.Compute(nil)
			So(got.Tier, ShouldEqual, model.Tier0)
			So(got.Score, ShouldEqual, 0)
			So(got.Label, ShouldEqual, "Newcomer")
		})

		Convey("Maxed tiers score 100", func() {
			all := model.Tiers{}
			for _, m := range model.Metrics {
				all[m] = model.Tier5
			}
			got := e.Compute(all)
			So(got.Tier, ShouldEqual, model.Tier5)
			So(got.Score, ShouldEqual, 100)
		})
	})

	Convey("Given a narrowed metric set", t, func() {
		e := scoring.NewEngine(scoring.WithMetricSet([]model.Metric{model.TxCount, model.Builder}))
		got := e.Compute(model.Tiers{model.TxCount: model.Tier5, model.Social: model.Tier5})
		So(got.Tier, ShouldEqual, model.Tier3)
		So(got.Score, ShouldEqual, 50)
	})
}

func TestRounding(t *testing.T) {
	Convey("Halves round away from zero", t, func() {
		So(scoring.OverallTier(5, 2), ShouldEqual, model.Tier3)
		So(scoring.OverallTier(3, 2), ShouldEqual, model.Tier2)
		So(scoring.OverallScore(1, 40), ShouldEqual, 1)
		So(scoring.OverallTier(1, 0), ShouldEqual, model.Tier0)
		So(scoring.OverallScore(1, 0), ShouldEqual, 0)
	})

	Convey("Results stay in range", t, func() {
		So(scoring.OverallTier(100, 1), ShouldEqual, model.MaxTier)
		So(scoring.OverallScore(100, 1), ShouldEqual, 100)
		So(scoring.OverallScore(-4, 1), ShouldEqual, 0)
	})
}
