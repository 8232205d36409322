package template

import (
	"github.com/okian/beastscore/internal/domain/model"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Document is a parsed wallet profile template. Apply writes scored fields
// into it and leaves every other field alone.
type Document struct {
	root map[string]any
}

// Map returns the underlying document.
func (d *Document) Map() map[string]any { return d.root }

// RawValue returns scores.metrics.<m>.raw_value, or 0.
func (d *Document) RawValue(m model.Metric) float64 {
	metric, _ := child(d.root, "scores", "metrics", string(m))
	return model.LenientFloat(metric["raw_value"])
}

// SpeciesID returns beast_preview.species_id, or 0 when missing or invalid.
// Callers pick the default species.
func (d *Document) SpeciesID() int {
	beast, _ := child(d.root, "beast_preview")
	id := model.Lenient(beast["species_id"]).IntPart()
	if id <= 0 {
		return 0
	}
	return int(id)
}

// Apply writes the profile into the document.
func (d *Document) Apply(p *model.Profile) {
	d.root["address"] = p.Address.String()
	d.root["network"] = p.Network
	d.root["updated_at"] = p.UpdatedAt.UTC().Format(timestampLayout)

	scores := ensure(d.root, "scores")
	metrics := ensure(scores, "metrics")
	tiers := ensure(scores, "tiers")
	for _, m := range model.Metrics {
		rec := p.Scores.Metrics[m]
		entry := ensure(metrics, string(m))
		entry["raw_value"] = rec.RawValue
		entry["tier"] = rec.Tier.Int()
		entry["tier_label"] = rec.TierLabel
		tiers[string(m)] = p.Scores.Tiers[m].Int()
	}
	tiers["overall"] = p.Scores.Overall.Tier.Int()
	scores["overall"] = map[string]any{
		"tier":  p.Scores.Overall.Tier.Int(),
		"label": p.Scores.Overall.Label,
		"score": p.Scores.Overall.Score,
	}

	beast := ensure(d.root, "beast_preview")
	beast["species_id"] = p.Beast.SpeciesID
	beast["rarity"] = p.Beast.Rarity
	beast["user_type"] = p.Beast.UserType
	visual := make(map[string]any, len(p.Beast.VisualTraits))
	for slot, t := range p.Beast.VisualTraits {
		visual[slot] = map[string]any{
			"source_metric": string(t.SourceMetric),
			"tier":          t.Tier.Int(),
			"label":         t.Label,
			"description":   t.Description,
		}
	}
	beast["visual_traits"] = visual
}

// ensure returns m[key] as an object, replacing any non-object value.
func ensure(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	v := map[string]any{}
	m[key] = v
	return v
}

// child walks nested objects, reporting false when any step is missing.
func child(m map[string]any, path ...string) (map[string]any, bool) {
	cur := m
	for _, p := range path {
		next, ok := cur[p].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
