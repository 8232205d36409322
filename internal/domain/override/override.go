// Package override resolves operator-supplied reputation scores by address.
package override

import (
	"github.com/okian/beastscore/internal/domain/model"
)

// Resolver is a read-only lookup table. It is safe for concurrent use.
type Resolver struct {
	table map[model.Address]model.ManualOverride
}

// New copies table, canonicalizing its keys. Keys that differ only in case
// collapse into one entry with their set fields merged.
func New(table map[string]model.ManualOverride) *Resolver {
	r := &Resolver{table: make(map[model.Address]model.ManualOverride, len(table))}
	for addr, o := range table {
		key := model.Canonical(addr)
		cur := r.table[key]
		if o.BuilderScore != nil {
			v := *o.BuilderScore
			cur.BuilderScore = &v
		}
		if o.SocialScore != nil {
			v := *o.SocialScore
			cur.SocialScore = &v
		}
		r.table[key] = cur
	}
	return r
}

// Lookup returns the override for addr and whether one exists.
func (r *Resolver) Lookup(addr model.Address) (model.ManualOverride, bool) {
	if r == nil {
		return model.ManualOverride{}, false
	}
	o, ok := r.table[model.Canonical(string(addr))]
	return o, ok
}

// Apply writes any builder/social overrides for addr into raw. It reports
// which metrics were overridden. No other metric is overridable.
func (r *Resolver) Apply(addr model.Address, raw model.RawMetrics) []model.Metric {
	o, ok := r.Lookup(addr)
	if !ok {
		return nil
	}
	var applied []model.Metric
	if o.BuilderScore != nil {
		raw[model.Builder] = *o.BuilderScore
		applied = append(applied, model.Builder)
	}
	if o.SocialScore != nil {
		raw[model.Social] = *o.SocialScore
		applied = append(applied, model.Social)
	}
	return applied
}

// Len returns the number of addresses with overrides.
func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.table)
}
