package model

import "time"

// VisualTrait describes one rendered slot of the beast.
type VisualTrait struct {
	SourceMetric Metric `json:"source_metric"`
	Tier         Tier   `json:"tier"`
	Label        string `json:"label"`
	Description  string `json:"description"`
}

// BeastPreview is the descriptive rendering of a wallet's scores.
type BeastPreview struct {
	SpeciesID    int                    `json:"species_id"`
	Rarity       string                 `json:"rarity"`
	UserType     string                 `json:"user_type"`
	VisualTraits map[string]VisualTrait `json:"visual_traits"`
}

// Profile is the result of scoring one address.
type Profile struct {
	RequestID string            `json:"request_id"`
	Address   Address           `json:"address"`
	Network   string            `json:"network"`
	UpdatedAt time.Time         `json:"updated_at"`
	Scores    ScoreSet          `json:"scores"`
	Beast     BeastPreview      `json:"beast_preview"`
	Sources   map[string]string `json:"sources,omitempty"`

	// Document is the template profile with scored fields written into it.
	Document map[string]any `json:"-"`
}
