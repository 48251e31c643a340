package models

// Snapshot is the read-only per-request menu payload consumed by the
// rendering engine.
type Snapshot struct {
	Menu          *Menu          `json:"menu"`
	Items         []Item         `json:"items"`
	Categories    []Category     `json:"categories"`
	Branches      []Branch       `json:"branches"`
	Rating        RatingSummary  `json:"rating"`
	Customization *Customization `json:"customizations,omitempty"`
}
