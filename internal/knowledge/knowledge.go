package knowledge

// MakerMark describes a documented maker's mark: who used it, what it looks
// like, where it appears, and the period it was in use.
type MakerMark struct {
	Maker       string
	Domain      Domain
	Description string
	Location    string
	Era         string
	ValueTier   QualityTier
}

// IdentificationPattern captures the distinguishing features of a well-known
// item type within a domain, plus the details that separate originals from
// later reproductions.
type IdentificationPattern struct {
	Domain          Domain
	ItemType        string
	KeyFeatures     []string
	CommonConfusion string
	Era             string
}

// AuthCheckpoint is a single verifiable criterion on an authentication
// checklist. Weight ranges 1-10 and expresses how strongly the checkpoint
// discriminates genuine items from fakes.
type AuthCheckpoint struct {
	Name           string
	Description    string
	PassIndicators []string
	FailIndicators []string
	Weight         int
}

// AuthenticationCriteria is the full authentication checklist for a domain.
type AuthenticationCriteria struct {
	Domain      Domain
	Checkpoints []AuthCheckpoint
}

// ValueRange records the typical market value band for an item type in a
// domain, in whole currency units.
type ValueRange struct {
	Domain   Domain
	ItemType string
	Low      float64
	High     float64
	Notes    string
}
