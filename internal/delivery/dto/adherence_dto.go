package dto

// AdherenceResponse is the rule-based risk prediction rendered on every
// dashboard. Risk is bounded to [0,1] and rounded to 2 decimals.
type AdherenceResponse struct {
	Risk float64 `json:"risk"`
	Tip  string  `json:"tip"`
}
