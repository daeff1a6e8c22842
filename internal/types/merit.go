package types

// MeritResult is one UTXO enriched with its computed age and merit. Both
// values are non-negative for well-formed inputs.
type MeritResult struct {
	Utxo    Utxo    `json:"utxo"`
	AgeDays float64 `json:"age_days"`
	Merit   float64 `json:"merit"`
}
