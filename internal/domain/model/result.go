package model

// MappingResult is the immutable record produced for one mapped field
// name. Field identifiers and strategies appear as their string values so
// the record serializes without translation.
type MappingResult struct {
	CanonicalField    string    `json:"canonical_field"`
	SchemaPath        string    `json:"schema_path"`
	Value             any       `json:"value"`
	MatchKind         MatchKind `json:"match_type"`
	Confidence        float64   `json:"confidence"`
	RawScore          float64   `json:"raw_score"`
	SensitivityWeight float64   `json:"sensitivity_weight,omitempty"`
	SelectionStrategy string    `json:"selection_strategy,omitempty"`
	SelectedIndex     *int      `json:"selected_index,omitempty"`
	FieldName         string    `json:"ats_field_name"`
	NormalizedName    string    `json:"normalized_field_name"`
	SchemaVersion     string    `json:"canonical_schema_version"`
	BlacklistReason   string    `json:"blacklist_reason,omitempty"`
}
