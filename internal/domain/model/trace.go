package model

// TraceStep is one applied normalization step with its before and after
// forms. Steps that changed nothing are still recorded so the trace shows
// the full pipeline.
type TraceStep struct {
	Step   string `json:"step"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// TraceCandidate is one variant comparison considered during matching.
type TraceCandidate struct {
	Variant        string  `json:"variant"`
	CanonicalField string  `json:"canonical_field"`
	Similarity     float64 `json:"similarity"`
	Containment    bool    `json:"containment"`
}

// TraceNormalization records how the raw name became its normalized form.
type TraceNormalization struct {
	Original   string      `json:"original"`
	Normalized string      `json:"normalized"`
	Steps      []TraceStep `json:"steps"`
}

// TraceMatching records the matching decision and the alternatives that
// lost.
type TraceMatching struct {
	Method         string           `json:"method"`
	MatchedVariant string           `json:"matched_variant,omitempty"`
	Similarity     float64          `json:"similarity"`
	Threshold      float64          `json:"threshold"`
	Alternatives   []TraceCandidate `json:"alternatives_considered"`
	Reasoning      string           `json:"reasoning"`
}

// TraceConfidence records the weighted confidence computation.
type TraceConfidence struct {
	RawScore   float64 `json:"raw_score"`
	Weight     float64 `json:"sensitivity_weight"`
	Confidence float64 `json:"weighted_confidence"`
	Threshold  float64 `json:"threshold"`
	Passed     bool    `json:"passed_threshold"`
	Reasoning  string  `json:"reasoning"`
}

// TraceSelection records which entry a repeated section resolved to and
// why.
type TraceSelection struct {
	Section       string `json:"section"`
	Strategy      string `json:"strategy"`
	TotalEntries  int    `json:"total_entries"`
	SelectedIndex *int   `json:"selected_index"`
	Reasoning     string `json:"reasoning"`
}

// Trace explains one mapping decision end to end. It is diagnostic
// output; mapping correctness never depends on it.
type Trace struct {
	Normalization TraceNormalization `json:"field_name_normalization"`
	Matching      TraceMatching      `json:"field_matching"`
	Confidence    *TraceConfidence   `json:"confidence_calculation,omitempty"`
	Selection     *TraceSelection    `json:"selection,omitempty"`
	Summary       string             `json:"human_readable_summary"`
}
