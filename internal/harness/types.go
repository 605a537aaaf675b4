package harness

// Trace event kinds.
const (
	EventStep   = "step"
	EventAssert = "assert"
)

// TraceEvent records one evaluated step or assertion.
type TraceEvent struct {
	Type  string `json:"type"`
	Seq   int64  `json:"seq"`
	Op    string `json:"op"`
	Left  string `json:"left"`
	Right string `json:"right"`

	// As is the name a step result was stored under.
	As string `json:"as,omitempty"`

	// Show and Dimensions describe a successful step result.
	Show       string `json:"show,omitempty"`
	Dimensions string `json:"dimensions,omitempty"`

	// Code is the engine error code of a failed step or assertion.
	Code string `json:"code,omitempty"`

	// Holds is the predicate result of an assertion.
	Holds bool `json:"holds,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace lists steps then assertions in seq order.
	Trace []TraceEvent `json:"trace"`

	// Errors describes each failed expectation or assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// canonical converts the event to a map for ir.MarshalCanonical.
func (e TraceEvent) canonical() map[string]any {
	m := map[string]any{
		"type":  e.Type,
		"seq":   e.Seq,
		"op":    e.Op,
		"left":  e.Left,
		"right": e.Right,
	}
	if e.As != "" {
		m["as"] = e.As
	}
	if e.Show != "" {
		m["show"] = e.Show
	}
	if e.Dimensions != "" {
		m["dimensions"] = e.Dimensions
	}
	if e.Code != "" {
		m["code"] = e.Code
	}
	if e.Type == EventAssert && e.Code == "" {
		m["holds"] = e.Holds
	}
	return m
}
