package ir

// Dataset is a named, ordered collection of stored measurements.
type Dataset struct {
	ID   string `json:"id"` // UUIDv7
	Name string `json:"name"`
	Seq  int64  `json:"seq"` // Logical clock
}

// MeasurementRecord is the persisted form of a measurement.
// Exponents are in M L T K I N J order.
type MeasurementRecord struct {
	ID        string    `json:"id"` // Content-addressed hash
	DatasetID string    `json:"dataset_id"`
	Seq       int64     `json:"seq"` // Position within the dataset
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Error     float64   `json:"error"`
	Exponents []float64 `json:"exponents"`
	Symbol    string    `json:"symbol,omitempty"`
	SigFigs   int       `json:"sig_figs"`
}

// Canonical returns the hashed fields of r tagged with RecordVersion.
// The ID itself is excluded.
func (r MeasurementRecord) Canonical() IRObject {
	return IRObject{
		"version":    IRString(RecordVersion),
		"dataset_id": IRString(r.DatasetID),
		"seq":        IRInt(r.Seq),
		"name":       IRString(r.Name),
		"value":      IRFloat(r.Value),
		"error":      IRFloat(r.Error),
		"exponents":  FloatArray(r.Exponents),
		"symbol":     IRString(r.Symbol),
		"sig_figs":   IRInt(r.SigFigs),
	}
}
