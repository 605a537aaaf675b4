package ir

// Version constants for the record schema and tool.
const (
	// RecordVersion is the canonical record schema version.
	RecordVersion = "1"

	// ToolVersion is the derr release version.
	ToolVersion = "0.1.0"
)
