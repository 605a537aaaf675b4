package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix allows future algorithm migration.
const (
	DomainMeasurement = "derr/measurement/v1"
	DomainTrace       = "derr/trace/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// MeasurementID computes the content-addressed ID of a stored measurement.
// Writing the same record twice yields the same ID.
func MeasurementID(r MeasurementRecord) (string, error) {
	canonical, err := MarshalCanonical(r.Canonical())
	if err != nil {
		return "", fmt.Errorf("MeasurementID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainMeasurement, canonical), nil
}

// TraceHash fingerprints a scenario trace given as canonical-ready data.
func TraceHash(trace any) (string, error) {
	canonical, err := MarshalCanonical(trace)
	if err != nil {
		return "", fmt.Errorf("TraceHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTrace, canonical), nil
}

// MustMeasurementID is like MeasurementID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustMeasurementID(r MeasurementRecord) string {
	id, err := MeasurementID(r)
	if err != nil {
		panic(err)
	}
	return id
}
