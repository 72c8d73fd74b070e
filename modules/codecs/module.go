// Package codecs registers the built-in encode/decode functions that ship
// with catalogctl. It doubles as the reference example of a registration
// module: nothing here runs until a host wires the module into a store.
package codecs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"

	"github.com/vk/cataloggo/internal/catalog"
)

// EncodeFunc serializes a value to bytes.
type EncodeFunc func(v any) ([]byte, error)

// DecodeFunc deserializes bytes into the pointed-to value.
type DecodeFunc func(data []byte, v any) error

// Module implements catalog.Module for this package.
type Module struct{}

// EncodeJSON marshals v as indented JSON.
func EncodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// DecodeJSON unmarshals JSON into v.
func DecodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// EncodeCSV writes records as RFC 4180 CSV.
func EncodeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeCSV reads all CSV records from data.
func DecodeCSV(data []byte) ([][]string, error) {
	return csv.NewReader(bytes.NewReader(data)).ReadAll()
}

// Register populates the codecs namespaces. The JSON pair uses direct
// registration; the CSV pair goes through the registering wrapper, keeping
// both call shapes exercised by a shipped module.
func (m *Module) Register(s *catalog.Store) {
	encoders := s.Create("codecs", "encode")
	decoders := s.Create("codecs", "decode")

	encoders.Register("json", EncodeFunc(EncodeJSON))
	decoders.Register("json", DecodeFunc(DecodeJSON))

	encoders.RegisterFunc("csv")(EncodeCSV)
	decoders.RegisterFunc("csv")(DecodeCSV)
}
