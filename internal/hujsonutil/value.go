package hujsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"
)

// Value wraps hujson.Value to provide convenience helpers.
type Value struct {
	*hujson.Value
}

// Parse parses JSON with comments and trailing commas.
func Parse(data []byte) (*Value, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Value{Value: &v}, nil
}

// Decode stores the value into out. Comments and trailing commas are
// stripped first; keys unknown to out are rejected.
func (v *Value) Decode(out any) error {
	if v.Value == nil {
		return fmt.Errorf("nil Value")
	}
	std := v.Clone()
	std.Standardize()

	dec := json.NewDecoder(bytes.NewReader(std.Pack()))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// Unmarshal parses JSONC data into out.
func Unmarshal(data []byte, out any) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	return v.Decode(out)
}
