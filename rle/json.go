package rle

import (
	"encoding/json"
	"fmt"
)

// encodingJSON is the interchange shape of an Encoding: three equal-length
// arrays under fixed field names, suitable for embedding in larger telemetry
// records.
type encodingJSON struct {
	StartTimes []float64 `json:"start_times"`
	EndTimes   []float64 `json:"end_times"`
	RunLengths []int     `json:"run_lengths"`
}

// MarshalJSON encodes e as {"start_times": [...], "end_times": [...],
// "run_lengths": [...]}.
func (e Encoding) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodingJSON{
		StartTimes: e.StartTimes,
		EndTimes:   e.EndTimes,
		RunLengths: e.RunLengths,
	})
}

// UnmarshalJSON decodes the interchange shape and validates the result, so a
// record with unequal array lengths or degenerate runs is rejected here
// rather than surfacing later from Decompress.
func (e *Encoding) UnmarshalJSON(data []byte) error {
	var shape encodingJSON
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("decoding run-length encoding: %w", err)
	}

	decoded := Encoding{
		StartTimes: shape.StartTimes,
		EndTimes:   shape.EndTimes,
		RunLengths: shape.RunLengths,
	}
	if err := decoded.Validate(); err != nil {
		return err
	}

	*e = decoded

	return nil
}
