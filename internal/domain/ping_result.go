package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PingResult is the JSON document returned by the ping endpoint
type PingResult struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Payout   *FlexNumber `json:"payout"`
	Duration *FlexNumber `json:"duration"`
	Number   FlexString  `json:"number"`
	PingID   FlexString  `json:"ping_id"`
}

// Outcome normalizes the upstream result. Rejections only carry the message and ping id.
func (r *PingResult) Outcome() *PingOutcome {
	if !r.Success {
		return &PingOutcome{
			Success: false,
			Message: r.Message,
			PingID:  string(r.PingID),
		}
	}
	return &PingOutcome{
		Success:        true,
		Message:        r.Message,
		Payout:         r.Payout.Float(),
		Duration:       r.Duration.Float(),
		TransferNumber: string(r.Number),
		PingID:         string(r.PingID),
	}
}

// FlexString accepts a JSON string or number
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = FlexString(n.String())
	return nil
}

// FlexNumber accepts a JSON number or a numeric string
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		if v == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("expected numeric string, got %q", v)
		}
		*n = FlexNumber(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = FlexNumber(f)
	return nil
}

// Float returns nil for an absent value
func (n *FlexNumber) Float() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}
