package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Number is a JSON value used for ordering and display. Raw keeps the value
// as it appeared in the payload; Value is its numeric reading, 0 when the
// payload did not hold a number.
type Number struct {
	Value float64
	Raw   string
}

func NewNumber(v float64) Number {
	return Number{Value: v, Raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, _ := strconv.ParseFloat(s, 64)
		*n = Number{Value: v, Raw: s}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		// true/false or a nested value: keep the text, order it as zero.
		*n = Number{Raw: string(data)}
		return nil
	}
	*n = Number{Value: v, Raw: string(data)}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n.Raw == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(n.Raw, 64); err == nil {
		return []byte(n.Raw), nil
	}
	return json.Marshal(n.Raw)
}

// IsZero reports a missing value or a numeric zero.
func (n Number) IsZero() bool {
	if n.Raw == "" {
		return true
	}
	v, err := strconv.ParseFloat(n.Raw, 64)
	return err == nil && v == 0
}

func (n Number) String() string {
	if n.Raw == "" {
		return "undefined"
	}
	return n.Raw
}

// Text is a display field that may arrive as a string, number or bool.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return string(t)
}
