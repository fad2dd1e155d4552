package rational

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a as a JSON string ("3/4", "-2") so no precision is lost.
func (a Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a JSON string in any Parse syntax or a plain JSON number.
// Numbers are read from their literal text, so 0.1 decodes to 1/10.
func (a *Rational) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("UnmarshalJSON(%q): %w", data, ErrSyntax)
	}
	var text string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("UnmarshalJSON: %w", err)
		}
	} else {
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("UnmarshalJSON(%q): %w", data, ErrSyntax)
		}
		text = num.String()
	}
	v, err := Parse(text)
	if err != nil {
		return err
	}
	*a = v

	return nil
}
