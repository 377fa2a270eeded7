package services

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormValue is a form field kept as submitted text. From JSON it also
// accepts numbers and booleans, so an item can be sent back the way the API
// serves it.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = FormValue(data)
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("form value: %w", err)
	}
	*v = FormValue(n.String())
	return nil
}

func (v FormValue) String() string { return string(v) }
