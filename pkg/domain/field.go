package domain

import (
	"bytes"
	"encoding/json"
)

// Field is a record value held as the raw JSON it was received as.
// A nil Field is an absent key; "" and null are kept as sent.
type Field []byte

// Text returns the Field holding the JSON string s
func Text(s string) Field {
	raw, _ := json.Marshal(s)
	return raw
}

// MarshalJSON returns the raw value, or null when absent
func (f Field) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return []byte("null"), nil
	}
	return f, nil
}

// UnmarshalJSON stores a copy of data
func (f *Field) UnmarshalJSON(data []byte) error {
	*f = append((*f)[0:0], bytes.TrimSpace(data)...)
	return nil
}

// Present reports whether the key was sent, even as null
func (f Field) Present() bool {
	return len(f) > 0
}

// Text returns the string value and whether the Field holds a JSON string
func (f Field) Text() (string, bool) {
	if len(f) == 0 || f[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(f, &s); err != nil {
		return "", false
	}
	return s, true
}

// String renders the Field as a tag or index value: strings are unquoted,
// absent and null values are empty, anything else is its JSON text
func (f Field) String() string {
	if s, ok := f.Text(); ok {
		return s
	}
	if len(f) == 0 || string(f) == "null" {
		return ""
	}
	return string(f)
}
