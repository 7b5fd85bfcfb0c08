package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is an entity identifier that accepts both JSON numbers and numeric
// strings ("1") on decoding. Browser clients send identifiers as strings.
type ID int64

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid identifier %q: %w", s, err)
	}

	*id = ID(v)
	return nil
}

// Int64 returns the identifier as int64.
func (id ID) Int64() int64 {
	return int64(id)
}
