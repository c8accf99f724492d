package schema

import "github.com/goccy/go-json"

// DecodeValues parses a JSON object into Values. Numbers decode as float64,
// which is also how values arrive over HTTP, so stored and incoming values
// compare alike. Empty input yields empty Values.
func DecodeValues(raw []byte) (Values, error) {
	values := Values{}
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = Values{}
	}
	return values, nil
}
