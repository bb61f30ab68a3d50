package capedge

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// flexString decodes JSON values the API is inconsistent about:
// identifiers arrive as strings on some endpoints and bare numbers on
// others. Numbers are kept verbatim, so zero-padded CIKs survive.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}
