package httpserver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// number decodes a JSON number or a numeric string. An empty string and
// null both decode to 0, matching what form posts send for blank fields.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*n = 0
	case float64:
		*n = number(x)
	case string:
		f, err := parseNumber(x)
		if err != nil {
			return err
		}
		*n = number(f)
	default:
		return fmt.Errorf("invalid number %s", string(b))
	}
	return nil
}

func parseNumber(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
