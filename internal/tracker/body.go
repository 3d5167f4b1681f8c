package tracker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// parseBody reads the request body as either JSON or a url-encoded form,
// flattening it to string values. API clients send JSON but the freeCodeCamp
// checker posts forms, so both must work.
func parseBody(r *http.Request) (url.Values, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		form := url.Values{}
		for k, v := range raw {
			form.Set(k, stringify(v))
		}
		return form, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// stringify renders a decoded JSON value the way it appeared on the wire,
// so numeric durations ("duration": 30) survive the flattening.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// parseDuration coerces a duration field to whole minutes: integers pass
// through, floats truncate toward zero (parseInt semantics), anything else
// is rejected. Negative values are deliberately allowed; no range is
// enforced.
func parseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duration required")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("duration %q is not numeric", s)
	}
	return int(f), nil
}
