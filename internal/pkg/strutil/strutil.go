// Package strutil converts loosely typed request values (query strings, form
// fields) into Go values.
package strutil

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseUint parses a positive decimal identifier.
func ParseUint(s string) (uint, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// SplitList normalises list input coming from a form or a query.
// Each value may be a JSON encoded array, a comma separated string or a plain
// item. Empty items are dropped and the rest trimmed.
func SplitList(values ...string) []string {
	out := []string{}
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
				out = appendTrimmed(out, decoded...)
				continue
			}
		}
		out = appendTrimmed(out, strings.Split(raw, ",")...)
	}
	return out
}

func appendTrimmed(dst []string, items ...string) []string {
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			dst = append(dst, item)
		}
	}
	return dst
}
