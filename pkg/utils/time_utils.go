package utils

import (
	"strconv"
	"strings"
	"time"
)

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseEpochSeconds parses an epoch timestamp in seconds. Query strings sometimes
// carry a trailing ".0" when produced by JS clients, so integral decimals are accepted.
func ParseEpochSeconds(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, strconv.ErrSyntax
	}
	return int64(f), nil
}

// ParseOptionalEpoch returns nil for an empty value.
func ParseOptionalEpoch(raw, field string) (*int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := ParseEpochSeconds(raw)
	if err != nil {
		return nil, InvalidParameter(field+" must be an epoch timestamp in seconds", map[string]string{field: "invalid epoch seconds"})
	}
	return &v, nil
}
