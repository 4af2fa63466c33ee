package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

var (
	jsonNull  = []byte("null")
	jsonFalse = []byte("false")
)

func truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || bytes.Equal(v, jsonNull) || bytes.Equal(v, jsonFalse) {
		return false
	}
	switch v[0] {
	case '"':
		return len(v) > 2
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(v), 64)
		return err == nil && f != 0
	}
	return true
}

func isArray(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) > 0 && v[0] == '['
}

func isObject(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) > 0 && v[0] == '{'
}

// firstSize returns the first non-null candidate rounded to whole bytes.
func firstSize(candidates ...*float64) int64 {
	for _, c := range candidates {
		if c != nil {
			return int64(math.Round(*c))
		}
	}
	return 0
}

// firstString returns the first non-nil candidate.
func firstString(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return ""
}

// idString renders a JSON scalar id (number or string) as text.
func idString(raw json.RawMessage) string {
	v := bytes.TrimSpace(raw)
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
