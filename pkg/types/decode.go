// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON decodes a publication leniently. The document is curated
// by hand and by several scripts, so year, citations, probabilities and
// keywords arrive as numbers, numeric strings, floats or junk. Values that
// do not parse fall back to their defaults (no year, zero citations, no
// probabilities) instead of failing the whole document.
func (p *Publication) UnmarshalJSON(data []byte) error {
	type alias Publication
	aux := struct {
		*alias
		Year                  json.RawMessage `json:"year"`
		Citations             json.RawMessage `json:"citations"`
		CategoryProbabilities json.RawMessage `json:"categoryProbabilities"`
		Keywords              json.RawMessage `json:"keywords"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.Year = nil
	if y, ok := wholeNumber(aux.Year); ok && y > 0 {
		p.Year = IntPtr(y)
	}
	p.Citations = 0
	if c, ok := wholeNumber(aux.Citations); ok && c > 0 {
		p.Citations = c
	}
	p.CategoryProbabilities = probabilities(aux.CategoryProbabilities)
	p.Keywords = keywordList(aux.Keywords)
	return nil
}

// MarshalJSON keeps an empty, non-nil CategoryProbabilities as {} so that a
// publication scored to nothing still reads back as scored.
func (p Publication) MarshalJSON() ([]byte, error) {
	type alias Publication
	aux := struct {
		alias
		CategoryProbabilities *map[string]float64 `json:"categoryProbabilities,omitempty"`
	}{alias: alias(p)}
	if p.CategoryProbabilities != nil {
		aux.CategoryProbabilities = &p.CategoryProbabilities
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(aux); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// number parses a JSON number or a string holding one.
func number(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(text)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// wholeNumber accepts integral values only, so 2021.0 is 2021 but 2021.5
// is rejected.
func wholeNumber(raw json.RawMessage) (int, bool) {
	f, ok := number(raw)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// probabilities returns nil unless raw is a JSON object. Entries that are
// not non-negative numbers are dropped; an object with none left is an
// empty, non-nil map.
func probabilities(raw json.RawMessage) map[string]float64 {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || entries == nil {
		return nil
	}
	out := make(map[string]float64, len(entries))
	for area, v := range entries {
		if f, ok := number(v); ok && f >= 0 {
			out[area] = f
		}
	}
	return out
}

// keywordList accepts an array of strings or a single comma-separated
// string. Non-string array entries are skipped.
func keywordList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return nonEmpty(strings.Split(single, ","))
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var words []string
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			words = append(words, s)
		}
	}
	return nonEmpty(words)
}

func nonEmpty(words []string) []string {
	var out []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
