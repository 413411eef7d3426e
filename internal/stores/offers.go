package stores

import (
	"encoding/json"
	"regexp"
	"strings"
)

// DefaultOffers is served when a store's persisted offers cannot be
// recovered by any repair strategy.
var DefaultOffers = []string{
	"Service center replacement/repair",
	"GST invoice available",
}

var (
	missingComma = regexp.MustCompile(`"\s+"`)
	quotedItem   = regexp.MustCompile(`"([^"]*)"`)
)

// ParseOffers decodes the offers column, which holds hand-entered data in
// several shapes: a proper JSON array, a JSON array with missing commas, or
// a Postgres-style brace literal like {"a","b"}. Repair is heuristic, not
// lossless; unrecoverable input falls back to DefaultOffers.
func ParseOffers(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var offers []string
	if err := json.Unmarshal([]byte(raw), &offers); err == nil {
		return offers
	}

	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		fixed := missingComma.ReplaceAllString(raw, `", "`)
		if err := json.Unmarshal([]byte(fixed), &offers); err == nil {
			return offers
		}
		return DefaultOffers
	}

	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		content := raw[1 : len(raw)-1]
		matches := quotedItem.FindAllStringSubmatch(content, -1)
		if len(matches) > 0 {
			offers = make([]string, 0, len(matches))
			for _, m := range matches {
				offers = append(offers, m[1])
			}
			return offers
		}
		return DefaultOffers
	}

	return DefaultOffers
}
