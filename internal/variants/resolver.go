// Package variants resolves which sibling SKU to navigate to when a shopper
// changes one attribute (storage, RAM or colour) of the product being
// viewed. Candidates are the products sharing the current product's
// vertical.
package variants

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

var ErrNoMatch = errors.New("no matching variant")

type Attribute int

const (
	Storage Attribute = iota
	RAM
	Colour
)

func (a Attribute) String() string {
	switch a {
	case Storage:
		return "storage"
	case RAM:
		return "ram"
	case Colour:
		return "colour"
	}
	return "unknown"
}

// preference lists, per changed attribute, which of the two remaining
// attributes to hold onto first when no variant matches both.
var preference = map[Attribute][2]Attribute{
	Storage: {Colour, RAM},
	RAM:     {Storage, Colour},
	Colour:  {Storage, RAM},
}

func attrValue(v catalog.Variant, a Attribute) string {
	switch a {
	case Storage:
		return v.Storage
	case RAM:
		return v.RAM
	case Colour:
		return v.Colour
	}
	return ""
}

// Resolve picks the best sibling for changing `target` to `value` while the
// shopper is on `current`. Matching is a priority cascade by descending
// specificity: both remaining attributes held, then each one alone in
// preference order, then any variant carrying the new value. Attributes the
// current product does not have are never used as constraints.
func Resolve(siblings []catalog.Variant, target Attribute, value string, current catalog.Variant) (catalog.Variant, error) {
	if value == "" {
		return catalog.Variant{}, ErrNoMatch
	}

	candidates := make([]catalog.Variant, 0, len(siblings))
	for _, v := range siblings {
		if attrValue(v, target) == value {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return catalog.Variant{}, ErrNoMatch
	}

	pref := preference[target]
	fixed := make([]Attribute, 0, 2)
	for _, a := range pref[:] {
		if attrValue(current, a) != "" {
			fixed = append(fixed, a)
		}
	}

	// Both remaining attributes, then each alone, then anything.
	if len(fixed) == 2 {
		if v, ok := firstMatch(candidates, current, fixed); ok {
			return v, nil
		}
	}
	for _, a := range fixed {
		if v, ok := firstMatch(candidates, current, []Attribute{a}); ok {
			return v, nil
		}
	}
	return candidates[0], nil
}

func firstMatch(candidates []catalog.Variant, current catalog.Variant, constraints []Attribute) (catalog.Variant, bool) {
	for _, v := range candidates {
		ok := true
		for _, a := range constraints {
			if attrValue(v, a) != attrValue(current, a) {
				ok = false
				break
			}
		}
		if ok {
			return v, true
		}
	}
	return catalog.Variant{}, false
}

// Selectors holds the distinct selectable values per attribute. A nil slice
// means no sibling carries the attribute at all; the whole selector section
// is omitted from JSON rather than rendered empty.
type Selectors struct {
	Storage []string `json:"storage,omitempty"`
	RAM     []string `json:"ram,omitempty"`
	Colour  []string `json:"colour,omitempty"`
}

// BuildSelectors extracts the distinct non-empty attribute values across a
// vertical. Storage and RAM sort by their leading numeric token ("128GB"
// sorts as 128); colours keep insertion order.
func BuildSelectors(siblings []catalog.Variant) Selectors {
	return Selectors{
		Storage: sortedNumeric(distinct(siblings, Storage)),
		RAM:     sortedNumeric(distinct(siblings, RAM)),
		Colour:  distinct(siblings, Colour),
	}
}

func distinct(siblings []catalog.Variant, a Attribute) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range siblings {
		val := attrValue(v, a)
		if val == "" || seen[val] {
			continue
		}
		seen[val] = true
		out = append(out, val)
	}
	return out
}

func sortedNumeric(vals []string) []string {
	sort.SliceStable(vals, func(i, j int) bool {
		return numericToken(vals[i]) < numericToken(vals[j])
	})
	return vals
}

// numericToken strips everything but digits and parses the rest; "128GB"
// yields 128, a value with no digits yields 0.
func numericToken(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
