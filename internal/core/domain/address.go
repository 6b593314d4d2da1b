package domain

import (
	"regexp"
	"strings"
)

// Patterns for the Brazilian layout
// "<Street>, <Number>, <Neighborhood>, <City> - <UF>, CEP <zip>, Brasil".
// Matching is best effort: irregular input yields whatever parts can be found.
var (
	streetPattern    = regexp.MustCompile(`(?i)^(?:Rua|Av\.|Avenida|Travessa|Alameda|Praça)\s+([^,]+)`)
	numberPattern    = regexp.MustCompile(`,\s*(\d+)`)
	cityStatePattern = regexp.MustCompile(`,\s*([^,]+)\s*-\s*([A-Z]{2})`)
)

// ParsedAddress holds the parts of a free-form address the open geocoder needs.
// Number and State are optional.
type ParsedAddress struct {
	Street string
	Number string
	City   string
	State  string
}

// ParseAddress extracts street, house number, city and state from raw.
// The street-type prefix (Rua, Av., Avenida, Travessa, Alameda, Praça) is dropped.
func ParseAddress(raw string) ParsedAddress {
	var p ParsedAddress

	if m := streetPattern.FindStringSubmatch(raw); m != nil {
		p.Street = strings.TrimSpace(m[1])
	} else {
		first, _, _ := strings.Cut(raw, ",")
		p.Street = strings.TrimSpace(first)
	}

	if m := numberPattern.FindStringSubmatch(raw); m != nil {
		p.Number = m[1]
	}

	if m := cityStatePattern.FindStringSubmatch(raw); m != nil {
		p.City = strings.TrimSpace(m[1])
		p.State = strings.TrimSpace(m[2])
	}

	return p
}

// Query renders "<street>[, <number>], <city>[, <state>], Brasil".
func (p ParsedAddress) Query() string {
	parts := make([]string, 0, 5)
	parts = append(parts, p.Street)
	if p.Number != "" {
		parts = append(parts, p.Number)
	}
	parts = append(parts, p.City)
	if p.State != "" {
		parts = append(parts, p.State)
	}
	parts = append(parts, "Brasil")
	return strings.Join(parts, ", ")
}

// SimplifyAddress builds the reduced query sent to the open geocoder. It
// reports false when street or city cannot be extracted.
func SimplifyAddress(raw string) (string, bool) {
	p := ParseAddress(raw)
	if p.Street == "" || p.City == "" {
		return "", false
	}
	return p.Query(), true
}
