package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidZone reports a malformed hardiness zone range.
var ErrInvalidZone = errors.New("catalog: invalid zone range")

// ParseName splits "Primary (Alias1; Alias2)" into a lower-cased primary name
// and aliases. Empty aliases are dropped.
func ParseName(raw string) (string, []string) {
	raw = strings.ToLower(raw)
	primary, rest, found := strings.Cut(raw, "(")
	primary = strings.TrimSpace(primary)
	if !found {
		return primary, nil
	}
	rest = strings.ReplaceAll(rest, ")", "")
	var aliases []string
	for _, alias := range strings.Split(rest, ";") {
		if alias = strings.TrimSpace(alias); alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return primary, aliases
}

// ParseZoneRange parses "min-max".
func ParseZoneRange(raw string) (int, int, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(raw), "-")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidZone, raw)
	}
	minZone, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidZone, raw, err)
	}
	maxZone, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidZone, raw, err)
	}
	if minZone > maxZone {
		return 0, 0, fmt.Errorf("%w: %q: min above max", ErrInvalidZone, raw)
	}
	return minZone, maxZone, nil
}

// SplitList splits a comma separated list, lower-casing and trimming values.
func SplitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(strings.ToLower(raw), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

var colorSynonyms = map[string]string{
	"scarlet": "red", "rose": "red", "crimson": "red", "maroon": "red", "ruby": "red",
	"rust": "red", "burgundy": "red", "raspberry": "red",
	"plum": "purple", "violet": "purple", "lavender": "purple", "lilac": "purple",
	"mauve": "purple", "amethyst": "purple",
	"fuchsia": "pink", "salmon": "pink", "peach": "pink", "coral": "pink", "magenta": "pink",
	"teal": "blue", "cyan": "blue", "cerulean": "blue", "azure": "blue", "aqua": "blue",
	"turquoise": "blue", "cobalt": "blue", "sapphire": "blue", "indigo": "blue",
	"aquamarine": "blue", "navy": "blue", "denim": "blue",
	"peridot": "green", "emerald": "green", "jade": "green", "olive": "green", "lime": "green",
	"ochre": "yellow", "khaki": "yellow", "golden": "yellow", "mustard": "yellow",
	"amber": "orange", "saffron": "orange", "copper": "orange", "bronze": "orange",
	"beige": "brown", "chocolate": "brown", "tan": "brown", "sepia": "brown",
	"ivory": "white", "cream": "white",
	"silver": "grey", "charcoal": "grey",
}

var standardColors = map[string]bool{
	"red": true, "purple": true, "pink": true, "blue": true, "green": true, "yellow": true,
	"orange": true, "brown": true, "white": true, "grey": true, "black": true, "gold": true,
}

var nonWord = regexp.MustCompile(`[^a-z0-9\s]+`)

// ExtractColors maps the words of a colour description onto standard colour
// names, in order of first appearance.
func ExtractColors(description string) []string {
	words := strings.Fields(nonWord.ReplaceAllString(strings.ToLower(description), " "))
	var out []string
	seen := map[string]bool{}
	for _, word := range words {
		if std, ok := colorSynonyms[word]; ok {
			word = std
		}
		if standardColors[word] && !seen[word] {
			seen[word] = true
			out = append(out, word)
		}
	}
	return out
}
