// Package names holds the normalization rules used to match team and club
// names across season snapshots. Numeric ids are regenerated on every load,
// so cross-snapshot identity is always (normalized name, ageGroup, club).
package names

import (
	"regexp"
	"strings"
)

// League suffixes that appear appended to team names in historical game logs.
// Longer variants are listed first so "ecnl rl" strips before "ecnl".
var leagueSuffixes = []string{
	"ecnl-rl",
	"ecnl rl",
	"ecnl",
	"aspire",
	"npl",
	"ga",
}

// Normalize lower-cases a team name, strips one trailing league suffix, and
// trims whitespace. It is the shared contract for resolving opponents and
// for re-finding a saved team in a fresh snapshot.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range leagueSuffixes {
		if strings.HasSuffix(n, " "+suffix) {
			n = strings.TrimSpace(strings.TrimSuffix(n, " "+suffix))
			break
		}
	}
	return n
}

// Key builds the stable cross-snapshot identity for a team. Matching by id
// is forbidden: ids do not survive a directory reload.
func Key(name, ageGroup, club string) string {
	return Normalize(name) + "|" + strings.ToUpper(strings.TrimSpace(ageGroup)) + "|" + strings.ToLower(strings.TrimSpace(club))
}

var (
	// Age/gender tokens: "13G", "B12", "G2012", "2012G", "U13".
	ageTokenRe = regexp.MustCompile(`^(?:\d{1,2}[bg]|[bg]\d{1,2}|[bg]?20\d{2}[bg]?|u\d{1,2})$`)
	yearRe     = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// Words that trail a club name without distinguishing the club itself.
var fillerWords = map[string]bool{
	"ecnl": true, "ga": true, "npl": true, "aspire": true, "rl": true,
	"academy": true, "premier": true, "elite": true, "select": true,
	"blue": true, "red": true, "white": true, "black": true, "gold": true,
	"navy": true, "green": true, "orange": true, "silver": true,
}

// BaseClub reduces a club string to its base organization name by dropping
// trailing age/gender codes and league or color words. A leading 4-digit
// founding year (e.g. "1974 Newark SC") is part of the club name and is
// protected from the age-code check.
func BaseClub(club string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(club)))
	if len(words) == 0 {
		return ""
	}

	kept := make([]string, 0, len(words))
	for i, w := range words {
		if i == 0 && yearRe.MatchString(w) {
			kept = append(kept, w)
			continue
		}
		if ageTokenRe.MatchString(w) {
			continue
		}
		kept = append(kept, w)
	}

	// Trim filler words from the tail only; "Red Star FC" keeps its "red".
	for len(kept) > 1 && fillerWords[kept[len(kept)-1]] {
		kept = kept[:len(kept)-1]
	}

	if len(kept) == 0 {
		return strings.Join(words, " ")
	}
	return strings.Join(kept, " ")
}
