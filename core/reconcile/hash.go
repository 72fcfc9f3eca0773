package reconcile

import (
	"regexp"
	"strconv"
	"strings"

	"gear-tracker/core/equipment"
)

// levelSuffix matches the "N level" tail some item names carry.
var levelSuffix = regexp.MustCompile(`(?i)\s*(\d+)\s*level$`)

// Similarity weights. Only relative order matters.
const (
	scoreAddOption      = 40
	scorePotentialLines = 30
	scoreAdditional     = 20
	scoreStarforce      = 10
	scorePotentialGrade = 5
	scoreSeedRingLevel  = 100
)

// NormalizeName strips a trailing level suffix and surrounding whitespace.
func NormalizeName(name string) string {
	return strings.TrimSpace(levelSuffix.ReplaceAllString(strings.TrimSpace(name), ""))
}

// IsSeedRing reports whether item is identified by name and level alone.
func IsSeedRing(item equipment.Item) bool {
	if item.Exchange || item.SeedRingLevel > 0 {
		return true
	}
	_, ok := seedRingNames[strings.ToLower(NormalizeName(item.Name))]
	return ok
}

// SeedLevel returns a seed ring's level. When the API left the level field
// empty it falls back to the "N level" suffix of the name.
func SeedLevel(item equipment.Item) int {
	if item.SeedRingLevel > 0 {
		return item.SeedRingLevel
	}
	if m := levelSuffix.FindStringSubmatch(strings.TrimSpace(item.Name)); m != nil {
		lv, _ := strconv.Atoi(m[1])
		return lv
	}
	return 0
}

// SeedHash returns the name+level identity of a seed ring.
func SeedHash(item equipment.Item) string {
	return NormalizeName(item.Name) + "|SeedRing|Lv" + strconv.Itoa(SeedLevel(item))
}

// FullHash fingerprints every rolled attribute of an item.
// Seed rings collapse to their SeedHash.
func FullHash(item equipment.Item) string {
	if IsSeedRing(item) {
		return SeedHash(item)
	}

	var b strings.Builder
	b.WriteString(NormalizeName(item.Name))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(item.Starforce))
	b.WriteByte('|')
	b.WriteString(equipment.NormalizeGrade(item.PotentialGrade))
	for _, line := range item.Potential {
		b.WriteByte('|')
		b.WriteString(line)
	}
	b.WriteByte('|')
	b.WriteString(equipment.NormalizeGrade(item.AdditionalGrade))
	for _, line := range item.Additional {
		b.WriteByte('|')
		b.WriteString(line)
	}
	b.WriteByte('|')
	for _, group := range []equipment.StatOption{item.Add, item.Etc, item.StarforceOption} {
		for _, f := range group.Fields() {
			b.WriteString(strconv.Itoa(f.Value))
			b.WriteByte('|')
		}
	}
	return b.String()
}

// ExactMatch reports whether two items are structurally identical.
func ExactMatch(a, b equipment.Item) bool {
	return FullHash(a) == FullHash(b)
}

// SimilarityScore ranks how closely b resembles a. Callers only compare
// items that share a normalized name.
func SimilarityScore(a, b equipment.Item) int {
	if IsSeedRing(a) || IsSeedRing(b) {
		if SeedLevel(a) == SeedLevel(b) {
			return scoreSeedRingLevel
		}
		return 0
	}

	score := 0
	if a.Add == b.Add {
		score += scoreAddOption
	}
	if a.Potential == b.Potential {
		score += scorePotentialLines
	}
	if a.Additional == b.Additional {
		score += scoreAdditional
	}
	if a.Starforce == b.Starforce {
		score += scoreStarforce
	}
	if equipment.NormalizeGrade(a.PotentialGrade) == equipment.NormalizeGrade(b.PotentialGrade) {
		score += scorePotentialGrade
	}
	return score
}
