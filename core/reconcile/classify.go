package reconcile

import (
	"strconv"
	"strings"

	"gear-tracker/core/equipment"
)

// CompareItemOptions lists the attribute-level differences between old and
// updated. A nil old describes updated as a freshly equipped item.
func CompareItemOptions(old *equipment.Item, updated equipment.Item) []OptionDiff {
	if old == nil {
		return describeNew(updated)
	}

	if IsSeedRing(*old) && IsSeedRing(updated) {
		oldLv, newLv := SeedLevel(*old), SeedLevel(updated)
		if oldLv > 0 && newLv > 0 && oldLv != newLv {
			return []OptionDiff{{Kind: DiffSeedRingLevel, Old: strconv.Itoa(oldLv), New: strconv.Itoa(newLv)}}
		}
		return nil
	}

	var diffs []OptionDiff

	if old.Starforce != updated.Starforce {
		diffs = append(diffs, OptionDiff{
			Kind: DiffStarforce,
			Old:  strconv.Itoa(old.Starforce),
			New:  strconv.Itoa(updated.Starforce),
		})
	}

	if d, ok := comparePotential(old.PotentialGrade, updated.PotentialGrade, old.Potential, updated.Potential, DiffPotentialGrade, DiffPotentialLines); ok {
		diffs = append(diffs, d)
	}
	if d, ok := comparePotential(old.AdditionalGrade, updated.AdditionalGrade, old.Additional, updated.Additional, DiffAdditionalGrade, DiffAdditionalLines); ok {
		diffs = append(diffs, d)
	}

	if stats := statDeltas(old.Add, updated.Add); len(stats) > 0 {
		diffs = append(diffs, OptionDiff{Kind: DiffAddOption, Stats: stats})
	}

	if old.ScrollUpgrade != updated.ScrollUpgrade || old.Etc != updated.Etc {
		diffs = append(diffs, OptionDiff{
			Kind:  DiffScroll,
			Old:   strconv.Itoa(old.ScrollUpgrade),
			New:   strconv.Itoa(updated.ScrollUpgrade),
			Stats: statDeltas(old.Etc, updated.Etc),
		})
	}

	if old.SoulName != updated.SoulName || old.SoulOption != updated.SoulOption {
		diffs = append(diffs, OptionDiff{Kind: DiffSoul, Old: orAbsent(old.SoulName), New: orAbsent(updated.SoulName)})
	}

	return diffs
}

// describeNew emits the new-item marker plus one entry per populated category.
func describeNew(item equipment.Item) []OptionDiff {
	diffs := []OptionDiff{{Kind: DiffNewItem, New: item.Name}}
	if IsSeedRing(item) {
		return diffs
	}

	if item.Starforce > 0 {
		diffs = append(diffs, OptionDiff{Kind: DiffStarforce, New: strconv.Itoa(item.Starforce)})
	}
	if equipment.HasGrade(item.PotentialGrade) {
		diffs = append(diffs, OptionDiff{
			Kind:  DiffPotentialGrade,
			New:   item.PotentialGrade,
			Grade: item.PotentialGrade,
			Lines: lines(item.Potential),
		})
	}
	if equipment.HasGrade(item.AdditionalGrade) {
		diffs = append(diffs, OptionDiff{
			Kind:  DiffAdditionalGrade,
			New:   item.AdditionalGrade,
			Grade: item.AdditionalGrade,
			Lines: lines(item.Additional),
		})
	}
	if item.ScrollUpgrade > 0 {
		diffs = append(diffs, OptionDiff{Kind: DiffScroll, New: strconv.Itoa(item.ScrollUpgrade)})
	}
	if strings.TrimSpace(item.SoulName) != "" {
		diffs = append(diffs, OptionDiff{Kind: DiffSoul, New: item.SoulName})
	}
	return diffs
}

// comparePotential handles both potential tiers. A grade change and a
// line-only change are tagged apart but carry the same detail.
func comparePotential(oldGrade, newGrade string, oldLines, newLines [3]string, gradeKind, linesKind DiffKind) (OptionDiff, bool) {
	switch {
	case equipment.NormalizeGrade(oldGrade) != equipment.NormalizeGrade(newGrade):
		return OptionDiff{
			Kind:  gradeKind,
			Old:   gradeOrAbsent(oldGrade),
			New:   gradeOrAbsent(newGrade),
			Grade: newGrade,
			Lines: lines(newLines),
		}, true
	case oldLines != newLines:
		return OptionDiff{
			Kind:  linesKind,
			New:   newGrade,
			Grade: newGrade,
			Lines: lines(newLines),
		}, true
	}
	return OptionDiff{}, false
}

// absent stands in for a missing value on either side of a change, so
// only new-item entries render without an arrow.
const absent = "(none)"

func orAbsent(v string) string {
	if strings.TrimSpace(v) == "" {
		return absent
	}
	return v
}

func gradeOrAbsent(grade string) string {
	if !equipment.HasGrade(grade) {
		return absent
	}
	return strings.TrimSpace(grade)
}

func lines(l [3]string) []string {
	return []string{l[0], l[1], l[2]}
}

// statDeltas lists every stat that differs between two option groups.
func statDeltas(old, updated equipment.StatOption) []StatDelta {
	oldFields, newFields := old.Fields(), updated.Fields()
	var deltas []StatDelta
	for i := range newFields {
		if oldFields[i].Value != newFields[i].Value {
			deltas = append(deltas, StatDelta{
				Stat: newFields[i].Name,
				Old:  oldFields[i].Value,
				New:  newFields[i].Value,
			})
		}
	}
	return deltas
}

// Summarize renders a one-line description of an event for list views.
func Summarize(kind ChangeKind, oldName, newName string, diffs []OptionDiff) string {
	switch kind {
	case ChangeNewItem:
		return "New: " + newName
	case ChangeReplace:
		return oldName + " → " + newName
	}

	parts := make([]string, 0, len(diffs))
	for _, d := range diffs {
		switch {
		case len(d.Stats) > 0 && d.Old == "" && d.New == "":
			parts = append(parts, d.Kind.Label()+" "+formatStats(d.Stats))
		case d.Kind == DiffPotentialLines || d.Kind == DiffAdditionalLines:
			parts = append(parts, d.Kind.Label()+" rerolled")
		default:
			parts = append(parts, d.Kind.Label()+" "+d.String())
		}
	}
	if len(parts) == 0 {
		return newName
	}
	return newName + ": " + strings.Join(parts, ", ")
}

func formatStats(stats []StatDelta) string {
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, s.Stat+" "+strconv.Itoa(s.Old)+" → "+strconv.Itoa(s.New))
	}
	return strings.Join(parts, ", ")
}
