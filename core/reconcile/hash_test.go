package reconcile

import (
	"testing"

	"gear-tracker/core/equipment"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"LevelSuffix", "Ring of Restraint 4 level", "Ring of Restraint"},
		{"CompactSuffix", "Continuous Ring 3Level", "Continuous Ring"},
		{"NoSuffix", "Arcane Umbra Staff", "Arcane Umbra Staff"},
		{"Whitespace", "  Dominator Pendant ", "Dominator Pendant"},
		{"DigitsInName", "Level 250 Genesis Staff", "Level 250 Genesis Staff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestIsSeedRing(t *testing.T) {
	assert.True(t, IsSeedRing(equipment.Item{Name: "Ring of Restraint"}), "known name")
	assert.True(t, IsSeedRing(equipment.Item{Name: "Ring of Restraint 4 level"}), "known name with suffix")
	assert.True(t, IsSeedRing(equipment.Item{Name: "Unlisted Ring", SeedRingLevel: 2}), "populated level")
	assert.True(t, IsSeedRing(equipment.Item{Name: "Unlisted Ring", Exchange: true}), "exchange record")
	assert.False(t, IsSeedRing(ring("Ring 1", "Kanna's Treasure")))
}

func TestSeedLevel(t *testing.T) {
	assert.Equal(t, 4, SeedLevel(equipment.Item{Name: "Ring of Restraint", SeedRingLevel: 4}))
	assert.Equal(t, 3, SeedLevel(equipment.Item{Name: "Ring of Restraint 3 level"}))
	assert.Equal(t, 0, SeedLevel(equipment.Item{Name: "Ring of Restraint"}))
}

func TestFullHash(t *testing.T) {
	t.Run("SeedRing", func(t *testing.T) {
		item := seedRing("Ring 1", "Ring of Restraint 4 level", 4)
		assert.Equal(t, "Ring of Restraint|SeedRing|Lv4", FullHash(item))
		assert.Equal(t, SeedHash(item), FullHash(item))
	})

	t.Run("RolledAttributes", func(t *testing.T) {
		a := weapon("Arcane Umbra Staff", 17)

		b := a
		b.Add.INT = 60
		assert.NotEqual(t, FullHash(a), FullHash(b), "bonus stats are part of the fingerprint")

		c := a
		c.Potential[2] = "Ignore Defense +40%"
		assert.NotEqual(t, FullHash(a), FullHash(c))

		d := a
		d.Starforce = 18
		assert.NotEqual(t, FullHash(a), FullHash(d))
	})

	t.Run("NoGradeSpellings", func(t *testing.T) {
		a := weapon("Arcane Umbra Staff", 17)
		b := a
		b.AdditionalGrade = "None"
		assert.Equal(t, FullHash(a), FullHash(b))
	})

	t.Run("IgnoredAttributes", func(t *testing.T) {
		a := weapon("Arcane Umbra Staff", 17)
		b := a
		b.Slot = "Secondary"
		b.Icon = "other.png"
		b.Base.INT = 100
		assert.Equal(t, FullHash(a), FullHash(b))
		assert.True(t, ExactMatch(a, b))
	})
}

func TestSimilarityScore(t *testing.T) {
	a := weapon("Arcane Umbra Staff", 17)
	assert.Equal(t, 105, SimilarityScore(a, a))

	b := a
	b.Starforce = 22
	assert.Equal(t, 95, SimilarityScore(a, b))

	c := a
	c.Add.INT = 1
	c.PotentialGrade = "Unique"
	assert.Equal(t, 60, SimilarityScore(a, c))

	assert.Equal(t, 100, SimilarityScore(seedRing("Ring 1", "Ring of Restraint", 4), seedRing("Ring 2", "Ring of Restraint", 4)))
	assert.Equal(t, 0, SimilarityScore(seedRing("Ring 1", "Ring of Restraint", 3), seedRing("Ring 2", "Ring of Restraint", 4)))
}
