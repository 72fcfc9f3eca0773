package equipment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const captureJSON = `{
  "date": "2024-03-01T00:00+09:00",
  "character_class": "Bishop",
  "preset_no": "1",
  "item_equipment": [
    {
      "item_equipment_part": "Weapon",
      "item_equipment_slot": "Weapon",
      "item_name": "Arcane Umbra Staff",
      "starforce": "17",
      "potential_option_grade": "Legendary",
      "potential_option_1": "Magic ATT +12%",
      "potential_option_2": "Boss Damage +35%",
      "potential_option_3": null,
      "additional_potential_option_grade": null,
      "item_add_option": {"int": "80", "magic_power": 95, "boss_damage": "12"},
      "item_etc_option": null,
      "scroll_upgrade": "8",
      "soul_name": null
    },
    {
      "item_equipment_slot": "Ring 1",
      "item_name": "Ring of Restraint 4 level",
      "special_ring_level": 4
    },
    {
      "item_equipment_slot": "Pocket",
      "item_name": ""
    }
  ],
  "item_equipment_preset_2": [
    {"item_equipment_slot": "Pendant 2", "item_name": "Dominator Pendant", "starforce": 22}
  ]
}`

func TestCapture_Decode(t *testing.T) {
	var c Capture
	require.NoError(t, json.Unmarshal([]byte(captureJSON), &c))

	assert.Equal(t, 1, c.PresetNo.Int())
	items := c.Items()
	require.Len(t, items, 3, "unnamed entries are skipped")

	weapon := items[0]
	assert.Equal(t, "Weapon", weapon.Slot)
	assert.Equal(t, 17, weapon.Starforce)
	assert.Equal(t, [3]string{"Magic ATT +12%", "Boss Damage +35%", ""}, weapon.Potential)
	assert.Equal(t, 80, weapon.Add.INT)
	assert.Equal(t, 95, weapon.Add.MagicPower)
	assert.Equal(t, 12, weapon.Add.BossDamage)
	assert.True(t, weapon.Etc.IsZero(), "null option groups decode to zero")
	assert.Equal(t, 8, weapon.ScrollUpgrade)
	assert.False(t, HasGrade(weapon.AdditionalGrade))

	assert.Equal(t, 4, items[1].SeedRingLevel)
	assert.Equal(t, "Dominator Pendant", items[2].Name, "preset variants are merged")
	assert.Equal(t, 22, items[2].Starforce)
}

func TestCapture_Validate(t *testing.T) {
	var empty Capture
	assert.Equal(t, "no equipment entries", empty.Validate())

	var nilCapture *Capture
	assert.True(t, nilCapture.IsEmpty())

	missingSlot := Capture{ItemEquipment: []RawItem{{Name: "Cape"}}}
	assert.Contains(t, missingSlot.Validate(), "missing item_equipment_slot")

	ok := Capture{ItemEquipment: []RawItem{{Name: "Cape", Slot: "Cape"}}}
	assert.Empty(t, ok.Validate())
}

func TestRingExchange(t *testing.T) {
	var r RingExchange
	require.NoError(t, json.Unmarshal([]byte(`{"special_ring_exchange_name":" Continuous Ring ","special_ring_exchange_level":"3"}`), &r))
	assert.False(t, r.IsEmpty())

	item := r.Item()
	assert.Equal(t, "ring", item.Slot)
	assert.Equal(t, "Continuous Ring", item.Name)
	assert.Equal(t, 3, item.SeedRingLevel)
	assert.True(t, item.Exchange)
	assert.Zero(t, item.Starforce)

	var unused *RingExchange
	assert.True(t, unused.IsEmpty())
	assert.True(t, (&RingExchange{Name: "  "}).IsEmpty())
}

func TestHasGrade(t *testing.T) {
	assert.False(t, HasGrade(""))
	assert.False(t, HasGrade("None"))
	assert.False(t, HasGrade(" none "))
	assert.True(t, HasGrade("Unique"))
}

func TestNormalizeGrade(t *testing.T) {
	assert.Equal(t, GradeNone, NormalizeGrade(""))
	assert.Equal(t, GradeNone, NormalizeGrade("None"))
	assert.Equal(t, "Legendary", NormalizeGrade(" Legendary "))
}
