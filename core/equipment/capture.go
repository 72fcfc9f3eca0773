package equipment

import (
	"encoding/json"
	"fmt"
	"strings"

	"gear-tracker/core/utils"
)

// Number is an integer that tolerates the upstream API's habit of sending
// numbers as strings. Null, empty and unparseable values decode to zero.
type Number int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil || v == nil {
		*n = 0
		return nil
	}
	*n = Number(utils.ToInt(v))
	return nil
}

// Int returns the value as an int.
func (n Number) Int() int {
	return int(n)
}

// RawStatOption is a stat option group as sent by the API.
type RawStatOption struct {
	STR                Number `json:"str"`
	DEX                Number `json:"dex"`
	INT                Number `json:"int"`
	LUK                Number `json:"luk"`
	MaxHP              Number `json:"max_hp"`
	MaxMP              Number `json:"max_mp"`
	AttackPower        Number `json:"attack_power"`
	MagicPower         Number `json:"magic_power"`
	Armor              Number `json:"armor"`
	Speed              Number `json:"speed"`
	Jump               Number `json:"jump"`
	BossDamage         Number `json:"boss_damage"`
	IgnoreMonsterArmor Number `json:"ignore_monster_armor"`
	AllStat            Number `json:"all_stat"`
	Damage             Number `json:"damage"`
}

// ToStatOption converts the raw group. A nil group is all zeros.
func (r *RawStatOption) ToStatOption() StatOption {
	if r == nil {
		return StatOption{}
	}
	return StatOption{
		STR:                r.STR.Int(),
		DEX:                r.DEX.Int(),
		INT:                r.INT.Int(),
		LUK:                r.LUK.Int(),
		MaxHP:              r.MaxHP.Int(),
		MaxMP:              r.MaxMP.Int(),
		AttackPower:        r.AttackPower.Int(),
		MagicPower:         r.MagicPower.Int(),
		Armor:              r.Armor.Int(),
		Speed:              r.Speed.Int(),
		Jump:               r.Jump.Int(),
		BossDamage:         r.BossDamage.Int(),
		IgnoreMonsterArmor: r.IgnoreMonsterArmor.Int(),
		AllStat:            r.AllStat.Int(),
		Damage:             r.Damage.Int(),
	}
}

// RawItem is one entry of an item_equipment list.
type RawItem struct {
	Part string `json:"item_equipment_part"`
	Slot string `json:"item_equipment_slot"`
	Name string `json:"item_name"`
	Icon string `json:"item_icon"`

	Starforce Number `json:"starforce"`

	PotentialGrade  string `json:"potential_option_grade"`
	Potential1      string `json:"potential_option_1"`
	Potential2      string `json:"potential_option_2"`
	Potential3      string `json:"potential_option_3"`
	AdditionalGrade string `json:"additional_potential_option_grade"`
	Additional1     string `json:"additional_potential_option_1"`
	Additional2     string `json:"additional_potential_option_2"`
	Additional3     string `json:"additional_potential_option_3"`

	BaseOption      *RawStatOption `json:"item_base_option"`
	AddOption       *RawStatOption `json:"item_add_option"`
	EtcOption       *RawStatOption `json:"item_etc_option"`
	StarforceOption *RawStatOption `json:"item_starforce_option"`

	ScrollUpgrade Number `json:"scroll_upgrade"`
	SoulName      string `json:"soul_name"`
	SoulOption    string `json:"soul_option"`

	SpecialRingLevel Number `json:"special_ring_level"`
}

// ToItem converts the API representation to the normalized Item.
func (r RawItem) ToItem() Item {
	return Item{
		Slot:            strings.TrimSpace(r.Slot),
		Part:            strings.TrimSpace(r.Part),
		Name:            strings.TrimSpace(r.Name),
		Icon:            r.Icon,
		Starforce:       r.Starforce.Int(),
		PotentialGrade:  r.PotentialGrade,
		Potential:       [3]string{r.Potential1, r.Potential2, r.Potential3},
		AdditionalGrade: r.AdditionalGrade,
		Additional:      [3]string{r.Additional1, r.Additional2, r.Additional3},
		Base:            r.BaseOption.ToStatOption(),
		Add:             r.AddOption.ToStatOption(),
		Etc:             r.EtcOption.ToStatOption(),
		StarforceOption: r.StarforceOption.ToStatOption(),
		ScrollUpgrade:   r.ScrollUpgrade.Int(),
		SoulName:        r.SoulName,
		SoulOption:      r.SoulOption,
		SeedRingLevel:   r.SpecialRingLevel.Int(),
	}
}

// Capture is one day's equipment payload for a character.
// It may carry several loadout presets; all of them are part of the snapshot.
type Capture struct {
	Date           string    `json:"date"`
	CharacterClass string    `json:"character_class"`
	PresetNo       Number    `json:"preset_no"`
	ItemEquipment  []RawItem `json:"item_equipment"`
	Preset1        []RawItem `json:"item_equipment_preset_1"`
	Preset2        []RawItem `json:"item_equipment_preset_2"`
	Preset3        []RawItem `json:"item_equipment_preset_3"`
}

// Variants returns every item list in the capture, current equipment first.
func (c *Capture) Variants() [][]RawItem {
	if c == nil {
		return nil
	}
	return [][]RawItem{c.ItemEquipment, c.Preset1, c.Preset2, c.Preset3}
}

// Items returns the normalized items of all variants in order.
// Entries without a name are skipped.
func (c *Capture) Items() []Item {
	var items []Item
	for _, variant := range c.Variants() {
		for _, raw := range variant {
			item := raw.ToItem()
			if item.Name == "" {
				continue
			}
			items = append(items, item)
		}
	}
	return items
}

// IsEmpty reports whether the capture holds no items at all.
func (c *Capture) IsEmpty() bool {
	for _, variant := range c.Variants() {
		if len(variant) > 0 {
			return false
		}
	}
	return true
}

// Validate checks the payload for entries that cannot be reconciled.
// It returns an empty string when the capture is usable.
func (c *Capture) Validate() string {
	if c.IsEmpty() {
		return "no equipment entries"
	}
	for v, variant := range c.Variants() {
		for i, raw := range variant {
			if strings.TrimSpace(raw.Name) == "" {
				continue
			}
			if strings.TrimSpace(raw.Slot) == "" {
				return fmt.Sprintf("variant %d item %d (%s): missing item_equipment_slot", v, i, raw.Name)
			}
		}
	}
	return ""
}

// RingExchange is the single-record seed ring exchange slot capture.
type RingExchange struct {
	Date  string `json:"date"`
	Name  string `json:"special_ring_exchange_name"`
	Level Number `json:"special_ring_exchange_level"`
	Icon  string `json:"special_ring_exchange_icon"`
}

// IsEmpty reports whether the exchange slot is unused.
func (r *RingExchange) IsEmpty() bool {
	return r == nil || strings.TrimSpace(r.Name) == ""
}

// Item synthesizes the exchange record as a worn seed ring.
func (r *RingExchange) Item() Item {
	return Item{
		Slot:          "ring",
		Name:          strings.TrimSpace(r.Name),
		Icon:          r.Icon,
		SeedRingLevel: r.Level.Int(),
		Exchange:      true,
	}
}
