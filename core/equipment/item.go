package equipment

import "strings"

// GradeNone is the potential grade reported when no potential is rolled.
const GradeNone = "none"

// StatOption holds one group of rolled stat values on an item.
// A missing group is represented by the zero value.
type StatOption struct {
	STR                int `json:"str"`
	DEX                int `json:"dex"`
	INT                int `json:"int"`
	LUK                int `json:"luk"`
	MaxHP              int `json:"max_hp"`
	MaxMP              int `json:"max_mp"`
	AttackPower        int `json:"attack_power"`
	MagicPower         int `json:"magic_power"`
	Armor              int `json:"armor"`
	Speed              int `json:"speed"`
	Jump               int `json:"jump"`
	BossDamage         int `json:"boss_damage"`
	IgnoreMonsterArmor int `json:"ignore_monster_armor"`
	AllStat            int `json:"all_stat"`
	Damage             int `json:"damage"`
}

// StatField is a labelled view of a single StatOption value.
type StatField struct {
	Name  string
	Value int
}

// Fields returns every stat in a fixed order.
// The order is part of the item fingerprint and must not change.
func (s StatOption) Fields() []StatField {
	return []StatField{
		{"STR", s.STR},
		{"DEX", s.DEX},
		{"INT", s.INT},
		{"LUK", s.LUK},
		{"MaxHP", s.MaxHP},
		{"MaxMP", s.MaxMP},
		{"Attack", s.AttackPower},
		{"Magic", s.MagicPower},
		{"Armor", s.Armor},
		{"Speed", s.Speed},
		{"Jump", s.Jump},
		{"BossDamage", s.BossDamage},
		{"IgnoreDefense", s.IgnoreMonsterArmor},
		{"AllStat%", s.AllStat},
		{"Damage%", s.Damage},
	}
}

// IsZero reports whether every stat in the group is zero.
func (s StatOption) IsZero() bool {
	return s == StatOption{}
}

// Item is a single equipped item, normalized from the upstream API.
// Items are values; the engine never mutates them.
type Item struct {
	Slot string `json:"item_equipment_slot"`
	Part string `json:"item_equipment_part,omitempty"`
	Name string `json:"item_name"`
	Icon string `json:"item_icon,omitempty"`

	Starforce int `json:"starforce"`

	PotentialGrade  string    `json:"potential_option_grade"`
	Potential       [3]string `json:"potential_options"`
	AdditionalGrade string    `json:"additional_potential_option_grade"`
	Additional      [3]string `json:"additional_potential_options"`

	Base            StatOption `json:"item_base_option"`
	Add             StatOption `json:"item_add_option"`
	Etc             StatOption `json:"item_etc_option"`
	StarforceOption StatOption `json:"item_starforce_option"`

	ScrollUpgrade int    `json:"scroll_upgrade"`
	SoulName      string `json:"soul_name,omitempty"`
	SoulOption    string `json:"soul_option,omitempty"`

	// SeedRingLevel is non-zero only for seed rings.
	SeedRingLevel int `json:"special_ring_level,omitempty"`

	// Exchange marks an item synthesized from the ring exchange slot.
	// Such items are always seed rings.
	Exchange bool `json:"exchange,omitempty"`
}

// HasGrade reports whether a potential grade value denotes a rolled potential.
func HasGrade(grade string) bool {
	g := strings.TrimSpace(grade)
	return g != "" && !strings.EqualFold(g, GradeNone)
}

// NormalizeGrade maps every "no potential" spelling to GradeNone.
func NormalizeGrade(grade string) string {
	if !HasGrade(grade) {
		return GradeNone
	}
	return strings.TrimSpace(grade)
}
