package reconcile

import (
	"time"

	"gear-tracker/core/equipment"
)

var day1 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func testCharacter(id string) Character {
	return Character{ID: id, Name: "Tester"}
}

func weapon(name string, starforce int) equipment.Item {
	return equipment.Item{
		Slot:           "Weapon",
		Name:           name,
		Starforce:      starforce,
		PotentialGrade: "Legendary",
		Potential:      [3]string{"Magic ATT +12%", "Magic ATT +9%", "Boss Damage +30%"},
		Add:            equipment.StatOption{INT: 80, MagicPower: 95},
		ScrollUpgrade:  8,
	}
}

func ring(slot, name string) equipment.Item {
	return equipment.Item{Slot: slot, Name: name, Starforce: 17, PotentialGrade: "Unique"}
}

func seedRing(slot, name string, level int) equipment.Item {
	return equipment.Item{Slot: slot, Name: name, SeedRingLevel: level}
}

// snapshotOf builds a snapshot the same way a capture would.
func snapshotOf(date time.Time, items ...equipment.Item) *Snapshot {
	snap := emptySnapshot(date)
	for _, item := range items {
		snap.insert(BucketKey(item.Slot), item)
	}
	return snap
}

func captureOf(items ...equipment.Item) *equipment.Capture {
	c := &equipment.Capture{}
	for _, item := range items {
		c.ItemEquipment = append(c.ItemEquipment, rawOf(item))
	}
	return c
}

func rawOf(item equipment.Item) equipment.RawItem {
	return equipment.RawItem{
		Slot:             item.Slot,
		Name:             item.Name,
		Icon:             item.Icon,
		Starforce:        equipment.Number(item.Starforce),
		PotentialGrade:   item.PotentialGrade,
		Potential1:       item.Potential[0],
		Potential2:       item.Potential[1],
		Potential3:       item.Potential[2],
		AdditionalGrade:  item.AdditionalGrade,
		Additional1:      item.Additional[0],
		Additional2:      item.Additional[1],
		Additional3:      item.Additional[2],
		AddOption:        rawStats(item.Add),
		EtcOption:        rawStats(item.Etc),
		ScrollUpgrade:    equipment.Number(item.ScrollUpgrade),
		SoulName:         item.SoulName,
		SoulOption:       item.SoulOption,
		SpecialRingLevel: equipment.Number(item.SeedRingLevel),
	}
}

func rawStats(s equipment.StatOption) *equipment.RawStatOption {
	if s.IsZero() {
		return nil
	}
	return &equipment.RawStatOption{
		STR:         equipment.Number(s.STR),
		DEX:         equipment.Number(s.DEX),
		INT:         equipment.Number(s.INT),
		LUK:         equipment.Number(s.LUK),
		AttackPower: equipment.Number(s.AttackPower),
		MagicPower:  equipment.Number(s.MagicPower),
		BossDamage:  equipment.Number(s.BossDamage),
		AllStat:     equipment.Number(s.AllStat),
	}
}

func kinds(events []ChangeEvent) []ChangeKind {
	out := make([]ChangeKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}
