package jumon

// Known-good vectors shared across the test files.
//
// passwordA is the password of stateA; it also appears in the decode and
// generate tests with single characters mutated.
const (
	defaultPassword = "つにこへむゆるわげげだどべうきさそさには"
	passwordA       = "ざぼちずどぢぎきつたうずせれえむるのぢえ"
)

// stateA exercises every field: name with a voiced kana and a dash, all
// flags set, full equipment, both counts at their cap.
func stateA() GameState {
	return GameState{
		HeroName:             "しど-",
		HeroXP:               1234,
		Purse:                5678,
		HeroWeapon:           5,
		HeroArmor:            5,
		HeroShield:           2,
		HerbCount:            6,
		KeyCount:             6,
		Inventory:            [8]uint8{1, 2, 3, 4, 5, 6, 7, 8},
		FlagEquipDragonScale: true,
		FlagEquipWarriorRing: true,
		FlagGotDeathNecklace: true,
		FlagBeatedGolem:      true,
		FlagBeatedDragon:     true,
		Salt:                 5,
	}
}

// stateANormalized is stateA after hero-name normalization: ど splits
// into と plus the voicing mark, giving exactly 4 symbols.
func stateANormalized() GameState {
	s := stateA()
	s.HeroName = "しと゛-"
	return s
}
