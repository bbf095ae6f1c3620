package jumon

// GameState is the plaintext save state carried by a password.
//
// The zero value is a valid state (a fresh game with an empty name).
type GameState struct {
	// HeroName is the hero's name, up to 4 symbols from the hero-name
	// alphabet. The voicing marks ゛ and ゜ each count as one symbol.
	// Names shorter than 4 symbols are treated as right-padded with
	// ASCII spaces.
	HeroName string `json:"hero_name"`

	// HeroXP is the hero's experience points.
	HeroXP uint16 `json:"hero_xp"`

	// Purse is the carried gold.
	Purse uint16 `json:"purse"`

	// HeroWeapon is the equipped weapon ID (0..=7).
	//
	//	0 none             4 iron axe
	//	1 bamboo pole      5 steel sword
	//	2 club             6 flame sword
	//	3 copper sword     7 Erdrick's sword
	HeroWeapon uint8 `json:"hero_weapon"`

	// HeroArmor is the equipped armor ID (0..=7).
	//
	//	0 none             4 iron armor
	//	1 clothes          5 steel armor
	//	2 leather armor    6 magic armor
	//	3 chain mail       7 Erdrick's armor
	HeroArmor uint8 `json:"hero_armor"`

	// HeroShield is the equipped shield ID (0..=3).
	//
	//	0 none             2 iron shield
	//	1 leather shield   3 silver shield
	HeroShield uint8 `json:"hero_shield"`

	// HerbCount is the number of herbs carried (0..=6).
	HerbCount uint8 `json:"herb_count"`

	// KeyCount is the number of magic keys carried (0..=6).
	KeyCount uint8 `json:"key_count"`

	// Inventory holds the eight item slots, each an item ID 0..=14.
	//
	//	0 empty            5 fairy flute       10 silver harp
	//	1 torch            6 fighter's ring    11 death necklace
	//	2 holy water       7 Erdrick's token   12 stones of sunlight
	//	3 chimera wing     8 princess's love   13 staff of rain
	//	4 dragon scale     9 cursed belt       14 rainbow drop
	Inventory [8]uint8 `json:"inventory"`

	// FlagEquipDragonScale is set while the dragon scale is worn.
	FlagEquipDragonScale bool `json:"flag_equip_dragon_scale"`

	// FlagEquipWarriorRing is set while the fighter's ring is worn.
	FlagEquipWarriorRing bool `json:"flag_equip_warrior_ring"`

	// FlagGotDeathNecklace is set once the death necklace was picked up.
	FlagGotDeathNecklace bool `json:"flag_got_death_necklace"`

	// FlagBeatedGolem is set once the golem guarding Cantlin is beaten.
	FlagBeatedGolem bool `json:"flag_beated_golem"`

	// FlagBeatedDragon is set once the swamp cave dragon is beaten.
	FlagBeatedDragon bool `json:"flag_beated_dragon"`

	// Salt varies the password for otherwise identical states (0..=7).
	Salt uint8 `json:"salt"`
}

// Validate checks every field against its encodable range. The hero name
// may be given un-normalized.
func (s GameState) Validate() error {
	if _, err := NormalizeHeroName(s.HeroName); err != nil {
		return err
	}
	if err := validateHeroWeapon(s.HeroWeapon); err != nil {
		return err
	}
	if err := validateHeroArmor(s.HeroArmor); err != nil {
		return err
	}
	if err := validateHeroShield(s.HeroShield); err != nil {
		return err
	}
	if err := validateHerbCount(s.HerbCount); err != nil {
		return err
	}
	if err := validateKeyCount(s.KeyCount); err != nil {
		return err
	}
	if err := validateInventory(&s.Inventory); err != nil {
		return err
	}
	return validateSalt(s.Salt)
}

// Normalize returns a copy of s with the hero name in canonical form
// (input folding applied, padded to 4 symbols). The result is guaranteed
// valid when the error is nil. Only the hero name changes; numeric fields
// out of range are reported, never repaired.
func (s GameState) Normalize() (GameState, error) {
	if err := s.Validate(); err != nil {
		return GameState{}, err
	}

	name, err := NormalizeHeroName(s.HeroName)
	if err != nil {
		return GameState{}, err
	}

	s.HeroName = name
	return s, nil
}
