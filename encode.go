package jumon

import (
	"strings"

	"github.com/dq1-tools/jumon/alphabet"
	"github.com/dq1-tools/jumon/crc"
)

// Encode converts a game state into its password.
//
// The state is normalized first; an invalid state yields
// *InvalidGameStateError. Encode and Decode are inverses over normalized
// states.
func Encode(state GameState) (string, error) {
	state, err := state.Normalize()
	if err != nil {
		return "", err
	}

	buf := stateToBytes(&state)
	return bytesToPassword(&buf), nil
}

// stateToBytes packs a normalized state into the 15-byte buffer and
// stamps the CRC low byte into byte 0.
func stateToBytes(state *GameState) [15]byte {
	boolBit := func(b bool) byte {
		if b {
			return 1
		}
		return 0
	}
	bitVal := func(x byte, idx uint) byte {
		return (x >> idx) & 1
	}

	heroNamePacked := packHeroName(state.HeroName)

	var buf [15]byte
	buf[1] = byte(state.HeroXP)
	buf[2] = heroNamePacked[2] |
		boolBit(state.FlagGotDeathNecklace)<<6 |
		bitVal(state.Salt, 1)<<7
	buf[3] = state.Inventory[2] | state.Inventory[3]<<4
	buf[4] = byte(state.Purse)
	buf[5] = bitVal(state.Salt, 0) |
		boolBit(state.FlagBeatedGolem)<<1 |
		heroNamePacked[0]<<2
	buf[6] = state.Inventory[6] | state.Inventory[7]<<4
	buf[7] = heroNamePacked[3] |
		boolBit(state.FlagBeatedDragon)<<6 |
		bitVal(state.Salt, 2)<<7
	buf[8] = state.HeroShield | state.HeroArmor<<2 | state.HeroWeapon<<5
	buf[9] = byte(state.Purse >> 8)
	buf[10] = state.HerbCount | state.KeyCount<<4
	buf[11] = state.Inventory[4] | state.Inventory[5]<<4
	buf[12] = byte(state.HeroXP >> 8)
	buf[13] = boolBit(state.FlagEquipWarriorRing) |
		heroNamePacked[1]<<1 |
		boolBit(state.FlagEquipDragonScale)<<7
	buf[14] = state.Inventory[0] | state.Inventory[1]<<4

	buf[0] = byte(crc.Checksum(buf[1:]))

	return buf
}

// packHeroName maps a normalized 4-symbol hero name to 6-bit values.
func packHeroName(name string) [4]byte {
	var packed [4]byte
	i := 0
	for _, r := range name {
		b, ok := alphabet.HeroNameIndex(r)
		if !ok {
			panic("jumon: unnormalized hero name symbol")
		}
		packed[i] = b
		i++
	}
	return packed
}

// bytesToPassword renders the 15-byte buffer as a password: each 3-byte
// chunk becomes four 6-bit units, folded into a cumulative mod-64 stream
// and looked up in the password alphabet.
func bytesToPassword(buf *[15]byte) string {
	var sb strings.Builder
	sb.Grow(3 * passwordLen) // hiragana are 3 bytes each in UTF-8

	cum := byte(0)
	for i := 0; i < len(buf); i += 3 {
		b0, b1, b2 := buf[i], buf[i+1], buf[i+2]

		cum = (cum + (b0 & 0x3F) + 4) & 0x3F
		sb.WriteRune(alphabet.PasswordRune(cum))
		cum = (cum + (b0>>6 | (b1&0xF)<<2) + 4) & 0x3F
		sb.WriteRune(alphabet.PasswordRune(cum))
		cum = (cum + (b1>>4 | (b2&0x3)<<4) + 4) & 0x3F
		sb.WriteRune(alphabet.PasswordRune(cum))
		cum = (cum + b2>>2 + 4) & 0x3F
		sb.WriteRune(alphabet.PasswordRune(cum))
	}

	return sb.String()
}
