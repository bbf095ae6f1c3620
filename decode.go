package jumon

import (
	"strings"

	"github.com/dq1-tools/jumon/alphabet"
	"github.com/dq1-tools/jumon/crc"
)

// Decode converts a password into the normalized game state it encodes.
//
// The password may contain whitespace, which is ignored. A malformed
// password yields *InvalidPasswordError, a payload whose stored CRC byte
// does not match yields *CrcMismatchError, and a payload carrying an
// out-of-range item or count yields *InvalidGameStateError.
func Decode(password string) (GameState, error) {
	password, err := NormalizePassword(password)
	if err != nil {
		return GameState{}, err
	}

	buf := passwordToBytes(password)
	if err := checkCRC(&buf); err != nil {
		return GameState{}, err
	}

	state := bytesToState(&buf)
	if err := validateHerbCount(state.HerbCount); err != nil {
		return GameState{}, err
	}
	if err := validateKeyCount(state.KeyCount); err != nil {
		return GameState{}, err
	}
	if err := validateInventory(&state.Inventory); err != nil {
		return GameState{}, err
	}

	return state, nil
}

// passwordToBytes reverses the cumulative obfuscation and regroups the
// twenty 6-bit units back into 15 bytes. The password must be normalized.
func passwordToBytes(password string) [15]byte {
	cs := []rune(password)

	var buf [15]byte

	pre := byte(0)
	getBits := func(r rune) byte {
		cur, ok := alphabet.PasswordIndex(r)
		if !ok {
			panic("jumon: unvalidated password symbol")
		}
		bits := (cur - pre - 4) & 0x3F
		pre = cur
		return bits
	}

	for ci, bi := 0, 0; bi < len(buf); ci, bi = ci+4, bi+3 {
		bits := getBits(cs[ci])
		buf[bi] = bits
		bits = getBits(cs[ci+1])
		buf[bi] |= bits << 6
		buf[bi+1] = bits >> 2
		bits = getBits(cs[ci+2])
		buf[bi+1] |= bits << 4
		buf[bi+2] = bits >> 4
		bits = getBits(cs[ci+3])
		buf[bi+2] |= bits << 2
	}

	return buf
}

// checkCRC verifies that byte 0 stores the low byte of the CRC over the
// other 14 bytes.
func checkCRC(buf *[15]byte) error {
	actual := crc.Checksum(buf[1:])
	if byte(actual) != buf[0] {
		return &CrcMismatchError{Expect: buf[0], Actual: actual}
	}
	return nil
}

// bytesToState unpacks the 15-byte buffer into a GameState. Field ranges
// are not checked here.
func bytesToState(buf *[15]byte) GameState {
	bit := func(x byte, idx uint) bool {
		return x&(1<<idx) != 0
	}
	bitVal := func(x byte, idx uint) byte {
		return (x >> idx) & 1
	}

	heroNamePacked := [4]byte{
		buf[5] >> 2,
		(buf[13] >> 1) & 0x3F,
		buf[2] & 0x3F,
		buf[7] & 0x3F,
	}

	return GameState{
		HeroName: unpackHeroName(heroNamePacked),
		HeroXP:   uint16(buf[1]) | uint16(buf[12])<<8,
		Purse:    uint16(buf[4]) | uint16(buf[9])<<8,

		HeroWeapon: buf[8] >> 5,
		HeroArmor:  (buf[8] >> 2) & 0x7,
		HeroShield: buf[8] & 0x3,

		HerbCount: buf[10] & 0xF,
		KeyCount:  buf[10] >> 4,

		Inventory: [8]uint8{
			buf[14] & 0xF,
			buf[14] >> 4,
			buf[3] & 0xF,
			buf[3] >> 4,
			buf[11] & 0xF,
			buf[11] >> 4,
			buf[6] & 0xF,
			buf[6] >> 4,
		},

		FlagEquipDragonScale: bit(buf[13], 7),
		FlagEquipWarriorRing: bit(buf[13], 0),
		FlagGotDeathNecklace: bit(buf[2], 6),
		FlagBeatedGolem:      bit(buf[5], 1),
		FlagBeatedDragon:     bit(buf[7], 6),

		Salt: bitVal(buf[5], 0) | bitVal(buf[2], 7)<<1 | bitVal(buf[7], 7)<<2,
	}
}

// unpackHeroName maps four 6-bit values back to hero-name symbols.
func unpackHeroName(packed [4]byte) string {
	var sb strings.Builder
	for _, b := range packed {
		sb.WriteRune(alphabet.HeroNameRune(b))
	}
	return sb.String()
}
