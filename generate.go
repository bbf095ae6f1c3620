package jumon

import (
	"sync"

	"github.com/dq1-tools/jumon/alphabet"
	"github.com/dq1-tools/jumon/crc"
	"github.com/dq1-tools/jumon/log"
)

// tailLen is the number of 6-bit units carrying bytes 1..14, the part of
// the buffer covered by the CRC.
const tailLen = 18

// Generate returns up to nMax decodable passwords matching pattern.
//
// '?' (or fullwidth ？) in the pattern matches any password symbol; every
// other position must match exactly. Results decode without error: the
// stored CRC byte is consistent and herb count, key count and all item
// IDs are in range. If fewer than nMax passwords come back, the search
// space is exhausted.
//
// A malformed pattern yields *InvalidPatternError.
func Generate(pattern string, nMax int) ([]string, error) {
	pattern, err := NormalizePattern(pattern)
	if err != nil {
		return nil, err
	}

	// cums[i] is the cumulative value forced at position i, or -1 for a
	// wildcard.
	cums := make([]int, 0, passwordLen)
	for _, r := range pattern {
		if r == '?' {
			cums = append(cums, -1)
			continue
		}
		idx, _ := alphabet.PasswordIndex(r)
		cums = append(cums, int(idx))
	}

	var tail [tailLen]int
	copy(tail[:], cums[2:])

	log.Debug("generating passwords", log.F("pattern", pattern), log.F("max", nMax))

	// The first two positions fix the stored CRC byte, so each choice of
	// (C[0], C[1]) gets its own DP over the tail.
	var bufs [][15]byte
	remain := nMax
	lo0, hi0 := cumBounds(cums[0])
	lo1, hi1 := cumBounds(cums[1])
outer:
	for cum0 := lo0; cum0 <= hi0; cum0++ {
		for cum1 := lo1; cum1 <= hi1; cum1++ {
			if remain == 0 {
				break outer
			}
			head := [2]byte{
				byte((cum0 - 4) & 0x3F),
				byte((cum1 - cum0 - 4) & 0x3F),
			}
			partial := generateDP(head, &tail, remain)
			remain -= len(partial)
			bufs = append(bufs, partial...)
		}
	}

	passwords := make([]string, len(bufs))
	for i := range bufs {
		passwords[i] = bytesToPassword(&bufs[i])
	}

	log.Debug("generation finished", log.F("pattern", pattern), log.F("found", len(passwords)))

	return passwords, nil
}

// cumBounds returns the cumulative-value range a pattern position allows:
// a single value for a concrete symbol, all 64 for a wildcard (-1).
func cumBounds(c int) (int, int) {
	if c < 0 {
		return 0, 0x3F
	}
	return c, c
}

// dpTrace packs a back-pointer: bits 0..7 the previous CRC accumulator,
// bits 8..13 the previous cumulative value, bit 14 the previous carry.
type dpTrace uint16

func newDPTrace(cum, crc8, carry byte) dpTrace {
	return dpTrace(uint16(crc8) | uint16(cum)<<8 | uint16(carry)<<14)
}

func (t dpTrace) cum() byte   { return byte(t>>8) & 0x3F }
func (t dpTrace) crc8() byte  { return byte(t) }
func (t dpTrace) carry() byte { return byte(t>>14) & 1 }

// dpGrid[i][cum][crc8][carry] lists back-pointers into level i-1 for the
// states reachable after placing i tail units, capped at nMax per cell.
type dpGrid [tailLen + 1][64][256][2][]dpTrace

// generateDP enumerates tail assignments for a fixed head pair: valid
// packed buffers whose cumulative stream honors the pattern, whose tail
// CRC contribution matches the CRC byte implied by the head, and whose
// count/item fields are in range. Forward pass distributes reachable
// states; restoreDP walks the back-pointers.
func generateDP(head [2]byte, tail *[tailLen]int, nMax int) [][15]byte {
	initTables()

	cumInit := int((head[0] + head[1] + 8) & 0x3F)
	crcInit := int(crc8Head[head[1]>>2])

	dp := new(dpGrid)
	// The level-0 trace is a sentinel; dfs never dereferences it.
	dp[0][cumInit][crcInit][0] = append(dp[0][cumInit][crcInit][0], newDPTrace(0, 0, 0))

	for i := 0; i < tailLen; i++ {
		lo, hi := cumBounds(tail[i])
		for j := 0; j < 64; j++ {
			for k := 0; k < 256; k++ {
				for l := 0; l < 2; l++ {
					if len(dp[i][j][k][l]) == 0 {
						continue
					}
					for cum := lo; cum <= hi; cum++ {
						six := byte((cum - j - 4) & 0x3F)
						if !tailSixValid(i, six, l == 1) {
							continue
						}
						crc8 := byte(k) ^ crc8Tail[i][six]
						carry := 0
						if six>>4 == 3 {
							carry = 1
						}
						dst := &dp[i+1][cum][crc8][carry]
						if len(*dst) < nMax {
							*dst = append(*dst, newDPTrace(byte(j), byte(k), byte(l)))
						}
					}
				}
			}
		}
	}

	return restoreDP(head, tail, nMax, dp)
}

// tailSixValid rejects 6-bit values that would place an out-of-range
// count or item ID in the byte they land in. carry reports whether the
// previous unit's top two bits were 0b11: at the positions where a 4-bit
// item nibble straddles the 6/8-bit regrouping, the nibble is 15 exactly
// when carry is set and the current low two bits are 0b11.
func tailSixValid(i int, six byte, carry bool) bool {
	// Herb and key counts share a byte; each half caps at 6.
	if i == 11 && six>>2 >= 7 {
		return false
	}
	if i == 12 && six&0xF >= 7 {
		return false
	}

	// Item ID 15 is not a thing. Whole nibbles first, straddled ones via
	// the carry.
	switch i {
	case 2, 6:
		if six&0xF == 15 {
			return false
		}
	case 13, 17:
		if six>>2 == 15 {
			return false
		}
	}
	switch i {
	case 3, 7, 13, 17:
		if carry && six&3 == 3 {
			return false
		}
	}

	return true
}

// restoreDP reads solutions out of the populated grid: every terminal
// state whose CRC accumulator equals the byte the head pair stores is a
// root for a depth-first walk back to level 0.
func restoreDP(head [2]byte, tail *[tailLen]int, nMax int, dp *dpGrid) [][15]byte {
	crcExpect := head[0] | head[1]<<6

	search := dpSearch{nMax: nMax, dp: dp}

	var sixs [passwordLen]byte
	sixs[0] = head[0]
	sixs[1] = head[1]

	lo, hi := cumBounds(tail[tailLen-1])
roots:
	for cum := lo; cum <= hi; cum++ {
		for l := 0; l < 2; l++ {
			if len(dp[tailLen][cum][crcExpect][l]) == 0 {
				continue
			}
			if search.dfs(tailLen, byte(cum), crcExpect, byte(l), &sixs) {
				break roots
			}
		}
	}

	return search.out
}

type dpSearch struct {
	nMax int
	dp   *dpGrid
	out  [][15]byte
}

// dfs fills sixs from the tail end by following back-pointers from level
// i down to 0. Returns true once nMax solutions are collected.
func (s *dpSearch) dfs(i int, cum, crc8, carry byte, sixs *[passwordLen]byte) bool {
	if i == 0 {
		s.out = append(s.out, sixsToBytes(sixs))
		return len(s.out) == s.nMax
	}

	for _, tr := range s.dp[i][cum][crc8][carry] {
		sixs[i+1] = (cum - tr.cum() - 4) & 0x3F
		if s.dfs(i-1, tr.cum(), tr.crc8(), tr.carry(), sixs) {
			return true
		}
	}

	return false
}

// sixsToBytes regroups twenty 6-bit units into the 15-byte buffer.
func sixsToBytes(sixs *[passwordLen]byte) [15]byte {
	var buf [15]byte
	for bi, si := 0, 0; bi < len(buf); bi, si = bi+3, si+4 {
		buf[bi] = sixs[si] | sixs[si+1]<<6
		buf[bi+1] = sixs[si+1]>>2 | sixs[si+2]<<4
		buf[bi+2] = sixs[si+2]>>4 | sixs[si+3]<<2
	}
	return buf
}

var (
	tablesOnce sync.Once
	crc8Tail   [tailLen][64]byte
	crc8Head   [16]byte
)

// initTables builds the CRC contribution tables on first use. crc8Tail
// gives, per tail unit and 6-bit value, the XOR contribution to the CRC
// low byte. crc8Head covers the top four bits of S[1], which land in
// byte 1 and pass through the CRC like any payload bits.
func initTables() {
	tablesOnce.Do(func() {
		t16 := crc16TailTable()

		for i := range crc8Tail {
			for j := 0; j < 64; j++ {
				crc8Tail[i][j] = byte(t16[i][j])
			}
		}

		for j := 0; j < 16; j++ {
			h := crc.Update(crc.Update(crc.Update(t16[3][j<<2], 0, 8), 0, 8), 0, 8)
			crc8Head[j] = byte(h)
		}
	})
}

// crc16TailTable returns the full 16-bit CRC contribution of each tail
// unit. The CRC consumes 8-bit bytes while the password works in 6-bit
// units; within each 3-byte group the bits regroup as
//
//	8bit: | abcdefgh | ijklmnop | qrstuvwx |
//	6bit: | cdefgh | mnopab | wxijkl | qrstuv |
//
// so the last four rows are built from the regrouped slices of a 3-byte
// group and earlier rows are the same contribution shifted three more
// zero bytes through the register.
func crc16TailTable() *[tailLen][64]uint16 {
	t := new([tailLen][64]uint16)

	for j := 0; j < 64; j++ {
		b := byte(j)
		t[17][j] = crc.Update(0, b<<2, 8)
		t[16][j] = crc.Update(0, b>>4, 2) ^
			crc.Update(crc.Update(0, b<<4, 8), 0, 8)
		t[15][j] = crc.Update(crc.Update(0, b>>2, 4), 0, 8) ^
			crc.Update(crc.Update(crc.Update(0, b<<6, 8), 0, 8), 0, 8)
		t[14][j] = crc.Update(crc.Update(crc.Update(0, b, 6), 0, 8), 0, 8)
	}

	for i := tailLen - 5; i >= 0; i-- {
		for j := 0; j < 64; j++ {
			t[i][j] = crc.Update(crc.Update(crc.Update(t[i+4][j], 0, 8), 0, 8), 0, 8)
		}
	}

	return t
}
