package crc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdate(t *testing.T) {
	// Zero data never moves the register, whatever the chunk width.
	for n := uint(1); n <= 8; n++ {
		assert.Equal(t, uint16(0), Update(0, 0, n))
	}

	assert.Equal(t, uint16(0x1021), Update(0, 1, 1))
	assert.Equal(t, uint16(0x2042), Update(0, 2, 2))
	assert.Equal(t, uint16(0x3063), Update(0, 3, 2))

	// Feeding bits one at a time matches feeding them together.
	assert.Equal(t, Update(0, 3, 2), Update(Update(0, 1, 1), 1, 1))

	// Known CRC-16/XMODEM vector.
	assert.Equal(t, uint16(0x1D0F), Update(Update(0, 0xFF, 8), 0xFF, 8))
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint16(0), Checksum(nil))
	assert.Equal(t, uint16(0x1D0F), Checksum([]byte{0xFF, 0xFF}))

	// Checksum is the byte-wise fold of Update.
	data := []byte{0x12, 0x34, 0x56, 0x78}
	var crc uint16
	for _, b := range data {
		crc = Update(crc, b, 8)
	}
	assert.Equal(t, crc, Checksum(data))
}
