package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordAlphabet(t *testing.T) {
	assert.Equal(t, 'あ', PasswordRune(0x00))
	assert.Equal(t, 'わ', PasswordRune(0x2B))
	assert.Equal(t, 'が', PasswordRune(0x2C))
	assert.Equal(t, 'ぼ', PasswordRune(0x3F))

	// Bijection over all 64 indices.
	seen := make(map[rune]bool)
	for i := 0; i < 64; i++ {
		r := PasswordRune(byte(i))
		require.False(t, seen[r], "duplicate password symbol %q", r)
		seen[r] = true

		back, ok := PasswordIndex(r)
		require.True(t, ok)
		assert.Equal(t, byte(i), back)
	}

	_, ok := PasswordIndex('ん') // not a password symbol
	assert.False(t, ok)
	_, ok = PasswordIndex('a')
	assert.False(t, ok)
}

func TestHeroNameAlphabet(t *testing.T) {
	assert.Equal(t, '0', HeroNameRune(0x00))
	assert.Equal(t, '9', HeroNameRune(0x09))
	assert.Equal(t, 'あ', HeroNameRune(0x0A))
	assert.Equal(t, 'ん', HeroNameRune(0x37))
	assert.Equal(t, '゛', HeroNameRune(0x3C))
	assert.Equal(t, '-', HeroNameRune(0x3E))
	assert.Equal(t, ' ', HeroNameRune(0x3F))

	seen := make(map[rune]bool)
	for i := 0; i < 64; i++ {
		r := HeroNameRune(byte(i))
		require.False(t, seen[r], "duplicate hero-name symbol %q", r)
		seen[r] = true

		back, ok := HeroNameIndex(r)
		require.True(t, ok)
		assert.Equal(t, byte(i), back)
	}

	_, ok := HeroNameIndex('が') // voiced kana are input forms, not symbols
	assert.False(t, ok)
	_, ok = HeroNameIndex('A')
	assert.False(t, ok)
}

func TestExpandHeroNameRune(t *testing.T) {
	assert.Equal(t, []rune{'0'}, ExpandHeroNameRune('０'))
	assert.Equal(t, []rune{'か', '゛'}, ExpandHeroNameRune('が'))
	assert.Equal(t, []rune{'は', '゜'}, ExpandHeroNameRune('ぱ'))
	assert.Equal(t, []rune{'う', '゛'}, ExpandHeroNameRune('ゔ'))
	assert.Equal(t, []rune{'゛'}, ExpandHeroNameRune('゙'))
	assert.Equal(t, []rune{'゜'}, ExpandHeroNameRune('゚'))
	assert.Equal(t, []rune{'-'}, ExpandHeroNameRune('ー'))
	assert.Equal(t, []rune{'-'}, ExpandHeroNameRune('—'))
	assert.Equal(t, []rune{' '}, ExpandHeroNameRune('　'))

	// Plain symbols pass through.
	assert.Nil(t, ExpandHeroNameRune('あ'))
	assert.Nil(t, ExpandHeroNameRune('-'))
	assert.Nil(t, ExpandHeroNameRune('A'))

	// Every expansion lands entirely inside the alphabet.
	for in, out := range expandHeroName {
		for _, r := range out {
			_, ok := HeroNameIndex(r)
			assert.True(t, ok, "expansion of %q yields %q outside the alphabet", in, r)
		}
	}
}
