package jumon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefaultState(t *testing.T) {
	state, err := Decode(defaultPassword)
	require.NoError(t, err)

	want, err := GameState{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, want, state)
	assert.Equal(t, "    ", state.HeroName)
}

func TestDecodeFullState(t *testing.T) {
	state, err := Decode(passwordA)
	require.NoError(t, err)
	assert.Equal(t, stateANormalized(), state)
}

func TestDecodeIgnoresWhitespace(t *testing.T) {
	spaced := "ざぼちずど ぢぎきつた\tうずせれえ　むるのぢえ"
	state, err := Decode(spaced)
	require.NoError(t, err)
	assert.Equal(t, stateANormalized(), state)
}

func TestDecodeCrcMismatch(t *testing.T) {
	// passwordA with the last character changed.
	_, err := Decode("ざぼちずどぢぎきつたうずせれえむるのぢお")
	var crcErr *CrcMismatchError
	require.ErrorAs(t, err, &crcErr)
	assert.NotEqual(t, uint8(crcErr.Actual), crcErr.Expect)
}

func TestDecodeInvalidGameState(t *testing.T) {
	// A valid-CRC buffer whose inventory[7] unpacks to 15.
	_, err := Decode("どくのばうぼぞそこけばがきもびはめつごび")
	var stateErr *InvalidGameStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Contains(t, stateErr.Msg, "inventory[7]")
}

func TestDecodeInvalidForm(t *testing.T) {
	cases := []struct {
		name     string
		password string
	}{
		{"too short", "ああああああああああああああああああああ"[:19*3]},
		{"too long", defaultPassword + "あ"},
		{"bad character", "ああああああああああああああああああ漢字"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.password)
			var passErr *InvalidPasswordError
			assert.True(t, errors.As(err, &passErr), "got %v", err)
		})
	}
}

func TestPasswordToBytesInvertsBytesToPassword(t *testing.T) {
	state := stateANormalized()
	buf := stateToBytes(&state)
	back := passwordToBytes(bytesToPassword(&buf))
	assert.Equal(t, buf, back)
}
