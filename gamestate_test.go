package jumon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStateValidate(t *testing.T) {
	assert.NoError(t, GameState{}.Validate())
	assert.NoError(t, stateA().Validate())
	assert.NoError(t, GameState{
		HeroXP: 65535, Purse: 65535,
		HeroWeapon: 7, HeroArmor: 7, HeroShield: 3,
		HerbCount: 6, KeyCount: 6,
		Inventory: [8]uint8{14, 14, 14, 14, 14, 14, 14, 14},
		Salt:      7,
	}.Validate())

	cases := []struct {
		name  string
		state GameState
	}{
		{"hero name too long", GameState{HeroName: "あああああ"}},
		{"weapon", GameState{HeroWeapon: 8}},
		{"armor", GameState{HeroArmor: 8}},
		{"shield", GameState{HeroShield: 4}},
		{"herbs", GameState{HerbCount: 7}},
		{"keys", GameState{KeyCount: 7}},
		{"inventory", GameState{Inventory: [8]uint8{0, 0, 0, 0, 0, 0, 0, 15}}},
		{"salt", GameState{Salt: 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stateErr *InvalidGameStateError
			assert.ErrorAs(t, tc.state.Validate(), &stateErr)
		})
	}
}

func TestGameStateNormalize(t *testing.T) {
	got, err := GameState{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, GameState{HeroName: "    "}, got)

	got, err = GameState{HeroName: "がー　"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, GameState{HeroName: "か゛- "}, got)

	// Normalizing twice is a no-op.
	again, err := got.Normalize()
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = GameState{HeroName: "A"}.Normalize()
	var stateErr *InvalidGameStateError
	assert.ErrorAs(t, err, &stateErr)

	_, err = GameState{Salt: 8}.Normalize()
	assert.ErrorAs(t, err, &stateErr)
}

func TestGameStateJSON(t *testing.T) {
	data, err := json.Marshal(stateA())
	require.NoError(t, err)

	for _, key := range []string{
		`"hero_name"`, `"hero_xp"`, `"purse"`,
		`"hero_weapon"`, `"hero_armor"`, `"hero_shield"`,
		`"herb_count"`, `"key_count"`, `"inventory"`,
		`"flag_equip_dragon_scale"`, `"flag_equip_warrior_ring"`,
		`"flag_got_death_necklace"`, `"flag_beated_golem"`,
		`"flag_beated_dragon"`, `"salt"`,
	} {
		assert.Contains(t, string(data), key)
	}

	var back GameState
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, stateA(), back)
}
