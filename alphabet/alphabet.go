// Package alphabet holds the two fixed 64-symbol character tables of the
// password format and the input-folding table for hero names.
//
// Both tables are bijections between a 6-bit index and a rune. Forward
// lookups index an array; reverse lookups hit maps built once at package
// init, so both directions are constant-time.
package alphabet

// passwordRunes lists the password symbols in index order: the 44 unvoiced
// hiragana in the historical あ..わ ordering, then the 20 voiced が..ぼ.
var passwordRunes = [64]rune{
	'あ', 'い', 'う', 'え', 'お',
	'か', 'き', 'く', 'け', 'こ',
	'さ', 'し', 'す', 'せ', 'そ',
	'た', 'ち', 'つ', 'て', 'と',
	'な', 'に', 'ぬ', 'ね', 'の',
	'は', 'ひ', 'ふ', 'へ', 'ほ',
	'ま', 'み', 'む', 'め', 'も',
	'や', 'ゆ', 'よ',
	'ら', 'り', 'る', 'れ', 'ろ',
	'わ',
	'が', 'ぎ', 'ぐ', 'げ', 'ご',
	'ざ', 'じ', 'ず', 'ぜ', 'ぞ',
	'だ', 'ぢ', 'づ', 'で', 'ど',
	'ば', 'び', 'ぶ', 'べ', 'ぼ',
}

// heroNameRunes lists the hero-name symbols in index order: digits, the
// unvoiced hiragana through ん, the small kana, the two voicing marks,
// '-' and the space used for padding.
var heroNameRunes = [64]rune{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'あ', 'い', 'う', 'え', 'お',
	'か', 'き', 'く', 'け', 'こ',
	'さ', 'し', 'す', 'せ', 'そ',
	'た', 'ち', 'つ', 'て', 'と',
	'な', 'に', 'ぬ', 'ね', 'の',
	'は', 'ひ', 'ふ', 'へ', 'ほ',
	'ま', 'み', 'む', 'め', 'も',
	'や', 'ゆ', 'よ',
	'ら', 'り', 'る', 'れ', 'ろ',
	'わ', 'を', 'ん',
	'っ', 'ゃ', 'ゅ', 'ょ',
	'゛', '゜', '-', ' ',
}

var (
	passwordIndex = make(map[rune]byte, 64)
	heroNameIndex = make(map[rune]byte, 64)
)

func init() {
	for i, r := range passwordRunes {
		passwordIndex[r] = byte(i)
	}
	for i, r := range heroNameRunes {
		heroNameIndex[r] = byte(i)
	}
}

// PasswordRune returns the password symbol for a 6-bit index.
func PasswordRune(i byte) rune {
	return passwordRunes[i]
}

// PasswordIndex returns the 6-bit index of a password symbol, or false if
// the rune is not in the password alphabet.
func PasswordIndex(r rune) (byte, bool) {
	i, ok := passwordIndex[r]
	return i, ok
}

// HeroNameRune returns the hero-name symbol for a 6-bit index.
func HeroNameRune(i byte) rune {
	return heroNameRunes[i]
}

// HeroNameIndex returns the 6-bit index of a hero-name symbol, or false if
// the rune is not in the hero-name alphabet.
func HeroNameIndex(r rune) (byte, bool) {
	i, ok := heroNameIndex[r]
	return i, ok
}

// expandHeroName maps accepted input forms onto hero-name alphabet
// symbols: fullwidth digits, precomposed voiced/semi-voiced kana (split
// into base + mark), the assorted dash code points, and fullwidth space.
var expandHeroName = map[rune][]rune{
	'０': {'0'}, '１': {'1'}, '２': {'2'}, '３': {'3'}, '４': {'4'},
	'５': {'5'}, '６': {'6'}, '７': {'7'}, '８': {'8'}, '９': {'9'},

	'が': {'か', '゛'}, 'ぎ': {'き', '゛'}, 'ぐ': {'く', '゛'}, 'げ': {'け', '゛'}, 'ご': {'こ', '゛'},
	'ざ': {'さ', '゛'}, 'じ': {'し', '゛'}, 'ず': {'す', '゛'}, 'ぜ': {'せ', '゛'}, 'ぞ': {'そ', '゛'},
	'だ': {'た', '゛'}, 'ぢ': {'ち', '゛'}, 'づ': {'つ', '゛'}, 'で': {'て', '゛'}, 'ど': {'と', '゛'},
	'ば': {'は', '゛'}, 'び': {'ひ', '゛'}, 'ぶ': {'ふ', '゛'}, 'べ': {'へ', '゛'}, 'ぼ': {'ほ', '゛'},
	'ぱ': {'は', '゜'}, 'ぴ': {'ひ', '゜'}, 'ぷ': {'ふ', '゜'}, 'ぺ': {'へ', '゜'}, 'ぽ': {'ほ', '゜'},

	'ゔ': {'う', '゛'}, // ゔ
	'゙': {'゛'},      // combining voiced mark
	'゚': {'゜'},      // combining semi-voiced mark

	'‐': {'-'}, // hyphen
	'‑': {'-'}, // non-breaking hyphen
	'‒': {'-'}, // figure dash
	'–': {'-'}, // en dash
	'—': {'-'}, // em dash
	'―': {'-'}, // horizontal bar
	'−': {'-'}, // minus sign
	'ー': {'-'}, // katakana-hiragana prolonged sound mark
	'ｰ': {'-'}, // halfwidth prolonged sound mark

	'　': {' '}, // ideographic space
}

// ExpandHeroNameRune returns the hero-name symbols an input rune folds to,
// or nil when the rune has no mapping and passes through unchanged.
// Runes that pass through are not guaranteed to be in the alphabet.
func ExpandHeroNameRune(r rune) []rune {
	return expandHeroName[r]
}
