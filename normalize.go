package jumon

import (
	"strings"
	"unicode"

	"github.com/dq1-tools/jumon/alphabet"
)

const (
	heroNameLen = 4
	passwordLen = 20
)

// NormalizeHeroName canonicalizes a hero name: input forms are folded
// through the alphabet expansion table (fullwidth digits, precomposed
// voiced kana, dashes, fullwidth space), then the result is right-padded
// with ASCII spaces to exactly 4 symbols.
//
// Names longer than 4 symbols after folding, or containing symbols
// outside the hero-name alphabet, yield an *InvalidGameStateError.
func NormalizeHeroName(name string) (string, error) {
	syms := make([]rune, 0, heroNameLen+1)
	for _, r := range name {
		if exp := alphabet.ExpandHeroNameRune(r); exp != nil {
			syms = append(syms, exp...)
		} else {
			syms = append(syms, r)
		}
		if len(syms) > heroNameLen {
			return "", invalidGameStatef("hero name must be at most %d symbols (voicing marks count as one symbol each)", heroNameLen)
		}
	}

	var bad []string
	for _, r := range syms {
		if _, ok := alphabet.HeroNameIndex(r); !ok {
			bad = append(bad, "'"+string(r)+"'")
		}
	}
	if len(bad) > 0 {
		return "", invalidGameStatef("hero name contains invalid characters: %s", strings.Join(bad, ", "))
	}

	var sb strings.Builder
	for _, r := range syms {
		sb.WriteRune(r)
	}
	for i := len(syms); i < heroNameLen; i++ {
		sb.WriteByte(' ')
	}

	return sb.String(), nil
}

// NormalizePassword canonicalizes a password's form without decoding it:
// all Unicode whitespace is dropped and the result must be exactly 20
// characters from the password alphabet. Anything else yields an
// *InvalidPasswordError.
func NormalizePassword(password string) (string, error) {
	syms := make([]rune, 0, passwordLen+1)
	for _, r := range password {
		if unicode.IsSpace(r) {
			continue
		}
		syms = append(syms, r)
		if len(syms) > passwordLen {
			return "", invalidPasswordf("password must be exactly %d characters (whitespace is ignored)", passwordLen)
		}
	}
	if len(syms) != passwordLen {
		return "", invalidPasswordf("password must be exactly %d characters (whitespace is ignored)", passwordLen)
	}

	var bad []string
	for _, r := range syms {
		if _, ok := alphabet.PasswordIndex(r); !ok {
			bad = append(bad, "'"+string(r)+"'")
		}
	}
	if len(bad) > 0 {
		return "", invalidPasswordf("password contains invalid characters: %s", strings.Join(bad, ", "))
	}

	return string(syms), nil
}

// NormalizePattern canonicalizes a generate pattern: whitespace is
// dropped, the fullwidth ？ folds to '?', and the result must be exactly
// 20 characters, each a password symbol or '?'. Anything else yields an
// *InvalidPatternError.
func NormalizePattern(pattern string) (string, error) {
	syms := make([]rune, 0, passwordLen+1)
	for _, r := range pattern {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '？':
			r = '?'
		}
		syms = append(syms, r)
		if len(syms) > passwordLen {
			return "", invalidPatternf("pattern must be exactly %d characters (whitespace is ignored)", passwordLen)
		}
	}
	if len(syms) != passwordLen {
		return "", invalidPatternf("pattern must be exactly %d characters (whitespace is ignored)", passwordLen)
	}

	var bad []string
	for _, r := range syms {
		if _, ok := alphabet.PasswordIndex(r); !ok && r != '?' {
			bad = append(bad, "'"+string(r)+"'")
		}
	}
	if len(bad) > 0 {
		return "", invalidPatternf("pattern contains invalid characters: %s", strings.Join(bad, ", "))
	}

	return string(syms), nil
}
