package jumon

import "fmt"

// InvalidGameStateError reports a GameState that cannot be encoded: a
// field out of range, a malformed hero name, or a bad inventory slot.
type InvalidGameStateError struct {
	Msg string
}

func (e *InvalidGameStateError) Error() string {
	return "invalid game state: " + e.Msg
}

// InvalidPasswordError reports a password of the wrong form: wrong length
// after whitespace removal, or characters outside the password alphabet.
type InvalidPasswordError struct {
	Msg string
}

func (e *InvalidPasswordError) Error() string {
	return "invalid password: " + e.Msg
}

// CrcMismatchError reports a well-formed password whose stored CRC low
// byte does not match the CRC computed over the payload.
type CrcMismatchError struct {
	Expect uint8  // low byte stored in the password
	Actual uint16 // full CRC computed over bytes 1..14
}

func (e *CrcMismatchError) Error() string {
	return fmt.Sprintf("crc mismatch: stored low byte 0x%02X, computed 0x%04X", e.Expect, e.Actual)
}

// InvalidPatternError reports a generate pattern of the wrong form.
type InvalidPatternError struct {
	Msg string
}

func (e *InvalidPatternError) Error() string {
	return "invalid pattern: " + e.Msg
}

func invalidGameStatef(format string, args ...any) error {
	return &InvalidGameStateError{Msg: fmt.Sprintf(format, args...)}
}

func invalidPasswordf(format string, args ...any) error {
	return &InvalidPasswordError{Msg: fmt.Sprintf(format, args...)}
}

func invalidPatternf(format string, args ...any) error {
	return &InvalidPatternError{Msg: fmt.Sprintf(format, args...)}
}
