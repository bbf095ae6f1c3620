// Package jumon encodes, decodes and enumerates the 20-character
// "revival spell" passwords used as save states by the first Dragon Quest.
//
// A password packs the whole game state into 15 bytes: byte 0 stores the
// low byte of a CRC over the other 14, which carry the hero's name,
// experience, gold, equipment, item counts, inventory, progress flags and
// a 3-bit salt in a non-byte-aligned layout. The bytes are regrouped into
// twenty 6-bit units, obfuscated into a cumulative mod-64 stream and
// rendered through a 64-hiragana alphabet.
//
// The package offers three operations:
//
//	state, err := jumon.Decode("つにこへむゆるわげげだどべうきさそさには")
//	password, err := jumon.Encode(state)
//	passwords, err := jumon.Generate("つにこへ????????????????", 10)
//
// Generate finds decodable passwords matching a pattern with '?'
// wildcards, up to a caller-supplied cap.
//
// All operations are pure; errors are values of the four types in
// errors.go. The library logs nothing by default; see the log subpackage
// to attach a logger and get debug output from Generate.
package jumon
