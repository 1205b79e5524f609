// Package uint256 provides a fixed width 256-bit unsigned integer.
//
// A Uint256 is stored as 32 byte-digits in little-endian order: byte 0 is the
// least significant and byte 31 the most significant. The value is
//
//  value = sum(b[i] * 256^i) for i in [0, 32)
//
// Storage
//
//  | b[31]     | b[30]     | ... | b[1]  | b[0]  |
//  |-----------|-----------|-----|-------|-------|
//  | 256^31    | 256^30    | ... | 256^1 | 256^0 |
//
// Text
//
// The hexadecimal form is big-endian, most significant byte first, so the
// codec reverses byte order in both directions. Rendering always produces the
// full width:
//
//  0x0000000000000000000000000000000000000000000000000000000000000001
//
// Parsing accepts an optional 0x or 0X prefix, upper or lower case digits, and
// odd length input (an implicit leading zero is added). Input wider than 32
// bytes is rejected rather than truncated.
//
// Arithmetic
//
// Addition, multiplication and left shifts are performed modulo 2^256 and
// silently wrap. Narrowing conversions (ToUint8, ToUint16, ToUint32,
// ToUint64) fail with an OverflowError when any discarded byte is nonzero.
//
// Mutation
//
// Uint256 is a comparable value type. Every operation returns a new value
// except ShiftLeft and ShiftRight, which modify the receiver in place and are
// therefore only defined on *Uint256.
//
// Errors
//
// Failures are reported through three error classes: ConstructionError,
// IndexError and OverflowError. Test membership with Has:
//
//  v, err := uint256.FromHex(s)
//  if uint256.ConstructionError.Has(err) {
//  	...
//  }
package uint256
