package uint256

import "encoding/binary"

// Size is the width of a Uint256 in bytes.
const Size = 32

// Uint256 is an unsigned 256-bit integer stored as little-endian bytes.
type Uint256 struct {
	b [Size]byte
}

// Zero returns 0.
func Zero() Uint256 {
	return Uint256{}
}

// One returns 1.
func One() Uint256 {
	var u Uint256
	u.b[0] = 1

	return u
}

// FromUint8 returns v as a Uint256.
func FromUint8(v uint8) Uint256 {
	var u Uint256
	u.b[0] = v

	return u
}

// FromUint16 returns v as a Uint256.
func FromUint16(v uint16) Uint256 {
	var u Uint256
	binary.LittleEndian.PutUint16(u.b[:2], v)

	return u
}

// FromUint32 returns v as a Uint256.
func FromUint32(v uint32) Uint256 {
	var u Uint256
	binary.LittleEndian.PutUint32(u.b[:4], v)

	return u
}

// FromUint64 returns v as a Uint256.
func FromUint64(v uint64) Uint256 {
	var u Uint256
	binary.LittleEndian.PutUint64(u.b[:8], v)

	return u
}

// FromSlice copies a little-endian byte slice into the low bytes of a new
// Uint256. The remaining high bytes are zero. Slices longer than Size fail
// with a ConstructionError.
func FromSlice(data []byte) (u Uint256, err error) {
	if len(data) > Size {
		return u, ConstructionError.New("slice too long: len=%d max=%d", len(data), Size)
	}

	copy(u.b[:], data)

	return u, nil
}

// Byte returns the byte-digit at index i, where index 0 is the least
// significant.
func (u Uint256) Byte(i int) (byte, error) {
	if i < 0 || i >= Size {
		return 0, IndexError.New("out of range: index=%d size=%d", i, Size)
	}

	return u.b[i], nil
}

// Bytes returns a copy of the little-endian storage.
func (u Uint256) Bytes() [Size]byte {
	return u.b
}

// IsZero reports whether u is 0.
func (u Uint256) IsZero() bool {
	return u.b == [Size]byte{}
}
