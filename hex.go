package uint256

import (
	"encoding/hex"
	"strings"
)

// FromHex parses big-endian hexadecimal text. An optional 0x or 0X prefix is
// stripped and odd length input is treated as if it had a leading zero.
func FromHex(s string) (u Uint256, err error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	if len(s) == 0 {
		return u, ConstructionError.New("empty hex")
	}

	if len(s)%2 != 0 {
		s = "0" + s
	}

	groups, err := hex.DecodeString(s)
	if err != nil {
		return u, ConstructionError.New("invalid hex: %v", err)
	}

	if len(groups) > Size {
		return u, ConstructionError.New("hex too wide: bytes=%d max=%d", len(groups), Size)
	}

	// The text is most significant first; storage is least significant first.
	for i := range groups {
		u.b[i] = groups[len(groups)-1-i]
	}

	return u, nil
}

// String returns the value as 0x followed by 64 lowercase hex digits.
func (u Uint256) String() string {
	return string(u.appendHex(make([]byte, 0, 2+2*Size)))
}

func (u Uint256) appendHex(dst []byte) []byte {
	const digits = "0123456789abcdef"

	dst = append(dst, '0', 'x')
	for i := Size - 1; i >= 0; i-- {
		dst = append(dst, digits[u.b[i]>>4], digits[u.b[i]&0x0f])
	}

	return dst
}
