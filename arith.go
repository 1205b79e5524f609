package uint256

import "encoding/binary"

// Add returns u + o modulo 2^256.
func (u Uint256) Add(o Uint256) (sum Uint256) {
	var carry uint16

	for i := 0; i < Size; i++ {
		s := carry + uint16(u.b[i]) + uint16(o.b[i])
		sum.b[i] = byte(s)
		carry = s >> 8
	}

	return sum
}

// Mul returns u * o modulo 2^256 using schoolbook multiplication over the
// byte-digits.
func (u Uint256) Mul(o Uint256) (product Uint256) {
	for i := 0; i < Size; i++ {
		if u.b[i] == 0 {
			continue
		}

		var carry uint16

		// Digits at i+j >= Size only contribute above 2^256.
		for j := 0; i+j < Size; j++ {
			// 0xff*0xff + 0xff + 0xff fits in 16 bits.
			p := uint16(u.b[i])*uint16(o.b[j]) + uint16(product.b[i+j]) + carry
			product.b[i+j] = byte(p)
			carry = p >> 8
		}
	}

	return product
}

// ToUint8 returns u as a uint8 or an OverflowError if it does not fit.
func (u Uint256) ToUint8() (uint8, error) {
	err := u.fits(1)
	if err != nil {
		return 0, err
	}

	return u.b[0], nil
}

// ToUint16 returns u as a uint16 or an OverflowError if it does not fit.
func (u Uint256) ToUint16() (uint16, error) {
	err := u.fits(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(u.b[:2]), nil
}

// ToUint32 returns u as a uint32 or an OverflowError if it does not fit.
func (u Uint256) ToUint32() (uint32, error) {
	err := u.fits(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(u.b[:4]), nil
}

// ToUint64 returns u as a uint64 or an OverflowError if it does not fit.
func (u Uint256) ToUint64() (uint64, error) {
	err := u.fits(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(u.b[:8]), nil
}

// fits checks that every byte at or above width is zero.
func (u Uint256) fits(width int) error {
	for i := width; i < Size; i++ {
		if u.b[i] != 0 {
			return OverflowError.New("does not fit in %d bits: %s", width*8, u)
		}
	}

	return nil
}
