package uint256

// ShiftLeft shifts u left by places bits in place. Bits moved past bit 255
// are discarded.
func (u *Uint256) ShiftLeft(places uint) {
	byteShift := places / 8
	bitShift := places % 8

	if byteShift >= Size {
		u.b = [Size]byte{}

		return
	}

	if byteShift > 0 {
		for i := Size - 1; i >= int(byteShift); i-- {
			u.b[i] = u.b[i-int(byteShift)]
		}

		for i := 0; i < int(byteShift); i++ {
			u.b[i] = 0
		}
	}

	if bitShift > 0 {
		for i := Size - 1; i > 0; i-- {
			u.b[i] = u.b[i]<<bitShift | u.b[i-1]>>(8-bitShift)
		}

		u.b[0] <<= bitShift
	}
}

// ShiftRight shifts u right by places bits in place. Bits moved past bit 0
// are discarded.
func (u *Uint256) ShiftRight(places uint) {
	byteShift := places / 8
	bitShift := places % 8

	if byteShift >= Size {
		u.b = [Size]byte{}

		return
	}

	if byteShift > 0 {
		for i := 0; i < Size-int(byteShift); i++ {
			u.b[i] = u.b[i+int(byteShift)]
		}

		for i := Size - int(byteShift); i < Size; i++ {
			u.b[i] = 0
		}
	}

	if bitShift > 0 {
		for i := 0; i < Size-1; i++ {
			u.b[i] = u.b[i]>>bitShift | u.b[i+1]<<(8-bitShift)
		}

		u.b[Size-1] >>= bitShift
	}
}
