package uint256

import (
	"io"

	"github.com/calebcase/oops"
)

// MarshalText implements encoding.TextMarshaler.
func (u Uint256) MarshalText() (text []byte, err error) {
	return u.appendHex(make([]byte, 0, 2+2*Size)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Uint256) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := FromHex(string(text))
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The data is the full
// little-endian storage.
func (u Uint256) MarshalBinary() (data []byte, err error) {
	data = make([]byte, Size)
	copy(data, u.b[:])

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Short data is zero
// extended the same way FromSlice does.
func (u *Uint256) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := FromSlice(data)
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// WriteTo implements io.WriterTo. Exactly Size bytes are written.
func (u Uint256) WriteTo(w io.Writer) (n int64, err error) {
	m, err := w.Write(u.b[:])
	if err != nil {
		return int64(m), oops.Trace(err)
	}

	return int64(m), nil
}

// ReadFrom implements io.ReaderFrom. Exactly Size bytes are read; u is left
// unchanged if fewer are available.
func (u *Uint256) ReadFrom(r io.Reader) (n int64, err error) {
	var buf [Size]byte

	m, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(m), oops.Trace(err)
	}

	u.b = buf

	return int64(m), nil
}
