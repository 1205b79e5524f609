package uint256_test

import (
	"fmt"

	"github.com/calebcase/uint256"
)

// This example demonstrates parsing hex text, shifting in place, and adding
// with wraparound.
func Example_basicUsage() {
	u, err := uint256.FromHex("0x40000000")
	if err != nil {
		fmt.Println(err)
		return
	}

	u.ShiftRight(1)
	fmt.Println(u)

	top, err := uint256.FromHex("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(top.Add(uint256.One()).IsZero())

	// Output:
	// 0x0000000000000000000000000000000000000000000000000000000020000000
	// true
}

// This example demonstrates a narrowing conversion that does not fit.
func ExampleUint256_ToUint8() {
	v, err := uint256.FromUint16(0x0100).ToUint8()
	fmt.Println(v, uint256.OverflowError.Has(err))

	v, err = uint256.FromUint16(0x00ff).ToUint8()
	fmt.Println(v, err)

	// Output:
	// 0 true
	// 255 <nil>
}
