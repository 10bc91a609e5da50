package zksha3

import "github.com/consensys/gnark/frontend"

// pad101 applies the pad10*1 rule from FIPS 202 section 5.1: a constant 1
// bit, the minimum number of constant 0 bits, and a final constant 1 bit,
// so that the result length is a multiple of the rate. Only constant wires
// are allocated. If the input is already two bits short of a rate boundary
// no zero bits are inserted and the two 1 bits end up adjacent.
func pad101(bits []frontend.Variable) []frontend.Variable {
	zeros := (RateBits - 1 - (len(bits)+1)%RateBits) % RateBits

	padded := make([]frontend.Variable, len(bits), len(bits)+zeros+2)
	copy(padded, bits)

	padded = append(padded, 1)
	for i := 0; i < zeros; i++ {
		padded = append(padded, 0)
	}
	padded = append(padded, 1)
	return padded
}
