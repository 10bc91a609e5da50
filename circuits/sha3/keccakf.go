package zksha3

// Keccak-f[1600] as boolean constraints: 24 rounds of theta, rho, pi, chi
// and iota over a 5x5 matrix of 64-bit lanes. Lane (x,y) lives at index
// x+5y. Only theta, chi and iota allocate constraints; rho and pi are pure
// wire relabelings.

// Round constants for the 24 rounds, XORed into lane (0,0) by iota.
// See the Keccak specification summary, https://keccak.team/keccak_specs_summary.html
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A,
	0x8000000080008000, 0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008A,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotOffsets holds the rho rotation offset for lane x+5y. The values are
// the triangular numbers (t+1)(t+2)/2 mod 64 laid out along the pi walk,
// with offset 0 for lane (0,0).
var rotOffsets = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// theta XORs into every lane the column parities of columns x-1 and x+1,
// the latter rotated by one bit.
func (w *laneAPI) theta(a [25]lane) [25]lane {
	var c [5]lane
	for x := 0; x < 5; x++ {
		c[x] = w.xor(a[x], a[x+5], a[x+10], a[x+15], a[x+20])
	}
	var d [5]lane
	for x := 0; x < 5; x++ {
		d[x] = w.xor(c[(x+4)%5], lrot(c[(x+1)%5], 1))
	}
	var b [25]lane
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[x+5*y] = w.xor(a[x+5*y], d[x])
		}
	}
	return b
}

// rho rotates each lane by its fixed offset. No constraints.
func rho(a [25]lane) [25]lane {
	var b [25]lane
	for i := range a {
		b[i] = lrot(a[i], rotOffsets[i])
	}
	return b
}

// pi moves lane (x,y) to position (y, 2x+3y mod 5). No constraints.
func pi(a [25]lane) [25]lane {
	var b [25]lane
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[y+5*((2*x+3*y)%5)] = a[x+5*y]
		}
	}
	return b
}

// chi computes a[x,y] ^ (^a[x+1,y] & a[x+2,y]) per lane. The only
// nonlinear step.
func (w *laneAPI) chi(a [25]lane) [25]lane {
	var b [25]lane
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b[x+5*y] = w.xor(a[x+5*y], w.and(w.not(a[(x+1)%5+5*y]), a[(x+2)%5+5*y]))
		}
	}
	return b
}

// iotaRound XORs the round constant into lane (0,0).
func (w *laneAPI) iotaRound(a [25]lane, round int) [25]lane {
	a[0] = w.xor(a[0], constLane(roundConstants[round]))
	return a
}

// permute applies the full 24-round Keccak-f[1600] permutation.
func (w *laneAPI) permute(a [25]lane) [25]lane {
	for r := 0; r < 24; r++ {
		a = w.iotaRound(w.chi(pi(rho(w.theta(a)))), r)
	}
	return a
}
