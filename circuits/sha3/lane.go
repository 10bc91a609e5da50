package zksha3

import (
	"github.com/consensys/gnark/frontend"
	stdbits "github.com/consensys/gnark/std/math/bits"
)

// lane is one 64-bit word of the Keccak state as boolean wires.
// Bit z holds the coefficient of 2^z, i.e. least significant bit first.
// Rotations and byte extraction below rely on this ordering.
type lane [64]frontend.Variable

// laneAPI performs bitwise operations on lanes on top of frontend.API.
type laneAPI struct {
	api frontend.API
}

func newLaneAPI(api frontend.API) *laneAPI {
	return &laneAPI{api: api}
}

// constLane allocates a lane of constant wires holding v.
func constLane(v uint64) lane {
	var res lane
	for z := 0; z < 64; z++ {
		res[z] = (v >> z) & 1
	}
	return res
}

func (w *laneAPI) xor(in ...lane) lane {
	var res lane
	for z := range res {
		res[z] = in[0][z]
		for _, v := range in[1:] {
			res[z] = w.api.Xor(res[z], v[z])
		}
	}
	return res
}

func (w *laneAPI) and(a, b lane) lane {
	var res lane
	for z := range res {
		res[z] = w.api.And(a[z], b[z])
	}
	return res
}

func (w *laneAPI) not(a lane) lane {
	var res lane
	for z := range res {
		res[z] = w.api.Xor(a[z], 1)
	}
	return res
}

// lrot rotates a lane left by n bits. This is a relabeling of existing
// wires, it costs no constraints.
func lrot(a lane, n int) lane {
	var res lane
	for z := range res {
		res[z] = a[(z-n+64)%64]
	}
	return res
}

// asLane decomposes a 64-bit variable into a lane of boolean wires.
func (w *laneAPI) asLane(v frontend.Variable) lane {
	var res lane
	copy(res[:], stdbits.ToBinary(w.api, v, stdbits.WithNbDigits(64)))
	return res
}

// fromLane recomposes a lane into a single 64-bit variable.
func (w *laneAPI) fromLane(a lane) frontend.Variable {
	return stdbits.FromBinary(w.api, a[:], stdbits.WithUnconstrainedInputs())
}
