package par

import "math/rand/v2"

// rng wraps a seeded PCG PRNG. The original engine reseeded
// libc's rand() once per run; that generator's quality and behavior
// varies across platforms, which works against the determinism guarantee
// the engine promises (identical (netlist, device, seed) triples must
// yield identical results everywhere). PCG is well-specified and
// platform-independent, so seeding it from the caller's uint32 is enough
// to reproduce a run bit-for-bit on any machine.
type rng struct {
	r *rand.Rand
}

func newRNG(seed uint32) *rng {
	return &rng{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// intn returns a pseudo-random integer in [0, n).
func (g *rng) intn(n int) int {
	return g.r.IntN(n)
}
