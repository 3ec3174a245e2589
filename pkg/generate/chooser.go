package generate

import (
	"math/rand/v2"
)

// Chooser picks one value set name for random generation. names is never
// empty and is sorted ascending.
type Chooser interface {
	Choose(names []string) string
}

// ChooserFunc adapts a function to Chooser
type ChooserFunc func(names []string) string

// Choose calls f
func (f ChooserFunc) Choose(names []string) string {
	return f(names)
}

// RandomChooser picks uniformly using the process-wide random source
type RandomChooser struct{}

// Choose implements Chooser
func (RandomChooser) Choose(names []string) string {
	return names[rand.IntN(len(names))]
}

// SeededChooser picks uniformly from a deterministic source
type SeededChooser struct {
	rng *rand.Rand
}

// NewSeededChooser returns a chooser whose picks are fixed by seed
func NewSeededChooser(seed uint64) *SeededChooser {
	return &SeededChooser{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Choose implements Chooser
func (c *SeededChooser) Choose(names []string) string {
	return names[c.rng.IntN(len(names))]
}
