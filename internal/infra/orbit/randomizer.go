// Package orbit draws the randomized presentation attributes attached to
// missions at creation. The values only matter to the rendering layer.
package orbit

import (
	"math/rand/v2"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// Attribute bands, matching what the rendering layer expects.
const (
	radiusBase = 120.0
	radiusBand = 80.0
	speedBase  = 0.2
	speedBand  = 0.8
)

// Ensure Randomizer implements domain.OrbitRandomizer.
var _ domain.OrbitRandomizer = (*Randomizer)(nil)

// Randomizer draws orbital attributes from the shared PRNG.
type Randomizer struct{}

// New creates a new Randomizer.
func New() *Randomizer {
	return &Randomizer{}
}

// Orbit draws a random angle in [0,360), radius in [120,200), and speed in
// [0.2,1.0).
func (r *Randomizer) Orbit() domain.Orbit {
	return domain.Orbit{
		Angle:  rand.Float64() * 360,
		Radius: radiusBase + rand.Float64()*radiusBand,
		Speed:  speedBase + rand.Float64()*speedBand,
	}
}
