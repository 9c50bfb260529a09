// SPDX-License-Identifier: MIT

package ransac

import (
	"math"
	"math/rand"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/golang/geo/r3"
)

// maxOctreeDepth bounds the number of subdivision levels used for sampling.
const maxOctreeDepth = 10

// cellKey addresses a cube of a regular grid.
type cellKey struct{ x, y, z int32 }

// sampler draws spatially local minimal samples: a seed point is chosen
// uniformly among the remaining points, then the companions come from the
// seed's cell at a uniformly chosen octree level.
type sampler struct {
	rng    *rand.Rand
	pts    []r3.Vector
	origin r3.Vector
	extent float64
	levels []map[cellKey][]uint32
}

// newSampler buckets indices into every octree level whose cells are still
// at least minCell wide.
func newSampler(rng *rand.Rand, pts []r3.Vector, indices []uint32, origin r3.Vector, extent, minCell float64) *sampler {
	depth := 0
	for depth < maxOctreeDepth && extent/math.Exp2(float64(depth+1)) >= minCell {
		depth++
	}
	s := &sampler{rng: rng, pts: pts, origin: origin, extent: extent, levels: make([]map[cellKey][]uint32, depth+1)}
	for l := range s.levels {
		cells := make(map[cellKey][]uint32)
		for _, i := range indices {
			k := s.key(pts[i], l)
			cells[k] = append(cells[k], i)
		}
		s.levels[l] = cells
	}

	return s
}

// depth is the number of octree levels samples are drawn from.
func (s *sampler) depth() int { return len(s.levels) }

func (s *sampler) key(p r3.Vector, level int) cellKey {
	n := 1 << level
	size := s.extent / float64(n)
	q := func(v float64) int32 {
		return int32(min(max(int(math.Floor(v/size)), 0), n-1))
	}
	d := p.Sub(s.origin)

	return cellKey{q(d.X), q(d.Y), q(d.Z)}
}

// draw appends k distinct remaining indices to buf[:0]. ok is false when the
// chosen cell holds too few remaining points.
func (s *sampler) draw(remaining *roaring.Bitmap, k int, buf []uint32) (sample []uint32, ok bool) {
	card := remaining.GetCardinality()
	if card < uint64(k) {
		return buf[:0], false
	}
	seed, err := remaining.Select(uint32(s.rng.Int63n(int64(card))))
	if err != nil {
		return buf[:0], false
	}
	level := s.rng.Intn(len(s.levels))
	cell := s.levels[level][s.key(s.pts[seed], level)]
	if len(cell) < k {
		return buf[:0], false
	}

	sample = append(buf[:0], seed)
	for attempts := 0; len(sample) < k && attempts < 8*k; attempts++ {
		c := cell[s.rng.Intn(len(cell))]
		if !remaining.Contains(c) || slices.Contains(sample, c) {
			continue
		}
		sample = append(sample, c)
	}

	return sample, len(sample) == k
}

// foundProbability is the chance that a shape of n points among remaining
// was hit by at least one of draws localized samples of size k.
func foundProbability(n, remaining, draws, k, depth int) float64 {
	if remaining == 0 || draws == 0 {
		return 0
	}
	p := float64(n) / (float64(remaining) * float64(depth) * math.Exp2(float64(k-1)))
	if p >= 1 {
		return 1
	}

	return 1 - math.Pow(1-p, float64(draws))
}
