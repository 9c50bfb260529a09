// SPDX-License-Identifier: MIT

package ransac

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/katalvlaran/lvgeom/normals"
	"github.com/katalvlaran/lvgeom/pointcloud"
)

// Detector searches point clouds for the primitive types it has been given.
// The zero value is ready to use and detects nothing. A Detector is not safe
// for concurrent use.
type Detector struct {
	types map[PrimType]struct{}

	planes    []PlanePrim
	spheres   []SpherePrim
	cylinders []CylinderPrim
	cones     []ConePrim
	tori      []TorusPrim
}

// NewDetector returns a Detector enabled for types.
//
// Errors: ErrUnknownType.
func NewDetector(types ...PrimType) (*Detector, error) {
	d := &Detector{}
	for _, t := range types {
		if err := d.AddPrimitiveType(t); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// AddPrimitiveType enables t; adding an enabled type is a no-op.
//
// Errors: ErrUnknownType.
func (d *Detector) AddPrimitiveType(t PrimType) error {
	if !t.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	if d.types == nil {
		d.types = make(map[PrimType]struct{})
	}
	d.types[t] = struct{}{}

	return nil
}

// RemovePrimitiveType disables t; removing a disabled type is a no-op.
func (d *Detector) RemovePrimitiveType(t PrimType) { delete(d.types, t) }

// PrimitiveTypes returns the enabled types in ascending order.
func (d *Detector) PrimitiveTypes() []PrimType {
	out := make([]PrimType, 0, len(d.types))
	for t := range d.types {
		out = append(out, t)
	}
	slices.Sort(out)

	return out
}

// Planes returns the planes of the last detection.
func (d *Detector) Planes() []PlanePrim { return d.planes }

// Spheres returns the spheres of the last detection.
func (d *Detector) Spheres() []SpherePrim { return d.spheres }

// Cylinders returns the cylinders of the last detection.
func (d *Detector) Cylinders() []CylinderPrim { return d.cylinders }

// Cones returns the cones of the last detection.
func (d *Detector) Cones() []ConePrim { return d.cones }

// Tori returns the tori of the last detection.
func (d *Detector) Tori() []TorusPrim { return d.tori }

// Detect runs detection over every point of cloud. See DetectSubset.
func (d *Detector) Detect(cloud *pointcloud.Cloud, opts ...Option) (int, error) {
	if cloud == nil {
		return 0, ErrNilCloud
	}
	all := make([]int, cloud.Len())
	for i := range all {
		all[i] = i
	}

	return d.DetectSubset(cloud, all, opts...)
}

// DetectSubset runs detection over the listed points and returns the number
// of accepted primitives. Every point of the cloud is labelled in
// "v:primitive_type" and "v:primitive_index"; points outside vertices, and
// points no primitive claimed, get Unknown and -1. Previous results of the
// Detector are discarded.
//
// Errors: ErrNilCloud, ErrNoNormals, ErrIndexOutOfRange, ErrOptionViolation,
// and property type conflicts from pointcloud.
func (d *Detector) DetectSubset(cloud *pointcloud.Cloud, vertices []int, opts ...Option) (int, error) {
	if cloud == nil {
		return 0, ErrNilCloud
	}
	if !cloud.HasNormals() {
		return 0, ErrNoNormals
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	n := cloud.Len()
	for _, v := range vertices {
		if v < 0 || v >= n {
			return 0, fmt.Errorf("%w: %d (n=%d)", ErrIndexOutOfRange, v, n)
		}
	}

	typeProp, err := pointcloud.GetOrAddProperty(cloud, pointcloud.PropPrimitiveType, int(Unknown))
	if err != nil {
		return 0, fmt.Errorf("ransac: %w", err)
	}
	indexProp, err := pointcloud.GetOrAddProperty(cloud, pointcloud.PropPrimitiveIndex, -1)
	if err != nil {
		return 0, fmt.Errorf("ransac: %w", err)
	}
	typeProp.Fill(int(Unknown))
	indexProp.Fill(-1)
	d.planes, d.spheres, d.cylinders, d.cones, d.tori = nil, nil, nil, nil, nil

	if len(d.types) == 0 || len(vertices) == 0 {
		o.Logger.Info("nothing to detect", "types", len(d.types), "points", len(vertices))
		return 0, nil
	}

	box := cloud.BoundingBoxOf(vertices)
	extent := box.MaxExtent()
	if !(extent > 0) {
		o.Logger.Info("degenerate extent, nothing to detect", "points", len(vertices))
		return 0, nil
	}

	run := &detection{
		det:       d,
		opts:      o,
		pts:       cloud.Positions(),
		nrm:       cloud.Normals(),
		origin:    box.Min,
		eps:       o.DistThreshold * extent,
		bitmapEps: o.BitmapResolution * extent,
		types:     typeProp.Data(),
		indices:   indexProp.Data(),
	}
	run.remaining = roaring.New()
	for _, v := range vertices {
		run.remaining.Add(uint32(v))
	}
	run.sampler = newSampler(rand.New(rand.NewSource(o.Seed)), run.pts, run.remaining.ToArray(), box.Min, extent, run.bitmapEps)
	for _, t := range d.PrimitiveTypes() {
		run.fitters = append(run.fitters, fitters[t])
	}

	count := run.search()
	o.Logger.Info("primitives detected",
		"count", count,
		"planes", len(d.planes),
		"spheres", len(d.spheres),
		"cylinders", len(d.cylinders),
		"cones", len(d.cones),
		"tori", len(d.tori),
		"trials", run.trials,
		"unassigned", run.remaining.GetCardinality(),
	)

	return count, nil
}

// candidate is a fitted shape with its connected support.
type candidate struct {
	shape   shape
	inliers []uint32
}

// detection is the state of one DetectSubset call.
type detection struct {
	det       *Detector
	opts      Options
	pts, nrm  []r3.Vector
	origin    r3.Vector
	eps       float64
	bitmapEps float64
	types     []int
	indices   []int

	fitters   []fitter
	sampler   *sampler
	remaining *roaring.Bitmap
	trials    int
	count     int
}

// search alternates sampling and greedy acceptance until a MinSupport shape
// can no longer be missed with probability above the overlook bound.
func (r *detection) search() int {
	maxK, minK := 0, math.MaxInt
	for _, f := range r.fitters {
		maxK = max(maxK, f.samples)
		minK = min(minK, f.samples)
	}
	confidence := 1 - r.opts.OverlookProbability
	depth := r.sampler.depth()
	buf := make([]uint32, 0, maxK)

	var (
		best  *candidate
		draws int
	)
	for r.trials < r.opts.MaxTrials {
		card := int(r.remaining.GetCardinality())
		if card < r.opts.MinSupport || card < minK {
			break
		}
		r.trials++
		draws++
		for _, f := range r.fitters {
			var ok bool
			buf, ok = r.sampler.draw(r.remaining, f.samples, buf)
			if !ok {
				continue
			}
			floor := 0
			if best != nil {
				floor = len(best.inliers)
			}
			if c := r.evaluate(f, buf, floor); c != nil {
				best = c
			}
		}

		if best != nil && len(best.inliers) >= r.opts.MinSupport &&
			foundProbability(len(best.inliers), card, draws, maxK, depth) > confidence {
			r.accept(best)
			best, draws = nil, 0
			continue
		}
		if foundProbability(r.opts.MinSupport, card, draws, maxK, depth) > confidence {
			break
		}
	}

	return r.count
}

// evaluate fits f to the sample and returns the candidate when every sample
// point is compatible and its support beats floor.
func (r *detection) evaluate(f fitter, sample []uint32, floor int) *candidate {
	p := make([]r3.Vector, len(sample))
	n := make([]r3.Vector, len(sample))
	for i, idx := range sample {
		p[i], n[i] = r.pts[idx], r.nrm[idx]
	}
	s, ok := f.fit(p, n)
	if !ok {
		return nil
	}
	for i := range sample {
		if !compatible(s, p[i], n[i], r.eps, r.opts.NormalThreshold) {
			return nil
		}
	}
	inliers := r.score(s)
	if len(inliers) <= floor {
		return nil
	}
	inliers = largestComponent(r.pts, inliers, r.origin, r.bitmapEps)
	if len(inliers) <= floor {
		return nil
	}

	return &candidate{shape: s, inliers: inliers}
}

// score collects the remaining points compatible with s, ascending.
func (r *detection) score(s shape) []uint32 {
	var out []uint32
	it := r.remaining.Iterator()
	for it.HasNext() {
		i := it.Next()
		if compatible(s, r.pts[i], r.nrm[i], r.eps, r.opts.NormalThreshold) {
			out = append(out, i)
		}
	}

	return out
}

// accept records c as the next primitive, labels its points and removes them
// from the search.
func (r *detection) accept(c *candidate) {
	if c.shape.kind() == Plane {
		r.refitPlane(c)
	}
	index := r.count
	r.count++

	vertices := make([]int, len(c.inliers))
	for i, idx := range c.inliers {
		vertices[i] = int(idx)
		r.types[idx] = int(c.shape.kind())
		r.indices[idx] = index
	}
	r.remaining.AndNot(roaring.BitmapOf(c.inliers...))

	r.record(index, vertices, c.shape)
}

// refitPlane replaces a sampled plane by the least-squares plane of its
// support when that does not lose support.
func (r *detection) refitPlane(c *candidate) {
	idx := make([]int, len(c.inliers))
	for i, v := range c.inliers {
		idx[i] = int(v)
	}
	centroid, normal, _, err := normals.FitPlane(r.pts, idx)
	if err != nil {
		r.opts.Logger.Debug("plane refit failed", "err", err)
		return
	}
	refit := planeShape{point: centroid, normal: normal}
	inliers := largestComponent(r.pts, r.score(refit), r.origin, r.bitmapEps)
	if len(inliers) >= len(c.inliers) {
		c.shape, c.inliers = refit, inliers
	}
}

// record appends the typed description of s to the detector's lists.
func (r *detection) record(index int, vertices []int, s shape) {
	d, log := r.det, r.opts.Logger
	switch s := s.(type) {
	case planeShape:
		prim := PlanePrim{Index: index, Vertices: vertices, Position: s.point, Normal: majorityNormal(s.normal, r.nrm, vertices)}
		if centroid, _, _, err := normals.FitPlane(r.pts, vertices); err == nil {
			prim.Position = centroid
		}
		prim.Equation = [4]float64{prim.Normal.X, prim.Normal.Y, prim.Normal.Z, -prim.Normal.Dot(prim.Position)}
		d.planes = append(d.planes, prim)
		logPrimitive(log, s.kind(), index, len(vertices), "normal", prim.Normal)
	case sphereShape:
		d.spheres = append(d.spheres, SpherePrim{Index: index, Vertices: vertices, Center: s.center, Radius: s.radius})
		logPrimitive(log, s.kind(), index, len(vertices), "center", s.center, "radius", s.radius)
	case cylinderShape:
		lowest := math.Inf(1)
		for _, v := range vertices {
			lowest = math.Min(lowest, r.pts[v].Sub(s.point).Dot(s.axis))
		}
		d.cylinders = append(d.cylinders, CylinderPrim{
			Index:     index,
			Vertices:  vertices,
			Radius:    s.radius,
			Position:  s.point.Add(s.axis.Mul(lowest)),
			Direction: s.axis,
		})
		logPrimitive(log, s.kind(), index, len(vertices), "direction", s.axis, "radius", s.radius)
	case coneShape:
		d.cones = append(d.cones, ConePrim{Index: index, Vertices: vertices, Apex: s.apex, Direction: s.axis, Angle: s.angle})
		logPrimitive(log, s.kind(), index, len(vertices), "apex", s.apex, "angle", s.angle)
	case torusShape:
		d.tori = append(d.tori, TorusPrim{
			Index:       index,
			Vertices:    vertices,
			Center:      s.center,
			Axis:        s.axis,
			MajorRadius: s.major,
			MinorRadius: s.minor,
		})
		logPrimitive(log, s.kind(), index, len(vertices), "major", s.major, "minor", s.minor)
	}
}

// majorityNormal flips n to agree with most of the point normals.
func majorityNormal(n r3.Vector, nrm []r3.Vector, vertices []int) r3.Vector {
	var agree float64
	for _, v := range vertices {
		agree += n.Dot(nrm[v])
	}
	if agree < 0 {
		return n.Mul(-1)
	}

	return n
}

func logPrimitive(log *logging.Logger, t PrimType, index, support int, attrs ...any) {
	log.Debug("primitive accepted", append([]any{"type", t.String(), "index", index, "support", support}, attrs...)...)
}
