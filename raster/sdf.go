package raster

import "math"

// sdfCircle returns the signed distance from p to a circle of the given
// radius centered at the origin. Negative values are inside.
func sdfCircle(p Point, radius float64) float64 {
	return math.Hypot(p.X, p.Y) - radius
}

// sdfBox returns the signed distance from p to an origin-centered square
// with half-extent size. Outside the box it is the Euclidean distance to
// the nearest edge or corner; inside it is the (negative) distance to the
// closest edge.
func sdfBox(p Point, size float64) float64 {
	d := p.Abs().SubScalar(size)

	outside := math.Hypot(math.Max(d.X, 0), math.Max(d.Y, 0))
	inside := math.Min(math.Max(d.X, d.Y), 0)

	return outside + inside
}

// sdfLine is a line request with everything the per-pixel test needs
// precomputed. Endpoints are already aspect corrected.
type sdfLine struct {
	p0, p1    Point
	thickness float64
	policy    Policy

	// rotation is the angle of p1-p0.
	rotation float64
	// halfLength is half the distance between the endpoints.
	halfLength float64
	// localLength scales the body so the unit box test covers the segment.
	localLength float64
	// clipDistance is (length+thickness)^2; pixels farther than this from
	// p0 cannot belong to the line.
	clipDistance float64
}

// covers reports whether the aspect-corrected point curr lies inside either
// round cap or the line body.
func (l *sdfLine) covers(curr Point) bool {
	if curr.Sub(l.p0).LengthSquared() > l.clipDistance {
		return false
	}

	if sdfCircle(curr.Sub(l.p0), l.thickness) < 0 || sdfCircle(curr.Sub(l.p1), l.thickness) < 0 {
		return true
	}

	body := curr.Sub(l.p0).
		Rotate(-l.rotation).
		Sub(Point{X: l.halfLength, Y: 0}).
		Div(Point{X: l.localLength, Y: 1})

	return sdfBox(body, l.thickness) < 0
}

// SDFDrawer batches thick lines and resolves them in a single pass over the
// image. It holds the image until Submit; nothing else may draw into or
// save the image in between.
//
// Lines are tested in reverse submission order and the first hit paints the
// pixel, so later lines cover earlier ones.
type SDFDrawer struct {
	img       *Image
	lines     []sdfLine
	submitted bool
}

// SDFDrawer starts a deferred line batch on img.
func (img *Image) SDFDrawer() *SDFDrawer {
	return &SDFDrawer{img: img}
}

// Len returns the number of queued lines.
func (d *SDFDrawer) Len() int {
	return len(d.lines)
}

// Line queues a line of the given thickness (the radius of its caps) with
// round ends. Lines with non-finite endpoints are dropped.
func (d *SDFDrawer) Line(p0, p1 Point, thickness float64, p Policy) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return
	}

	p0 = d.img.WithAspect(p0)
	p1 = d.img.WithAspect(p1)

	offset := p1.Sub(p0)
	length := offset.Length()
	halfLength := length / 2

	d.lines = append(d.lines, sdfLine{
		p0:           p0,
		p1:           p1,
		thickness:    thickness,
		policy:       p,
		rotation:     math.Atan2(offset.Y, offset.X),
		halfLength:   halfLength,
		localLength:  halfLength / thickness,
		clipDistance: offset.LengthSquared() + 2*length*thickness + thickness*thickness,
	})
}

// Submit resolves the batch into the image. Submitting twice is a
// programming error and panics.
func (d *SDFDrawer) Submit() {
	if d.submitted {
		panic("raster: SDFDrawer submitted twice")
	}
	d.submitted = true

	img := d.img
	lines := d.lines
	d.lines = nil
	if len(lines) == 0 {
		return
	}

	w := float64(img.width)
	h := float64(img.height)

	i := 0
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			curr := img.WithAspect(Point{X: float64(x) / w, Y: 1 - float64(y)/h})

			for j := len(lines) - 1; j >= 0; j-- {
				if lines[j].covers(curr) {
					img.data[i] = lines[j].policy.Apply(img.data[i])
					break
				}
			}

			i++
		}
	}
}
