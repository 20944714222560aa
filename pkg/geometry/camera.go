package geometry

import (
	"math"

	"github.com/df07/go-band-raytracer/pkg/core"
)

// Camera generates rays for rendering. It is an immutable value: every With* method
// returns a new camera whose derived basis and viewport are recomputed from the
// authoritative fields, so the two can never disagree.
type Camera struct {
	// authoritative fields
	lookFrom      core.Point
	lookAt        core.Point
	up            core.Vec3
	vfov          float64 // vertical field of view, degrees
	aspectRatio   float64
	lensRadius    float64
	focusOverride float64 // used instead of |lookFrom - lookAt| when > 0

	// derived fields
	u, v, w         core.Vec3
	focusDistance   float64
	horizontal      core.Vec3
	vertical        core.Vec3
	lowerLeftCorner core.Point
}

// NewCamera creates a pinhole camera at the origin looking down -Z with a 90° vertical field of view
func NewCamera() Camera {
	return Camera{
		lookFrom:    core.NewVec3(0, 0, 0),
		lookAt:      core.NewVec3(0, 0, -1),
		up:          core.NewVec3(0, 1, 0),
		vfov:        90,
		aspectRatio: 1,
	}.derive()
}

// derive recomputes every derived field from the authoritative ones
func (c Camera) derive() Camera {
	viewHeight := 2 * math.Tan(c.vfov*math.Pi/180/2)
	viewWidth := c.aspectRatio * viewHeight

	c.w = c.lookFrom.Subtract(c.lookAt).Normalize()
	c.u = c.up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.focusDistance = c.lookFrom.Subtract(c.lookAt).Length()
	if c.focusOverride > 0 {
		c.focusDistance = c.focusOverride
	}

	c.horizontal = c.u.Multiply(viewWidth * c.focusDistance)
	c.vertical = c.v.Multiply(viewHeight * c.focusDistance)
	c.lowerLeftCorner = c.lookFrom.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(c.w.Multiply(c.focusDistance))
	return c
}

// WithVFov returns a copy with the vertical field of view set in degrees
func (c Camera) WithVFov(degrees float64) Camera {
	c.vfov = degrees
	return c.derive()
}

// WithAspectRatio returns a copy with the viewport aspect ratio (width / height)
func (c Camera) WithAspectRatio(aspectRatio float64) Camera {
	c.aspectRatio = aspectRatio
	return c.derive()
}

// WithLookFrom returns a copy positioned at p
func (c Camera) WithLookFrom(p core.Point) Camera {
	c.lookFrom = p
	return c.derive()
}

// WithLookAt returns a copy aimed at p
func (c Camera) WithLookAt(p core.Point) Camera {
	c.lookAt = p
	return c.derive()
}

// WithUp returns a copy using up as the view-up vector
func (c Camera) WithUp(up core.Vec3) Camera {
	c.up = up
	return c.derive()
}

// WithLensRadius returns a copy with the given aperture radius; 0 is a pinhole
func (c Camera) WithLensRadius(radius float64) Camera {
	c.lensRadius = radius
	return c.derive()
}

// WithFocusDistance returns a copy focused at distance d. A non-positive d focuses on the look-at point.
func (c Camera) WithFocusDistance(d float64) Camera {
	c.focusOverride = d
	return c.derive()
}

// LookFrom returns the camera position
func (c Camera) LookFrom() core.Point { return c.lookFrom }

// LookAt returns the point the camera aims at
func (c Camera) LookAt() core.Point { return c.lookAt }

// AspectRatio returns the viewport aspect ratio
func (c Camera) AspectRatio() float64 { return c.aspectRatio }

// LensRadius returns the aperture radius
func (c Camera) LensRadius() float64 { return c.lensRadius }

// FocusDistance returns the distance to the plane of perfect focus
func (c Camera) FocusDistance() float64 { return c.focusDistance }

// Basis returns the camera's right, up and backward unit vectors
func (c Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// GetRay generates a ray for image-plane coordinates (s, t) where 0 <= s,t <= 1 and
// (0, 0) is the lower-left corner. With a non-zero lens radius the origin is jittered
// over the lens disk, which blurs everything off the focus plane.
func (c Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		disk := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(disk.X).Add(c.v.Multiply(disk.Y))
	}

	origin := c.lookFrom.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
