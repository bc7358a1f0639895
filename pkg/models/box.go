package models

// Box is an axis-aligned bounding box in simulation space, stored as the
// six ordered bounds of a scene's [simulation box] block.
type Box struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
	ZMin float64 `yaml:"zmin"`
	ZMax float64 `yaml:"zmax"`
}

// Min returns the corner with the smallest coordinates.
func (b Box) Min() Vector3 {
	return Vector3{X: b.XMin, Y: b.YMin, Z: b.ZMin}
}

// Max returns the corner with the largest coordinates.
func (b Box) Max() Vector3 {
	return Vector3{X: b.XMax, Y: b.YMax, Z: b.ZMax}
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vector3 {
	return Vector3{X: b.XMax - b.XMin, Y: b.YMax - b.YMin, Z: b.ZMax - b.ZMin}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vector3 {
	return b.Min().Add(b.Size().Scale(0.5))
}

// Volume returns the enclosed volume.
func (b Box) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}
