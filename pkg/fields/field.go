package fields

import "fmt"

// Location is the mesh location a field is defined on
type Location string

const (
	LocationCells         Location = "cells"
	LocationBoundaryFaces Location = "boundary_faces"
	LocationInteriorFaces Location = "interior_faces"
	LocationVertices      Location = "vertices"
)

// Valid reports whether l is a known location
func (l Location) Valid() bool {
	switch l {
	case LocationCells, LocationBoundaryFaces, LocationInteriorFaces, LocationVertices:
		return true
	}
	return false
}

// Field is a named simulation data entity
type Field struct {
	ID       int
	Name     string
	Location Location
	Dim      int
}

func (f *Field) String() string {
	if f == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%s#%d", f.Name, f.ID)
}
