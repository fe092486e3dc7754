package graphics

// Shared vertex data. All arrays are tightly packed positions for attribute 0.

// TriangleVertices is a single triangle in normalized device coordinates,
// two components per vertex.
var TriangleVertices = []float32{
	0.0, 0.5,
	-0.5, -0.5,
	0.5, -0.5,
}

// QuadVertices covers the viewport as a triangle strip, two components per
// vertex.
var QuadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

// PyramidVertices is a square pyramid of unit base centred on the origin,
// three components per vertex, counter-clockwise faces.
var PyramidVertices = []float32{
	// front
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.0, 0.5, 0.0,
	// right
	0.5, -0.5, 0.5,
	0.5, -0.5, -0.5,
	0.0, 0.5, 0.0,
	// back
	0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5,
	0.0, 0.5, 0.0,
	// left
	-0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.0, 0.5, 0.0,
	// base
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	-0.5, -0.5, 0.5,
	-0.5, -0.5, -0.5,
}
