package meshnd

// Mesh describes a structured nx x ny x nz grid of cells, numbered in
// row-major (x fastest, then y, then z) order: cell (x,y,z) has global
// index x + y*nx + z*nx*ny.
type Mesh struct {
	NX, NY, NZ int
}

// NewMesh validates and builds a Mesh over the given dimensions.
func NewMesh(nx, ny, nz int) (*Mesh, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrNonPositiveDims
	}
	return &Mesh{NX: nx, NY: ny, NZ: nz}, nil
}

// N returns the total number of cells (and so the matrix dimension).
func (m *Mesh) N() int { return m.NX * m.NY * m.NZ }

// Index maps grid coordinates to a global cell index.
func (m *Mesh) Index(x, y, z int) int {
	return x + y*m.NX + z*m.NX*m.NY
}

// Coord maps a global cell index back to grid coordinates.
func (m *Mesh) Coord(id int) (x, y, z int) {
	z = id / (m.NX * m.NY)
	rem := id % (m.NX * m.NY)
	y = rem / m.NX
	x = rem % m.NX
	return
}

// InBounds reports whether (x,y,z) lies within the grid.
func (m *Mesh) InBounds(x, y, z int) bool {
	return x >= 0 && x < m.NX && y >= 0 && y < m.NY && z >= 0 && z < m.NZ
}

var stencilOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}
