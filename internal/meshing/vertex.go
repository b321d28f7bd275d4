package meshing

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz)
const VertexStride = 6

var faceNormals = [FaceCount]mgl32.Vec3{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
}

// Normal returns the outward unit normal for the face.
func (f Face) Normal() mgl32.Vec3 { return faceNormals[f] }

// QuadCorners returns the four corners of a quad in CCW order with the
// normal pointing outward, on the block-grid scale used by the renderer.
func QuadCorners(q Quad) [4]mgl32.Vec3 {
	x, y, z := float32(q.X), float32(q.Y), float32(q.Z)
	w, h := float32(q.W), float32(q.H)
	switch q.Face {
	case FaceRight:
		return [4]mgl32.Vec3{{x + 1, y, z}, {x + 1, y, z + w}, {x + 1, y + h, z + w}, {x + 1, y + h, z}}
	case FaceLeft:
		return [4]mgl32.Vec3{{x, y, z + w}, {x, y, z}, {x, y + h, z}, {x, y + h, z + w}}
	case FaceUp:
		return [4]mgl32.Vec3{{x, y + 1, z}, {x + w, y + 1, z}, {x + w, y + 1, z + h}, {x, y + 1, z + h}}
	case FaceDown:
		return [4]mgl32.Vec3{{x, y, z + h}, {x + w, y, z + h}, {x + w, y, z}, {x, y, z}}
	case FaceFront:
		return [4]mgl32.Vec3{{x, y, z + 1}, {x + w, y, z + 1}, {x + w, y + h, z + 1}, {x, y + h, z + 1}}
	default: // FaceBack
		return [4]mgl32.Vec3{{x + w, y, z}, {x, y, z}, {x, y + h, z}, {x + w, y + h, z}}
	}
}

// AppendQuadVertices appends the quad as two triangles of interleaved
// pos+normal float32, the layout the rendering side uploads directly.
func AppendQuadVertices(dst []float32, q Quad) []float32 {
	c := QuadCorners(q)
	n := q.Face.Normal()
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		v := c[i]
		dst = append(dst, v.X(), v.Y(), v.Z(), n.X(), n.Y(), n.Z())
	}
	return dst
}

// MeshVertices expands a whole mesh into an interleaved triangle list.
func MeshVertices(m *Mesh) []float32 {
	verts := make([]float32, 0, len(m.Quads)*6*VertexStride)
	for _, q := range m.Quads {
		verts = AppendQuadVertices(verts, q)
	}
	return verts
}
