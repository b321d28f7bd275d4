package meshing

import "voxelmesh/internal/voxel"

// Mesh is the quad list produced for one chunk.
type Mesh struct {
	Quads []Quad
}

func (m *Mesh) QuadCount() int { return len(m.Quads) }
func (m *Mesh) IsEmpty() bool  { return len(m.Quads) == 0 }

// MeshChunk meshes one chunk sequentially: visibility masks first, then a
// greedy merge of each of the 6x32 (face, layer) slices.
func MeshChunk(c *voxel.Chunk) *Mesh {
	masks := BuildFaceMasks(c)
	mesh := &Mesh{}
	for face := Face(0); face < FaceCount; face++ {
		for layer := 0; layer < cs; layer++ {
			mesh.Quads = append(mesh.Quads, meshSlice(c, masks, face, layer)...)
		}
	}
	return mesh
}

// MeshChunkPacked meshes one chunk and packs the result into at most
// capacity records (capacity <= 0 means unbounded). The returned count is
// the true quad count, which exceeds len(records) when output was
// truncated.
func MeshChunkPacked(c *voxel.Chunk, capacity int) ([]PackedQuad, int) {
	mesh := MeshChunk(c)
	n := len(mesh.Quads)
	lim := n
	if capacity > 0 && lim > capacity {
		lim = capacity
	}
	records := make([]PackedQuad, lim)
	for i := 0; i < lim; i++ {
		records[i] = Pack(mesh.Quads[i])
	}
	return records, n
}

// meshSlice merges one (face, layer) slice and maps the result into chunk
// coordinates.
func meshSlice(c *voxel.Chunk, masks *FaceMasks, face Face, layer int) []Quad {
	merged := mergeSlice(masks.Slice(face, layer), func(row, bit int) voxel.BlockType {
		return blockAt(c, face, layer, row, bit)
	})
	if len(merged) == 0 {
		return nil
	}
	quads := make([]Quad, len(merged))
	for i, s := range merged {
		quads[i] = mapQuad(face, layer, s)
	}
	return quads
}

// mapQuad converts slice-local geometry back into chunk coordinates,
// inverting the per-face column layout of FaceMasks.
func mapQuad(face Face, layer int, s sliceQuad) Quad {
	q := Quad{Face: face, Block: s.block}
	switch face {
	case FaceRight, FaceLeft:
		q.X, q.Y, q.Z = uint8(s.bit), uint8(s.row), uint8(layer)
		q.W, q.H = uint8(s.width), uint8(s.length)
	case FaceUp, FaceDown:
		q.X, q.Y, q.Z = uint8(s.row), uint8(s.bit), uint8(layer)
		q.W, q.H = uint8(s.length), uint8(s.width)
	default: // FaceFront, FaceBack
		q.X, q.Y, q.Z = uint8(s.row), uint8(layer), uint8(s.bit)
		q.W, q.H = uint8(s.length), uint8(s.width)
	}
	return q
}
