package meshing

import "voxelmesh/internal/voxel"

// FaceMasks holds, per face direction, one 32-bit visibility mask for each
// of the 32x32 columns orthogonal to that direction. Bit i of a mask means
// the cell at depth i along the column exposes a visible face.
//
// Column layout per face, all indexed [layer*32 + row] with the mask bits
// running along the remaining axis:
//
//	+X,-X: layer=z, row=y, bits=x
//	+Y,-Y: layer=z, row=x, bits=y
//	+Z,-Z: layer=y, row=x, bits=z
type FaceMasks [FaceCount][voxel.ChunkSizeSq]uint32

const cs = voxel.ChunkSize

// BuildFaceMasks computes visibility masks for all six directions.
//
// It first builds per-axis occupancy masks (bit d set iff the cell at depth
// d is non-air), then derives visibility by shift algebra: a cell exposes a
// positive-direction face iff it is occupied and its shifted neighbor bit is
// not, occ & ^(occ<<1); negative directions use occ & ^(occ>>1). The shift
// drops anything beyond the chunk, so boundary faces come out visible
// without an explicit bounds check (out of bounds is air).
func BuildFaceMasks(c *voxel.Chunk) *FaceMasks {
	var occX, occY, occZ [voxel.ChunkSizeSq]uint32

	for z := 0; z < cs; z++ {
		for y := 0; y < cs; y++ {
			rowBase := z*voxel.ChunkSizeSq + y*cs
			for x := 0; x < cs; x++ {
				if c.At(rowBase+x) == voxel.BlockTypeAir {
					continue
				}
				occX[z*cs+y] |= 1 << x
				occY[z*cs+x] |= 1 << y
				occZ[y*cs+x] |= 1 << z
			}
		}
	}

	masks := &FaceMasks{}
	for i := 0; i < voxel.ChunkSizeSq; i++ {
		col := occX[i]
		masks[FaceRight][i] = col & ^(col << 1)
		masks[FaceLeft][i] = col & ^(col >> 1)

		col = occY[i]
		masks[FaceUp][i] = col & ^(col << 1)
		masks[FaceDown][i] = col & ^(col >> 1)

		col = occZ[i]
		masks[FaceFront][i] = col & ^(col << 1)
		masks[FaceBack][i] = col & ^(col >> 1)
	}
	return masks
}

// Slice returns the 32 row masks of one (face, layer) slice.
func (m *FaceMasks) Slice(face Face, layer int) *[cs]uint32 {
	return (*[cs]uint32)(m[face][layer*cs : layer*cs+cs])
}

// blockAt resolves the block under a (face, layer, row, bit) mask position
// back to chunk coordinates.
func blockAt(c *voxel.Chunk, face Face, layer, row, bit int) voxel.BlockType {
	switch face {
	case FaceRight, FaceLeft:
		return c.At(voxel.Index(bit, row, layer))
	case FaceUp, FaceDown:
		return c.At(voxel.Index(row, bit, layer))
	default: // FaceFront, FaceBack
		return c.At(voxel.Index(row, layer, bit))
	}
}
