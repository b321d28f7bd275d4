package meshing

import (
	"math/bits"

	"voxelmesh/internal/voxel"
)

// forwardCap limits a forward run so the final height, counter+1, still
// fits the 5-bit packed extent.
const forwardCap = MaxQuadExtent - 1

// sliceQuad is a merged rectangle in slice-local coordinates: row along the
// forward axis, bit along the depth axis of the column masks.
type sliceQuad struct {
	row, bit      int
	length, width int // extent along the row axis / the bit axis
	block         voxel.BlockType
}

// mergeSlice greedily merges the set bits of one (face, layer) slice into
// rectangles, splitting wherever the block type changes. It is pure: all
// merge state lives in per-bit forward counters local to the call, so
// slices can run on any number of workers independently.
//
// Merge order is forward-then-right. A bit whose run can still grow into
// the next row defers emission and bumps its forward counter; otherwise the
// run closes and extends right across neighboring set bits, but only across
// ones whose forward counter matches exactly (merged rectangles must agree
// on vertical extent) and whose block type matches. Consumed neighbors get
// their counters reset. The last row has no next row, so every run still
// open there closes.
func mergeSlice(rows *[cs]uint32, typeAt func(row, bit int) voxel.BlockType) []sliceQuad {
	var quads []sliceQuad
	var forward [cs]uint8

	for row := 0; row < cs; row++ {
		rowBits := rows[row]
		if rowBits == 0 {
			continue
		}
		var nextBits uint32
		if row+1 < cs {
			nextBits = rows[row+1]
		}

		for rowBits != 0 {
			bit := bits.TrailingZeros32(rowBits)
			block := typeAt(row, bit)

			// Forward merge: same bit set in the next row, same type,
			// run not yet at the packing limit.
			if forward[bit] < forwardCap && nextBits>>bit&1 != 0 && block == typeAt(row+1, bit) {
				forward[bit]++
				rowBits &^= 1 << bit
				continue
			}

			// Right merge
			width := 1
			for right := bit + 1; right < cs && width < MaxQuadExtent; right++ {
				if rowBits>>right&1 == 0 || forward[right] != forward[bit] || block != typeAt(row, right) {
					break
				}
				forward[right] = 0
				width++
			}

			rowBits &^= spanMask(bit, bit+width)

			quads = append(quads, sliceQuad{
				row:    row - int(forward[bit]),
				bit:    bit,
				length: int(forward[bit]) + 1,
				width:  width,
				block:  block,
			})
			forward[bit] = 0
		}
	}
	return quads
}

// spanMask returns a mask with bits [lo, hi) set.
func spanMask(lo, hi int) uint32 {
	if hi >= 32 {
		return ^uint32(0) &^ (1<<lo - 1)
	}
	return (1<<hi - 1) &^ (1<<lo - 1)
}
