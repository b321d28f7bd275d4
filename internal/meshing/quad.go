package meshing

import (
	"fmt"

	"voxelmesh/internal/voxel"
)

// Face is one of the six axis-aligned directions a quad can point.
type Face uint8

const (
	FaceRight Face = iota // +X
	FaceLeft              // -X
	FaceUp                // +Y
	FaceDown              // -Y
	FaceFront             // +Z
	FaceBack              // -Z

	FaceCount = 6
)

var faceNames = [FaceCount]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

// MaxQuadExtent is the largest width or height a quad may carry; the
// packed record stores extents in 5 bits.
const MaxQuadExtent = 31

// Quad is one merged rectangle of same-type visible faces.
// X, Y, Z are in [0,31]; W and H in [1,31].
type Quad struct {
	X, Y, Z uint8
	W, H    uint8
	Face    Face
	Block   voxel.BlockType
}

// PackedQuad is the two-word wire format handed to the renderer.
type PackedQuad struct {
	// Bits: x(5) | y(5) | z(5) | w(5) | h(5) | face(3) | reserved(4)
	Word0 uint32
	// Block type ID, verbatim
	Block uint32
}

// Pack encodes a quad into its fixed-width record. The merge engine only
// produces in-range quads; a field that does not fit its bit width is a
// caller bug and panics.
func Pack(q Quad) PackedQuad {
	if q.X > MaxQuadExtent || q.Y > MaxQuadExtent || q.Z > MaxQuadExtent ||
		q.W < 1 || q.W > MaxQuadExtent || q.H < 1 || q.H > MaxQuadExtent ||
		q.Face >= FaceCount {
		panic(fmt.Sprintf("meshing: quad out of range: %+v", q))
	}
	word0 := uint32(q.X) |
		uint32(q.Y)<<5 |
		uint32(q.Z)<<10 |
		uint32(q.W)<<15 |
		uint32(q.H)<<20 |
		uint32(q.Face)<<25
	return PackedQuad{Word0: word0, Block: uint32(q.Block)}
}

// Unpack decodes a record back into a quad.
func (p PackedQuad) Unpack() Quad {
	return Quad{
		X:     uint8(p.Word0 & 0x1F),
		Y:     uint8(p.Word0 >> 5 & 0x1F),
		Z:     uint8(p.Word0 >> 10 & 0x1F),
		W:     uint8(p.Word0 >> 15 & 0x1F),
		H:     uint8(p.Word0 >> 20 & 0x1F),
		Face:  Face(p.Word0 >> 25 & 0x7),
		Block: voxel.BlockType(p.Block),
	}
}

func (p PackedQuad) X() uint32      { return p.Word0 & 0x1F }
func (p PackedQuad) Y() uint32      { return p.Word0 >> 5 & 0x1F }
func (p PackedQuad) Z() uint32      { return p.Word0 >> 10 & 0x1F }
func (p PackedQuad) Width() uint32  { return p.Word0 >> 15 & 0x1F }
func (p PackedQuad) Height() uint32 { return p.Word0 >> 20 & 0x1F }
func (p PackedQuad) Face() Face     { return Face(p.Word0 >> 25 & 0x7) }
