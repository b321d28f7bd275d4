package voxel

// BlockType identifies a block. Zero is air and never produces geometry.
type BlockType uint32

const BlockTypeAir BlockType = 0

const (
	// Chunk dimensions
	ChunkSize   = 32
	ChunkSizeSq = ChunkSize * ChunkSize
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Chunk is a 32x32x32 grid of block types stored x-fastest, then y, then z.
// It is fully populated before meshing and treated as read-only afterwards.
type Chunk struct {
	blocks [ChunkVolume]BlockType
}

// NewChunk creates an all-air chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Index converts local coordinates to the flat block index.
func Index(x, y, z int) int {
	return z*ChunkSizeSq + y*ChunkSize + x
}

// GetBlock returns the block type at the specified local coordinates.
// Out-of-bounds lookups resolve to air; boundary faces rely on this.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return BlockTypeAir
	}
	return c.blocks[Index(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates.
// Out-of-bounds writes are ignored.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return
	}
	c.blocks[Index(x, y, z)] = blockType
}

// At returns the block at a flat index without bounds remapping.
// Callers must pass an index in [0, ChunkVolume).
func (c *Chunk) At(idx int) BlockType {
	return c.blocks[idx]
}

// Blocks exposes the underlying storage for bulk encode/decode.
func (c *Chunk) Blocks() *[ChunkVolume]BlockType {
	return &c.blocks
}

// IsEmpty reports whether every cell is air.
func (c *Chunk) IsEmpty() bool {
	for _, b := range c.blocks {
		if b != BlockTypeAir {
			return false
		}
	}
	return true
}
