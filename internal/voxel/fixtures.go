package voxel

// UniformChunk returns a chunk filled entirely with one block type.
func UniformChunk(block BlockType) *Chunk {
	c := NewChunk()
	for i := range c.blocks {
		c.blocks[i] = block
	}
	return c
}

// CheckerboardChunk returns the meshing worst case: solid cells on a 3-D
// checkerboard, so no two solid cells touch and nothing merges.
func CheckerboardChunk(block BlockType) *Chunk {
	c := NewChunk()
	for z := 0; z < ChunkSize; z++ {
		for y := 0; y < ChunkSize; y++ {
			for x := 0; x < ChunkSize; x++ {
				if (x+y+z)%2 == 0 {
					c.blocks[Index(x, y, z)] = block
				}
			}
		}
	}
	return c
}

// TerrainChunk returns a deterministic stepped terrain with three block
// bands (stone below, dirt, grass on top), handy for benchmarks.
func TerrainChunk() *Chunk {
	c := NewChunk()
	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			height := 16 + (x*3+z*7)%5 - 2
			for y := 0; y < height; y++ {
				block := BlockType(3)
				if y < height-3 {
					block = 1
				} else if y < height-1 {
					block = 2
				}
				c.blocks[Index(x, y, z)] = block
			}
		}
	}
	return c
}
