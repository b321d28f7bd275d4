package voxel

import "testing"

func TestIndexOrdering(t *testing.T) {
	if got := Index(0, 0, 0); got != 0 {
		t.Fatalf("Index(0,0,0) = %d, want 0", got)
	}
	if got := Index(1, 0, 0); got != 1 {
		t.Fatalf("Index(1,0,0) = %d, want 1", got)
	}
	if got := Index(0, 1, 0); got != ChunkSize {
		t.Fatalf("Index(0,1,0) = %d, want %d", got, ChunkSize)
	}
	if got := Index(0, 0, 1); got != ChunkSizeSq {
		t.Fatalf("Index(0,0,1) = %d, want %d", got, ChunkSizeSq)
	}
	if got := Index(31, 31, 31); got != ChunkVolume-1 {
		t.Fatalf("Index(31,31,31) = %d, want %d", got, ChunkVolume-1)
	}
}

func TestSetGetBlock(t *testing.T) {
	c := NewChunk()
	c.SetBlock(5, 6, 7, 42)
	if got := c.GetBlock(5, 6, 7); got != 42 {
		t.Fatalf("GetBlock(5,6,7) = %d, want 42", got)
	}
	if got := c.At(Index(5, 6, 7)); got != 42 {
		t.Fatalf("At = %d, want 42", got)
	}
	if c.GetBlock(5, 6, 8) != BlockTypeAir {
		t.Fatal("neighbor cell should still be air")
	}
}

func TestOutOfBoundsResolvesToAir(t *testing.T) {
	c := UniformChunk(1)
	coords := [][3]int{
		{-1, 0, 0}, {32, 0, 0},
		{0, -1, 0}, {0, 32, 0},
		{0, 0, -1}, {0, 0, 32},
	}
	for _, p := range coords {
		if got := c.GetBlock(p[0], p[1], p[2]); got != BlockTypeAir {
			t.Errorf("GetBlock(%d,%d,%d) = %d, want air", p[0], p[1], p[2], got)
		}
	}
}

func TestOutOfBoundsWriteIgnored(t *testing.T) {
	c := NewChunk()
	c.SetBlock(-1, 0, 0, 9)
	c.SetBlock(0, 32, 0, 9)
	if !c.IsEmpty() {
		t.Fatal("out-of-bounds writes must not land anywhere")
	}
}

func TestCheckerboardChunkIsolation(t *testing.T) {
	c := CheckerboardChunk(1)
	solid := 0
	for z := 0; z < ChunkSize; z++ {
		for y := 0; y < ChunkSize; y++ {
			for x := 0; x < ChunkSize; x++ {
				if c.GetBlock(x, y, z) == BlockTypeAir {
					continue
				}
				solid++
				// No face neighbor may be solid.
				if c.GetBlock(x+1, y, z) != BlockTypeAir ||
					c.GetBlock(x, y+1, z) != BlockTypeAir ||
					c.GetBlock(x, y, z+1) != BlockTypeAir {
					t.Fatalf("solid neighbors at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
	if solid != ChunkVolume/2 {
		t.Fatalf("solid cells = %d, want %d", solid, ChunkVolume/2)
	}
}

func TestTerrainChunkBands(t *testing.T) {
	c := TerrainChunk()
	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			top := -1
			for y := ChunkSize - 1; y >= 0; y-- {
				if c.GetBlock(x, y, z) != BlockTypeAir {
					top = y
					break
				}
			}
			if top < 0 {
				t.Fatalf("empty column at (%d,%d)", x, z)
			}
			if got := c.GetBlock(x, top, z); got != 3 {
				t.Fatalf("column (%d,%d) topped with %d, want grass", x, z, got)
			}
			for y := 0; y < top; y++ {
				if c.GetBlock(x, y, z) == BlockTypeAir {
					t.Fatalf("air pocket below surface at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}
