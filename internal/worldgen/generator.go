package worldgen

import (
	perlin "github.com/aquilax/go-perlin"

	"voxelmesh/internal/voxel"
)

// Block bands assigned by depth below the surface.
const (
	BlockStone voxel.BlockType = 1
	BlockDirt  voxel.BlockType = 2
	BlockGrass voxel.BlockType = 3
)

// Options tunes the Perlin heightmap.
type Options struct {
	Alpha      float64
	Beta       float64
	Octaves    int32
	Scale      float64
	Amplitude  float64
	BaseHeight int
}

// DefaultOptions matches the generator's built-in tuning.
func DefaultOptions() Options {
	return Options{Alpha: 2, Beta: 2, Octaves: 3, Scale: 48, Amplitude: 10, BaseHeight: 16}
}

// Generator produces terrain chunks from a seeded Perlin heightmap.
// The same seed and options always yield the same chunks.
type Generator struct {
	noise *perlin.Perlin
	opts  Options
}

// New creates a generator for the given seed.
func New(seed int64, opts Options) *Generator {
	if opts.Octaves < 1 {
		opts = DefaultOptions()
	}
	return &Generator{
		noise: perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, seed),
		opts:  opts,
	}
}

// ChunkAt generates the chunk at chunk coordinates (cx, cz). Columns are
// stone below the surface, dirt near it, grass on top.
func (g *Generator) ChunkAt(cx, cz int) *voxel.Chunk {
	c := voxel.NewChunk()
	for z := 0; z < voxel.ChunkSize; z++ {
		for x := 0; x < voxel.ChunkSize; x++ {
			wx := float64(cx*voxel.ChunkSize + x)
			wz := float64(cz*voxel.ChunkSize + z)
			n := g.noise.Noise2D(wx/g.opts.Scale, wz/g.opts.Scale)

			height := g.opts.BaseHeight + int(n*g.opts.Amplitude)
			if height < 1 {
				height = 1
			}
			if height > voxel.ChunkSize {
				height = voxel.ChunkSize
			}

			for y := 0; y < height; y++ {
				block := BlockGrass
				if y < height-3 {
					block = BlockStone
				} else if y < height-1 {
					block = BlockDirt
				}
				c.SetBlock(x, y, z, block)
			}
		}
	}
	return c
}
