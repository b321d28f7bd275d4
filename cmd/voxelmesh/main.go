package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"voxelmesh/internal/config"
	"voxelmesh/internal/logger"
	"voxelmesh/internal/meshing"
	"voxelmesh/internal/profiling"
	"voxelmesh/internal/store"
	"voxelmesh/internal/voxel"
	"voxelmesh/internal/worldgen"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		chunkCount = flag.Int("chunks", 4, "number of terrain chunks to mesh when generating")
		seed       = flag.Int64("seed", 0, "terrain seed (overrides config when non-zero)")
		dbPath     = flag.String("db", "", "chunk database; generated chunks are saved, existing ones loaded")
		outPath    = flag.String("out", "", "write the meshed batch to this snapshot file")
		workers    = flag.Int("workers", 0, "meshing workers (overrides config when non-zero)")
		capacity   = flag.Int("capacity", 0, "per-chunk record capacity (overrides config when non-zero)")
		dev        = flag.Bool("dev", false, "development logging")
	)
	flag.Parse()

	if err := logger.Init(*dev); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*configPath, *chunkCount, *seed, *dbPath, *outPath, *workers, *capacity); err != nil {
		logger.Log.Fatal("voxelmesh failed", zap.Error(err))
	}
}

func run(configPath string, chunkCount int, seed int64, dbPath, outPath string, workers, capacity int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if capacity != 0 {
		cfg.Capacity = capacity
	}

	chunks, coords, err := loadOrGenerate(cfg, chunkCount)
	if err != nil {
		return err
	}
	logger.Log.Info("chunks ready", zap.Int("count", len(chunks)))

	stop := profiling.Track("meshing.Batch")
	start := time.Now()
	result := meshing.NewBatchMesher(cfg.Workers, cfg.Capacity).Mesh(chunks)
	stop()

	total, truncated := 0, 0
	for i := range chunks {
		total += result.Count(i)
		if result.Truncated(i) {
			truncated++
			logger.Log.Warn("chunk output truncated",
				zap.Int("chunk", i),
				zap.Int("quads", result.Count(i)),
				zap.Int("capacity", result.Capacity()))
		}
	}
	logger.Log.Info("batch meshed",
		zap.Int("chunks", len(chunks)),
		zap.Int("quads", total),
		zap.Int("truncated", truncated),
		zap.Duration("elapsed", time.Since(start)))

	if outPath != "" {
		stop := profiling.Track("store.Snapshot")
		snap := &store.MeshSnapshot{}
		for i, xyz := range coords {
			snap.Chunks = append(snap.Chunks, store.ChunkMeshV1{
				CX: xyz[0], CY: xyz[1], CZ: xyz[2],
				Count:   uint32(result.Count(i)),
				Records: result.Records(i),
			})
		}
		err := store.WriteSnapshot(outPath, snap)
		stop()
		if err != nil {
			return err
		}
		logger.Log.Info("snapshot written", zap.String("path", outPath))
	}

	logger.Log.Info("stage timings", zap.String("summary", profiling.Summary()))
	return nil
}

// loadOrGenerate returns the chunks to mesh: everything in the database if
// one is given and populated, otherwise freshly generated terrain (saved to
// the database when one is given).
func loadOrGenerate(cfg config.Settings, chunkCount int) ([]*voxel.Chunk, [][3]int, error) {
	var db *store.ChunkStore
	if cfg.DBPath != "" {
		var err error
		db, err = store.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		defer db.Close()

		coords, err := db.Coords()
		if err != nil {
			return nil, nil, err
		}
		if len(coords) > 0 {
			defer profiling.Track("store.Load")()
			chunks := make([]*voxel.Chunk, 0, len(coords))
			for _, c := range coords {
				ch, ok, err := db.Get(c[0], c[1], c[2])
				if err != nil {
					return nil, nil, err
				}
				if !ok {
					return nil, nil, fmt.Errorf("chunk (%d,%d,%d) vanished from store", c[0], c[1], c[2])
				}
				chunks = append(chunks, ch)
			}
			logger.Log.Info("chunks loaded", zap.String("db", cfg.DBPath), zap.Int("count", len(chunks)))
			return chunks, coords, nil
		}
	}

	defer profiling.Track("worldgen.Generate")()
	gen := worldgen.New(cfg.Seed, worldgen.Options{
		Alpha:      cfg.Terrain.Alpha,
		Beta:       cfg.Terrain.Beta,
		Octaves:    cfg.Terrain.Octaves,
		Scale:      cfg.Terrain.Scale,
		Amplitude:  cfg.Terrain.Amplitude,
		BaseHeight: cfg.Terrain.BaseHeight,
	})
	chunks := make([]*voxel.Chunk, 0, chunkCount)
	coords := make([][3]int, 0, chunkCount)
	for i := 0; i < chunkCount; i++ {
		chunks = append(chunks, gen.ChunkAt(i, 0))
		coords = append(coords, [3]int{i, 0, 0})
		if db != nil {
			if err := db.Put(i, 0, 0, chunks[i]); err != nil {
				return nil, nil, err
			}
		}
	}
	return chunks, coords, nil
}
