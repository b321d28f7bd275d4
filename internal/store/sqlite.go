package store

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"voxelmesh/internal/voxel"
)

// ChunkStore persists chunks in a SQLite database, with the voxel grid of
// each chunk stored as a zstd-compressed little-endian blob.
type ChunkStore struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
	cx INTEGER NOT NULL,
	cy INTEGER NOT NULL,
	cz INTEGER NOT NULL,
	blocks BLOB NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (cx, cy, cz)
);`

// Open opens (creating if needed) a chunk database at path.
func Open(path string) (*ChunkStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &ChunkStore{db: db, enc: enc, dec: dec}, nil
}

// Put inserts or replaces the chunk at the given chunk coordinates.
func (s *ChunkStore) Put(cx, cy, cz int, c *voxel.Chunk) error {
	blob := s.enc.EncodeAll(encodeBlocks(c), nil)
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO chunks (cx, cy, cz, blocks, updated_at) VALUES (?, ?, ?, ?, ?)`,
		cx, cy, cz, blob, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store: put chunk (%d,%d,%d): %w", cx, cy, cz, err)
	}
	return nil
}

// Get loads the chunk at the given chunk coordinates. The second return is
// false when no such chunk is stored.
func (s *ChunkStore) Get(cx, cy, cz int) (*voxel.Chunk, bool, error) {
	var blob []byte
	err := s.db.QueryRow(
		`SELECT blocks FROM chunks WHERE cx = ? AND cy = ? AND cz = ?`,
		cx, cy, cz,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: get chunk (%d,%d,%d): %w", cx, cy, cz, err)
	}
	raw, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, false, fmt.Errorf("store: decompress chunk (%d,%d,%d): %w", cx, cy, cz, err)
	}
	c, err := decodeBlocks(raw)
	if err != nil {
		return nil, false, fmt.Errorf("store: chunk (%d,%d,%d): %w", cx, cy, cz, err)
	}
	return c, true, nil
}

// Coords lists every stored chunk coordinate.
func (s *ChunkStore) Coords() ([][3]int, error) {
	rows, err := s.db.Query(`SELECT cx, cy, cz FROM chunks ORDER BY cx, cy, cz`)
	if err != nil {
		return nil, fmt.Errorf("store: coords: %w", err)
	}
	defer rows.Close()

	var out [][3]int
	for rows.Next() {
		var c [3]int
		if err := rows.Scan(&c[0], &c[1], &c[2]); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Close releases the database and codec resources.
func (s *ChunkStore) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

func encodeBlocks(c *voxel.Chunk) []byte {
	raw := make([]byte, voxel.ChunkVolume*4)
	for i, b := range c.Blocks() {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(b))
	}
	return raw
}

func decodeBlocks(raw []byte) (*voxel.Chunk, error) {
	if len(raw) != voxel.ChunkVolume*4 {
		return nil, fmt.Errorf("blob is %d bytes, want %d", len(raw), voxel.ChunkVolume*4)
	}
	c := voxel.NewChunk()
	blocks := c.Blocks()
	for i := range blocks {
		blocks[i] = voxel.BlockType(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return c, nil
}
