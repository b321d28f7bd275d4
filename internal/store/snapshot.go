package store

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"voxelmesh/internal/meshing"
)

// MeshSnapshot is the on-disk form of a meshed batch: a JSON header line
// followed by a gob body, the whole stream zstd-compressed.
type MeshSnapshot struct {
	Header Header
	Chunks []ChunkMeshV1
}

type Header struct {
	Version int `json:"version"`
	Chunks  int `json:"chunks"`
}

// ChunkMeshV1 carries one chunk's packed records. Count is the true quad
// count and exceeds len(Records) when the mesher truncated.
type ChunkMeshV1 struct {
	CX, CY, CZ int
	Count      uint32
	Records    []meshing.PackedQuad
}

const snapshotVersion = 1

// WriteSnapshot writes the snapshot to path, creating parent directories.
func WriteSnapshot(path string, snap *MeshSnapshot) error {
	snap.Header.Version = snapshotVersion
	snap.Header.Chunks = len(snap.Chunks)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer bw.Flush()

	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(snap); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (*MeshSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	// Header line is advisory; the gob body carries it too.
	if _, err := br.ReadBytes('\n'); err != nil {
		return nil, fmt.Errorf("snapshot header: %w", err)
	}

	snap := &MeshSnapshot{}
	if err := gob.NewDecoder(br).Decode(snap); err != nil {
		return nil, fmt.Errorf("gob decode: %w", err)
	}
	return snap, nil
}
