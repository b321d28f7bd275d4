package store

import (
	"path/filepath"
	"testing"

	"voxelmesh/internal/meshing"
	"voxelmesh/internal/voxel"
)

func openTestStore(t *testing.T) *ChunkStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chunks.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestChunkStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := voxel.TerrainChunk()
	if err := s.Put(2, 0, -3, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(2, 0, -3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("chunk not found after Put")
	}
	if *got.Blocks() != *want.Blocks() {
		t.Fatal("loaded chunk differs from stored chunk")
	}
}

func TestChunkStoreMissing(t *testing.T) {
	s := openTestStore(t)
	c, ok, err := s.Get(9, 9, 9)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || c != nil {
		t.Fatal("expected miss for unstored coordinates")
	}
}

func TestChunkStoreReplace(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put(0, 0, 0, voxel.UniformChunk(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(0, 0, 0, voxel.UniformChunk(2)); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Get(0, 0, 0)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.GetBlock(0, 0, 0) != 2 {
		t.Fatal("replace did not overwrite chunk")
	}
}

func TestChunkStoreCoords(t *testing.T) {
	s := openTestStore(t)
	for _, p := range [][3]int{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}} {
		if err := s.Put(p[0], p[1], p[2], voxel.UniformChunk(1)); err != nil {
			t.Fatal(err)
		}
	}
	coords, err := s.Coords()
	if err != nil {
		t.Fatalf("Coords: %v", err)
	}
	want := [][3]int{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}}
	if len(coords) != len(want) {
		t.Fatalf("got %d coords, want %d", len(coords), len(want))
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Fatalf("coords[%d] = %v, want %v", i, coords[i], want[i])
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	records, count := meshing.MeshChunkPacked(voxel.TerrainChunk(), meshing.DefaultCapacity)

	snap := &MeshSnapshot{
		Chunks: []ChunkMeshV1{
			{CX: 0, CY: 0, CZ: 0, Count: uint32(count), Records: records},
			{CX: 1, CY: 0, CZ: 0, Count: 0, Records: nil},
		},
	}

	path := filepath.Join(t.TempDir(), "out", "batch.vmesh")
	if err := WriteSnapshot(path, snap); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	got, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if got.Header.Version != snapshotVersion {
		t.Errorf("version = %d, want %d", got.Header.Version, snapshotVersion)
	}
	if got.Header.Chunks != 2 {
		t.Errorf("header chunks = %d, want 2", got.Header.Chunks)
	}
	if len(got.Chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(got.Chunks))
	}
	if got.Chunks[0].Count != uint32(count) {
		t.Errorf("count = %d, want %d", got.Chunks[0].Count, count)
	}
	if len(got.Chunks[0].Records) != len(records) {
		t.Fatalf("got %d records, want %d", len(got.Chunks[0].Records), len(records))
	}
	for i, r := range records {
		if got.Chunks[0].Records[i] != r {
			t.Fatalf("record %d = %+v, want %+v", i, got.Chunks[0].Records[i], r)
		}
	}
}

func TestReadSnapshotMissingFile(t *testing.T) {
	if _, err := ReadSnapshot(filepath.Join(t.TempDir(), "nope.vmesh")); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}
