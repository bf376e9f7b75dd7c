package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func TestWriteEpisodesParquet(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "episodes.parquet")
	rows := []EpisodeRow{
		{RunID: "r1", Episode: 0, Agent: "path", Algorithm: "astar", Heuristic: "manhattan", Width: 20, Height: 20, Score: 12, Moves: 340},
		{RunID: "r1", Episode: 1, Agent: "path", Algorithm: "astar", Heuristic: "manhattan", Width: 20, Height: 20, Score: 7, Moves: 180, Died: true},
	}

	if err := WriteEpisodesParquet(outPath, rows); err != nil {
		t.Fatalf("WriteEpisodesParquet: %v", err)
	}
	if _, err := os.Stat(outPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after rename")
	}

	got, err := parquet.ReadFile[EpisodeRow](outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 2 || got[0].RunID != "r1" || got[1].Score != 7 || !got[1].Died {
		t.Errorf("read rows = %+v, want the written rows back", got)
	}
}

func TestWriteBatchParquetNamesFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteBatchParquet(dir, []EpisodeRow{{RunID: "r2", Episode: 0}})
	if err != nil {
		t.Fatalf("WriteBatchParquet: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("batch written to %q, want inside %q", path, dir)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("batch file missing or empty: %v", err)
	}
}
