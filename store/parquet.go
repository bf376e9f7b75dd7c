// Package store persists evaluation output as Parquet for downstream
// analysis tooling.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// EpisodeRow is a single completed episode summary.
//
// Rows are model-agnostic and optimized for aggregation: one row per
// episode, with the knobs that produced it stored alongside the outcome so
// batches with mixed configurations stay separable.
type EpisodeRow struct {
	RunID   string `parquet:"run_id,dict"`
	Episode int32  `parquet:"episode"`
	Seed    int64  `parquet:"seed"`

	Agent     string `parquet:"agent,dict"`
	Algorithm string `parquet:"algorithm,dict"`
	Heuristic string `parquet:"heuristic,dict"`
	Width     int32  `parquet:"width"`
	Height    int32  `parquet:"height"`

	Score    int32 `parquet:"score"`
	Moves    int32 `parquet:"moves"`
	Died     bool  `parquet:"died"`
	TimedOut bool  `parquet:"timed_out"`

	DurationMicros int64 `parquet:"duration_micros"`
}

// TurnRow is a single (episode, tick) snapshot intended for replay and
// debugging. Body coordinates are flattened into parallel columns for
// compression.
type TurnRow struct {
	RunID   string `parquet:"run_id,dict"`
	Episode int32  `parquet:"episode"`
	Tick    int32  `parquet:"tick"`
	Width   int32  `parquet:"width"`
	Height  int32  `parquet:"height"`

	BodyX []int32 `parquet:"body_x"`
	BodyY []int32 `parquet:"body_y"`

	FoodX int32 `parquet:"food_x"`
	FoodY int32 `parquet:"food_y"`

	DirDX int32 `parquet:"dir_dx"`
	DirDY int32 `parquet:"dir_dy"`

	Score    int32 `parquet:"score"`
	Survival bool  `parquet:"survival"`
	GameOver bool  `parquet:"game_over"`
}

// WriteEpisodesParquet writes episode summaries to outPath via a temp file
// and an atomic rename, so readers never observe a partial file.
func WriteEpisodesParquet(outPath string, rows []EpisodeRow) error {
	return writeAtomic(outPath, rows, "episode_row_v1")
}

// WriteTurnsParquet writes per-tick snapshots to outPath.
func WriteTurnsParquet(outPath string, rows []TurnRow) error {
	return writeAtomic(outPath, rows, "turn_row_v1")
}

// WriteBatchParquet writes rows to a timestamp-named file inside outDir and
// returns the final path.
func WriteBatchParquet(outDir string, rows []EpisodeRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	name := fmt.Sprintf("episodes_%d.parquet", time.Now().UnixNano())
	outPath := filepath.Join(outDir, name)
	if err := WriteEpisodesParquet(outPath, rows); err != nil {
		return "", err
	}
	return outPath, nil
}

func writeAtomic[T any](outPath string, rows []T, schema string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
