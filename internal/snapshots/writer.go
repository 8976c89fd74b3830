package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"soccer-rankings-service/internal/domain"
)

// Writer persists snapshots with a rolling retention window over the dated
// season files. latest.json is always overwritten.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window
// retention over dated snapshot files.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSnapshot persists the snapshot under the given date (YYYY-MM-DD),
// refreshes latest.json, and prunes dated files beyond retention.
func (w *Writer) WriteSnapshot(date string, snapshot domain.Snapshot) error {
	if err := w.writeFile(SeasonSnapshotPath(w.basePath, date), snapshot); err != nil {
		return err
	}
	if err := w.writeFile(LatestSnapshotPath(w.basePath), snapshot); err != nil {
		return err
	}
	return w.prune()
}

func (w *Writer) writeFile(path string, snapshot domain.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// prune removes the oldest dated snapshots beyond the retention window.
// Filenames sort lexicographically by date, so ordering is just a sort.
func (w *Writer) prune() error {
	dir := filepath.Join(w.basePath, seasonsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dated := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			dated = append(dated, e.Name())
		}
	}
	if len(dated) <= w.retentionDays {
		return nil
	}

	sort.Strings(dated)
	for _, name := range dated[:len(dated)-w.retentionDays] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
