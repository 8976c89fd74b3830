package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	seasonsDir = "seasons"
	latestFile = "latest.json"
)

// SeasonSnapshotPath returns the on-disk location of a dated snapshot.
func SeasonSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, seasonsDir, fmt.Sprintf("%s.json", date))
}

// LatestSnapshotPath returns the on-disk location of the most recent
// snapshot, used to warm the directory on boot.
func LatestSnapshotPath(basePath string) string {
	return filepath.Join(basePath, latestFile)
}
