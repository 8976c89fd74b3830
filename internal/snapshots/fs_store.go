// Package snapshots persists season snapshots on disk so the service can
// serve rankings immediately after a restart, before the first upstream
// refresh completes.
package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/providers"
)

// Store defines how persisted snapshots are loaded.
type Store interface {
	LoadLatest() (domain.Snapshot, error)
	LoadSeason(date string) (domain.Snapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadLatest reads the most recently written snapshot.
func (s *FSStore) LoadLatest() (domain.Snapshot, error) {
	if s == nil {
		return domain.Snapshot{}, errors.New("snapshot store not configured")
	}
	return decodeSnapshotFile(LatestSnapshotPath(s.basePath))
}

// LoadSeason reads the snapshot written on the given date (YYYY-MM-DD).
func (s *FSStore) LoadSeason(date string) (domain.Snapshot, error) {
	if s == nil {
		return domain.Snapshot{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domain.Snapshot{}, errors.New("snapshot date required")
	}
	return decodeSnapshotFile(SeasonSnapshotPath(s.basePath, date))
}

// decodeSnapshotFile reads and shape-checks one snapshot file. A rankings
// field that is not a list is the one hard error in the load path.
func decodeSnapshotFile(path string) (domain.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	defer f.Close()

	var raw struct {
		Rankings    json.RawMessage `json:"rankings"`
		Games       json.RawMessage `json:"games"`
		LastUpdated string          `json:"lastUpdated"`
	}
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return domain.Snapshot{}, err
	}

	var teams []domain.Team
	if len(raw.Rankings) > 0 {
		if err := json.Unmarshal(raw.Rankings, &teams); err != nil {
			return domain.Snapshot{}, &providers.MalformedSnapshotError{Reason: "rankings is not a list"}
		}
	}

	var games []domain.Game
	if len(raw.Games) > 0 {
		if err := json.Unmarshal(raw.Games, &games); err != nil {
			return domain.Snapshot{}, &providers.MalformedSnapshotError{Reason: "games is not a list"}
		}
	}

	return domain.Snapshot{
		Teams:       teams,
		Games:       games,
		LastUpdated: raw.LastUpdated,
	}, nil
}
