package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// DirStats aggregates one directory scan.
type DirStats struct {
	Scanned int
	Matched int
	Failed  int
}

// ScanDirectory walks root and returns the processable files it finds,
// skipping hidden entries when asked. Walk errors on individual entries are
// counted but do not abort the scan.
func ScanDirectory(root string, skipHidden bool) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var files []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++
		files = append(files, path)
		return nil
	})
	if err != nil {
		return files, stats, err
	}
	return files, stats, nil
}
