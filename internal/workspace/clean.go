package workspace

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/theblitlabs/devtask/pkg/logger"
)

// CleanSpec names what Clean removes: fixed paths relative to root,
// directories whose base name matches a pattern, and files whose base
// name matches a pattern.
type CleanSpec struct {
	Paths        []string
	DirPatterns  []string
	FilePatterns []string
}

// Clean deletes generated artifacts under root. Deletion is best effort:
// targets that do not exist or cannot be removed are logged and skipped,
// and Clean itself never fails.
func Clean(root string, spec CleanSpec) error {
	log := logger.Get().With().Str("component", "clean").Logger()

	for _, p := range spec.Paths {
		remove(log, filepath.Join(root, p))
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return nil
		}
		if path == root {
			return nil
		}

		base := filepath.Base(path)
		if d.IsDir() {
			if base == ".git" {
				return filepath.SkipDir
			}
			if matchAny(spec.DirPatterns, base) {
				remove(log, path)
				return filepath.SkipDir
			}
			return nil
		}
		if matchAny(spec.FilePatterns, base) {
			remove(log, path)
		}
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Msg("Artifact walk ended early")
	}
	return nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns come from config; a malformed one simply never matches.
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func remove(log zerolog.Logger, path string) {
	if _, err := os.Lstat(path); err != nil {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove artifact")
		return
	}
	log.Debug().Str("path", path).Msg("Removed artifact")
}
