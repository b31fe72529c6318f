package tilespin

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindFolder looks for a directory called name. It first checks start and up
// to parents of its ancestors, then walks the directories below start
// breadth-first, at most kids levels deep.
func FindFolder(start, name string, parents, kids int) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	dir := start
	for i := 0; i <= parents; i++ {
		if isDir(filepath.Join(dir, name)) {
			return filepath.Join(dir, name), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	level := []string{start}
	for depth := 0; depth < kids && len(level) > 0; depth++ {
		var next []string
		for _, d := range level {
			entries, err := os.ReadDir(d)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				p := filepath.Join(d, e.Name())
				if e.Name() == name {
					return p, nil
				}
				next = append(next, p)
			}
		}
		level = next
	}

	return "", fmt.Errorf("%w: %q near %s", ErrFolderNotFound, name, start)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
