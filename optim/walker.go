package optim

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const webpExt = ".webp"

// Walk collects every regular file under root, descending into
// subdirectories without depth limit.
func Walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		files = append(files, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// IsCandidate reports whether name carries the webp suffix.
func IsCandidate(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), webpExt)
}
