package optim

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	iimg "github.com/go-imsto/webpopt/image"
)

// Summary ...
type Summary struct {
	Changed int
	Saved   int64
}

// Run walks root and optimizes every webp file under it, one at a time,
// in traversal order. Per-file and summary lines go to w. A missing root
// is nothing to do, not an error.
func Run(root string, wopt iimg.WriteOption, w io.Writer) (sum Summary, err error) {
	if _, err = os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "no %s directory, nothing to do\n", filepath.Base(root))
			return Summary{}, nil
		}
		return
	}

	files, err := Walk(root)
	if err != nil {
		return
	}
	logger().Debugw("walked", "root", root, "files", len(files))

	base := filepath.Dir(root)
	for _, name := range files {
		if !IsCandidate(name) {
			continue
		}
		var res Result
		res, err = OptimizeFile(name, wopt)
		if err != nil {
			return
		}
		if res.Skipped {
			logger().Debugw("skipped", "name", name, "reason", res.Reason.String())
			continue
		}

		rel, rerr := filepath.Rel(base, name)
		if rerr != nil {
			rel = name
		}
		fmt.Fprintf(w, "optimized: %s (%d->%d bytes)\n", rel, res.OldSize, res.NewSize)
		sum.Changed++
		sum.Saved += int64(res.OldSize) - int64(res.NewSize)
	}

	fmt.Fprintf(w, "Done. changed=%d, saved=%d\n", sum.Changed, sum.Saved)
	return sum, nil
}
