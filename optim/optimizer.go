package optim

import (
	"os"

	iimg "github.com/go-imsto/webpopt/image"
	zlog "github.com/go-imsto/webpopt/log"
)

func logger() zlog.Logger {
	return zlog.Get()
}

// SkipReason ...
type SkipReason uint8

const (
	SkipNone SkipReason = iota
	SkipMetaFailed
	SkipOptimized
)

func (r SkipReason) String() string {
	switch r {
	case SkipMetaFailed:
		return "metadata_failed"
	case SkipOptimized:
		return "already_optimized"
	}
	return "none"
}

// Result is the outcome of one candidate file.
type Result struct {
	Skipped bool
	Reason  SkipReason
	Resized bool
	OldSize int
	NewSize int
	Width   int
}

const tmpSuffix = ".tmp"

// OptimizeFile rewrites name in place when re-encoding pays off.
//
// A file is replaced when its width exceeded wopt.MaxWidth or the
// re-encoded buffer came out smaller; a downscaled image is written even
// if its bytes grew. The replacement goes through a sibling tmp file and
// a rename, so name is never left half written.
func OptimizeFile(name string, wopt iimg.WriteOption) (Result, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Result{}, err
	}

	attr, err := iimg.ReadAttr(data)
	if err != nil {
		logger().Infow("read attr fail", "name", name, "err", err)
		return Result{Skipped: true, Reason: SkipMetaFailed}, nil
	}

	out, resized, err := iimg.Downscale(data, wopt)
	if err != nil {
		return Result{}, err
	}

	if !resized && len(out) >= len(data) {
		logger().Debugw("already optimized", "name", name, "size", len(data))
		return Result{Skipped: true, Reason: SkipOptimized}, nil
	}

	tmp := name + tmpSuffix
	if err = os.WriteFile(tmp, out, 0644); err != nil {
		return Result{}, err
	}
	if err = os.Rename(tmp, name); err != nil {
		return Result{}, err
	}

	return Result{
		Resized: resized,
		OldSize: len(data),
		NewSize: len(out),
		Width:   int(attr.Width),
	}, nil
}
