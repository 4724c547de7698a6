package dpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DerezOptions controls the down-then-up resolution round trip.
type DerezOptions struct {
	// Width and Height set the intermediate resolution.
	Width         uint
	Height        uint
	Interpolation Interpolation
	// Workers bounds the number of files DerezDir processes at once.
	Workers int
	// OnMetadata is called after a header has been parsed, before the profile check.
	OnMetadata func(meta *Metadata)
	// OnFile is called by DerezDir once per input file, possibly from several goroutines
	// but never concurrently.
	OnFile func(res FileResult)
}

// FileStatus is the outcome of one DerezDir input.
type FileStatus int

const (
	FileProcessed FileStatus = iota
	FileExists
	FileInvalid
	FileUnsupported
)

func (s FileStatus) String() string {
	switch s {
	case FileProcessed:
		return "processed"
	case FileExists:
		return "exists"
	case FileInvalid:
		return "invalid"
	case FileUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// FileResult describes a single file handled by DerezDir.
type FileResult struct {
	Name   string
	Status FileStatus
	Err    error
}

// DirReport counts DerezDir outcomes by status.
type DirReport struct {
	Processed   int
	Exists      int
	Invalid     int
	Unsupported int
}

func derezOptions(opts []func(o *DerezOptions)) DerezOptions {
	opt := DerezOptions{
		Width:         defaultDerezWidth,
		Height:        defaultDerezHeight,
		Interpolation: InterpolationBilinear,
		Workers:       runtime.NumCPU(),
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	return opt
}

// Derez reads a DPX image from r, scales it down to the intermediate resolution and back
// up to its original size, and writes the result to w with the original header.
func Derez(r io.ReadSeeker, w io.WriteSeeker, opts ...func(o *DerezOptions)) (*Metadata, error) {
	opt := derezOptions(opts)

	meta, raw, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if opt.OnMetadata != nil {
		opt.OnMetadata(meta)
	}
	img, err := Decode(r, meta)
	if err != nil {
		return meta, err
	}

	down, err := Resize(img, opt.Width, opt.Height, opt.Interpolation)
	if err != nil {
		return meta, fmt.Errorf("resize down: %w", err)
	}
	up, err := Resize(down, uint(img.Width), uint(img.Height), opt.Interpolation)
	if err != nil {
		return meta, fmt.Errorf("resize up: %w", err)
	}

	if err := Encode(w, raw, up); err != nil {
		return meta, err
	}
	return meta, nil
}

// DerezFile runs Derez from inPath to outPath. The output is written to a temporary file
// next to outPath and renamed into place only when encoding succeeds.
func DerezFile(inPath, outPath string, opts ...func(o *DerezOptions)) error {
	in, err := os.Open(filepath.Clean(inPath))
	if err != nil {
		return err
	}
	defer in.Close()

	outPath = filepath.Clean(outPath)
	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".dpx-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := Derez(in, tmp, opts...); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), outPath)
}

// DerezDir runs DerezFile for every regular file directly inside inDir, writing outputs
// with the same names to outDir. Existing outputs are left alone. Files that are not DPX
// or use an unsupported profile are reported and skipped; any other error stops the run.
func DerezDir(ctx context.Context, inDir, outDir string, opts ...func(o *DerezOptions)) (*DirReport, error) {
	opt := derezOptions(opts)

	entries, err := os.ReadDir(filepath.Clean(inDir))
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		report DirReport
	)
	record := func(res FileResult) {
		mu.Lock()
		defer mu.Unlock()

		switch res.Status {
		case FileProcessed:
			report.Processed++
		case FileExists:
			report.Exists++
		case FileInvalid:
			report.Invalid++
		case FileUnsupported:
			report.Unsupported++
		}
		if opt.OnFile != nil {
			opt.OnFile(res)
		}
	}

	workers := opt.Workers
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		name := e.Name()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			inPath := filepath.Join(inDir, name)
			outPath := filepath.Join(outDir, name)

			if _, err := os.Stat(outPath); err == nil {
				record(FileResult{Name: name, Status: FileExists})
				return nil
			}

			err := DerezFile(inPath, outPath, opts...)
			switch {
			case err == nil:
				record(FileResult{Name: name, Status: FileProcessed})
				return nil
			case errors.Is(err, ErrBadMagic), errors.Is(err, ErrBadOffset), errors.Is(err, io.ErrUnexpectedEOF):
				record(FileResult{Name: name, Status: FileInvalid, Err: err})
				return nil
			case errors.Is(err, ErrUnsupportedFormat):
				record(FileResult{Name: name, Status: FileUnsupported, Err: err})
				return nil
			default:
				return fmt.Errorf("%s: %w", name, err)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return &report, err
	}
	return &report, ctx.Err()
}
