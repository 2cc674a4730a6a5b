package resample

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Stats summarizes a written output.
type Stats struct {
	Rows    int
	Columns int
}

// Write emits the header and one row per grid instant as CSV with CRLF line endings.
func Write(w io.Writer, d *Dataset, g Grid) (Stats, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := Header(d)
	if err := cw.Write(header); err != nil {
		return Stats{}, fmt.Errorf("failed to write header: %w", err)
	}

	stats := Stats{Columns: len(header)}
	for row := range Rows(d, g) {
		if err := cw.Write(row); err != nil {
			return stats, fmt.Errorf("failed to write row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}

	return stats, nil
}

// WriteFile writes the resampled dataset to path, replacing any existing file. Regular
// files are written to a temporary file next to path and renamed into place only once
// fully written; the replaced file's permissions carry over. A symlinked path replaces its
// target and keeps the link. Devices and pipes, such as /dev/stdout, are written directly.
func WriteFile(path string, d *Dataset, g Grid) (Stats, error) {
	target, mode, regular, err := resolveOutput(path)
	if err != nil {
		return Stats{}, err
	}

	if !regular {
		return writeDirect(target, d, g)
	}

	return writeAtomic(target, mode, d, g)
}

// resolveOutput follows symlinks and reports the mode a replacement should get and
// whether the destination is, or will be, a regular file.
func resolveOutput(path string) (target string, mode os.FileMode, regular bool, err error) {
	target = path
	if fi, lerr := os.Lstat(path); lerr == nil && fi.Mode()&os.ModeSymlink != 0 {
		if target, err = filepath.EvalSymlinks(path); err != nil {
			return "", 0, false, fmt.Errorf("failed to resolve output path: %w", err)
		}
	}

	fi, err := os.Stat(target)
	if os.IsNotExist(err) {
		return target, 0o644, true, nil
	}
	if err != nil {
		return "", 0, false, fmt.Errorf("failed to stat output path: %w", err)
	}

	return target, fi.Mode().Perm(), fi.Mode().IsRegular(), nil
}

func writeDirect(path string, d *Dataset, g Grid) (Stats, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open output: %w", err)
	}

	stats, err := Write(f, d, g)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close output: %w", cerr)
	}

	return stats, err
}

func writeAtomic(path string, mode os.FileMode, d *Dataset, g Grid) (stats Stats, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warn().Err(rmErr).Str("path", tmp.Name()).Msg("Failed to remove partial output")
		}
	}()

	if stats, err = Write(tmp, d, g); err != nil {
		return stats, err
	}

	if err = tmp.Close(); err != nil {
		return stats, fmt.Errorf("failed to close output file: %w", err)
	}

	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return stats, fmt.Errorf("failed to set output file mode: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return stats, fmt.Errorf("failed to move output into place: %w", err)
	}

	return stats, nil
}
