package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"

	"github.com/okuznetsov/aisplit/internal/blocks"
)

// Options configures a write run.
type Options struct {
	// DryRun counts would-be writes without touching the filesystem.
	DryRun bool

	// Force overwrites existing files without confirmation.
	Force bool

	// Encoding transcodes content before writing. Nil means UTF-8.
	Encoding encoding.Encoding

	// Confirm is the overwrite prompt supplied by the caller; the writer
	// never performs terminal I/O itself. Nil declines every overwrite.
	Confirm func(path string) bool

	// Sink receives per-block status events. Nil discards them.
	Sink Sink
}

// Report aggregates per-block outcomes across a run.
type Report struct {
	Created int
	Skipped int
	Errors  int
}

// Sink receives per-block status events during a write run. The ux package
// provides the terminal implementation; tests substitute their own.
type Sink interface {
	Created(path string, size int, dryRun bool)
	Skipped(path string)
	Error(path string, err error)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Created(string, int, bool) {}
func (NopSink) Skipped(string)            {}
func (NopSink) Error(string, error)       {}

// Write materializes blocks under root, strictly in order so overwrite
// prompts line up with the input. A failure on one block (unsafe path,
// encoding, I/O) is counted and the remaining blocks are still attempted.
// Cancelling ctx stops the run before the next block; it never interrupts a
// block mid-write.
func Write(ctx context.Context, bs []blocks.Block, root string, opts Options) Report {
	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}

	var report Report
	for _, b := range bs {
		if ctx.Err() != nil {
			break
		}

		if err := ValidatePath(b.Path, root); err != nil {
			sink.Error(b.Path, err)
			report.Errors++
			continue
		}

		target := filepath.Join(root, b.Path)

		if _, err := os.Stat(target); err == nil && !opts.Force && !opts.DryRun {
			if opts.Confirm == nil || !opts.Confirm(b.Path) {
				sink.Skipped(b.Path)
				report.Skipped++
				continue
			}
		}

		if opts.DryRun {
			sink.Created(b.Path, len(b.Content), true)
			report.Created++
			continue
		}

		if err := materialize(target, b.Content, opts.Encoding); err != nil {
			sink.Error(b.Path, err)
			report.Errors++
			continue
		}
		sink.Created(b.Path, len(b.Content), false)
		report.Created++
	}
	return report
}

// materialize encodes content and writes it to target, creating intermediate
// directories as needed.
func materialize(target, content string, enc encoding.Encoding) error {
	data := []byte(content)
	if enc != nil {
		encoded, err := enc.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("encoding content: %w", err)
		}
		data = encoded
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	return writeFileAtomic(target, data, 0644)
}

// writeFileAtomic writes data to a file by writing a uniquely named temporary
// file in the same directory, fsyncing, and renaming it over the target. An
// existing file is fully replaced; a crash mid-write leaves it untouched.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
