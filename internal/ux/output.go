package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/okuznetsov/aisplit/internal/writer"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Reporter renders per-file status lines and the final summary. It implements
// the writer's Sink. Quiet suppresses everything except errors; Verbose adds
// Debugf output.
type Reporter struct {
	Quiet   bool
	Verbose bool
	Out     io.Writer
	Err     io.Writer
}

// NewReporter returns a Reporter bound to stdout/stderr.
func NewReporter(quiet, verbose bool) *Reporter {
	return &Reporter{Quiet: quiet, Verbose: verbose, Out: os.Stdout, Err: os.Stderr}
}

// Created prints a per-file success line.
func (r *Reporter) Created(path string, size int, dryRun bool) {
	if r.Quiet {
		return
	}
	if dryRun {
		fmt.Fprintf(r.Out, "  %s~%s would create %s %s(%d bytes)%s\n", Yellow, Reset, path, Dim, size, Reset)
		return
	}
	fmt.Fprintf(r.Out, "  %s✓%s created %s\n", Green, Reset, path)
}

// Skipped prints a per-file skip line.
func (r *Reporter) Skipped(path string) {
	if r.Quiet {
		return
	}
	fmt.Fprintf(r.Out, "  %s– skipped %s%s\n", Dim, path, Reset)
}

// Error prints a per-file failure line. Errors are never suppressed.
func (r *Reporter) Error(path string, err error) {
	fmt.Fprintf(r.Err, "  %s✗ %s:%s %v\n", Red, path, Reset, err)
}

// Infof prints an informational line unless quiet.
func (r *Reporter) Infof(format string, args ...any) {
	if r.Quiet {
		return
	}
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Warnf prints a warning to stderr unless quiet.
func (r *Reporter) Warnf(format string, args ...any) {
	if r.Quiet {
		return
	}
	fmt.Fprintf(r.Err, "%swarning:%s "+format+"\n", append([]any{Yellow, Reset}, args...)...)
}

// Debugf prints a debug line when verbose.
func (r *Reporter) Debugf(format string, args ...any) {
	if !r.Verbose || r.Quiet {
		return
	}
	fmt.Fprintf(r.Err, "%sdebug:%s "+format+"\n", append([]any{Dim, Reset}, args...)...)
}

// Summary prints the aggregate report for a run.
func (r *Reporter) Summary(rep writer.Report, dryRun bool) {
	if r.Quiet {
		return
	}
	mode := "Created"
	if dryRun {
		mode = "Would create"
	}
	color := Green
	if rep.Errors > 0 {
		color = Red
	}
	fmt.Fprintf(r.Out, "\n%s%s%s %d file(s), skipped %d, errors %d%s\n",
		Bold, color, mode, rep.Created, rep.Skipped, rep.Errors, Reset)
}
