package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"github.com/okuznetsov/aisplit/internal/blocks"
	"github.com/okuznetsov/aisplit/internal/config"
	"github.com/okuznetsov/aisplit/internal/ux"
	"github.com/okuznetsov/aisplit/internal/writer"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:        "aisplit",
		Usage:       "Split a structured multi-file AI response into actual files",
		ArgsUsage:   "[input]",
		Description: "Reads an AI response containing FILE blocks from a file or stdin ('-') and writes each block to disk.\nExample: aisplit ai_response.txt -o ./project",
		Version:     version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Value: ".", Usage: "Directory where to place generated files"},
			&cli.StringFlag{Name: "encoding", Value: "utf-8", Usage: "Output file encoding"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Preview files without creating them"},
			&cli.BoolFlag{Name: "force", Usage: "Overwrite existing files without prompting"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Quiet mode (only show errors)"},
		},
		Action: run,
	}

	err := app.Run(ctx, os.Args)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "\n%sOperation cancelled by user%s\n", ux.Yellow, ux.Reset)
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
	os.Exit(1)
}

func run(ctx context.Context, cmd *cli.Command) error {
	rep := ux.NewReporter(cmd.Bool("quiet"), cmd.Bool("verbose"))

	defaults, err := config.Load(config.DefaultPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", config.DefaultPath, err)
	}

	outputDir := cmd.String("output-dir")
	if !cmd.IsSet("output-dir") && defaults.OutputDir != "" {
		outputDir = defaults.OutputDir
	}
	encodingName := cmd.String("encoding")
	if !cmd.IsSet("encoding") && defaults.Encoding != "" {
		encodingName = defaults.Encoding
	}
	force := cmd.Bool("force") || defaults.Force
	dryRun := cmd.Bool("dry-run")

	enc, err := writer.ResolveEncoding(encodingName)
	if err != nil {
		return err
	}

	text, err := readInput(cmd.Args().First(), rep)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("input is empty")
	}

	rep.Debugf("parsing file blocks")
	bs, err := blocks.Parse(text)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if len(bs) == 0 {
		rep.Warnf("no file blocks found in input")
		return nil
	}
	rep.Infof("Found %d file(s) to process", len(bs))

	if outputDir != "." && !dryRun {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		rep.Debugf("ensured output directory exists: %s", outputDir)
	}

	report := writer.Write(ctx, bs, outputDir, writer.Options{
		DryRun:   dryRun,
		Force:    force,
		Encoding: enc,
		Confirm:  stdinConfirm(ctx),
		Sink:     rep,
	})
	rep.Summary(report, dryRun)

	if ctx.Err() != nil {
		return context.Canceled
	}
	if report.Errors > 0 {
		return fmt.Errorf("%d file(s) could not be written", report.Errors)
	}
	return nil
}

// readInput reads the whole response text from a file, or from stdin when
// the argument is empty or "-".
func readInput(path string, rep *ux.Reporter) (string, error) {
	if path == "" || path == "-" {
		rep.Debugf("reading from stdin")
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	rep.Debugf("reading from file: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// stdinConfirm returns an overwrite prompt backed by stdin. EOF, read errors,
// and cancellation all count as "no": an interrupted prompt skips that file,
// it does not abort the run.
func stdinConfirm(ctx context.Context) func(string) bool {
	reader := bufio.NewReader(os.Stdin)
	return func(path string) bool {
		fmt.Printf("Overwrite %s? [y/N]: ", path)

		type readResult struct {
			line string
			err  error
		}
		ch := make(chan readResult, 1)
		go func() {
			line, err := reader.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()

		select {
		case <-ctx.Done():
			fmt.Println()
			return false
		case r := <-ch:
			if r.err != nil {
				fmt.Println()
				return false
			}
			switch strings.ToLower(strings.TrimSpace(r.line)) {
			case "y", "yes":
				return true
			default:
				return false
			}
		}
	}
}
