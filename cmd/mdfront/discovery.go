package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdfront/internal/config"
	"github.com/alnah/go-mdfront/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

// FileJob is a single file to process.
type FileJob struct {
	InputPath  string
	OutputPath string // empty when the command writes no file
}

// discoverFiles expands files and directories into jobs, in argument order.
// Directories are walked for .md and .markdown files; explicit files must
// carry one of those extensions. outputExt empty means no output paths.
func discoverFiles(inputs []string, outputDir, outputExt string) ([]FileJob, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var jobs []FileJob
	for _, input := range inputs {
		found, err := discoverInput(input, outputDir, outputExt)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, found...)
	}
	return jobs, nil
}

func discoverInput(inputPath, outputDir, outputExt string) ([]FileJob, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileJob{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, "", outputExt),
		}}, nil
	}

	var jobs []FileJob
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		jobs = append(jobs, FileJob{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputPath, outputExt),
		})
		return nil
	})
	return jobs, err
}

// resolveOutputPath determines the output path for a markdown file.
// An outputDir ending in outputExt names the file itself; "-" is stdout.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outputExt string) string {
	if outputExt == "" {
		return ""
	}
	if outputDir == stdoutPath {
		return stdoutPath
	}

	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+outputExt)
	}

	if strings.HasSuffix(outputDir, outputExt) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base+outputExt)
		}
	}

	return filepath.Join(outputDir, base+outputExt)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
