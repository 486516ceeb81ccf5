package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	mdfront "github.com/alnah/go-mdfront"
	"github.com/alnah/go-mdfront/internal/config"
	"github.com/alnah/go-mdfront/internal/yamlutil"
)

// record is one file of extract or split output.
type record struct {
	File   string            `json:"file" yaml:"file"`
	Header string            `json:"header,omitempty" yaml:"header,omitempty"`
	Meta   *mdfront.Metadata `json:"meta" yaml:"meta"`
	Body   string            `json:"body,omitempty" yaml:"body,omitempty"`
	Error  string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// runExtractCmd parses flags and runs the extract command.
func runExtractCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseExtractFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	undo := configureRuntime(flags.common, env.Stderr)
	defer undo()
	return runExtract(ctx, inputs, flags, env)
}

// runExtract reads the frontmatter of every input and prints it as one
// JSON or YAML list.
func runExtract(ctx context.Context, inputs []string, flags *extractFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeExtractFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	format, err := validateOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	proc, err := mdfront.New(processorOptions(cfg, newLogger(flags.common, env.Stderr))...)
	if err != nil {
		return err
	}

	jobs, err := discoverFiles(inputs, "", "")
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	opts := mdfront.ExtractOptions{
		FullBody:   cfg.Extract.FullBody,
		BufferSize: cfg.Extract.BufferSize,
	}
	results := processBatch(ctx, jobs, resolveWorkers(cfg.Output.Workers), func(ctx context.Context, job FileJob) FileResult {
		return extractFile(ctx, proc, job, opts, cfg.Extract.Format, flags.allowMissing)
	})

	if err := writeRecords(env.Stdout, format, toRecords(results)); err != nil {
		return err
	}
	window := cfg.Extract.BufferSize
	if window == 0 {
		window = mdfront.DefaultBufferSize
	}
	printFailures(results, window, env)
	printSummary(results, flags.common, env)
	return batchError(results)
}

// extractFile runs one extraction from disk.
func extractFile(ctx context.Context, proc *mdfront.Processor, job FileJob, opts mdfront.ExtractOptions, metaFormat string, allowMissing bool) FileResult {
	opts.File = job.InputPath
	res := proc.ParseFrontMatter(ctx, "", opts)

	result := FileResult{InputPath: job.InputPath, Meta: res.Meta, Err: res.Err}
	if opts.FullBody {
		result.Body = res.Body
	}
	switch {
	case allowMissing && errors.Is(res.Err, mdfront.ErrMissingHeader):
		result.Err = nil
	case errors.Is(res.Err, mdfront.ErrMetadataParse):
		result.Err = &formatError{format: metaFormat, err: res.Err}
	}
	return result
}

// mergeExtractFlags applies explicitly set flags over the config (CLI wins).
func mergeExtractFlags(flags *extractFlags, cfg *config.Config) {
	if flags.set["full"] {
		cfg.Extract.FullBody = flags.full
	}
	if flags.set["buffer-size"] {
		cfg.Extract.BufferSize = flags.bufferSize
	}
	if flags.set["meta-format"] {
		cfg.Extract.Format = flags.metaFormat
	}
	if flags.set["date-format"] {
		cfg.Extract.DateFormat = flags.dateFormat
	}
	if flags.set["format"] {
		cfg.Output.Format = flags.format
	}
	if flags.set["workers"] {
		cfg.Output.Workers = flags.workers
	}
}

func toRecords(results []FileResult) []record {
	records := make([]record, len(results))
	for i, r := range results {
		records[i] = record{File: r.InputPath, Header: r.Header, Meta: r.Meta, Body: r.Body}
		if records[i].Meta == nil {
			records[i].Meta = mdfront.NewMetadata()
		}
		if r.Err != nil {
			records[i].Error = r.Err.Error()
		}
	}
	return records
}

// writeRecords encodes records as an indented JSON array or a YAML sequence.
func writeRecords(w io.Writer, format string, records []record) error {
	var data []byte
	var err error
	if format == config.OutputFormatYAML {
		data, err = yamlutil.Marshal(records)
	} else {
		data, err = json.MarshalIndent(records, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding %s output: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
