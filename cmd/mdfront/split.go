package main

import (
	"context"
	"fmt"
	"os"

	mdfront "github.com/alnah/go-mdfront"
)

// runSplitCmd parses flags and runs the split command.
func runSplitCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseSplitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runSplit(ctx, inputs, flags, env)
}

// runSplit prints the header, metadata and body of one document.
// Split accepts --- and +++ markers and reads the whole file.
func runSplit(_ context.Context, inputs []string, flags *splitFlags, env *Environment) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if len(inputs) > 1 {
		return fmt.Errorf("%w: split takes exactly one file, got %d", ErrUsage, len(inputs))
	}
	path := inputs[0]
	if err := validateMarkdownExtension(path); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if flags.set["format"] {
		cfg.Output.Format = flags.format
	}
	format, err := validateOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	proc, err := mdfront.New(mdfront.WithLogger(newLogger(flags.common, env.Stderr)))
	if err != nil {
		return err
	}
	res := proc.SplitDocument(string(content))

	return writeRecords(env.Stdout, format, []record{{
		File:   path,
		Header: res.Header,
		Meta:   res.Meta,
		Body:   res.Body,
	}})
}
