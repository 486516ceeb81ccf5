package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdfront "github.com/alnah/go-mdfront"
	"github.com/alnah/go-mdfront/internal/assets"
	"github.com/alnah/go-mdfront/internal/config"
	"github.com/alnah/go-mdfront/internal/fileutil"
	"github.com/alnah/go-mdfront/internal/pipeline"
)

// htmlExt is the extension of rendered files.
const htmlExt = ".html"

// renderParams groups values shared by every file of a render run.
type renderParams struct {
	proc       *mdfront.Processor
	standalone bool
	css        string
}

// runRenderCmd parses flags and runs the render command.
func runRenderCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	undo := configureRuntime(flags.common, env.Stderr)
	defer undo()
	return runRender(ctx, inputs, flags, env)
}

// runRender converts every input to HTML, skipping the frontmatter.
func runRender(ctx context.Context, inputs []string, flags *renderFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if err := mergeRenderFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(flags.common, env.Stderr)
	proc, err := mdfront.New(processorOptions(cfg, logger)...)
	if err != nil {
		return err
	}
	if err := addBaseURLHook(proc, cfg.Render.BaseURL, logger); err != nil {
		return err
	}

	params := &renderParams{proc: proc, standalone: cfg.Render.Standalone}
	if params.standalone {
		if params.css, err = resolveStylesheet(cfg.Render); err != nil {
			return err
		}
	}

	jobs, err := discoverFiles(inputs, cfg.Output.DefaultDir, htmlExt)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	results := processBatch(ctx, jobs, resolveWorkers(cfg.Output.Workers), func(ctx context.Context, job FileJob) FileResult {
		return renderFile(ctx, job, params)
	})

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if r.OutputPath == stdoutPath {
			fmt.Fprint(env.Stdout, r.Output)
			continue
		}
		if flags.common.quiet {
			continue
		}
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stderr, "Created %s\n", r.OutputPath)
		}
	}
	printFailures(results, 0, env)
	printSummary(results, flags.common, env)
	return batchError(results)
}

// renderFile renders one file and writes it unless the target is stdout.
func renderFile(ctx context.Context, job FileJob, params *renderParams) FileResult {
	result := FileResult{InputPath: job.InputPath, OutputPath: job.OutputPath}

	content, err := os.ReadFile(job.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadInput, err)
		return result
	}

	hc := mdfront.HookContext{
		File: job.InputPath,
		Ext:  strings.TrimPrefix(filepath.Ext(job.InputPath), "."),
	}
	html := params.proc.ProcessMarkdown(ctx, string(content), hc)

	if params.standalone {
		res := params.proc.ParseFrontMatter(ctx, string(content), mdfront.ExtractOptions{File: job.InputPath, FullBody: true})
		if res.Err != nil && !errors.Is(res.Err, mdfront.ErrMissingHeader) {
			result.Err = res.Err
			return result
		}
		result.Meta = res.Meta
		html = pipeline.WrapDocument(html, documentData(res.Meta, params.css))
	}

	if job.OutputPath == stdoutPath {
		result.Output = html
		return result
	}

	if err := os.MkdirAll(filepath.Dir(job.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
		return result
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(job.OutputPath, []byte(html), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return result
}

// baseURLHookName identifies the link rewriting filter on the PostProcess chain.
const baseURLHookName = "mdfront.base-url"

// addBaseURLHook rewrites relative links of every rendered fragment against
// baseURL. The base is validated once up front.
func addBaseURLHook(proc *mdfront.Processor, baseURL string, logger *slog.Logger) error {
	if baseURL == "" {
		return nil
	}
	if _, err := pipeline.RewriteLinks("", baseURL); err != nil {
		return err
	}
	proc.Hooks().PostProcess.Add(baseURLHookName, 100, func(_ context.Context, html string, hc mdfront.HookContext) string {
		out, err := pipeline.RewriteLinks(html, baseURL)
		if err != nil {
			logger.Warn("link rewriting failed", slog.String("file", hc.File), slog.Any("error", err))
			return html
		}
		return out
	})
	return nil
}

// resolveStylesheet returns the CSS for standalone documents: the style,
// read from a path or looked up by name, followed by the inline CSS.
func resolveStylesheet(rc config.RenderConfig) (string, error) {
	var css string
	switch {
	case rc.Style == "":
	case fileutil.IsFilePath(rc.Style) || strings.HasSuffix(rc.Style, ".css"):
		data, err := os.ReadFile(rc.Style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: reading style: %w", ErrReadInput, err)
		}
		css = string(data)
	default:
		resolver, err := assets.NewResolver(rc.StyleDir)
		if err != nil {
			return "", err
		}
		if css, err = resolver.LoadStyle(rc.Style); err != nil {
			return "", err
		}
	}

	if rc.CSS == "" {
		return css, nil
	}
	if css == "" {
		return rc.CSS, nil
	}
	return strings.TrimRight(css, "\n") + "\n" + rc.CSS, nil
}

// documentData fills the document head from metadata.
func documentData(meta *mdfront.Metadata, css string) pipeline.DocumentData {
	return pipeline.DocumentData{
		Title:       meta.Title(),
		Description: meta.GetString(mdfront.FieldSummary),
		Author:      meta.GetString(mdfront.FieldAuthor),
		Keywords:    meta.Tags(),
		CSS:         css,
	}
}

// mergeRenderFlags applies explicitly set flags over the config (CLI wins).
// --css names a file whose content is inlined after the style.
func mergeRenderFlags(flags *renderFlags, cfg *config.Config) error {
	if flags.set["output"] {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.set["standalone"] {
		cfg.Render.Standalone = flags.standalone
	}
	if flags.set["legacy"] {
		cfg.Render.Legacy = flags.legacy
	}
	if flags.set["no-highlight"] {
		enabled := !flags.noHighlight
		cfg.Render.Highlight = &enabled
	}
	if flags.set["highlight-style"] {
		cfg.Render.HighlightStyle = flags.highlightStyle
	}
	if flags.set["workers"] {
		cfg.Output.Workers = flags.workers
	}
	if flags.set["style"] {
		cfg.Render.Style = flags.style
	}
	if flags.set["style-dir"] {
		cfg.Render.StyleDir = flags.styleDir
	}
	if flags.noStyle {
		cfg.Render.Style = ""
	}
	if flags.set["base-url"] {
		cfg.Render.BaseURL = flags.baseURL
	}
	if flags.css != "" {
		data, err := os.ReadFile(flags.css) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: reading CSS: %w", ErrReadInput, err)
		}
		cfg.Render.CSS = string(data)
	}
	return nil
}
