// Command shadergen generates GLSL shader pairs from pipeline files.
//
// Usage:
//
//	shadergen [options] <pipeline>...
//
// A pipeline file is TOML or YAML and names a preset, an optional vertex
// layout and the files to write:
//
//	preset = "text"
//	version = "310 es"
//
//	[[attributes]]
//	name = "Position"
//	type = "Vec3"
//
//	[output]
//	vertex = "text.vert"
//	fragment = "text.frag"
//	manifest = "text.manifest.toml"
//
// Examples:
//
//	shadergen text.toml                  # Generate next to the pipeline file
//	shadergen -o build/shaders *.toml    # Generate into a directory
//	shadergen -glsl "310 es" text.yaml   # Override the GLSL version
//	shadergen -list                      # List the presets
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/preset"
)

const shadergenVersion = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cli holds the parsed command line.
type cli struct {
	outDir  string
	glsl    string
	list    bool
	verbose bool
	quiet   bool
	noColor bool
	version bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var c cli
	fs := flag.NewFlagSet("shadergen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.outDir, "o", "", "output directory (default: next to each pipeline file)")
	fs.StringVar(&c.glsl, "glsl", "", `GLSL version for every pipeline, e.g. "450" or "310 es"`)
	fs.BoolVar(&c.list, "list", false, "list presets")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
	fs.BoolVar(&c.quiet, "q", false, "log errors only")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&c.version, "version", false, "print version")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	out := termenv.NewOutput(stderr)
	if c.noColor {
		out = termenv.NewOutput(stderr, termenv.WithProfile(termenv.Ascii))
	}
	logger := newLogger(stderr, c)

	if c.version {
		fmt.Fprintf(stdout, "shadergen version %s\n", shadergenVersion)
		return 0
	}
	if c.list {
		listPresets(stdout)
		return 0
	}
	if fs.NArg() < 1 {
		report(out, "no pipeline file specified")
		usage(fs)
		return 1
	}

	if c.glsl != "" {
		if _, err := glsl.ParseVersion(c.glsl); err != nil {
			report(out, err.Error())
			return 1
		}
	}

	failed := 0
	for _, path := range fs.Args() {
		if err := generate(path, c, logger); err != nil {
			report(out, err.Error())
			failed++
		}
	}
	if failed > 0 {
		if fs.NArg() > 1 {
			fmt.Fprintf(stderr, "%d of %d pipelines failed\n", failed, fs.NArg())
		}
		return 1
	}
	return 0
}

func newLogger(w io.Writer, c cli) *slog.Logger {
	level := new(slog.LevelVar)
	switch {
	case c.verbose:
		level.Set(slog.LevelDebug)
	case c.quiet:
		level.Set(slog.LevelError)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// generate runs one pipeline file and writes its outputs.
func generate(path string, c cli, logger *slog.Logger) error {
	p, err := LoadPipeline(path)
	if err != nil {
		return err
	}
	if c.glsl != "" {
		p.Version = c.glsl
	}
	pre, _ := preset.Lookup(p.Preset)

	layout, err := p.Layout()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if layout == nil {
		layout = pre.Layout()
	}
	opts, err := p.Options()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	opts.Logger = logger.With("pipeline", path)

	program, err := pre.Generate(layout, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{p.Output.Vertex, []byte(program.VertexSource)},
		{p.Output.Fragment, []byte(program.FragmentSource)},
	}
	if p.Output.Manifest != "" {
		m, err := NewManifest(p.Preset, opts.GLSL.LangVersion.String(), layout, program)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		data, err := m.Encode(p.Output.Manifest)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		files = append(files, struct {
			name string
			data []byte
		}{p.Output.Manifest, data})
	}

	for _, f := range files {
		target := p.resolve(c.outDir, f.name)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, f.data, 0o644); err != nil { //nolint:gosec // G306: generated sources are not secret
			return err
		}
		logger.Info("wrote file", "path", target, "bytes", len(f.data))
	}
	return nil
}

func listPresets(w io.Writer) {
	for _, name := range preset.Names() {
		p, _ := preset.Lookup(name)
		fmt.Fprintf(w, "%-8s %s\n", name, p.Description)
	}
}

// report prints an error diagnostic, colored when the terminal supports it.
func report(out *termenv.Output, msg string) {
	label := out.String("error:").Foreground(termenv.ANSIRed).Bold()
	fmt.Fprintf(out, "%s %s\n", label, msg)
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: shadergen [options] <pipeline>...\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nPresets:\n")
	listPresets(w)
}
