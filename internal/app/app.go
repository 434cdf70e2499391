// Package app implements the application layer for hotglsl.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/nannou-org/hotglsl"
	"github.com/nannou-org/hotglsl/internal/adapters/detector"
	"github.com/nannou-org/hotglsl/internal/adapters/linear"
	"github.com/nannou-org/hotglsl/internal/adapters/telemetry"
	"github.com/nannou-org/hotglsl/internal/adapters/tui"
	"github.com/nannou-org/hotglsl/internal/core/domain"
	"github.com/nannou-org/hotglsl/internal/core/ports"
)

// SPIRV bytecode files carry this extension next to the source name.
const bytecodeExt = ".spv"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	teaOptions   []tea.ProgramOption
	stderr       io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		stderr:       os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStderr redirects renderer output, primarily for testing.
func (a *App) WithStderr(w io.Writer) *App {
	a.stderr = w
	return a
}

// WatchOptions configuration for the Watch method. Zero values defer to
// the config file, which in turn defers to the built-in defaults.
type WatchOptions struct {
	Paths      []string
	Compiler   string
	Settle     time.Duration
	Out        string
	OutputMode string
}

// Watch observes shader files and recompiles them on change until the
// context is cancelled or the TUI is quit.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	paths := cfg.Paths
	if len(opts.Paths) > 0 {
		paths = opts.Paths
	}
	settle := cfg.Settle
	if opts.Settle > 0 {
		settle = opts.Settle
	}
	out := cfg.Out
	if opts.Out != "" {
		out = opts.Out
	}
	outputMode := cfg.OutputMode
	if opts.OutputMode != "" {
		outputMode = opts.OutputMode
	}

	compiler := newCompiler(cfg, opts.Compiler)

	watcher, err := hotglsl.WatchPaths(paths, hotglsl.WithCompiler(compiler))
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	renderer, interactive := a.newRenderer(ctx, outputMode)
	tp := telemetry.NewTracerProvider(renderer)
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer(telemetry.TracerName)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	g, ctx := errgroup.WithContext(ctx)

	// Closing the watcher unblocks AwaitEvent with ErrChannelClosed, which
	// the loop treats as shutdown. This covers both signal cancellation
	// and the renderer quitting.
	stop := context.AfterFunc(ctx, func() {
		_ = watcher.Close()
	})
	defer stop()
	defer func() {
		_ = watcher.Close()
	}()

	if err := renderer.Start(ctx); err != nil {
		return err
	}

	if interactive {
		// Quitting the TUI cancels the group context, which closes the
		// watcher and ends the loop.
		g.Go(func() error {
			err := renderer.Wait()
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()
		return a.watchLoop(ctx, watcher, tracer, compiler, renderer, settle, out)
	})

	return g.Wait()
}

// watchLoop blocks for changes and recompiles every touched shader.
func (a *App) watchLoop(
	ctx context.Context,
	watcher *hotglsl.Watcher,
	tracer trace.Tracer,
	compiler hotglsl.Compiler,
	renderer ports.Renderer,
	settle time.Duration,
	out string,
) error {
	for {
		if err := watcher.AwaitEvent(); err != nil {
			if errors.Is(err, hotglsl.ErrChannelClosed) {
				return nil
			}
			// Per-event watcher errors are transient, log and keep going.
			a.logger.Warn(err.Error())
			continue
		}

		// Editors fire several events per save. Wait for the burst to
		// settle so the drain coalesces them into one rebuild.
		select {
		case <-time.After(settle):
		case <-ctx.Done():
			return nil
		}

		touched, err := watcher.PathsTouched()
		if err != nil {
			if errors.Is(err, hotglsl.ErrChannelClosed) {
				return nil
			}
			a.logger.Warn(err.Error())
			continue
		}
		if len(touched) == 0 {
			continue
		}

		paths := make([]string, 0, len(touched))
		for path := range touched {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		renderer.OnBatchBegin(paths)

		for _, path := range paths {
			if ctx.Err() != nil {
				return nil
			}
			if err := a.compileOne(ctx, tracer, compiler, path, out); err != nil {
				// Reported through the renderer via the span status.
				continue
			}
		}
	}
}

// CompileOptions configuration for the Compile method.
type CompileOptions struct {
	Compiler string
	Out      string
}

// Compile builds the given shader files once and reports each outcome.
// It returns domain.ErrCompileBatchFailed when any shader failed.
func (a *App) Compile(ctx context.Context, files []string, opts CompileOptions) error {
	if len(files) == 0 {
		return domain.ErrNoShaderFiles
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	out := cfg.Out
	if opts.Out != "" {
		out = opts.Out
	}
	compiler := newCompiler(cfg, opts.Compiler)

	// One-shot compilation always reports linearly, there is nothing to
	// keep a TUI alive for.
	renderer := linear.NewRenderer(a.stderr)
	tp := telemetry.NewTracerProvider(renderer)
	tracer := tp.Tracer(telemetry.TracerName)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	renderer.OnBatchBegin(files)

	var failed int
	for _, path := range files {
		if err := a.compileOne(ctx, tracer, compiler, path, out); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return errors.Join(domain.ErrCompileBatchFailed, fmt.Errorf("%d of %d shader(s) failed", failed, len(files)))
	}
	return nil
}

// compileOne compiles a single shader inside a span and optionally writes
// the bytecode next to the output directory.
func (a *App) compileOne(
	ctx context.Context,
	tracer trace.Tracer,
	compiler hotglsl.Compiler,
	path string,
	out string,
) error {
	attrs := []attribute.KeyValue{
		attribute.String(telemetry.AttrShaderPath, path),
	}
	if stage, err := hotglsl.StageForPath(path); err == nil {
		attrs = append(attrs, attribute.String(telemetry.AttrShaderStage, stage.String()))
	}

	_, span := tracer.Start(ctx, path, trace.WithAttributes(attrs...))
	defer span.End()

	bytecode, err := hotglsl.CompileFile(ctx, compiler, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if out != "" {
		if err := writeBytecode(out, path, bytecode); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			a.logger.Error(err)
			return err
		}
	}

	return nil
}

// loadConfig resolves the configuration for the current working directory.
func (a *App) loadConfig() (*domain.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// newCompiler picks the compiler binary from the flag, then the config,
// then the default lookup name.
func newCompiler(cfg *domain.Config, flagBinary string) hotglsl.Compiler {
	binary := cfg.CompilerBinary
	if flagBinary != "" {
		binary = flagBinary
	}
	if binary == "" {
		return hotglsl.NewGlslang()
	}
	return hotglsl.NewGlslangBinary(binary)
}

// newRenderer selects the renderer for the resolved output mode. The
// second return reports whether the renderer runs its own event loop.
func (a *App) newRenderer(ctx context.Context, outputMode string) (ports.Renderer, bool) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)

	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		return tui.NewRenderer(&model, optsTea...), true
	}
	return linear.NewRenderer(a.stderr), false
}

// writeBytecode stores compiled bytecode under dir, named after the source
// file. a.vert becomes a.vert.spv so sibling stages never clash.
func writeBytecode(dir, sourcePath string, bytecode []byte) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "dir", dir)
	}

	name := filepath.Base(sourcePath) + bytecodeExt
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, bytecode, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteBytecodeFailed.Error()), "path", target)
	}
	return nil
}

// Version renders the build information line shown by the version command.
func Version(version, commit, date string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "hotglsl %s", version)
	if commit != "none" {
		fmt.Fprintf(&b, " (%s)", commit)
	}
	if date != "unknown" {
		fmt.Fprintf(&b, " built %s", date)
	}
	return b.String()
}
