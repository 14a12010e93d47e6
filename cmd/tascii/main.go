package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/srlehn/termascii/art"
	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
	"github.com/srlehn/termascii/internal/logx"
	_ "github.com/srlehn/termascii/resize/rall"
)

func main() {
	// a closed pipe (e.g. "| head") surfaces as a write error instead of killing the process
	signal.Ignore(syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitCode := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(exitCode)
}

var errNoImage = errors.New(`no image path given`)

type app struct {
	stdout, stderr io.Writer
	logger         *slog.Logger

	path       string
	contrast   int8
	scale      uint8
	colour     bool
	noBG       bool
	threads    int
	resizer    string
	debug      bool
	silent     bool
	cpuProfile string
}

var _ logx.LoggerProvider = (*app)(nil)

func (a *app) Logger() *slog.Logger { return a.logger }

// cpuProfileFunc is set in dev builds.
var cpuProfileFunc func(profileFile string) func()

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           filepath.Base(os.Args[0]) + ` [flags] <image>`,
		Short:         "tascii draws images as text",
		Long:          "tascii draws images with a ramp of 17 characters, optionally colored",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.Context(), args)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	fl := cmd.Flags()
	fl.StringVarP(&a.path, `path`, `p`, ``, `path to image`)
	fl.Int8VarP(&a.contrast, `contrast`, `c`, 0, `contrast [-128 - 127]`)
	fl.Uint8VarP(&a.scale, `scale`, `s`, consts.DefaultScale, `scale% [0 - 255], 0 fits the image into the terminal`)
	fl.BoolVarP(&a.colour, `colour`, `C`, false, `colored output`)
	fl.BoolVarP(&a.noBG, `no-bg`, `n`, false, `draw transparent pixels as blank space`)
	fl.IntVarP(&a.threads, `threads`, `t`, 1, `render workers, 0 uses all CPUs`)
	fl.StringVarP(&a.resizer, `resizer`, `r`, consts.DefaultResizer, `nearest-neighbor resizer (imaging, gift, xdraw, bild)`)
	fl.BoolVarP(&a.debug, `debug`, `d`, false, `debug logging and error stacks`)
	fl.BoolVarP(&a.silent, `silent`, `q`, false, `silence errors`)
	if cpuProfileFunc != nil {
		fl.StringVar(&a.cpuProfile, `cpuprofile`, ``, `write cpu profile to file`)
	}
	fl.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == `color` {
			name = `colour`
		}
		return pflag.NormalizedName(name)
	})
	return cmd
}

// execute runs the command line and returns the exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) (exitCode int) {
	a := &app{stdout: stdout, stderr: stderr, logger: logx.Discard()}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if !a.silent {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(stderr, "\n"+stackFramer.ErrorStack())
				} else {
					fmt.Fprintf(stderr, "panic: %v\n%s", r, debug.Stack())
				}
			}
		}
	}()
	if len(args) == 0 {
		usage(cmd, stderr)
		return 1
	}
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoImage):
		usage(cmd, stderr)
		return 1
	case errors.Is(err, consts.ErrOutputClosed):
		logx.Warn(`output closed before the image was written completely`, a, `err`, err)
		return 0
	}
	logx.IsErr(err, a, slog.LevelDebug)
	if !a.silent {
		if debugStack := errors.Stack(err); a.debug && len(debugStack) > 0 {
			fmt.Fprintln(stderr, debugStack)
		} else {
			fmt.Fprintln(stderr, "error: "+err.Error())
		}
	}
	return 1
}

func usage(cmd *cobra.Command, stderr io.Writer) {
	cmd.SetOut(stderr)
	_ = cmd.Usage()
}

func (a *app) convert(ctx context.Context, args []string) error {
	a.setLogger()
	if len(a.cpuProfile) > 0 && cpuProfileFunc != nil {
		if stop := cpuProfileFunc(a.cpuProfile); stop != nil {
			defer stop()
		}
	}
	path := a.path
	if len(args) == 1 {
		if len(path) > 0 && path != args[0] {
			return errors.Errorf(`image path given twice: %q and %q`, path, args[0])
		}
		path = args[0]
	}
	if len(path) == 0 {
		return errNoImage
	}
	conv, err := art.New(
		art.SetScale(a.scale),
		art.SetContrast(a.contrast),
		art.SetColor(a.colour),
		art.SetNoBackground(a.noBG),
		art.SetThreads(a.threads),
		art.SetResizerName(a.resizer),
		art.SetLogger(a.logger),
	)
	if err != nil {
		return err
	}
	logx.Debug(`converting`, a, `path`, path, `scale`, a.scale, `contrast`, a.contrast,
		`colour`, a.colour, `no-bg`, a.noBG, `threads`, a.threads, `resizer`, a.resizer)
	return conv.RenderFile(ctx, path, a.stdout)
}

func (a *app) setLogger() {
	switch {
	case a.silent:
		a.logger = logx.Discard()
	case a.debug:
		a.logger = logx.New(a.stderr, slog.LevelDebug)
	default:
		a.logger = logx.New(a.stderr, slog.LevelWarn)
	}
}
