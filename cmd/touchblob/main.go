package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/Kuadribal/touchblob/internal/anim"
	"github.com/Kuadribal/touchblob/internal/app"
	"github.com/Kuadribal/touchblob/internal/art"
	"github.com/Kuadribal/touchblob/internal/body"
	"github.com/Kuadribal/touchblob/internal/conditions"
	"github.com/Kuadribal/touchblob/internal/discovery"
	"github.com/Kuadribal/touchblob/internal/health"
	"github.com/Kuadribal/touchblob/internal/pet"
	"github.com/Kuadribal/touchblob/internal/sound"
	"github.com/Kuadribal/touchblob/internal/storage"
	"github.com/Kuadribal/touchblob/internal/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

const Version = "v0.1.0"

// simulateStep is the frame interval used by headless runs.
const simulateStep = 16 * time.Millisecond

type rootOptions struct {
	configPath string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "touchblob",
		Short:         "touchblob - a squishy pet that lives in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to blob.toml (default: nearest .touchblob directory)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log at debug level")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands for blob management",
	}
	adminCmd.AddCommand(newCompletionCmd())
	adminCmd.AddCommand(newSpritesCmd(opts))
	adminCmd.AddCommand(newSimulateCmd(opts))

	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newColorCmd(opts))
	rootCmd.AddCommand(newRenameCmd(opts))
	rootCmd.AddCommand(newResetCmd(opts))
	rootCmd.AddCommand(adminCmd)
	return rootCmd
}

// blob is everything a command needs from the blob directory.
type blob struct {
	dir     string
	cfg     pet.Config
	store   storage.Store
	log     *slog.Logger
	logFile *os.File
}

// resolve finds the blob directory and config path, creating the default
// files on first use.
func (o *rootOptions) resolve(global bool) (dir, cfgPath string, err error) {
	if o.configPath != "" {
		dir = filepath.Dir(o.configPath)
		if filepath.Base(dir) == storage.DirName {
			if _, err := storage.InitDir(filepath.Dir(dir)); err != nil {
				return "", "", err
			}
		} else if err := os.MkdirAll(dir, 0755); err != nil {
			return "", "", fmt.Errorf("failed to create config directory: %w", err)
		}
		return dir, o.configPath, nil
	}

	if global {
		dir, err = discovery.GlobalBlobDir()
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("failed to get current directory: %w", err)
		}
		dir, err = discovery.ResolveBlobDir(cwd)
	}
	if err != nil {
		return "", "", err
	}

	if _, err := storage.InitDir(filepath.Dir(dir)); err != nil {
		return "", "", err
	}
	return dir, discovery.ConfigPath(dir), nil
}

// open loads the config and store. Interactive sessions log to a file in
// the blob directory so the screen stays clean.
func (o *rootOptions) open(cmd *cobra.Command, global, logToFile bool) (*blob, error) {
	dir, cfgPath, err := o.resolve(global)
	if err != nil {
		return nil, err
	}

	b := &blob{dir: dir}

	level := slog.LevelWarn
	var w io.Writer = cmd.ErrOrStderr()
	if logToFile {
		f, err := os.OpenFile(filepath.Join(dir, storage.LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		b.logFile = f
		w = f
		level = slog.LevelInfo
	}
	if o.debug {
		level = slog.LevelDebug
	}
	b.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	b.cfg, err = storage.LoadConfig(cfgPath)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	b.store, err = storage.Open(dir, b.cfg.Store, b.log)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return b, nil
}

func (b *blob) Close() {
	if b.store != nil {
		if err := b.store.Close(); err != nil {
			b.log.Warn("failed to close store", "err", err)
		}
	}
	if b.logFile != nil {
		b.logFile.Close()
	}
}

// pet loads the saved blob; every change is written straight back.
func (b *blob) pet() *pet.Pet {
	state := storage.LoadState(b.store, time.Now(), b.log)
	return pet.New(state, storage.StateSaver{Store: b.store}, b.log)
}

// sprites loads the configured frames. A missing or broken file leaves the
// placeholder face.
func (b *blob) sprites() anim.Library {
	path := b.cfg.Sprites
	if path == "" {
		return nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.dir, path)
	}

	lib, err := storage.LoadSprites(path)
	if err != nil {
		b.log.Warn("failed to load sprites", "path", path, "err", err)
		return nil
	}
	return lib
}

func (b *blob) appOptions(width, height float64, fx body.Effects, color string) app.Options {
	return app.Options{
		Width:         width,
		Height:        height,
		FrameSpeed:    b.cfg.FrameSpeed(),
		DecayInterval: b.cfg.DecayInterval(),
		Thresholds:    app.ThresholdsFromConfig(b.cfg.Gesture),
		Effects:       fx,
		Color:         color,
		Logger:        b.log,
	}
}

func newPlayCmd(o *rootOptions) *cobra.Command {
	var withSound, global bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play with your blob (tap, swipe, drag, pet)",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := o.open(cmd, global, true)
			if err != nil {
				return err
			}
			defer b.Close()

			p := b.pet()
			color, err := storage.LoadColor(b.store)
			if err != nil {
				b.log.Warn("failed to load color", "err", err)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize screen: %w", err)
			}
			defer screen.Fini()

			driver := tui.NewDriver(screen, b.log)
			fx := body.MultiEffects{driver.Effects()}
			if withSound || b.cfg.Sound {
				player := sound.NewPlayer(b.cfg.Volume, b.log)
				if err := player.Start(); err != nil {
					b.log.Warn("sound unavailable", "err", err)
				} else {
					defer player.Close()
					fx = append(fx, player)
				}
			}

			w, h := driver.CanvasSize()
			a := app.New(p, b.sprites(), b.appOptions(w, h, fx, color))
			driver.Attach(a, func(c string) error { return storage.SaveColor(b.store, c) })

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			b.log.Info("blob awake", "name", p.Name(), "dir", b.dir)
			return driver.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&withSound, "sound", false, "Play sound cues")
	cmd.Flags().BoolVar(&global, "global", false, "Use the blob in your home directory")
	return cmd
}

func newStatusCmd(o *rootOptions) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how your blob is doing",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := o.open(cmd, false, false)
			if err != nil {
				return err
			}
			defer b.Close()

			p := b.pet()
			stats := p.Stats()
			wellbeing := health.ComputeWellbeing(stats, health.ComputationMode(b.cfg.Wellbeing))
			status := conditions.DeriveStatus(stats, wellbeing)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is %s\n\n", p.Name(), status.Primary)

			if verbose {
				state := p.State()
				fmt.Fprintf(out, "state: %s\n", conditions.FormatConditions(status.AllOrdered))
				fmt.Fprintf(out, "wellbeing: %d\n", status.Wellbeing)
				fmt.Fprintf(out, "mood: %.0f\n", stats.Mood)
				fmt.Fprintf(out, "energy: %.0f\n", stats.Energy)
				fmt.Fprintf(out, "hunger: %.0f\n", stats.Hunger)
				fmt.Fprintf(out, "interactions: %d\n", state.TotalInteractions)
				fmt.Fprintf(out, "age: %s\n", state.Age(time.Now()).Truncate(time.Second))
				if color, _ := storage.LoadColor(b.store); color != "" {
					fmt.Fprintf(out, "color: %s\n", color)
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintln(out, art.StaticArt(b.sprites(), stats))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the full stats card")
	return cmd
}

func newColorCmd(o *rootOptions) *cobra.Command {
	var clearColor bool

	cmd := &cobra.Command{
		Use:   "color [css-color]",
		Short: "Show or set the blob's color (#rrggbb, #rgb or a color name)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearColor && len(args) > 0 {
				return fmt.Errorf("--clear takes no color")
			}

			b, err := o.open(cmd, false, false)
			if err != nil {
				return err
			}
			defer b.Close()
			out := cmd.OutOrStdout()

			switch {
			case clearColor:
				if err := storage.SaveColor(b.store, ""); err != nil {
					return err
				}
				fmt.Fprintln(out, "Color cleared; the blob follows its mood again.")
			case len(args) == 0:
				color, err := storage.LoadColor(b.store)
				if err != nil {
					return err
				}
				if color == "" {
					color = "mood"
				}
				fmt.Fprintln(out, color)
			default:
				if _, ok := art.ParseColor(args[0]); !ok {
					return fmt.Errorf("unrecognized color %q", args[0])
				}
				if err := storage.SaveColor(b.store, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "Color set to %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearColor, "clear", false, "Go back to the mood-based color")
	return cmd
}

func newRenameCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [name]",
		Short: "Give your blob a new name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("name cannot be empty")
			}

			b, err := o.open(cmd, false, false)
			if err != nil {
				return err
			}
			defer b.Close()

			p := b.pet()
			old := p.Name()
			p.Rename(name)
			if err := storage.SaveState(b.store, p.State()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now called %s\n", old, name)
			return nil
		},
	}
}

func newResetCmd(o *rootOptions) *cobra.Command {
	var keepName bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start over with a freshly hatched blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := o.open(cmd, false, false)
			if err != nil {
				return err
			}
			defer b.Close()

			state := pet.NewState(time.Now())
			if keepName {
				state.Name = b.pet().Name()
			}
			if err := storage.SaveState(b.store, state); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s hatched anew!\n", state.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepName, "keep-name", false, "Keep the current name")
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for touchblob.

To load completions:

Bash:
  $ source <(touchblob admin completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ touchblob admin completion bash > /etc/bash_completion.d/touchblob
  # macOS:
  $ touchblob admin completion bash > /usr/local/etc/bash_completion.d/touchblob

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ touchblob admin completion zsh > "${fpath[1]}/_touchblob"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ touchblob admin completion fish | source

  # To load completions for each session, execute once:
  $ touchblob admin completion fish > ~/.config/fish/completions/touchblob.fish

PowerShell:
  PS> touchblob admin completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletion(out)
			}
			return fmt.Errorf("unsupported shell: %s", args[0])
		},
	}
}

func newSpritesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sprites",
		Short: "List the loaded animations",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := o.open(cmd, false, false)
			if err != nil {
				return err
			}
			defer b.Close()

			loaded := b.sprites()
			lib := anim.DefaultLibrary()
			lib.Merge(loaded)

			names := make([]string, 0, len(lib))
			for name := range lib {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				def := lib[name]
				mode := "once"
				if def.Loop {
					mode = "loop"
				}
				speed := def.SpeedScale
				if speed <= 0 {
					speed = 1
				}

				var dirs []string
				for _, dir := range anim.Directions {
					if n := len(def.Directions[dir]); n > 0 {
						dirs = append(dirs, fmt.Sprintf("%s:%d", dir, n))
					}
				}
				if len(dirs) == 0 {
					dirs = []string{"(no frames)"}
				}

				fmt.Fprintf(out, "%-8s %-4s x%-4.2g %s\n", name, mode, speed, strings.Join(dirs, " "))
			}
			fmt.Fprintf(out, "\n%d frames loaded\n", loaded.FrameCount())
			return nil
		},
	}
}

func newSimulateCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [duration]",
		Short: "Let the blob live headless for a while (e.g. 90s, 10m)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			if d <= 0 {
				return fmt.Errorf("duration must be positive")
			}

			b, err := o.open(cmd, false, false)
			if err != nil {
				return err
			}
			defer b.Close()

			p := b.pet()
			a := app.New(p, b.sprites(), b.appOptions(b.cfg.Width, b.cfg.Height, nil, ""))
			for at := time.Duration(0); ; at += simulateStep {
				if at > d {
					at = d
				}
				a.Frame(at)
				if at == d {
					break
				}
			}

			s := p.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "After %s %s has mood %.0f, energy %.0f, hunger %.0f\n",
				d, p.Name(), s.Mood, s.Energy, s.Hunger)
			return nil
		},
	}
}
