package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gooey/internal/ambience"
	"gooey/internal/config"
	"gooey/internal/host"
	"gooey/internal/panel"
)

var (
	configFile    string
	preset        string
	withPanel     bool
	withSound     bool
	exitWithPanel bool
	fullscreen    bool
	width         int
	height        int
	fps           int
	pages         float64
	volume        float64
	logFile       string
)

// GLFW must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "gooey",
		Short:        "scroll-driven gooey shader background",
		SilenceUsage: true,
		RunE:         run,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the gooey window",
		RunE:  run,
	}
	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		f := cmd.Flags()
		f.StringVar(&configFile, "config", "", "config file path (yaml)")
		f.StringVar(&preset, "preset", "", "use a preset palette")
		f.BoolVar(&withPanel, "panel", false, "show the terminal control panel")
		f.BoolVar(&exitWithPanel, "exit-with-panel", false, "close the window when the panel closes")
		f.BoolVar(&withSound, "sound", false, "play the ambient pad")
		f.Float64Var(&volume, "volume", 0.2, "ambient pad volume")
		f.BoolVar(&fullscreen, "fullscreen", false, "fullscreen on the primary monitor")
		f.IntVar(&width, "width", 0, "window width")
		f.IntVar(&height, "height", 0, "window height")
		f.IntVar(&fps, "fps", 0, "frame rate cap (0 follows vsync)")
		f.Float64Var(&pages, "pages", 0, "virtual page height in viewports")
		f.StringVar(&logFile, "log", "gooey.log", "log file used while the panel owns the terminal")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	configCmd.Flags().StringVar(&preset, "preset", "", "use a preset palette")

	rootCmd.AddCommand(runCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("panel") {
		cfg.Panel = withPanel
	}
	if flags.Changed("sound") {
		cfg.Sound = withSound
	}
	if flags.Changed("fullscreen") {
		cfg.Window.Fullscreen = fullscreen
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = fps
	}
	if flags.Changed("pages") {
		cfg.Page.Pages = pages
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "gooey: ", log.LstdFlags)
	opts := host.Options{Config: cfg, Logger: logger}

	if cfg.Panel {
		// the panel owns the terminal; diagnostics go to a file
		f, err := tea.LogToFile(logFile, "gooey: ")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
		opts.Logger = logger

		pn := panel.New(cfg.Params)
		opts.Panel = pn
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := pn.Run(); err != nil {
				logger.Printf("panel: %v", err)
			}
			if exitWithPanel {
				cancel()
			}
		}()
		defer func() {
			pn.Quit()
			<-pn.Done()
		}()
	}

	if cfg.Sound {
		player, err := ambience.Start(volume)
		if err != nil {
			logger.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			defer player.Close()
			opts.Sink = player
		}
	}

	return host.Run(ctx, opts)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOL WIDTH\tSPEED\tSCALE\tSEED\tCOLOR\tPAGE")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.3f\t%.2f,%.2f,%.2f\t%s\n",
			name, p.ColWidth, p.Speed, p.Scale, p.Seed, p.Color[0], p.Color[1], p.Color[2], p.PageColor)
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := "gooey.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
