package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"streamresolve/internal/config"
	"streamresolve/internal/logx"
	"streamresolve/internal/resolver"
	"streamresolve/internal/runner"
)

var (
	configPath string
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streamresolve",
		Short: "Resolve media page URLs to playable stream URLs via yt-dlp",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newProbeCmd())
	cmd.AddCommand(newHostsCmd())
	cmd.AddCommand(newToolCmd())

	return cmd
}

// loadConfig resolves the config file path (flag, env, default name in the
// working directory) and loads it.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("STREAMRESOLVE_CONFIG")
	}
	if path == "" {
		path = "streamresolve.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newResolver builds the resolver stack from configuration. The returned
// cleanup closes the logfile.
func newResolver() (*resolver.YtDLP, config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	logger, closer, err := logx.New(cfg.Logs.Dir, cfg.Logs.Level)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cleanup := func() { _ = closer.Close() }

	state := resolver.NewState()
	state.Configure(resolver.Config{
		ToolPath:     cfg.Tool.Path,
		InstallDir:   cfg.Tool.InstallDir,
		AutoDownload: cfg.AutoDownloadEnabled(),
		TimeoutMs:    cfg.Tool.TimeoutMs,
	})

	return resolver.New(state, runner.CmdRunner{}, logger), cfg, cleanup, nil
}
