package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"streamresolve/internal/tool"
)

var installDirFlag string

func newToolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Manage the yt-dlp binary",
	}

	cmd.AddCommand(newToolStatusCmd())
	cmd.AddCommand(newToolInstallCmd())
	cmd.AddCommand(newToolUpdateCmd())

	return cmd
}

func newToolStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where yt-dlp was found and its version",
		RunE:  runToolStatus,
	}
}

type toolStatus struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runToolStatus(cmd *cobra.Command, _ []string) error {
	r, cfg, cleanup, err := newResolver()
	if err != nil {
		return err
	}
	defer cleanup()

	status := toolStatus{}
	if path, ok := tool.Locate(tool.LocateConfig{ToolPath: cfg.Tool.Path, InstallDir: cfg.Tool.InstallDir}).Get(); ok {
		status.Found = true
		status.Path = path
		if version, err := r.ToolVersion(cmd.Context()); err == nil {
			status.Version = version
		} else {
			status.Error = err.Error()
		}
	}

	if outputJSON {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s %s\n", labelStyle.Render("Found:"), yesNo(status.Found))
	if status.Found {
		cmd.Printf("%s %s\n", labelStyle.Render("Path:"), status.Path)
		if status.Version != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Version:"), status.Version)
		}
	}
	if status.Error != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Error:"), errStyle.Render(status.Error))
	}
	return nil
}

func newToolInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download the yt-dlp release binary",
		RunE:  runToolInstall,
	}

	cmd.Flags().StringVar(&installDirFlag, "dir", "", "Install directory (default: platform-specific)")

	return cmd
}

func runToolInstall(cmd *cobra.Command, _ []string) error {
	_, cfg, cleanup, err := newResolver()
	if err != nil {
		return err
	}
	defer cleanup()

	dir := installDirFlag
	if dir == "" {
		dir = cfg.Tool.InstallDir
	}

	path, err := tool.Install(cmd.Context(), dir, func(fraction float64) {
		if !outputJSON {
			cmd.Printf("\rdownloading... %3.0f%%", fraction*100)
		}
	})
	if !outputJSON {
		cmd.Println()
	}
	if err != nil {
		return err
	}

	if outputJSON {
		data, jerr := json.MarshalIndent(map[string]string{"path": path}, "", "  ")
		if jerr != nil {
			return fmt.Errorf("encode json: %w", jerr)
		}
		cmd.Println(string(data))
	} else {
		cmd.Printf("%s %s\n", labelStyle.Render("Installed:"), path)
	}
	return nil
}

func newToolUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Run the binary's self-update",
		RunE:  runToolUpdate,
	}
}

func runToolUpdate(cmd *cobra.Command, _ []string) error {
	r, _, cleanup, err := newResolver()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := r.UpdateTool(cmd.Context(), nil); err != nil {
		return err
	}

	version, err := r.ToolVersion(cmd.Context())
	if err != nil {
		return err
	}

	if outputJSON {
		data, jerr := json.MarshalIndent(map[string]string{"version": version}, "", "  ")
		if jerr != nil {
			return fmt.Errorf("encode json: %w", jerr)
		}
		cmd.Println(string(data))
	} else {
		cmd.Printf("%s %s\n", labelStyle.Render("Version:"), version)
	}
	return nil
}
