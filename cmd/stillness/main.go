package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/stillness/internal/cli"
	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/errors"
	"github.com/julianstephens/stillness/internal/logger"
	"github.com/julianstephens/stillness/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Init     cli.InitCmd     `cmd:"" help:"Initialize stillness storage."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show progress statistics."`
	Insights cli.InsightsCmd `cmd:"" help:"List captured insights."`
	Export   cli.ExportCmd   `cmd:"" help:"Export data as JSON, CSV, or an insights report."`
	Prefs    cli.PrefsCmd    `cmd:"" help:"Show or change preferences."`
	Reset    cli.ResetCmd    `cmd:"" help:"Reset all progress."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the state file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the state file from a backup."`
	} `cmd:"" help:"Manage state backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Show storage health and paths."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Boredom tolerance trainer / digital stillness companion"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Storage backend is chosen by extension: .json files use the JSON
	// store, everything else SQLite.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
