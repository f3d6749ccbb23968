// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// convertCommand runs the archive → bulk import conversion
func convertCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert an export archive into a bulk import directory",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "archive",
				UsageText: "Path to the HipChat export tar archive",
			},
			&cli.StringArg{
				Name:      "output",
				UsageText: "Output directory for the import document and media",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "team-name",
				Usage: "Override the imported team name",
			},
			&cli.StringFlag{
				Name:  "team-display-name",
				Usage: "Override the imported team display name",
			},
			&cli.BoolFlag{
				Name:  "skip-deleted-messages",
				Usage: "Skip messages flagged deleted instead of importing them",
			},
			&cli.StringFlag{
				Name:  "on-missing-author",
				Usage: "Policy for messages from unmigrated authors: fail or skip",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress the run summary",
			},
		},
		Action: r.Convert,
	}
}

// inspectCommand prints archive catalog statistics for debugging
func inspectCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Print catalog counts and identifiers of an export archive as JSON",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "archive",
				UsageText: "Path to the HipChat export tar archive",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Inspect,
	}
}

// initCommand writes a starter configuration file
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a config.toml with the default settings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.InitConfig,
	}
}
