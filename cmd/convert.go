package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"hipchat2mattermost/internal/archive"
	"hipchat2mattermost/internal/convert"
	"hipchat2mattermost/internal/export"
	"hipchat2mattermost/internal/shared"
	"hipchat2mattermost/internal/ui"
)

// Convert runs the full archive → bulk import pipeline.
func (r *Runner) Convert(ctx context.Context, cmd *cli.Command) error {
	archivePath := cmd.StringArg("archive")
	outputDir := cmd.StringArg("output")
	if archivePath == "" || outputDir == "" {
		return fmt.Errorf("%w: convert <archive> <output>", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := convert.Options{
		TeamName:            config.Team.Name,
		TeamDisplayName:     config.Team.DisplayName,
		SkipDeletedMessages: config.Convert.SkipDeletedMessages,
		OnMissingAuthor:     config.Convert.OnMissingAuthor,
	}
	if v := cmd.String("team-name"); v != "" {
		opts.TeamName = v
	}
	if v := cmd.String("team-display-name"); v != "" {
		opts.TeamDisplayName = v
	}
	if cmd.Bool("skip-deleted-messages") {
		opts.SkipDeletedMessages = true
	}
	if v := cmd.String("on-missing-author"); v != "" {
		if v != shared.MissingAuthorFail && v != shared.MissingAuthorSkip {
			return fmt.Errorf("%w: --on-missing-author must be fail or skip", shared.ErrInvalidFlag)
		}
		opts.OnMissingAuthor = v
	}

	r.logger.Info("opening archive", "path", archivePath)
	src, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	defer src.Close()

	writer, err := export.New(outputDir, config.Output.File)
	if err != nil {
		return err
	}
	defer writer.Close()

	// Drain progress updates into plain status lines
	progressCh := make(chan convert.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		var lastPhase convert.Phase = -1
		for update := range progressCh {
			if update.Phase != lastPhase {
				lastPhase = update.Phase
				r.writePlain("==> %s\n", update.Phase)
			}
		}
	}()

	engine := convert.New(src, writer, r.logger, opts)
	result, err := engine.Run(ctx, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if !cmd.Bool("quiet") {
		r.writePlain("\n%s", ui.RenderSummary(result))
	}
	return nil
}
