// package convert implements the HipChat → Mattermost transformation
// pipeline.
//
// The core abstraction is Engine, which reads the archive's descriptors in a
// fixed order (emoticons, rooms, users, room histories, private-message
// histories), builds the cross-reference tables each later stage depends on,
// and emits normalized records through the export writer. The pipeline is
// strictly sequential: every stage fully consumes its input before the next
// one runs. Operations emit progress updates via channels for non-blocking
// status reporting to the CLI layer.
package convert

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"hipchat2mattermost/internal/archive"
	"hipchat2mattermost/internal/export"
	"hipchat2mattermost/internal/mattermost"
	"hipchat2mattermost/internal/shared"
)

// Options contains conversion policy knobs, usually filled from the TOML
// config and CLI flags.
type Options struct {
	TeamName            string // Name of the synthetic team (default "hipchat")
	TeamDisplayName     string // Display name of the synthetic team (default "Hipchat")
	SkipDeletedMessages bool   // Skip messages flagged deleted instead of importing them
	OnMissingAuthor     string // shared.MissingAuthorFail or shared.MissingAuthorSkip
}

// Result summarizes a completed conversion run.
type Result struct {
	RunID        string // Run identifier, also present in log output
	DocumentPath string // Path of the written import document

	// Emitted record counts per kind
	Channels       int
	Users          int
	Emojis         int
	Posts          int
	DirectChannels int
	DirectPosts    int

	// Skipped source records
	SkippedRooms    int // rooms flagged deleted
	ArchivedRooms   int // rooms imported despite the archived flag
	SkippedUsers    int // guest and deleted accounts
	SkippedMessages int // messages flagged deleted, only under SkipDeletedMessages
	SkippedAuthors  int // messages dropped under the skip missing-author policy
}

// Engine runs the transformation pipeline over one archive.
// It owns all lookup tables for the duration of a run and holds no state
// after Run returns.
type Engine struct {
	archive *archive.Archive
	writer  *export.Writer
	logger  *log.Logger
	opts    Options
}

// New creates an Engine. Empty team fields fall back to the defaults of the
// embedded example config; an empty missing-author policy falls back to fail.
func New(a *archive.Archive, w *export.Writer, logger *log.Logger, opts Options) *Engine {
	if opts.TeamName == "" {
		opts.TeamName = shared.DefaultConfig().Team.Name
	}
	if opts.TeamDisplayName == "" {
		opts.TeamDisplayName = shared.DefaultConfig().Team.DisplayName
	}
	if opts.OnMissingAuthor == "" {
		opts.OnMissingAuthor = shared.MissingAuthorFail
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Engine{
		archive: a,
		writer:  w,
		logger:  logger,
		opts:    opts,
	}
}

// Run executes the full pipeline. Any archive, parse or write failure aborts
// the run; informational skips (deleted rooms, guests, archived rooms) are
// logged and counted in the Result.
func (e *Engine) Run(ctx context.Context, progress chan<- ProgressUpdate) (*Result, error) {
	res := &Result{
		RunID:        shared.NewRunID(),
		DocumentPath: e.writer.DocumentPath(),
	}
	logger := shared.WithLogger(e.logger, "run", res.RunID)

	team := mattermost.Team{
		Name:            e.opts.TeamName,
		DisplayName:     e.opts.TeamDisplayName,
		Type:            mattermost.TeamTypeInviteOnly,
		Description:     "",
		AllowOpenInvite: false,
	}

	if err := e.emitTeam(progress, team); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.convertEmojis(logger, progress, res); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rooms, err := e.convertRooms(logger, progress, team, res)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	users, err := e.convertUsers(logger, progress, team, rooms, res)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.convertPosts(logger, progress, team, rooms, users, res); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.convertDirectMessages(logger, progress, users, res); err != nil {
		return nil, err
	}

	logger.Info("conversion complete",
		"channels", res.Channels,
		"users", res.Users,
		"posts", res.Posts,
		"direct_posts", res.DirectPosts,
	)
	return res, nil
}

func (e *Engine) emitTeam(progress chan<- ProgressUpdate, team mattermost.Team) error {
	e.sendProgress(progress, stageUpdate(EmitTeam, 1, 1, "importing into team %s", team.Name))
	if err := e.writer.WriteLine(mattermost.TeamLine(team)); err != nil {
		return fmt.Errorf("failed to emit team: %w", err)
	}
	return nil
}
