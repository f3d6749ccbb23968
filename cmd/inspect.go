package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"hipchat2mattermost/internal/archive"
	"hipchat2mattermost/internal/hipchat"
	"hipchat2mattermost/internal/shared"
)

// ArchiveReport is the JSON document the inspect command prints.
type ArchiveReport struct {
	Path      string          `json:"path"`
	Emoticons int             `json:"emoticons"`
	Rooms     []RoomReport    `json:"rooms"`
	Users     []AccountReport `json:"users"`
}

// RoomReport summarizes one room catalog entry.
type RoomReport struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Canonical  string `json:"canonical_name"`
	Privacy    string `json:"privacy"`
	Members    int    `json:"members"`
	Admins     int    `json:"admins"`
	IsDeleted  bool   `json:"is_deleted,omitempty"`
	IsArchived bool   `json:"is_archived,omitempty"`
	HasHistory bool   `json:"has_history"`
}

// AccountReport summarizes one user catalog entry.
type AccountReport struct {
	ID          int    `json:"id"`
	MentionName string `json:"mention_name"`
	AccountType string `json:"account_type"`
	IsDeleted   bool   `json:"is_deleted,omitempty"`
	HasHistory  bool   `json:"has_history"`
}

// Inspect reads the three catalogs and prints a report without converting anything.
func (r *Runner) Inspect(ctx context.Context, cmd *cli.Command) error {
	archivePath := cmd.StringArg("archive")
	if archivePath == "" {
		return fmt.Errorf("%w: inspect <archive>", shared.ErrMissingArgument)
	}

	src, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	defer src.Close()

	report := ArchiveReport{Path: archivePath}

	emoticons, err := hipchat.Emoticons(src)
	if err != nil {
		return err
	}
	report.Emoticons = len(emoticons)

	rooms, err := hipchat.Rooms(src)
	if err != nil {
		return err
	}
	for _, room := range rooms {
		report.Rooms = append(report.Rooms, RoomReport{
			ID:         room.ID,
			Name:       room.Name,
			Canonical:  room.CanonicalName,
			Privacy:    room.Privacy,
			Members:    len(room.Members),
			Admins:     len(room.Admins),
			IsDeleted:  room.IsDeleted,
			IsArchived: room.IsArchived,
			HasHistory: src.Has(hipchat.RoomHistoryPath(room.ID)),
		})
	}

	users, err := hipchat.Users(src)
	if err != nil {
		return err
	}
	for _, user := range users {
		report.Users = append(report.Users, AccountReport{
			ID:          user.ID,
			MentionName: user.MentionName,
			AccountType: user.AccountType,
			IsDeleted:   user.IsDeleted,
			HasHistory:  src.Has(hipchat.UserHistoryPath(user.ID)),
		})
	}

	return r.writeJSON(report, cmd.Bool("pretty"))
}

// InitConfig writes config.toml from the embedded example.
func (r *Runner) InitConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", configPath)
	return nil
}
