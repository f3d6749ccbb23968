package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"hipchat2mattermost/internal/hipchat"
	"hipchat2mattermost/internal/mattermost"
	"hipchat2mattermost/internal/shared"
)

// convertEmojis copies every emoticon image and emits an Emoji record per
// catalog entry.
func (e *Engine) convertEmojis(logger *log.Logger, progress chan<- ProgressUpdate, res *Result) error {
	emoticons, err := hipchat.Emoticons(e.archive)
	if err != nil {
		return err
	}

	for i, emo := range emoticons {
		e.sendProgress(progress, stageUpdate(ConvertEmojis, i+1, len(emoticons), "emoji %s", emo.Shortcut))

		image, err := e.writer.CopyEmojiImage(e.archive, emo.Path)
		if err != nil {
			return fmt.Errorf("failed to copy emoji %s: %w", emo.Shortcut, err)
		}
		if err := e.writer.WriteLine(mattermost.EmojiLine(mattermost.Emoji{
			Name:  emo.Shortcut,
			Image: image,
		})); err != nil {
			return err
		}
		res.Emojis++
	}

	logger.Debug("emoji stage done", "emitted", res.Emojis)
	return nil
}

// convertRooms emits a Channel per live room and builds the RoomIndex. Rooms
// flagged deleted are skipped entirely; archived rooms are imported as
// non-archived with a warning.
func (e *Engine) convertRooms(logger *log.Logger, progress chan<- ProgressUpdate, team mattermost.Team, res *Result) (*RoomIndex, error) {
	rooms, err := hipchat.Rooms(e.archive)
	if err != nil {
		return nil, err
	}

	index := NewRoomIndex()
	for i, room := range rooms {
		e.sendProgress(progress, stageUpdate(ConvertRooms, i+1, len(rooms), "room %s", room.Name))

		if room.IsDeleted {
			logger.Info("deleted room not imported", "room", room.Name)
			res.SkippedRooms++
			continue
		}
		if room.IsArchived {
			logger.Warn("archived room imported as non-archived", "room", room.Name)
			res.ArchivedRooms++
		}

		channelType := mattermost.ChannelTypePrivate
		if room.Public() {
			channelType = mattermost.ChannelTypeOpen
		}
		if err := e.writer.WriteLine(mattermost.ChannelLine(mattermost.Channel{
			Team:        team.Name,
			Name:        room.CanonicalName,
			DisplayName: room.Name,
			Type:        channelType,
			Header:      room.Topic,
			Purpose:     "",
		})); err != nil {
			return nil, err
		}
		res.Channels++

		index.Add(room.ID, room.CanonicalName, room.Members, room.Admins)
	}

	return index, nil
}

// convertUsers emits a User per accepted account and builds the UserIndex.
// Guests and deleted accounts are skipped and never indexed. A user present
// in both a room's member and admin lists gets two membership entries for
// that channel, one per role string.
func (e *Engine) convertUsers(logger *log.Logger, progress chan<- ProgressUpdate, team mattermost.Team, rooms *RoomIndex, res *Result) (*UserIndex, error) {
	users, err := hipchat.Users(e.archive)
	if err != nil {
		return nil, err
	}

	index := NewUserIndex()
	for i, user := range users {
		e.sendProgress(progress, stageUpdate(ConvertUsers, i+1, len(users), "user %s", user.MentionName))

		if user.Guest() {
			logger.Info("guest account not imported", "user", user.Name)
			res.SkippedUsers++
			continue
		}
		if user.IsDeleted {
			logger.Info("deleted account not imported", "user", user.Name)
			res.SkippedUsers++
			continue
		}

		var channels []mattermost.UserChannel
		for _, name := range rooms.Members[user.ID] {
			channels = append(channels, mattermost.UserChannel{
				Name:  name,
				Roles: mattermost.RolesChannelUser,
			})
		}
		for _, name := range rooms.Admins[user.ID] {
			channels = append(channels, mattermost.UserChannel{
				Name:  name,
				Roles: mattermost.RolesChannelAdmin,
			})
		}

		profileImage := ""
		if user.Avatar != "" {
			if profileImage, err = e.writer.CopyUserAvatar(e.archive, user.Avatar); err != nil {
				return nil, fmt.Errorf("failed to copy avatar for %s: %w", user.MentionName, err)
			}
		}

		roles := mattermost.RolesSystemUser
		if user.Admin() {
			roles = mattermost.RolesSystemAdmin
		}

		username := strings.ToLower(user.MentionName)
		if err := e.writer.WriteLine(mattermost.UserLine(mattermost.User{
			ProfileImage: profileImage,
			Username:     username,
			Email:        user.Email,
			Nickname:     user.Name,
			Position:     user.Title,
			Roles:        roles,
			Teams: []mattermost.UserTeam{{
				Name:     team.Name,
				Roles:    mattermost.RolesTeamUser,
				Channels: channels,
			}},
		})); err != nil {
			return nil, err
		}
		res.Users++

		index.Add(user.ID, username)
	}

	return index, nil
}

// convertPosts reads every indexed room's history and emits a Post per
// message. Deleted rooms never reach this stage since they were never
// indexed.
func (e *Engine) convertPosts(logger *log.Logger, progress chan<- ProgressUpdate, team mattermost.Team, rooms *RoomIndex, users *UserIndex, res *Result) error {
	for i, roomID := range rooms.IDs {
		channelName := rooms.Names[roomID]
		e.sendProgress(progress, stageUpdate(ConvertPosts, i+1, len(rooms.IDs), "history of %s", channelName))

		msgs, err := hipchat.RoomHistory(e.archive, roomID)
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			if msg.Deleted {
				logger.Info("message flagged deleted", "message", msg.ID, "channel", channelName)
				if e.opts.SkipDeletedMessages {
					res.SkippedMessages++
					continue
				}
			}

			username, ok := e.resolveAuthor(logger, users, msg.Sender.ID, msg.ID, res)
			if !ok {
				if e.opts.OnMissingAuthor == shared.MissingAuthorSkip {
					continue
				}
				return fmt.Errorf("%w: sender %d of message %s in %s",
					shared.ErrUnknownAuthor, msg.Sender.ID, msg.ID, channelName)
			}

			createAt, err := hipchat.ParseTimestamp(msg.Timestamp)
			if err != nil {
				return fmt.Errorf("message %s: %w", msg.ID, err)
			}

			attachments, err := e.copyAttachment(msg.Attachment)
			if err != nil {
				return fmt.Errorf("message %s: %w", msg.ID, err)
			}

			if err := e.writer.WriteLine(mattermost.PostLine(mattermost.Post{
				Team:        team.Name,
				Channel:     channelName,
				User:        username,
				Message:     msg.Message,
				CreateAt:    createAt,
				Attachments: attachments,
			})); err != nil {
				return err
			}
			res.Posts++
		}
	}
	return nil
}

// convertDirectMessages performs the two passes over every indexed user's
// private-message history: first deduplicating user pairs and emitting one
// DirectChannel per pair, then re-reading the histories and emitting the
// DirectPost records. The channel pass must fully complete before any post
// is emitted so no post ever precedes its parent channel in the document.
func (e *Engine) convertDirectMessages(logger *log.Logger, progress chan<- ProgressUpdate, users *UserIndex, res *Result) error {
	type pair struct{ low, high int }
	var pairs []pair
	seen := map[string]struct{}{}

	for i, userID := range users.IDs {
		e.sendProgress(progress, stageUpdate(DiscoverDirectChannels, i+1, len(users.IDs), "scanning messages of %s", users.Names[userID]))

		// Users who never exchanged private messages have no history file.
		if !e.archive.Has(hipchat.UserHistoryPath(userID)) {
			logger.Debug("no private message history", "user", users.Names[userID])
			continue
		}

		msgs, err := hipchat.UserHistory(e.archive, userID)
		if err != nil {
			return err
		}
		for _, msg := range msgs {
			ids := []int{msg.Sender.ID, msg.Receiver.ID}
			sort.Ints(ids)
			key := fmt.Sprintf("%d-%d", ids[0], ids[1])
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, pair{low: ids[0], high: ids[1]})
		}
	}

	for _, p := range pairs {
		low, lowOK := users.Names[p.low]
		high, highOK := users.Names[p.high]
		if !lowOK || !highOK {
			if e.opts.OnMissingAuthor == shared.MissingAuthorSkip {
				logger.Warn("direct channel references unmigrated user, skipped", "pair", fmt.Sprintf("%d-%d", p.low, p.high))
				continue
			}
			return fmt.Errorf("%w: direct channel between %d and %d",
				shared.ErrUnknownAuthor, p.low, p.high)
		}
		if err := e.writer.WriteLine(mattermost.DirectChannelLine(mattermost.DirectChannel{
			Members: []string{low, high},
		})); err != nil {
			return err
		}
		res.DirectChannels++
	}

	for i, userID := range users.IDs {
		e.sendProgress(progress, stageUpdate(ConvertDirectPosts, i+1, len(users.IDs), "direct messages of %s", users.Names[userID]))

		if !e.archive.Has(hipchat.UserHistoryPath(userID)) {
			continue
		}

		msgs, err := hipchat.UserHistory(e.archive, userID)
		if err != nil {
			return err
		}
		for _, msg := range msgs {
			if msg.Deleted {
				logger.Info("direct message flagged deleted", "message", msg.ID)
				if e.opts.SkipDeletedMessages {
					res.SkippedMessages++
					continue
				}
			}

			sender, senderOK := e.resolveAuthor(logger, users, msg.Sender.ID, msg.ID, res)
			receiver, receiverOK := users.Names[msg.Receiver.ID]
			if !senderOK || !receiverOK {
				if e.opts.OnMissingAuthor == shared.MissingAuthorSkip {
					if senderOK {
						logger.Warn("direct message to unmigrated receiver skipped", "message", msg.ID, "receiver", msg.Receiver.ID)
						res.SkippedAuthors++
					}
					continue
				}
				return fmt.Errorf("%w: direct message %s between %d and %d",
					shared.ErrUnknownAuthor, msg.ID, msg.Sender.ID, msg.Receiver.ID)
			}

			createAt, err := hipchat.ParseTimestamp(msg.Timestamp)
			if err != nil {
				return fmt.Errorf("direct message %s: %w", msg.ID, err)
			}

			attachments, err := e.copyAttachment(msg.Attachment)
			if err != nil {
				return fmt.Errorf("direct message %s: %w", msg.ID, err)
			}

			if err := e.writer.WriteLine(mattermost.DirectPostLine(mattermost.DirectPost{
				ChannelMembers: []string{sender, receiver},
				User:           sender,
				Message:        msg.Message,
				CreateAt:       createAt,
				Attachments:    attachments,
			})); err != nil {
				return err
			}
			res.DirectPosts++
		}
	}
	return nil
}

// resolveAuthor looks a sender id up in the accepted-user set. On a miss it
// logs and counts under the skip policy; deciding between skip and hard
// failure is the caller's job.
func (e *Engine) resolveAuthor(logger *log.Logger, users *UserIndex, senderID int, messageID string, res *Result) (string, bool) {
	username, ok := users.Names[senderID]
	if !ok && e.opts.OnMissingAuthor == shared.MissingAuthorSkip {
		logger.Warn("message from unmigrated author skipped", "message", messageID, "sender", senderID)
		res.SkippedAuthors++
	}
	return username, ok
}

// copyAttachment copies a message's attachment, when present, and returns
// the attachment list for the emitted record (empty, never nil, so the JSON
// field stays an array).
func (e *Engine) copyAttachment(att *hipchat.Attachment) ([]mattermost.Attachment, error) {
	attachments := []mattermost.Attachment{}
	if att == nil || att.Path == "" {
		return attachments, nil
	}
	path, err := e.writer.CopyPostAttachment(e.archive, att.Path)
	if err != nil {
		return nil, err
	}
	return append(attachments, mattermost.Attachment{Path: path}), nil
}
