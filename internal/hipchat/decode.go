package hipchat

import (
	"encoding/json"
	"fmt"

	"hipchat2mattermost/internal/archive"
)

// RoomHistoryPath returns the archive entry name of a room's message history.
func RoomHistoryPath(roomID int) string {
	return fmt.Sprintf("rooms/%d/history.json", roomID)
}

// UserHistoryPath returns the archive entry name of a user's private-message history.
func UserHistoryPath(userID int) string {
	return fmt.Sprintf("users/%d/history.json", userID)
}

// Emoticons reads and decodes the emoticons catalog.
func Emoticons(a *archive.Archive) ([]Emoticon, error) {
	data, err := a.ReadEntry(EmoticonsFile)
	if err != nil {
		return nil, err
	}

	var catalog struct {
		Emoticons []Emoticon `json:"Emoticons"`
	}
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", EmoticonsFile, err)
	}
	return catalog.Emoticons, nil
}

// Rooms reads and decodes the rooms catalog.
func Rooms(a *archive.Archive) ([]Room, error) {
	data, err := a.ReadEntry(RoomsFile)
	if err != nil {
		return nil, err
	}

	var entries []struct {
		Room Room `json:"Room"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", RoomsFile, err)
	}

	rooms := make([]Room, 0, len(entries))
	for _, e := range entries {
		rooms = append(rooms, e.Room)
	}
	return rooms, nil
}

// Users reads and decodes the users catalog.
func Users(a *archive.Archive) ([]User, error) {
	data, err := a.ReadEntry(UsersFile)
	if err != nil {
		return nil, err
	}

	var entries []struct {
		User User `json:"User"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", UsersFile, err)
	}

	users := make([]User, 0, len(entries))
	for _, e := range entries {
		users = append(users, e.User)
	}
	return users, nil
}

// RoomHistory reads and decodes a room's message history.
// History files also carry notification and topic-change entries; anything
// that is not a UserMessage is dropped here.
func RoomHistory(a *archive.Archive, roomID int) ([]UserMessage, error) {
	name := RoomHistoryPath(roomID)
	data, err := a.ReadEntry(name)
	if err != nil {
		return nil, err
	}

	var entries []struct {
		UserMessage *UserMessage `json:"UserMessage"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	var msgs []UserMessage
	for _, e := range entries {
		if e.UserMessage != nil {
			msgs = append(msgs, *e.UserMessage)
		}
	}
	return msgs, nil
}

// UserHistory reads and decodes a user's private-message history.
func UserHistory(a *archive.Archive, userID int) ([]PrivateUserMessage, error) {
	name := UserHistoryPath(userID)
	data, err := a.ReadEntry(name)
	if err != nil {
		return nil, err
	}

	var entries []struct {
		PrivateUserMessage *PrivateUserMessage `json:"PrivateUserMessage"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	var msgs []PrivateUserMessage
	for _, e := range entries {
		if e.PrivateUserMessage != nil {
			msgs = append(msgs, *e.PrivateUserMessage)
		}
	}
	return msgs, nil
}
