// package mattermost defines the bulk-import line format the converter emits.
//
// The import document is newline-delimited JSON: a version line followed by
// one line per record, each an envelope {"type": <kind>, "<kind>": {...}}.
// The kinds and field sets follow the Mattermost bulk import schema.
package mattermost

// Record kind discriminators used in the Line envelope.
const (
	KindVersion       = "version"
	KindTeam          = "team"
	KindChannel       = "channel"
	KindUser          = "user"
	KindEmoji         = "emoji"
	KindPost          = "post"
	KindDirectChannel = "direct_channel"
	KindDirectPost    = "direct_post"
)

// Role strings assigned to imported records.
const (
	RolesChannelUser  = "channel_user"
	RolesChannelAdmin = "channel_admin channel_user"
	RolesTeamUser     = "team_user"
	RolesSystemUser   = "system_user"
	RolesSystemAdmin  = "system_admin system_user"
)

// Team and channel type codes.
const (
	TeamTypeInviteOnly = "I"
	ChannelTypeOpen    = "O"
	ChannelTypePrivate = "P"
)

// Line is the envelope written as one line of the import document. Exactly
// one payload field is set, matching Type; the rest stay nil and are omitted.
type Line struct {
	Type          string         `json:"type"`
	Version       *int           `json:"version,omitempty"`
	Team          *Team          `json:"team,omitempty"`
	Channel       *Channel       `json:"channel,omitempty"`
	User          *User          `json:"user,omitempty"`
	Emoji         *Emoji         `json:"emoji,omitempty"`
	Post          *Post          `json:"post,omitempty"`
	DirectChannel *DirectChannel `json:"direct_channel,omitempty"`
	DirectPost    *DirectPost    `json:"direct_post,omitempty"`
}

// Team is the synthetic workspace every imported record belongs to.
type Team struct {
	Name            string `json:"name"`
	DisplayName     string `json:"display_name"`
	Type            string `json:"type"`
	Description     string `json:"description"`
	AllowOpenInvite bool   `json:"allow_open_invite"`
}

// Channel is an imported room.
type Channel struct {
	Team        string `json:"team"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Header      string `json:"header"`
	Purpose     string `json:"purpose"`
}

// User is an imported account with its team and channel memberships embedded.
type User struct {
	ProfileImage string     `json:"profile_image"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Nickname     string     `json:"nickname"`
	Position     string     `json:"position"`
	Roles        string     `json:"roles"`
	Teams        []UserTeam `json:"teams"`
}

// UserTeam is one team membership embedded in a User record.
type UserTeam struct {
	Name     string        `json:"name"`
	Roles    string        `json:"roles"`
	Channels []UserChannel `json:"channels"`
}

// UserChannel is one channel membership embedded in a UserTeam.
type UserChannel struct {
	Name  string `json:"name"`
	Roles string `json:"roles"`
}

// Emoji is an imported custom emoji pointing at its copied image file.
type Emoji struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Attachment references a copied media file, relative to the output directory.
type Attachment struct {
	Path string `json:"path"`
}

// Post is an imported channel message.
type Post struct {
	Team        string       `json:"team"`
	Channel     string       `json:"channel"`
	User        string       `json:"user"`
	Message     string       `json:"message"`
	CreateAt    int64        `json:"create_at"`
	Attachments []Attachment `json:"attachments"`
}

// DirectChannel is a deduplicated one-on-one channel. Members are ordered by
// ascending source user id.
type DirectChannel struct {
	Members []string `json:"members"`
}

// DirectPost is an imported private message. ChannelMembers lists sender
// first, unlike the parent DirectChannel's id-ordered member list.
type DirectPost struct {
	ChannelMembers []string     `json:"channel_members"`
	User           string       `json:"user"`
	Message        string       `json:"message"`
	CreateAt       int64        `json:"create_at"`
	Attachments    []Attachment `json:"attachments"`
}

// VersionLine builds the leading line of the import document.
func VersionLine() Line {
	v := 1
	return Line{Type: KindVersion, Version: &v}
}

// TeamLine wraps a Team record in its envelope.
func TeamLine(t Team) Line {
	return Line{Type: KindTeam, Team: &t}
}

// ChannelLine wraps a Channel record in its envelope.
func ChannelLine(c Channel) Line {
	return Line{Type: KindChannel, Channel: &c}
}

// UserLine wraps a User record in its envelope.
func UserLine(u User) Line {
	return Line{Type: KindUser, User: &u}
}

// EmojiLine wraps an Emoji record in its envelope.
func EmojiLine(e Emoji) Line {
	return Line{Type: KindEmoji, Emoji: &e}
}

// PostLine wraps a Post record in its envelope.
func PostLine(p Post) Line {
	return Line{Type: KindPost, Post: &p}
}

// DirectChannelLine wraps a DirectChannel record in its envelope.
func DirectChannelLine(dc DirectChannel) Line {
	return Line{Type: KindDirectChannel, DirectChannel: &dc}
}

// DirectPostLine wraps a DirectPost record in its envelope.
func DirectPostLine(dp DirectPost) Line {
	return Line{Type: KindDirectPost, DirectPost: &dp}
}
