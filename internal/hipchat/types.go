// package hipchat models the descriptor files of a HipChat export archive.
//
// Every catalog wraps its records in a single-key object (Room, User,
// UserMessage, PrivateUserMessage); the types here mirror that layout so
// decoding stays a plain unmarshal.
package hipchat

// Catalog entry names inside the export archive.
const (
	EmoticonsFile = "emoticons.json"
	RoomsFile     = "rooms.json"
	UsersFile     = "users.json"
)

// Emoticon is one custom emoji from the emoticons catalog.
// Path has the shape <emoticonID>/<filename>.
type Emoticon struct {
	Shortcut string `json:"shortcut"`
	Path     string `json:"path"`
}

// Room is one room from the rooms catalog.
type Room struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	Topic         string `json:"topic"`
	Privacy       string `json:"privacy"`
	IsDeleted     bool   `json:"is_deleted"`
	IsArchived    bool   `json:"is_archived"`
	Members       []int  `json:"members"`
	Admins        []int  `json:"room_admins"`
}

// Public reports whether the room maps to an open channel.
// Anything other than the literal "public" is treated as private.
func (r Room) Public() bool {
	return r.Privacy == "public"
}

// User is one account from the users catalog.
// Avatar, when present, is a 4-segment path whose 3rd and 4th segments are
// <userID>/<filename>.
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MentionName string `json:"mention_name"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	Avatar      string `json:"avatar"`
	AccountType string `json:"account_type"`
	IsDeleted   bool   `json:"is_deleted"`
}

// Guest reports whether this is a guest account. Guests are never migrated.
func (u User) Guest() bool {
	return u.AccountType == "guest"
}

// Admin reports whether the account holds the system admin role.
func (u User) Admin() bool {
	return u.AccountType == "admin"
}

// MessageRef identifies the sender or receiver of a message.
type MessageRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Attachment is a file attached to a message.
// Path has the shape <directoryID>/<filename>.
type Attachment struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// UserMessage is one room message from rooms/<id>/history.json.
type UserMessage struct {
	ID         string      `json:"id"`
	Sender     MessageRef  `json:"sender"`
	Message    string      `json:"message"`
	Timestamp  string      `json:"timestamp"`
	Deleted    bool        `json:"deleted"`
	Attachment *Attachment `json:"attachment"`
}

// PrivateUserMessage is one direct message from users/<id>/history.json.
type PrivateUserMessage struct {
	ID         string      `json:"id"`
	Sender     MessageRef  `json:"sender"`
	Receiver   MessageRef  `json:"receiver"`
	Message    string      `json:"message"`
	Timestamp  string      `json:"timestamp"`
	Deleted    bool        `json:"deleted"`
	Attachment *Attachment `json:"attachment"`
}
