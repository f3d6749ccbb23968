package convert

// RoomIndex is built while iterating the rooms catalog and consumed by the
// user and history stages. Deleted rooms never enter it.
type RoomIndex struct {
	IDs     []int            // room ids in catalog order
	Names   map[int]string   // room id → canonical channel name
	Members map[int][]string // user id → channel names the user is a member of
	Admins  map[int][]string // user id → channel names the user administers
}

// NewRoomIndex returns an empty RoomIndex.
func NewRoomIndex() *RoomIndex {
	return &RoomIndex{
		Names:   map[int]string{},
		Members: map[int][]string{},
		Admins:  map[int][]string{},
	}
}

// Add records a room's canonical name and folds its member and admin lists
// into the membership tables.
func (ri *RoomIndex) Add(roomID int, canonicalName string, members, admins []int) {
	ri.IDs = append(ri.IDs, roomID)
	ri.Names[roomID] = canonicalName
	for _, id := range members {
		ri.Members[id] = append(ri.Members[id], canonicalName)
	}
	for _, id := range admins {
		ri.Admins[id] = append(ri.Admins[id], canonicalName)
	}
}

// UserIndex maps accepted user ids to usernames. Guests and deleted
// accounts never enter it, so a lookup miss means the author was not
// migrated. Names are stored lowercased so authorship resolution always
// agrees with the emitted username.
type UserIndex struct {
	IDs   []int          // user ids in catalog order
	Names map[int]string // user id → lowercased mention name
}

// NewUserIndex returns an empty UserIndex.
func NewUserIndex() *UserIndex {
	return &UserIndex{Names: map[int]string{}}
}

// Add records an accepted user's username.
func (ui *UserIndex) Add(userID int, username string) {
	ui.IDs = append(ui.IDs, userID)
	ui.Names[userID] = username
}
