package models

// FriendshipStatus is the state of the relation between the current user and
// another user.
type FriendshipStatus string

const (
	FriendshipPending   FriendshipStatus = "PENDING"
	FriendshipConfirmed FriendshipStatus = "CONFIRMED"
	FriendshipNotAdded  FriendshipStatus = "NOT-ADDED"
)

// Friendship describes another user from the current user's perspective.
// ProfilePic is the image id (or inline data) of the other user's avatar.
type Friendship struct {
	ID         int64            `json:"id"`
	Username   string           `json:"username"`
	Status     FriendshipStatus `json:"status"`
	ProfilePic string           `json:"profilePic,omitempty"`
}
