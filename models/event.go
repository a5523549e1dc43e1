package models

// Visibility controls who can see an event.
type Visibility string

const (
	VisibilityPublic      Visibility = "PUBLIC"
	VisibilityFriendsOnly Visibility = "FRIENDS_ONLY"
	VisibilityPrivate     Visibility = "PRIVATE"
)

// EventType is the category of an event (party, meeting, lunch, ...).
type EventType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Event is the event payload exchanged with the /events endpoints.
type Event struct {
	ID          int64         `json:"id"`
	EventType   EventType     `json:"eventType"`
	Visibility  Visibility    `json:"visibility"`
	Creator     *UserProfile  `json:"creator,omitempty"`
	Location    string        `json:"location"`
	Time        DateTime      `json:"time"`
	Description string        `json:"description"`
	Images      []Image       `json:"images"`
	Joiners     []UserProfile `json:"joiners"`
	CreatedAt   DateTime      `json:"createdAt,omitempty"`
}

// HasJoiner reports whether the user with the given id already joined the
// event.
func (e Event) HasJoiner(userID int64) bool {
	for _, j := range e.Joiners {
		if j.ID == userID {
			return true
		}
	}
	return false
}
