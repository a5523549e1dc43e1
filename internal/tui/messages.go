package tui

import (
	"github.com/MKhiriev/doin-client/internal/guard"
	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Route names known to the router.
const (
	routeMenu     = "menu"
	routeLogin    = guard.RouteLogin
	routeRegister = "register"
	routeForgot   = "forgot"
	routeHome     = guard.RouteHome
	routeDiscover = "discover"
	routeFriends  = "friends"
	routeProfile  = "profile"
	routeEvent    = "event"
)

// NavigateTo asks the router to show Page. Payload, when set, is delivered
// to the page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type navigationResolved struct {
	to       NavigateTo
	decision guard.Decision
	hops     int
}

type bannerChangedMsg struct{}

// RegisterSuccessNotice is shown on the menu after a successful sign-up.
type RegisterSuccessNotice struct {
	Username string
}

// PasswordResetNotice is shown on the menu after a password reset.
type PasswordResetNotice struct {
	Username string
}

// OpenEvent is the payload of a navigation to the event screen.
type OpenEvent struct {
	ID   int64
	Back string
}

type loginResult struct {
	profile models.UserProfile
	err     error
}

type formResult struct {
	username string
	err      error
}

type eventsLoadedMsg struct {
	source  *service.Pager[models.Event]
	items   []models.Event
	hasMore bool
	err     error
}

type upcomingLoadedMsg struct {
	items []models.Event
	err   error
}

type eventLoadedMsg struct {
	event models.Event
	err   error
}

type actionDoneMsg struct {
	status string
	err    error
}

type friendsLoadedMsg struct {
	friends  []models.Friendship
	requests []models.Friendship
	err      error
}

type lookupDoneMsg struct {
	results []models.Friendship
	err     error
}

type logoutDoneMsg struct {
	err error
}

type uploadEventMsg struct {
	progress *models.UploadProgress
	err      error
	done     bool
	next     <-chan uploadEventMsg
}
