package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/doin-client/internal/guard"
	"github.com/MKhiriev/doin-client/internal/notify"
	"github.com/MKhiriev/doin-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxRedirectHops is how many guard redirects one navigation may follow.
const maxRedirectHops = 1

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global hotkeys (quit, version, banner dismiss)
// 3) runs the route guard before every NavigateTo
// 4) renders the notification banner above the active page
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	pages   map[string]tea.Model
	guards  map[string]guard.Guard
	start   string
	current string

	banner        *notify.Banner
	bannerChanged <-chan struct{}

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers pages and their guards and opens startPage once
// its guard allows it. Pages without a guard are always reachable.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, guards map[string]guard.Guard, startPage string) RootModel {
	return RootModel{
		ctx:    ctx,
		pages:  pages,
		guards: guards,
		start:  startPage,
	}
}

// WithBanner renders b above every page. changed must receive a value
// whenever the banner message changes.
func (r RootModel) WithBanner(b *notify.Banner, changed <-chan struct{}) RootModel {
	r.banner = b
	r.bannerChanged = changed
	return r
}

func (r RootModel) WithBuildInfo(info models.AppBuildInfo) RootModel {
	r.buildInfo = info
	return r
}

// Current returns the name of the active page.
func (r RootModel) Current() string {
	return r.current
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.waitForBanner(), r.resolve(NavigateTo{Page: r.start}, 0))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.dismiss):
			if r.banner != nil {
				r.banner.Dismiss()
			}
			return r, nil
		case key.Matches(keyMsg, keys.version) && r.current == routeMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case bannerChangedMsg:
		return r, r.waitForBanner()
	case NavigateTo:
		return r, r.resolve(msg, 0)
	case navigationResolved:
		return r.applyNavigation(msg)
	}

	page := r.pages[r.current]
	if page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	var b strings.Builder

	if r.banner != nil {
		if message := r.banner.Message(); message != "" {
			b.WriteString(bannerStyle.Render(message + "   ctrl+x: dismiss"))
			b.WriteString("\n")
		}
	}

	switch page := r.pages[r.current]; {
	case r.showBuildInfo:
		b.WriteString(renderBuildInfoWindow(r.buildInfo))
	case page == nil:
		b.WriteString(renderPage("DOIN", "Loading...", ""))
	default:
		b.WriteString(page.View())
	}

	return appStyle.Render(b.String())
}

// resolve runs the guard of nav.Page as a command; guards may call the
// backend.
func (r RootModel) resolve(nav NavigateTo, hops int) tea.Cmd {
	if _, exists := r.pages[nav.Page]; !exists {
		return nil
	}

	g, guarded := r.guards[nav.Page]
	if !guarded {
		return func() tea.Msg {
			return navigationResolved{to: nav, decision: guard.Allow(), hops: hops}
		}
	}

	ctx := r.ctx
	from := r.current
	return func() tea.Msg {
		decision := g.CanActivate(ctx, guard.Navigation{From: from, To: nav.Page})
		return navigationResolved{to: nav, decision: decision, hops: hops}
	}
}

func (r RootModel) applyNavigation(msg navigationResolved) (tea.Model, tea.Cmd) {
	if msg.decision.Allowed {
		return r.activate(msg.to)
	}

	redirect := msg.decision.Redirect
	if redirect == "" || redirect == r.current {
		return r, nil
	}
	if msg.hops >= maxRedirectHops {
		// nothing is shown yet, so land on the redirect target as is
		if r.current == "" {
			return r.activate(NavigateTo{Page: redirect})
		}
		return r, nil
	}

	return r, r.resolve(NavigateTo{Page: redirect}, msg.hops+1)
}

func (r RootModel) activate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) waitForBanner() tea.Cmd {
	if r.bannerChanged == nil {
		return nil
	}
	changed := r.bannerChanged
	return func() tea.Msg {
		if _, ok := <-changed; !ok {
			return nil
		}
		return bannerChangedMsg{}
	}
}
