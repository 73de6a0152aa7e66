package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/jfmyers9/jellywrapped/internal/recap"
	"github.com/rivo/tview"
)

// App is the TUI application for browsing wrapped reports, one user
// per page.
type App struct {
	app    *tview.Application
	card   *tview.TextView
	status *tview.TextView

	reports []recap.UserReport
	index   int
}

// New creates a viewer over the given reports. Reports are shown in
// the order provided.
func New(reports []recap.UserReport) *App {
	a := &App{
		app:     tview.NewApplication(),
		reports: reports,
	}
	a.setupUI()
	return a
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	a.card = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.card.SetBorder(true).
		SetTitle(" Jellyfin Wrapped ").
		SetTitleAlign(tview.AlignLeft)

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]q:quit  ←/h:previous user  →/l:next user[-]")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.card, 0, 1, false).
		AddItem(a.status, 1, 1, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(flex, true)

	a.renderCurrent()
}

// handleKeyEvent processes keyboard input
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		a.previous()
		return nil
	case tcell.KeyRight:
		a.next()
		return nil
	}

	switch event.Rune() {
	case 'q', 'Q':
		a.app.Stop()
		return nil
	case 'h':
		a.previous()
		return nil
	case 'l':
		a.next()
		return nil
	}
	return event
}

func (a *App) previous() {
	if len(a.reports) == 0 {
		return
	}
	a.index = (a.index - 1 + len(a.reports)) % len(a.reports)
	a.renderCurrent()
}

func (a *App) next() {
	if len(a.reports) == 0 {
		return
	}
	a.index = (a.index + 1) % len(a.reports)
	a.renderCurrent()
}

// renderCurrent draws the current user's card
func (a *App) renderCurrent() {
	if len(a.reports) == 0 {
		a.card.SetText("[yellow]No users in the latest snapshot[-]")
		return
	}

	report := a.reports[a.index]

	var b strings.Builder
	fmt.Fprintf(&b, "\n[::b]%s[::-]\n", tview.Escape(report.UserName))
	fmt.Fprintf(&b, "[gray]%d of %d users[-]\n\n", a.index+1, len(a.reports))
	fmt.Fprintf(&b, "Total plays: [green]%d[-]\n", report.TotalPlays)
	fmt.Fprintf(&b, "Minutes listened: [green]%.0f[-]\n\n", report.MinutesListened)

	if report.TotalPlays == 0 {
		b.WriteString("[yellow]No plays recorded.[-]\n")
		a.card.SetText(b.String())
		return
	}

	b.WriteString("[::u]Top Songs[::-]\n")
	for i, song := range report.TopSongs {
		fmt.Fprintf(&b, "%d. %s [gray](%d plays)[-]\n", i+1, tview.Escape(song.Name), song.Plays)
	}

	b.WriteString("\n[::u]Top Artists[::-]\n")
	for i, artist := range report.TopArtists {
		fmt.Fprintf(&b, "%d. %s [gray](%d plays)[-]\n", i+1, tview.Escape(artist.Name), artist.Plays)
	}

	a.card.SetText(b.String())
}

// Run starts the viewer and blocks until the user quits.
func (a *App) Run() error {
	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
