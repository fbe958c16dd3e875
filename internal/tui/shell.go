package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sidereusnuntius/reelapp/internal/domain"
)

// tabs in presentation order, with the titles the app uses.
var tabs = []struct {
	View  domain.View
	Title string
}{
	{domain.ViewHome, "Home"},
	{domain.ViewReels, "Discover Reels"},
	{domain.ViewMyReels, "My Uploads"},
	{domain.ViewUsers, "Discover Users"},
}

type userItem struct {
	account   domain.Account
	following bool
}

func (i userItem) Title() string {
	if i.following {
		return i.account.Username + " ✓"
	}
	return i.account.Username
}

func (i userItem) Description() string { return i.account.Email }
func (i userItem) FilterValue() string { return i.account.Username }

type shellModel struct {
	ctx    context.Context
	shell  *Shell
	styles Styles
	dark   bool

	users     list.Model
	reels     []domain.Reel
	mine      []domain.Reel
	followers []string
	cursor    int

	status   string
	width    int
	height   int
	quitting bool
}

func newShellModel(ctx context.Context, s *Shell, dark bool) (shellModel, error) {
	users := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	users.Title = "Discover Users"
	users.SetShowHelp(false)
	users.SetFilteringEnabled(false)

	m := shellModel{
		ctx:    ctx,
		shell:  s,
		styles: newStyles(dark),
		dark:   dark,
		users:  users,
	}
	if err := m.refresh(); err != nil {
		return shellModel{}, err
	}
	return m, nil
}

// refresh re-reads every projection the shell renders. Commands always refresh
// afterwards, so the screen never shows a stale snapshot.
func (m *shellModel) refresh() error {
	svc := m.shell.service

	current, ok := svc.CurrentAccount()
	if !ok {
		return nil
	}

	accounts, err := svc.Accounts(m.ctx)
	if err != nil {
		return err
	}
	items := []list.Item{}
	for _, a := range accounts {
		if a.ID == current.ID {
			continue
		}
		items = append(items, userItem{
			account:   a,
			following: current.IsFollowing(a.ID),
		})
	}
	m.users.SetItems(items)

	if m.reels, err = svc.Reels(m.ctx, domain.Discover); err != nil {
		return err
	}
	if m.mine, err = svc.Reels(m.ctx, domain.Mine); err != nil {
		return err
	}
	if m.followers, err = svc.FollowerNames(m.ctx); err != nil {
		return err
	}
	return nil
}

func (m shellModel) Init() tea.Cmd {
	return nil
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.users.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "o":
			m.shell.service.Logout()
			// The session transition happens first; the router now resolves to the
			// login view and the auth screen takes over.
			return m, tea.Quit

		case "t":
			m.dark = !m.dark
			m.styles = newStyles(m.dark)
			return m, nil

		case "1", "2", "3", "4":
			i := int(msg.String()[0] - '1')
			if err := m.shell.router.Navigate(tabs[i].View); err != nil {
				m.status = m.styles.Error.Render(err.Error())
			}
			m.cursor = 0
			return m, nil
		}

		switch m.shell.router.Current() {
		case domain.ViewHome:
			return m.updateHome(msg)
		case domain.ViewReels, domain.ViewMyReels:
			return m.updateReels(msg)
		case domain.ViewUsers:
			return m.updateUsers(msg)
		}
	}
	return m, nil
}

func (m shellModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "L":
		m.status = "Like feature is not yet implemented."
	case "C":
		m.status = "Comment feature is not yet implemented."
	case "S":
		m.status = "Share feature is not yet implemented."
	}
	return m, nil
}

func (m shellModel) updateReels(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	reels := m.visibleReels()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(reels)-1 {
			m.cursor++
		}

	case "+", "a":
		clip := fmt.Sprintf("sample clip recorded at %s", time.Now().Format(time.RFC3339Nano))
		if _, err := m.shell.service.UploadReel(m.ctx, []byte(clip)); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.cursor = 0
		if err := m.refresh(); err != nil {
			m.status = m.styles.Error.Render(err.Error())
		}

	case "d":
		if len(reels) == 0 {
			return m, nil
		}
		if err := m.shell.service.DeleteReel(m.ctx, reels[m.cursor].ID); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}
		if err := m.refresh(); err != nil {
			m.status = m.styles.Error.Render(err.Error())
		}
	}
	return m, nil
}

func (m shellModel) updateUsers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "f" {
		item, ok := m.users.SelectedItem().(userItem)
		if !ok {
			return m, nil
		}
		if err := m.shell.service.ToggleFollow(m.ctx, item.account.ID); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		selected := m.users.Index()
		if err := m.refresh(); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.users.Select(selected)
		return m, nil
	}

	var cmd tea.Cmd
	m.users, cmd = m.users.Update(msg)
	return m, cmd
}

func (m shellModel) visibleReels() []domain.Reel {
	if m.shell.router.Current() == domain.ViewMyReels {
		return m.mine
	}
	return m.reels
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}

	current, ok := m.shell.service.CurrentAccount()
	if !ok {
		return ""
	}

	header := m.styles.Title.Render(m.shell.Config.Name)
	var rendered []string
	for i, tab := range tabs {
		style := m.styles.Tab
		if tab.View == m.shell.router.Current() {
			style = m.styles.ActiveTab
		}
		rendered = append(rendered, style.Render(fmt.Sprintf("%d %s", i+1, tab.Title)))
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	var body string
	switch m.shell.router.Current() {
	case domain.ViewHome:
		body = m.viewHome()
	case domain.ViewReels:
		body = m.viewReels("Discover Reels", m.reels)
	case domain.ViewMyReels:
		body = m.viewReels("My Uploads", m.mine)
	case domain.ViewUsers:
		body = m.users.View()
	}

	account := m.styles.Muted.Render(fmt.Sprintf("%s · %s · followers: %s",
		current.Username, current.Email, m.followerLine()))
	help := m.styles.Muted.Render("1-4 views · t theme · o logout · q quit")

	parts := []string{header, nav, body, account, help}
	if m.status != "" {
		parts = append(parts, m.styles.Status.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m shellModel) followerLine() string {
	if len(m.followers) == 0 {
		return "none yet"
	}
	return strings.Join(m.followers, ", ")
}

func (m shellModel) viewHome() string {
	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		m.styles.Status.Render("Home is a shell around "+m.shell.Config.HomeURL),
		m.styles.Muted.Render("The page itself renders in the embedded web view."),
		m.styles.Muted.Render("L like · C comment · S share"))
	return m.styles.Panel.Render(content)
}

func (m shellModel) viewReels(title string, reels []domain.Reel) string {
	if len(reels) == 0 {
		empty := "No reels yet."
		if title == "My Uploads" {
			empty += "\nPress + to upload your first reel!"
		}
		return m.styles.Panel.Render(empty)
	}

	current, _ := m.shell.service.CurrentAccount()
	var b strings.Builder
	b.WriteString(m.styles.Status.Render(title) + "\n\n")
	for i, r := range reels {
		line := fmt.Sprintf("@%s  %s", r.UploaderUsername, m.styles.Muted.Render(r.ID[:8]))
		if r.UploaderID == current.ID {
			line += "  " + m.styles.Owner.Render("(yours)")
		}
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("+ upload · d delete · j/k move"))
	return m.styles.Panel.Render(b.String())
}
