package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpggio/comicfolio/internal/app"
	"github.com/rpggio/comicfolio/internal/chat"
	"github.com/rpggio/comicfolio/internal/dashboard"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

const logo = "COMICFOLIO"

// View renders the current screen.
func (m *Model) View() string {
	state := m.ctrl.State()
	if state.Blocked(m.store.Loading()) {
		return fmt.Sprintf("\n  %s Loading the next issue...\n", m.spinner.View())
	}

	var body string
	switch {
	case m.chatOpen:
		body = m.chatView()
	case m.contact != nil:
		body = m.contact.view()
	case state.View == app.ViewLogin:
		body = m.loginView()
	case state.View == app.ViewDashboard:
		body = m.dashboardView()
	default:
		body = m.homeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(logo),
		body,
		m.statusView(),
	)
}

func (m *Model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return "\n" + errorStyle.Render(m.status)
	}
	return "\n" + okStyle.Render(m.status)
}

func (m *Model) homeView() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("MISSIONS") + "\n")
	for _, p := range m.store.Projects.List() {
		fmt.Fprintf(&b, "  %s  %s\n", selectedStyle.Render(p.Title), dimStyle.Render(strings.Join(p.Tags, " / ")))
		if p.Description != "" {
			fmt.Fprintf(&b, "    %s\n", p.Description)
		}
	}

	b.WriteString("\n" + headingStyle.Render("ORIGIN STORY") + "\n")
	for _, e := range m.store.Experiences.List() {
		indent := "  "
		if e.Side == "right" {
			indent = "            "
		}
		fmt.Fprintf(&b, "%s%s @ %s %s\n", indent, e.Role, e.Company, dimStyle.Render(e.Period))
	}

	b.WriteString("\n" + headingStyle.Render("POWERS") + "\n")
	for _, s := range m.store.Skills.List() {
		fmt.Fprintf(&b, "  %-24s %s %d\n", s.Name, powerBar(s), s.Level)
	}

	b.WriteString("\n" + headingStyle.Render("UTILITY BELT") + "\n")
	for _, g := range m.store.Gadgets.List() {
		fmt.Fprintf(&b, "  %s %s  %s\n", g.Icon, g.Name, dimStyle.Render(g.Description))
	}

	b.WriteString("\n" + dimStyle.Render("l login | m contact | c chat | q quit"))
	return b.String()
}

// powerBar draws the level on a 20-cell bar. Levels above 100 fill it.
func powerBar(s skill.Skill) string {
	cells := min(max(s.Level, 0), 100) / 5
	color, ok := skillColors[s.Color]
	if !ok {
		color = comicYellow
	}
	filled := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", cells))
	return filled + dimStyle.Render(strings.Repeat("░", 20-cells))
}

func (m *Model) loginView() string {
	if m.login == nil {
		m.login = loginForm(m.register)
	}
	hint := "ctrl+r register instead"
	if m.register {
		hint = "ctrl+r sign in instead"
	}
	return m.login.view() + "\n" + dimStyle.Render(hint)
}

func (m *Model) dashboardView() string {
	var tabs []string
	for i, t := range dashboard.Tabs {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(string(t)))
		if t == dashboard.TabMessages {
			if n := m.store.UnreadCount(); n > 0 {
				label += fmt.Sprintf(" (%d)", n)
			}
		}
		if t == m.router.Tab() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	if m.editor != nil {
		return header + "\n\n" + m.editor.view()
	}

	var body string
	switch m.router.Tab() {
	case dashboard.TabOverview:
		body = m.overviewView()
	case dashboard.TabProjects:
		var rows []string
		for _, p := range m.store.Projects.List() {
			rows = append(rows, fmt.Sprintf("%s  %s", p.Title, dimStyle.Render(strings.Join(p.Tags, ", "))))
		}
		body = m.listView(rows, "n new | e edit | d delete")
	case dashboard.TabExperience:
		var rows []string
		for _, e := range m.store.Experiences.List() {
			rows = append(rows, fmt.Sprintf("%s @ %s  %s", e.Role, e.Company, dimStyle.Render(e.Period)))
		}
		body = m.listView(rows, "n new | e edit | "+m.capabilityHint(m.router.Capabilities().DeleteExperience))
	case dashboard.TabAbilities:
		body = m.abilitiesView()
	case dashboard.TabMessages:
		var rows []string
		for _, msg := range m.store.Messages.List() {
			marker := "*"
			if msg.Read {
				marker = " "
			}
			rows = append(rows, fmt.Sprintf("%s %s <%s>: %s", marker, msg.Codename, msg.Email, msg.Content))
		}
		body = m.listView(rows, "r mark read | "+m.capabilityHint(m.router.Capabilities().DeleteMessage))
	}
	return header + "\n\n" + body + "\n\n" + dimStyle.Render("1-5 tabs | c chat | o logout | q quit")
}

func (m *Model) capabilityHint(supported bool) string {
	if supported {
		return "d delete"
	}
	return "delete not supported"
}

func (m *Model) overviewView() string {
	o := m.router.Overview()
	return fmt.Sprintf("Projects     %d\nExperiences  %d\nSkills       %d\nGadgets      %d\nUnread       %d",
		o.Projects, o.Experiences, o.Skills, o.Gadgets, o.Unread)
}

func (m *Model) abilitiesView() string {
	var rows []string
	title := "SKILLS"
	if m.router.Section() == dashboard.SectionGadgets {
		title = "GADGETS"
		for _, g := range m.store.Gadgets.List() {
			rows = append(rows, fmt.Sprintf("%s %s (%s)", g.Icon, g.Name, g.ID))
		}
	} else {
		for _, s := range m.store.Skills.List() {
			rows = append(rows, fmt.Sprintf("%-24s %s %d", s.Name, powerBar(s), s.Level))
		}
	}
	return headingStyle.Render(title) + "\n" + m.listView(rows, "s switch section | n new | e edit | d delete")
}

func (m *Model) listView(rows []string, hint string) string {
	if len(rows) == 0 {
		return dimStyle.Render("nothing here yet") + "\n\n" + dimStyle.Render(hint)
	}
	var b strings.Builder
	for i, row := range rows {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + row + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render(hint))
	return b.String()
}

func (m *Model) chatView() string {
	var b strings.Builder
	for _, msg := range m.chat.Transcript() {
		if msg.Role == chat.RoleUser {
			b.WriteString(speechUserStyle.Render("YOU: ") + msg.Text + "\n")
		} else {
			b.WriteString(speechModelStyle.Render("AI: ") + msg.Text + "\n")
		}
	}
	if m.chat.Busy() {
		b.WriteString(m.spinner.View() + " thinking...\n")
	}
	b.WriteString("\n" + m.chatInput.View() + "\n")
	b.WriteString(dimStyle.Render("enter send | esc close"))
	return panelStyle.Render(b.String())
}
