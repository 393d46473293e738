package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpggio/comicfolio/internal/dashboard"
)

func (m *Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor != nil {
		return m.handleEditorKey(msg)
	}

	key := msg.String()
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(dashboard.Tabs) {
		if err := m.router.Select(dashboard.Tabs[n-1]); err != nil {
			m.setStatus("tab", err)
		}
		m.cursor = 0
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "o":
		return m, m.logoutCmd()
	case "c":
		return m, m.openChat()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
	case "s":
		if m.router.Tab() == dashboard.TabAbilities {
			next := dashboard.SectionGadgets
			if m.router.Section() == dashboard.SectionGadgets {
				next = dashboard.SectionSkills
			}
			_ = m.router.SelectSection(next)
			m.cursor = 0
		}
	case "n":
		m.beginCreate()
	case "e", "enter":
		m.beginEdit()
	case "d":
		return m, m.deleteSelected()
	case "r":
		return m, m.markSelectedRead()
	}
	return m, nil
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result, cmd := m.editor.update(msg)
	switch result {
	case formCancelled:
		m.binding.discard()
		m.editor = nil
		return m, nil
	case formSubmitted:
		if err := m.binding.apply(m.editor.values()); err != nil {
			m.setStatus("not saved", err)
			return m, nil
		}
		return m, m.saveEditor(m.binding)
	}
	return m, cmd
}

func (m *Model) openEditor(b binding) {
	m.binding = b
	m.editor = b.form()
}

func (m *Model) beginCreate() {
	r := m.router
	switch r.Tab() {
	case dashboard.TabProjects:
		r.Projects.BeginCreate(dashboard.ProjectTemplate())
		m.openEditor(projectBinding(r.Projects))
	case dashboard.TabExperience:
		r.Experiences.BeginCreate(dashboard.ExperienceTemplate())
		m.openEditor(experienceBinding(r.Experiences))
	case dashboard.TabAbilities:
		if r.Section() == dashboard.SectionGadgets {
			r.Gadgets.BeginCreate(dashboard.GadgetTemplate())
			m.openEditor(gadgetBinding(r.Gadgets))
			return
		}
		r.Skills.BeginCreate(dashboard.SkillTemplate())
		m.openEditor(skillBinding(r.Skills))
	}
}

func (m *Model) beginEdit() {
	r := m.router
	switch r.Tab() {
	case dashboard.TabProjects:
		if item, ok := at(m.store.Projects.List(), m.cursor); ok {
			r.Projects.BeginEdit(item)
			m.openEditor(projectBinding(r.Projects))
		}
	case dashboard.TabExperience:
		if item, ok := at(m.store.Experiences.List(), m.cursor); ok {
			r.Experiences.BeginEdit(item)
			m.openEditor(experienceBinding(r.Experiences))
		}
	case dashboard.TabAbilities:
		if r.Section() == dashboard.SectionGadgets {
			if item, ok := at(m.store.Gadgets.List(), m.cursor); ok {
				r.Gadgets.BeginEdit(item)
				m.openEditor(gadgetBinding(r.Gadgets))
			}
			return
		}
		if item, ok := at(m.store.Skills.List(), m.cursor); ok {
			r.Skills.BeginEdit(item)
			m.openEditor(skillBinding(r.Skills))
		}
	}
}

func (m *Model) itemCount() int {
	switch m.router.Tab() {
	case dashboard.TabProjects:
		return m.store.Projects.Len()
	case dashboard.TabExperience:
		return m.store.Experiences.Len()
	case dashboard.TabAbilities:
		if m.router.Section() == dashboard.SectionGadgets {
			return m.store.Gadgets.Len()
		}
		return m.store.Skills.Len()
	case dashboard.TabMessages:
		return m.store.Messages.Len()
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.itemCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func at[T any](list []T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(list) {
		return zero, false
	}
	return list[i], true
}
