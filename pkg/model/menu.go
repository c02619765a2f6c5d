package model

import (
	"fmt"
	"strings"

	"github.com/byxorna/storefront/pkg/types/v1"
	"github.com/byxorna/storefront/pkg/ui"
)

const menuWidth = 28

// menuModel is the slide-out filter panel: one checkbox per category and the
// sort selector.
type menuModel struct {
	categories []string
	checked    map[int]bool
	cursor     int
}

func newMenuModel(categories []string, selected v1.FilterSet) menuModel {
	m := menuModel{
		categories: categories,
		checked:    map[int]bool{},
	}
	for i, c := range categories {
		if selected.Has(c) {
			m.checked[i] = true
		}
	}
	return m
}

func (m *menuModel) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *menuModel) down() {
	if m.cursor < len(m.categories)-1 {
		m.cursor++
	}
}

// toggle flips the checkbox under the cursor and reports whether anything
// changed.
func (m *menuModel) toggle() bool {
	if len(m.categories) == 0 {
		return false
	}
	m.checked[m.cursor] = !m.checked[m.cursor]
	return true
}

// Checked returns the checked categories in panel order.
func (m menuModel) Checked() []string {
	out := []string{}
	for i, c := range m.categories {
		if m.checked[i] {
			out = append(out, c)
		}
	}
	return out
}

func (m menuModel) view(sort v1.SortKey, height int) string {
	var b strings.Builder
	b.WriteString(ui.PanelHeadingStyle.Render("Categories"))
	b.WriteString("\n\n")

	if len(m.categories) == 0 {
		b.WriteString(ui.SubtleStyle.Render("none configured"))
		b.WriteString("\n")
	}
	for i, c := range m.categories {
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, c)
		if i == m.cursor {
			b.WriteString(ui.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.PanelHeadingStyle.Render("Sort by"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s", sort, ui.HintStyle.Render("(s to change)")))

	return ui.PanelStyle.Width(menuWidth).Height(max(1, height)).Render(b.String())
}
