package model

import (
	"fmt"
	"strings"

	"github.com/byxorna/storefront/pkg/app"
	"github.com/byxorna/storefront/pkg/pagination"
	"github.com/byxorna/storefront/pkg/text"
	"github.com/byxorna/storefront/pkg/ui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the title bar, pagination line and the gaps around the body,
// help is measured separately.
const chromeHeight = 4

// Model is the terminal catalog browser. It forwards interactions to the
// controller and shows whatever the renderer last drew.
type Model struct {
	ctrl     *app.Controller
	renderer *Renderer

	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	viewport  viewport.Model
	paginator paginator.Model
	menu      menuModel

	width, height int
	lastRender    int
}

// New builds the model; categories are the entries of the filter panel.
func New(ctrl *app.Controller, categories []string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.LoadingStyle

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = ui.SelectedStyle.Render("•")
	pg.InactiveDot = ui.SubtleStyle.Render("•")

	m := Model{
		ctrl:      ctrl,
		renderer:  NewRenderer(80),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		paginator: pg,
		menu:      newMenuModel(categories, ctrl.State.Filters),
		width:     80,
		height:    24,
	}
	m.renderer.Attach(ctrl.State)
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.ctrl.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	// Window size is received when starting up and on every resize
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case app.FetchedMsg:
		m.ctrl.Apply(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.renderer.Detach()
			return m, tea.Quit
		}
		if cmd, handled := m.handleKey(msg); handled {
			cmds = append(cmds, cmd)
			break
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

// handleKey maps a key press onto a controller interaction.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	state := m.ctrl.State

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true

	case key.Matches(msg, m.keys.Sort):
		return m.ctrl.SortChanged(state.Sort.Next()), true

	case key.Matches(msg, m.keys.LoadMore):
		m.ctrl.LoadMore()
		return nil, true

	case key.Matches(msg, m.keys.Open):
		m.ctrl.OpenMenu()
		return nil, true

	case key.Matches(msg, m.keys.Close):
		m.ctrl.CloseMenu()
		return nil, true

	case key.Matches(msg, m.keys.Toggle):
		if m.menu.toggle() {
			return m.ctrl.FilterChanged(m.menu.Checked()), true
		}
		return nil, true
	}

	if state.MenuOpen {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.menu.up()
			return nil, true
		case key.Matches(msg, m.keys.Down):
			m.menu.down()
			return nil, true
		}
	}
	return nil, false
}

// sync lays out the children for the current size and state, and copies a new
// drawing into the viewport.
func (m *Model) sync() {
	state := m.ctrl.State
	m.keys.setMenuOpen(state.MenuOpen)

	bodyWidth := m.width - ui.AppStyle.GetHorizontalPadding()
	if state.MenuOpen {
		bodyWidth -= menuWidth + 1
	}
	bodyWidth = max(1, bodyWidth)
	bodyHeight := max(1, m.height-chromeHeight-lipgloss.Height(m.help.View(m.keys)))

	m.renderer.SetWidth(bodyWidth)
	m.viewport.Width = bodyWidth
	m.viewport.Height = bodyHeight

	if m.renderer.Renders() != m.lastRender {
		m.lastRender = m.renderer.Renders()
		m.viewport.SetContent(m.renderer.Content())
	}

	pageSize := m.ctrl.PageSize()
	m.paginator.PerPage = pageSize
	m.paginator.SetTotalPages(len(state.Products.Read()))
	m.paginator.Page = max(0, pagination.LoadedPages(len(state.Visible.Read()), pageSize)-1)
}

func (m Model) View() string {
	state := m.ctrl.State

	header := ui.TitleStyle.Render(text.EmojiCart+" storefront") + " " +
		ui.CounterStyle.Render(fmt.Sprintf("%d products", m.renderer.Count())) +
		ui.SubtleStyle.Render(fmt.Sprintf(" • sort: %s", state.Sort))
	if state.Loading.Read() {
		header += " " + m.spinner.View()
	}

	body := m.viewport.View()
	if state.MenuOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.menu.view(state.Sort, m.viewport.Height), body)
	}

	footer := m.paginator.View()
	if state.CanLoadMore {
		footer += "  " + ui.HintStyle.Render("n: load more")
	}

	return ui.AppStyle.Render(strings.Join([]string{
		header,
		"",
		body,
		"",
		footer,
		m.help.View(m.keys),
	}, "\n"))
}
