package model

import (
	"image"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/vlist/internal/config"
	"github.com/charmbracelet/vlist/internal/ui/common"
	"github.com/charmbracelet/vlist/internal/ui/display"
	"github.com/charmbracelet/vlist/internal/ui/items"
	"github.com/charmbracelet/vlist/internal/ui/list"
	"github.com/charmbracelet/vlist/internal/ui/styles"
	"github.com/charmbracelet/vlist/internal/uiutil"
)

// List is the list widget drawn by the program.
type List = list.List[*display.Display, items.Source]

// NewList creates a list of the configured items inside viewport.
func NewList(com *common.Common, viewport uv.Rectangle) (*List, error) {
	src, err := items.NewSource(com.Styles, com.Config.Items, viewport.Dx())
	if err != nil {
		return nil, err
	}
	return list.New[*display.Display](viewport, src), nil
}

// ConfigReloadedMsg replaces the configuration of a running program.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// layout defines the positioning of UI elements.
type layout struct {
	// area is the whole screen.
	area uv.Rectangle

	// header is the title bar at the top of the screen.
	header uv.Rectangle

	// main is the area available to the list.
	main uv.Rectangle

	// footer holds the status line and the help.
	footer uv.Rectangle
}

// UI represents the main user interface model.
type UI struct {
	com *common.Common

	// The width and height of the terminal in cells.
	width  int
	height int
	layout layout

	keyMap KeyMap
	help   help.Model

	list *List

	// status is the last reported status message, if any.
	status *uiutil.InfoMsg

	// drawErr is the error of the last list draw, if any.
	drawErr error
}

// New creates a new instance of the [UI] model.
func New(com *common.Common) *UI {
	ui := &UI{
		com:    com,
		keyMap: DefaultKeyMap(),
		help:   help.New(),
	}
	ui.help.Styles = com.Styles.Help
	return ui
}

// Init initializes the UI model.
func (m *UI) Init() tea.Cmd {
	return nil
}

// Update handles updates to the UI model.
func (m *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if cmd := m.updateLayoutAndSize(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPressMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseClickMsg:
		if m.list == nil {
			break
		}
		if idx, _ := m.list.ItemAt(msg.X, msg.Y); idx >= 0 {
			m.list.SetCurrent(idx)
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.selectPrev()
		case tea.MouseWheelDown:
			if cmd := m.selectNext(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	case ConfigReloadedMsg:
		m.com.Config = msg.Config
		if cmd := m.updateLayoutAndSize(); cmd != nil {
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, uiutil.ReportInfo("Configuration reloaded"))
		}
	case uiutil.InfoMsg:
		m.status = &msg
		if cmd := uiutil.ClearStatusAfter(msg.TTL); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case uiutil.ClearStatusMsg:
		m.status = nil
	}

	return m, tea.Batch(cmds...)
}

func (m *UI) handleKeyPressMsg(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.updateLayoutAndSize()
	}

	if m.list == nil {
		return nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.selectPrev()
	case key.Matches(msg, m.keyMap.Down):
		return m.selectNext()
	case key.Matches(msg, m.keyMap.First):
		m.list.SelectFirst()
	case key.Matches(msg, m.keyMap.Last):
		m.list.SelectLast()
	case key.Matches(msg, m.keyMap.PageUp):
		first, _, ok := m.list.VisibleRange()
		if !ok {
			break
		}
		if first < m.list.Current() {
			m.list.SetCurrent(first)
		} else {
			m.list.SetCurrent(max(0, first-1))
		}
	case key.Matches(msg, m.keyMap.PageDown):
		_, last, ok := m.list.VisibleRange()
		if !ok {
			break
		}
		if last > m.list.Current() {
			m.list.SetCurrent(last)
		} else {
			m.list.SetCurrent(min(m.list.Len()-1, last+1))
		}
	}
	return nil
}

// selectPrev selects the previous item. The first item stays selected.
func (m *UI) selectPrev() {
	if m.list == nil {
		return
	}
	m.list.SelectPrev()
}

// selectNext selects the next item, going back to the first one after the
// last.
func (m *UI) selectNext() tea.Cmd {
	if m.list == nil {
		return nil
	}
	wrap := m.list.Len() > 1 && m.list.Current() == m.list.Len()-1
	m.list.SelectNext()
	if wrap {
		return uiutil.ReportInfo("Back to the first item")
	}
	return nil
}

// updateLayoutAndSize recomputes the layout and rebuilds the list for the
// new viewport, keeping the current item.
func (m *UI) updateLayoutAndSize() tea.Cmd {
	m.layout = m.generateLayout(m.width, m.height)
	m.help.SetWidth(m.layout.footer.Dx())

	var cmd tea.Cmd
	viewport := m.com.Viewport()
	if !viewport.In(m.layout.main) {
		cmd = uiutil.ReportWarn("The window is too small for the configured viewport")
	}
	if viewport.Empty() || !viewport.In(m.layout.main) {
		viewport = m.layout.main
	}

	current := 0
	if m.list != nil {
		current = m.list.Current()
	}

	l, err := NewList(m.com, viewport)
	if err != nil {
		return uiutil.ReportError(err)
	}
	l.SetCurrent(current)
	m.list = l

	slog.Debug("Layout updated", "area", m.layout.area, "viewport", viewport, "current", current)
	return cmd
}

// generateLayout calculates the layout rectangles for the given size.
func (m *UI) generateLayout(width, height int) layout {
	area := image.Rect(0, 0, width, height)

	// The help height
	helpHeight := 1
	var helpKeyMap help.KeyMap = m
	if m.help.ShowAll {
		for _, row := range helpKeyMap.FullHelp() {
			helpHeight = max(helpHeight, len(row))
		}
	}
	// The status line sits above the help.
	footerHeight := min(height, 1+helpHeight)

	header, rest := uv.SplitVertical(area, uv.Fixed(min(1, height)))
	main, footer := uv.SplitVertical(rest, uv.Fixed(max(0, rest.Dy()-footerHeight)))

	return layout{
		area:   area,
		header: header,
		main:   main,
		footer: footer,
	}
}

// Draw draws the list and the surrounding chrome to d. The list is drawn
// first so the header and footer cover items overflowing the viewport. If the
// list fails to draw, the chrome is still drawn with the error in the footer
// and the error is returned.
func (m *UI) Draw(d *display.Display) error {
	m.drawErr = nil
	if m.list != nil {
		m.drawErr = m.list.Draw(d)
	}

	t := m.com.Styles
	if err := m.drawRow(d, m.layout.header, common.Header(t, "vlist", m.layout.header.Dx())); err != nil {
		return err
	}
	if err := m.drawRow(d, m.layout.footer, m.footer()); err != nil {
		return err
	}
	return m.drawErr
}

// drawRow clears area and draws content into it.
func (m *UI) drawRow(d *display.Display, area uv.Rectangle, content string) error {
	if area.Empty() {
		return nil
	}
	if err := d.Clear(area); err != nil {
		return err
	}
	return d.DrawString(area.Min, area.Dx(), content)
}

// footer renders the status line followed by the help.
func (m *UI) footer() string {
	t := m.com.Styles
	width := m.layout.footer.Dx()

	var total, current int
	if m.list != nil {
		total, current = m.list.Len(), m.list.Current()
	}
	opts := common.StatusOpts{
		Icon:  t.Subtle.Render(styles.ScrollIcon),
		Title: common.Position(t, current, total),
	}
	switch {
	case m.drawErr != nil:
		opts.Icon = t.Error.Render(styles.ErrorIcon)
		opts.Description = "Failed to draw: " + m.drawErr.Error()
		opts.DescriptionColor = t.Error.GetForeground()
	case m.status != nil:
		opts.Description = m.status.Msg
		switch m.status.Type {
		case uiutil.InfoTypeError:
			opts.Icon = t.Error.Render(styles.ErrorIcon)
			opts.DescriptionColor = t.Error.GetForeground()
		case uiutil.InfoTypeWarn:
			opts.DescriptionColor = t.Muted.GetForeground()
		}
	}

	status := t.Footer.Width(width).Render(common.Status(t, opts, width))
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m))
}

// View renders the UI model's view.
func (m *UI) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.BackgroundColor = m.com.Styles.Background
	v.MouseMode = tea.MouseModeCellMotion

	d := display.New(m.width, m.height)
	if err := m.Draw(d); err != nil {
		slog.Error("Failed to draw", "error", err)
	}
	v.Content = d.Render()

	return v
}

// ShortHelp implements [help.KeyMap].
func (m *UI) ShortHelp() []key.Binding {
	k := &m.keyMap
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

// FullHelp implements [help.KeyMap].
func (m *UI) FullHelp() [][]key.Binding {
	k := &m.keyMap
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.First, k.Last},
		{k.Quit, k.Help},
	}
}
