// Package tui is the interactive Bubble Tea view over a todo list.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// listItem adapts a *model.Todo to bubbles/list.Item
type listItem struct {
	todo *model.Todo
}

func (i listItem) Title() string       { return i.todo.String() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title() }

// Single-line rows.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := ui.MutedStyle.Render(t.BoxUnchecked)
	text := it.todo.Title()
	if it.todo.IsDone() {
		box = ui.SuccessStyle.Render(t.BoxChecked)
		text = ui.DoneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

var (
	addBind     = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind  = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	removeBind  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	allBind     = key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all done"))
	pendingBind = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pending only"))
)

// Model is the Bubble Tea model. Every edit goes straight to the
// underlying TodoList; the bubbles list is rebuilt from it afterwards.
type Model struct {
	list    list.Model
	todos   *model.TodoList
	changed bool

	pendingOnly bool

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	width, height int
}

// New builds a model over todos.
func New(todos *model.TodoList) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	extra := func() []key.Binding {
		return []key.Binding{toggleBind, addBind, removeBind, allBind, pendingBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	m := Model{list: l, todos: todos, ti: ti, width: 80, height: 24}
	m.resize()
	m.refresh()
	return m
}

// Changed reports whether the list was edited.
func (m Model) Changed() bool { return m.changed }

// Todos returns the list being edited.
func (m Model) Todos() *model.TodoList { return m.todos }

// Run starts the program and blocks until the user quits.
func Run(todos *model.TodoList) (bool, error) {
	p := tea.NewProgram(New(todos), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	return ok && fm.changed, nil
}

// refresh rebuilds the visible items and the header from the TodoList.
func (m *Model) refresh() {
	src := m.todos
	if m.pendingOnly {
		src = src.Pending()
	}
	items := make([]list.Item, 0, src.Size())
	src.ForEach(func(t *model.Todo) {
		items = append(items, listItem{todo: t})
	})
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}

	done := m.todos.CountDone()
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render(m.todos.Title()),
		ui.SuccessStyle.Render("✔"), done,
		ui.PendingStyle.Render("•"), m.todos.Size()-done,
		ui.AccentStyle.Render("Total"), m.todos.Size(),
	)
	if m.pendingOnly {
		title += "  " + ui.MutedStyle.Render("(pending only)")
	}
	m.list.Title = title
}

// selectedIndex maps the cursor onto an index of the full TodoList.
func (m Model) selectedIndex() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	for i, t := range m.todos.ToSlice() {
		if t == it.todo {
			return i, true
		}
	}
	return 0, false
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	// Let the list's own filter prompt consume keys while it is open.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if i, ok := m.selectedIndex(); ok {
				t, _ := m.todos.ItemAt(i)
				if t.IsDone() {
					_ = m.todos.MarkUndoneAt(i)
				} else {
					_ = m.todos.MarkDoneAt(i)
				}
				m.changed = true
				m.refresh()
			}
			return m, nil
		case "d":
			if i, ok := m.selectedIndex(); ok {
				if _, err := m.todos.RemoveAt(i); err == nil {
					m.changed = true
					m.refresh()
				}
			}
			return m, nil
		case "A":
			if m.todos.Size() > 0 && !m.todos.IsDone() {
				m.todos.MarkAllDone()
				m.changed = true
				m.refresh()
			}
			return m, nil
		case "p":
			m.pendingOnly = !m.pendingOnly
			m.list.Select(0)
			m.refresh()
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize()
			cmd := m.ti.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			_ = m.todos.Add(model.NewTodo(title))
			m.changed = true
			m.stopAdding()
			m.refresh()
			m.list.Select(len(m.list.Items()) - 1)
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h = m.height - 8
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += "  " + ui.ErrorStyle.Render(m.addErr)
		}
		content += "\n" + ui.Frame(title+"\n"+m.ti.View())
	}
	return ui.Frame(content)
}
