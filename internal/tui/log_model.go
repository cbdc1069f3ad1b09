package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LukeFitzGit/MyGymLog/internal/models"
	"github.com/LukeFitzGit/MyGymLog/internal/storage"
	"github.com/LukeFitzGit/MyGymLog/internal/workout"
)

// Row fields, in tab order
const (
	fieldExercise = iota
	fieldReps
	fieldWeight
	numFields
)

type itemKind int

const (
	itemGroupHeader itemKind = iota
	itemRow
)

// logItem is one selectable line on screen: either a collapsed-group header
// or an actual set row
type logItem struct {
	kind     itemKind
	group    workout.Group
	setIndex int
}

type dayOpenedMsg struct {
	sets []models.SetEntry
}

// LogModel is the TUI model for the daily workout log screen
type LogModel struct {
	store *workout.Store
	kv    storage.KV
	today string

	width  int
	height int

	// Startup state: a spinner runs until the day rollover has resolved
	loading bool
	spin    spinner.Model

	// Visible lines and selection
	items  []logItem
	cursor int

	// Row currently bound to the three inputs ("" when browsing)
	editingID string
	field     int
	inputs    [numFields]textinput.Model

	// Collapsed-group overrides, keyed by the group's first row index
	expanded map[int]bool
}

// NewLogModel creates the log screen model
func NewLogModel(store *workout.Store, kv storage.KV) LogModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	var inputs [numFields]textinput.Model
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		inputs[i].Prompt = ""
	}
	inputs[fieldExercise].Placeholder = "Initials"
	inputs[fieldExercise].CharLimit = 40
	inputs[fieldExercise].Width = 22
	inputs[fieldReps].Placeholder = "Reps"
	inputs[fieldReps].CharLimit = 4
	inputs[fieldReps].Width = 5
	inputs[fieldWeight].Placeholder = "Kg"
	inputs[fieldWeight].CharLimit = 7
	inputs[fieldWeight].Width = 7

	return LogModel{
		store:    store,
		kv:       kv,
		today:    workout.Today(),
		loading:  true,
		spin:     spin,
		inputs:   inputs,
		expanded: make(map[int]bool),
	}
}

// Init kicks off the spinner and the day rollover
func (m LogModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, openDayCmd(m.kv, m.today))
}

func openDayCmd(kv storage.KV, today string) tea.Cmd {
	return func() tea.Msg {
		return dayOpenedMsg{sets: workout.OpenDay(context.Background(), kv, today)}
	}
}

// Update handles messages
func (m LogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dayOpenedMsg:
		m.store.Replace(msg.sets)
		workout.AttachAutoSave(context.Background(), m.store, m.kv)
		m.store.MarkLoaded()
		m.loading = false
		m.items = m.buildItems()

		// Drop straight into the trailing editable row, like the app opening
		// with the keyboard up
		sets := m.store.Sets()
		if n := len(sets); n > 0 && sets[n-1].IsEditing {
			m = m.beginEdit(sets[n-1].ID)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.editingID != "" {
			return m.handleEditKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}

	return m, nil
}

// handleEditKeys handles key input while a row is bound to the inputs
func (m LogModel) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m = m.commitField()
		if m.field == fieldExercise {
			m.store.ResolveRowOnBlur(m.editingID)
		}
		m = m.stopEditing()
		return m, nil

	case "enter":
		m = m.commitField()
		switch m.field {
		case fieldExercise:
			m.store.ResolveRowOnBlur(m.editingID)
			m = m.focusField(fieldReps)
		case fieldReps:
			m = m.focusField(fieldWeight)
		case fieldWeight:
			// Submitting the weight field on a complete last row opens the
			// next blank one
			before := m.store.Len()
			m.store.SubmitRow(m.editingID)
			if m.store.Len() > before {
				sets := m.store.Sets()
				m = m.beginEdit(sets[len(sets)-1].ID)
			} else {
				m = m.stopEditing()
			}
		}
		m.items = m.buildItems()
		return m, nil

	case "tab":
		m = m.commitField()
		if m.field == fieldExercise {
			m.store.ResolveRowOnBlur(m.editingID)
		}
		m = m.focusField((m.field + 1) % numFields)
		m.items = m.buildItems()
		return m, nil

	case "shift+tab":
		m = m.commitField()
		m = m.focusField((m.field + numFields - 1) % numFields)
		m.items = m.buildItems()
		return m, nil

	default:
		var cmd tea.Cmd
		m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
		// Mirror every keystroke into the store so auto-save sees it
		m = m.commitField()
		m.items = m.buildItems()
		return m, cmd
	}
}

// handleBrowseKeys handles key input while no row is being edited
func (m LogModel) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		item, ok := m.currentItem()
		if !ok {
			return m, nil
		}
		if item.kind == itemGroupHeader {
			m.expanded[item.group.StartIndex] = !m.expanded[item.group.StartIndex]
			m.items = m.buildItems()
			return m, nil
		}
		sets := m.store.Sets()
		set := sets[item.setIndex]
		if set.IsEditing {
			m = m.beginEdit(set.ID)
		} else if set.Exercise != "" {
			// Tapping a resolved row steps through exercises sharing its
			// abbreviation
			m.store.CycleRow(set.ID)
			m.items = m.buildItems()
		}
		return m, nil

	case "e":
		// Long-press equivalent: put the row back into raw entry mode
		item, ok := m.currentItem()
		if !ok || item.kind != itemRow {
			return m, nil
		}
		set := m.store.Sets()[item.setIndex]
		editing := true
		m.store.UpdateRow(set.ID, workout.Update{IsEditing: &editing})
		m = m.beginEdit(set.ID)
		return m, nil

	case "x", "backspace", "delete":
		item, ok := m.currentItem()
		if !ok || item.kind != itemRow || !m.store.CanDelete(item.setIndex) {
			return m, nil
		}
		set := m.store.Sets()[item.setIndex]
		m.store.DeleteRow(set.ID)
		m.items = m.buildItems()
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		return m, nil
	}

	return m, nil
}

func (m LogModel) currentItem() (logItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return logItem{}, false
	}
	return m.items[m.cursor], true
}

// beginEdit binds the row with the given id to the inputs
func (m LogModel) beginEdit(id string) LogModel {
	sets := m.store.Sets()
	i := indexByID(sets, id)
	if i < 0 {
		return m
	}
	m.editingID = id
	m.inputs[fieldExercise].SetValue(sets[i].Exercise)
	m.inputs[fieldReps].SetValue(sets[i].Reps)
	m.inputs[fieldWeight].SetValue(sets[i].Weight)
	m = m.focusField(fieldExercise)
	m.items = m.buildItems()
	m.cursor = m.cursorForSet(i)
	return m
}

// focusField moves input focus. Focusing the exercise field drops the row
// back into raw entry mode so typed text replaces the resolved name.
func (m LogModel) focusField(field int) LogModel {
	m.field = field
	for f := range m.inputs {
		m.inputs[f].Blur()
	}
	m.inputs[field].Focus()

	if field == fieldExercise && m.editingID != "" {
		sets := m.store.Sets()
		if i := indexByID(sets, m.editingID); i >= 0 {
			if !sets[i].IsEditing {
				editing := true
				m.store.UpdateRow(m.editingID, workout.Update{IsEditing: &editing})
			}
			m.inputs[fieldExercise].SetValue(sets[i].Exercise)
			m.inputs[fieldExercise].CursorEnd()
		}
	}
	return m
}

// commitField writes the focused input's text into the store
func (m LogModel) commitField() LogModel {
	if m.editingID == "" {
		return m
	}
	value := m.inputs[m.field].Value()
	switch m.field {
	case fieldExercise:
		m.store.UpdateRow(m.editingID, workout.Update{Exercise: &value})
	case fieldReps:
		m.store.UpdateRow(m.editingID, workout.Update{Reps: &value})
	case fieldWeight:
		m.store.UpdateRow(m.editingID, workout.Update{Weight: &value})
	}
	return m
}

func (m LogModel) stopEditing() LogModel {
	m.editingID = ""
	for f := range m.inputs {
		m.inputs[f].Blur()
	}
	m.items = m.buildItems()
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// buildItems flattens the grouped log into selectable lines. The last run is
// always inline; earlier runs collapse behind a header unless toggled open.
func (m LogModel) buildItems() []logItem {
	var items []logItem
	for _, group := range m.store.Groups() {
		if group.Last {
			for offset := range group.Sets {
				items = append(items, logItem{kind: itemRow, setIndex: group.StartIndex + offset})
			}
			continue
		}
		items = append(items, logItem{kind: itemGroupHeader, group: group})
		if m.expanded[group.StartIndex] {
			for offset := range group.Sets {
				items = append(items, logItem{kind: itemRow, setIndex: group.StartIndex + offset})
			}
		}
	}
	return items
}

// cursorForSet returns the visible line holding the given set, or the header
// hiding it
func (m LogModel) cursorForSet(setIndex int) int {
	for i, item := range m.items {
		if item.kind == itemRow && item.setIndex == setIndex {
			return i
		}
	}
	for i, item := range m.items {
		if item.kind == itemGroupHeader &&
			setIndex >= item.group.StartIndex &&
			setIndex < item.group.StartIndex+len(item.group.Sets) {
			return i
		}
	}
	return 0
}

func indexByID(sets []models.SetEntry, id string) int {
	for i := range sets {
		if sets[i].ID == id {
			return i
		}
	}
	return -1
}

// View renders the log screen
func (m LogModel) View() string {
	if m.loading {
		loadingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.spin.View()+loadingStyle.Render(" Loading your log..."),
		)
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(titleStyle.Render(fmt.Sprintf("🏋  Today's Log — %s", m.today)))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-24s %-6s %-8s", "EXERCISE", "REPS", "KG")))
	b.WriteString("\n")

	for i, item := range m.items {
		selected := i == m.cursor && m.editingID == ""
		if item.kind == itemGroupHeader {
			b.WriteString(m.renderGroupHeader(item.group, selected))
		} else {
			b.WriteString(m.renderRow(item.setIndex, selected))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m LogModel) renderGroupHeader(group workout.Group, selected bool) string {
	chevron := "▸"
	if m.expanded[group.StartIndex] {
		chevron = "▾"
	}

	name := group.Name
	if name == "" {
		name = "New Exercise"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText))
	if selected {
		headerStyle = headerStyle.Foreground(lipgloss.Color(ColorAccentBright))
	}

	badgeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
	badge := badgeStyle.Render(fmt.Sprintf("%d sets", len(group.Sets)))

	cursor := "  "
	if selected {
		cursor = "› "
	}
	return cursor + headerStyle.Render(chevron+" "+name) + "  " + badge
}

func (m LogModel) renderRow(setIndex int, selected bool) string {
	sets := m.store.Sets()
	set := sets[setIndex]
	isBound := set.ID == m.editingID

	exerciseCell := lipgloss.NewStyle().Width(24)
	numberCell := lipgloss.NewStyle().Width(7)

	// Exercise column: input while in raw entry, resolved name otherwise
	var exercise string
	switch {
	case isBound && set.IsEditing:
		exercise = exerciseCell.Render(m.inputs[fieldExercise].View())
	case set.Exercise == "":
		exercise = exerciseCell.
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("---")
	default:
		style := exerciseCell.Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
		if selected {
			style = style.Foreground(lipgloss.Color(ColorAccentBright))
		}
		exercise = style.Render(set.Exercise)
	}

	var reps, weight string
	if isBound {
		reps = numberCell.Render(m.inputs[fieldReps].View())
		weight = numberCell.Render(m.inputs[fieldWeight].View())
	} else {
		valueStyle := numberCell.Foreground(lipgloss.Color(ColorPrimaryText))
		reps = valueStyle.Render(orDash(set.Reps))
		weight = valueStyle.Render(orDash(set.Weight))
	}

	cursor := "  "
	if selected {
		cursor = "› "
	}

	row := cursor + lipgloss.JoinHorizontal(lipgloss.Top, exercise, " ", reps, " ", weight)

	if selected && m.store.CanDelete(setIndex) {
		deleteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		row += deleteStyle.Render("  ✗")
	}
	return row
}

func orDash(value string) string {
	if value == "" {
		return "–"
	}
	return value
}

func (m LogModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	if m.editingID != "" {
		return helpStyle.Render("enter next field • tab/shift+tab move • esc done • ctrl+c quit")
	}
	return helpStyle.Render("↑/↓ move • enter cycle/open • e edit • x delete • q quit")
}
