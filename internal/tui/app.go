package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adiwidodo/kontak/internal/contact"
)

// Form field indices
const (
	FormFieldName = iota
	FormFieldPhone
	FormFieldEmail
	FormFieldAddress
	FormFieldAvatar
	FormFieldLabel
	FormFieldCount // Total number of fields
)

var formFieldNames = []string{"Name", "Phone", "Email", "Address", "Avatar URL", "Label"}

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	trashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// Model represents the main application state
type Model struct {
	manager  *contact.Manager
	visible  []contact.Contact
	labels   []string
	state    contact.ViewState
	selected int
	width    int
	height   int
	status   string

	// Bulk selection
	checked map[int]bool

	// Search mode
	searchMode bool
	search     textinput.Model

	// Add/edit form mode
	formMode   bool
	formField  int
	formInputs []textinput.Model
	editingID  int // 0 means adding

	// Label picker mode: switch to a label view, or apply a label to the
	// checked contacts
	labelPickMode bool
	labelApply    bool
	labelSelected int

	// Label name input mode (add or rename)
	labelEditMode bool
	labelInput    textinput.Model
	renaming      string

	// Confirmation mode for destructive actions
	confirmMode   bool
	confirmPrompt string
	confirmAction func() contact.Result
}

// New creates a new application model
func New(manager *contact.Manager) (*Model, error) {
	// Setup search input
	ti := textinput.New()
	ti.Placeholder = "Search name or email..."
	ti.Width = 30
	ti.CharLimit = 50
	ti.Prompt = "> "

	// Setup label name input
	li := textinput.New()
	li.Placeholder = "Label name"
	li.Width = 30
	li.CharLimit = 30

	// Setup form inputs
	formInputs := make([]textinput.Model, FormFieldCount)
	for i := range formInputs {
		formInputs[i] = textinput.New()
		formInputs[i].Width = 40
		formInputs[i].CharLimit = 200
		formInputs[i].Placeholder = formFieldNames[i]
	}

	m := &Model{
		manager:    manager,
		state:      contact.ViewState{View: contact.ViewAll, Sort: contact.SortAZ},
		checked:    make(map[int]bool),
		search:     ti,
		labelInput: li,
		formInputs: formInputs,
	}
	m.refresh()

	return m, nil
}

// refresh recomputes the visible contacts and label list from storage
func (m *Model) refresh() {
	m.state.Search = m.search.Value()
	m.visible = contact.ComputeView(m.manager.Contacts(), m.state)
	m.labels = m.manager.Labels()
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// current returns the contact under the cursor, or nil
func (m *Model) current() *contact.Contact {
	if len(m.visible) == 0 || m.selected >= len(m.visible) {
		return nil
	}
	return &m.visible[m.selected]
}

// targets returns the checked ids, falling back to the cursor
func (m *Model) targets() []int {
	if len(m.checked) > 0 {
		ids := make([]int, 0, len(m.checked))
		for id := range m.checked {
			ids = append(ids, id)
		}
		return ids
	}
	if c := m.current(); c != nil {
		return []int{c.ID}
	}
	return nil
}

// report records an operation result on the status line
func (m *Model) report(result contact.Result) {
	if result.Success {
		m.status = ""
	} else {
		m.status = result.Message
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			listWidth := m.width / 3
			m.search.Width = listWidth - 4
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirmMode {
			return m.updateConfirm(msg)
		}
		if m.formMode {
			return m.updateForm(msg)
		}
		if m.labelPickMode {
			return m.updateLabelPick(msg)
		}
		if m.labelEditMode {
			return m.updateLabelEdit(msg)
		}
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateList handles keys in the main list mode
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "/":
		m.searchMode = true
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
		} else {
			m.checked = make(map[int]bool)
		}
		m.refresh()

	case "1":
		m.state.View = contact.ViewAll
		m.state.Label = ""
		m.refresh()

	case "2":
		m.state.View = contact.ViewFavorite
		m.state.Label = ""
		m.refresh()

	case "3":
		m.state.View = contact.ViewTrash
		m.state.Label = ""
		m.refresh()

	case "s":
		if m.state.Sort == contact.SortAZ {
			m.state.Sort = contact.SortZA
		} else {
			m.state.Sort = contact.SortAZ
		}
		m.refresh()

	case " ":
		if c := m.current(); c != nil {
			if m.checked[c.ID] {
				delete(m.checked, c.ID)
			} else {
				m.checked[c.ID] = true
			}
		}

	case "a":
		m.formMode = true
		m.editingID = 0
		m.formField = 0
		for i := range m.formInputs {
			m.formInputs[i].SetValue("")
			m.formInputs[i].Blur()
		}
		m.formInputs[0].Focus()
		m.status = ""
		return m, textinput.Blink

	case "e":
		if c := m.current(); c != nil {
			m.formMode = true
			m.editingID = c.ID
			m.formField = 0
			m.formInputs[FormFieldName].SetValue(c.Name)
			m.formInputs[FormFieldPhone].SetValue(c.Phone)
			m.formInputs[FormFieldEmail].SetValue(c.Email)
			m.formInputs[FormFieldAddress].SetValue(c.Address)
			m.formInputs[FormFieldAvatar].SetValue(c.Avatar)
			m.formInputs[FormFieldLabel].SetValue(c.Label)
			for i := range m.formInputs {
				m.formInputs[i].Blur()
			}
			m.formInputs[0].Focus()
			m.status = ""
			return m, textinput.Blink
		}

	case "f":
		if c := m.current(); c != nil {
			m.report(m.manager.ToggleFavorite(c.ID))
			m.refresh()
		}

	case "d":
		ids := m.targets()
		if len(ids) == 0 {
			break
		}
		if m.state.View == contact.ViewTrash {
			// In the trash, delete means delete forever
			manager := m.manager
			m.confirmMode = true
			m.confirmPrompt = fmt.Sprintf("Permanently delete %d contact(s)? This cannot be undone.", len(ids))
			m.confirmAction = func() contact.Result {
				return manager.BulkPermanentlyDelete(ids)
			}
		} else {
			m.report(m.manager.BulkSoftDelete(ids))
			m.checked = make(map[int]bool)
			m.refresh()
		}

	case "u":
		if m.state.View == contact.ViewTrash {
			ids := m.targets()
			if len(ids) > 0 {
				m.report(m.manager.BulkRestore(ids))
				m.checked = make(map[int]bool)
				m.refresh()
			}
		}

	case "x":
		if m.state.View == contact.ViewTrash {
			manager := m.manager
			m.confirmMode = true
			m.confirmPrompt = "Delete all trash contacts?"
			m.confirmAction = func() contact.Result {
				return manager.EmptyTrash()
			}
		}

	case "l":
		if len(m.labels) > 0 {
			m.labelPickMode = true
			m.labelApply = false
			m.labelSelected = 0
		}

	case "L":
		if len(m.checked) > 0 {
			m.labelPickMode = true
			m.labelApply = true
			m.labelSelected = 0
		}

	case "n":
		m.labelEditMode = true
		m.renaming = ""
		m.labelInput.SetValue("")
		m.labelInput.Focus()
		return m, textinput.Blink

	case "r":
		if m.state.View == contact.ViewLabel {
			m.labelEditMode = true
			m.renaming = m.state.Label
			m.labelInput.SetValue(m.state.Label)
			m.labelInput.Focus()
			return m, textinput.Blink
		}

	case "D":
		if m.state.View == contact.ViewLabel {
			manager := m.manager
			label := m.state.Label
			m.confirmMode = true
			m.confirmPrompt = fmt.Sprintf("Delete label %q? All contacts using this label will be cleared.", label)
			m.confirmAction = func() contact.Result {
				return manager.DeleteLabel(label)
			}
		}
	}

	return m, nil
}

// updateSearch handles keys while the search input is focused
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchMode = false
		m.search.Blur()
		m.search.SetValue("")
		m.refresh()
		return m, nil
	case "enter":
		m.searchMode = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

// updateForm handles keys in the add/edit form
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.formMode = false
		for i := range m.formInputs {
			m.formInputs[i].Blur()
		}
		m.status = ""
		return m, nil

	case "tab", "down":
		if m.formField < FormFieldCount-1 {
			m.formInputs[m.formField].Blur()
			m.formField++
			m.formInputs[m.formField].Focus()
		}
		return m, textinput.Blink

	case "shift+tab", "up":
		if m.formField > 0 {
			m.formInputs[m.formField].Blur()
			m.formField--
			m.formInputs[m.formField].Focus()
		}
		return m, textinput.Blink

	case "enter":
		result := m.saveForm()
		if result.Success {
			m.formMode = false
			for i := range m.formInputs {
				m.formInputs[i].Blur()
			}
			m.status = ""
			m.refresh()
		} else {
			// Stay in the form so the input can be corrected
			m.status = result.Message
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.formField], cmd = m.formInputs[m.formField].Update(msg)
	return m, cmd
}

// saveForm submits the form through the lifecycle manager
func (m *Model) saveForm() contact.Result {
	if m.editingID != 0 {
		name := m.formInputs[FormFieldName].Value()
		phone := m.formInputs[FormFieldPhone].Value()
		email := m.formInputs[FormFieldEmail].Value()
		address := m.formInputs[FormFieldAddress].Value()
		avatar := m.formInputs[FormFieldAvatar].Value()
		label := m.formInputs[FormFieldLabel].Value()
		return m.manager.Edit(m.editingID, contact.Patch{
			Name:    &name,
			Phone:   &phone,
			Email:   &email,
			Address: &address,
			Avatar:  &avatar,
			Label:   &label,
		})
	}

	return m.manager.Add(contact.Contact{
		Name:    m.formInputs[FormFieldName].Value(),
		Phone:   m.formInputs[FormFieldPhone].Value(),
		Email:   m.formInputs[FormFieldEmail].Value(),
		Address: m.formInputs[FormFieldAddress].Value(),
		Avatar:  m.formInputs[FormFieldAvatar].Value(),
		Label:   m.formInputs[FormFieldLabel].Value(),
	})
}

// updateLabelPick handles the label picker overlay
func (m Model) updateLabelPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Applying offers an extra "(none)" entry to clear labels
	count := len(m.labels)
	if m.labelApply {
		count++
	}

	switch msg.String() {
	case "esc":
		m.labelPickMode = false
		return m, nil

	case "j", "down":
		if m.labelSelected < count-1 {
			m.labelSelected++
		}

	case "k", "up":
		if m.labelSelected > 0 {
			m.labelSelected--
		}

	case "enter":
		if m.labelApply {
			label := ""
			if m.labelSelected > 0 {
				label = m.labels[m.labelSelected-1]
			}
			m.report(m.manager.BulkSetLabel(m.targets(), label))
			m.checked = make(map[int]bool)
		} else {
			m.state.View = contact.ViewLabel
			m.state.Label = m.labels[m.labelSelected]
		}
		m.labelPickMode = false
		m.refresh()
	}

	return m, nil
}

// updateLabelEdit handles the label add/rename input
func (m Model) updateLabelEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.labelEditMode = false
		m.labelInput.Blur()
		m.status = ""
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.labelInput.Value())
		var result contact.Result
		if m.renaming != "" {
			result = m.manager.RenameLabel(m.renaming, name)
			if result.Success {
				m.state.Label = name
			}
		} else {
			result = m.manager.AddLabel(name)
		}
		if result.Success {
			m.labelEditMode = false
			m.labelInput.Blur()
			m.status = ""
			m.refresh()
		} else {
			m.status = result.Message
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

// updateConfirm handles the yes/no confirmation overlay
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.report(m.confirmAction())
		m.checked = make(map[int]bool)
		m.confirmMode = false
		m.confirmAction = nil
		m.refresh()
	default:
		// Any other key cancels
		m.confirmMode = false
		m.confirmAction = nil
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	listWidth := m.width / 3
	detailWidth := m.width - listWidth - 3

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(listWidth).Height(m.height-3).Render(m.renderList(listWidth, m.height-3)),
		borderStyle.Width(detailWidth).Height(m.height-3).Render(m.renderDetail()),
	)

	view := lipgloss.JoinVertical(lipgloss.Left, content, m.renderHelp())

	if m.confirmMode {
		return m.renderConfirm()
	}
	if m.formMode {
		return m.renderForm()
	}
	if m.labelPickMode {
		return m.renderLabelPick()
	}
	if m.labelEditMode {
		return m.renderLabelEdit()
	}

	return view
}

// viewTitle names the active view for the list header
func (m Model) viewTitle() string {
	switch m.state.View {
	case contact.ViewFavorite:
		return "Favorites"
	case contact.ViewTrash:
		return "Trash"
	case contact.ViewLabel:
		return "Label: " + m.state.Label
	default:
		return "Contacts"
	}
}

// renderList renders the contact list pane
func (m Model) renderList(width, height int) string {
	var lines []string

	if m.searchMode || m.search.Value() != "" {
		lines = append(lines, m.search.View(), "")
		height -= 2
	}

	header := fmt.Sprintf("%s (%d) %s", m.viewTitle(), len(m.visible), m.state.Sort)
	if len(m.checked) > 0 {
		header += fmt.Sprintf(" [%d selected]", len(m.checked))
	}
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("─", width-2))

	visibleHeight := height - 2
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	for i := startIdx; i < len(m.visible) && i < startIdx+visibleHeight; i++ {
		c := m.visible[i]

		var line string
		if m.checked[c.ID] {
			line = "▪ "
		} else {
			line = "  "
		}

		if c.Favorite {
			line += favoriteStyle.Render("★") + " "
		} else {
			line += "  "
		}

		line += c.Name

		if c.Label != "" {
			line += " " + labelStyle.Render("["+c.Label+"]")
		}

		if i == m.selected {
			line = selectedStyle.Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders the selected contact's card
func (m Model) renderDetail() string {
	c := m.current()
	if c == nil {
		return "No contact selected"
	}

	var lines []string
	lines = append(lines, c.Format())

	if c.Avatar != "" {
		lines = append(lines, "", "Avatar: "+c.Avatar)
	}
	if c.Label != "" {
		lines = append(lines, "", "Label: "+c.Label)
	}
	lines = append(lines, "", "Created: "+c.CreatedAt.Format("2006-01-02 15:04"))
	lines = append(lines, "Updated: "+c.UpdatedAt.Format("2006-01-02 15:04"))

	if c.Deleted() {
		lines = append(lines, "", trashStyle.Render(
			"In trash since "+c.DeletedTime().Format("2006-01-02")))
	}

	if m.status != "" {
		lines = append(lines, "", statusStyle.Render(m.status))
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the key hints line
func (m Model) renderHelp() string {
	if m.state.View == contact.ViewTrash {
		return labelStyle.Render("j/k: move • space: select • u: restore • d: delete forever • x: empty trash • 1: contacts • q: quit")
	}
	return labelStyle.Render("j/k: move • a: add • e: edit • f: favorite • d: trash • space: select • /: search • s: sort • 1/2/3: views • l: labels • q: quit")
}

// renderForm renders the add/edit overlay
func (m Model) renderForm() string {
	var lines []string

	if m.editingID != 0 {
		lines = append(lines, "Edit Contact", "")
	} else {
		lines = append(lines, "New Contact", "")
	}

	for i, input := range m.formInputs {
		marker := "  "
		if i == m.formField {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-11s %s", marker, formFieldNames[i]+":", input.View()))
	}

	lines = append(lines, "")
	if m.status != "" {
		lines = append(lines, trashStyle.Render(m.status), "")
	}
	lines = append(lines, labelStyle.Render("tab: next field • enter: save • esc: cancel"))

	return borderStyle.Padding(1, 2).Render(strings.Join(lines, "\n"))
}

// renderLabelPick renders the label picker overlay
func (m Model) renderLabelPick() string {
	var lines []string

	if m.labelApply {
		lines = append(lines, fmt.Sprintf("Apply label to %d contact(s)", len(m.checked)), "")
		entries := append([]string{"(none)"}, m.labels...)
		for i, l := range entries {
			if i == m.labelSelected {
				lines = append(lines, selectedStyle.Render("> "+l))
			} else {
				lines = append(lines, "  "+l)
			}
		}
	} else {
		lines = append(lines, "View label", "")
		for i, l := range m.labels {
			if i == m.labelSelected {
				lines = append(lines, selectedStyle.Render("> "+l))
			} else {
				lines = append(lines, "  "+l)
			}
		}
	}

	lines = append(lines, "", labelStyle.Render("enter: choose • esc: cancel"))
	return borderStyle.Padding(1, 2).Render(strings.Join(lines, "\n"))
}

// renderLabelEdit renders the label name input overlay
func (m Model) renderLabelEdit() string {
	title := "New Label"
	if m.renaming != "" {
		title = "Rename Label"
	}

	var lines []string
	lines = append(lines, title, "", m.labelInput.View(), "")
	if m.status != "" {
		lines = append(lines, trashStyle.Render(m.status), "")
	}
	lines = append(lines, labelStyle.Render("enter: save • esc: cancel"))

	return borderStyle.Padding(1, 2).Render(strings.Join(lines, "\n"))
}

// renderConfirm renders the yes/no overlay
func (m Model) renderConfirm() string {
	return borderStyle.Padding(1, 2).Render(
		m.confirmPrompt + "\n\n" + labelStyle.Render("y: confirm • any other key: cancel"))
}
