package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/ombre/internal/config"
	"github.com/renato0307/ombre/internal/domain"
	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/services"
	"github.com/renato0307/ombre/internal/theme"
)

// Status messages shown after actions
const (
	statusCopied        = "Copied CSS to clipboard."
	statusCopyFailed    = "Copy failed. Try selecting text manually."
	statusRandomCurated = "Random curated gradient."
	statusRandomized    = "Random gradient generated."
)

const (
	defaultWidth = 80
	fastStep     = 16
	maxPreviewW  = 72
	previewRows  = 6
	statusHeight = 2
)

type uiState int

const (
	stateEditor uiState = iota
	stateCommandPalette
	stateDirectionPicker
	stateHelp
)

// focusArea is the control that receives editing keys
type focusArea int

const (
	focusPicker1 focusArea = iota
	focusText1
	focusPicker2
	focusText2
	focusDirection
	focusCount
)

// slot returns the color slot the area belongs to
func (f focusArea) slot() (domain.Slot, bool) {
	switch f {
	case focusPicker1, focusText1:
		return domain.Slot1, true
	case focusPicker2, focusText2:
		return domain.Slot2, true
	}
	return 0, false
}

func (f focusArea) isText() bool {
	return f == focusText1 || f == focusText2
}

func (f focusArea) isPicker() bool {
	return f == focusPicker1 || f == focusPicker2
}

// ModelOptions carries the presentation settings for NewModel
type ModelOptions struct {
	DevMode          bool
	Keys             config.KeyBindingsConfig
	StartMode        domain.PaletteMode
	StatusClearDelay time.Duration
}

type Model struct {
	channels        [2]domain.Channel          // Selected channel per picker
	clipboard       *services.ClipboardService // Clipboard writes for the copy action
	commandPalette  *CommandPalette            // Command palette overlay
	devMode         bool                       // Development mode (shows version info in headers)
	directionForm   *Dialog                    // Direction select dialog
	focus           focusArea
	gradient        *domain.GradientState // Source of truth for colors and direction
	height          int
	help            help.Model
	helpScreen      *Dialog // Help screen dialog
	inputs          [2]textinput.Model
	keys            KeyMap
	pickedDirection *domain.Direction // Direction dialog value (pointer to persist across updates)
	startMode       domain.PaletteMode
	state           uiState
	status          *StatusManager
	width           int
}

// NewModel creates the editor model around an existing gradient state.
// The state is randomized in opts.StartMode when the program starts.
func NewModel(gradient *domain.GradientState, clipboard *services.ClipboardService, opts ModelOptions) *Model {
	m := &Model{
		clipboard:       clipboard,
		devMode:         opts.DevMode,
		gradient:        gradient,
		help:            help.New(),
		inputs:          [2]textinput.Model{newHexInput(), newHexInput()},
		keys:            NewKeyMap(opts.Keys),
		pickedDirection: new(domain.Direction),
		startMode:       opts.StartMode,
		state:           stateEditor,
		status:          NewStatusManager(opts.StatusClearDelay),
		width:           defaultWidth,
	}
	m.syncInputs()
	return m
}

func (m *Model) Init() tea.Cmd {
	return dispatchMsg(RandomizeMsg{Mode: m.startMode})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages that apply regardless of the active state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case clearStatusMsg:
		m.status.HandleClear(msg)
		return m, nil
	case copyResultMsg:
		return m, m.handleCopyResult(msg)
	}

	switch m.state {
	case stateEditor:
		return m.updateEditor(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateDirectionPicker:
		return m.updateDirectionPicker(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m *Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit
	case ShowHelpMsg:
		contentForm := NewHelpScreen(&m.keys)
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)
	case ShowCommandPaletteMsg:
		m.commandPalette = NewCommandPalette(m.keys)
		m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.state = stateCommandPalette
		return m, m.commandPalette.Init()
	case PickDirectionMsg:
		*m.pickedDirection = m.gradient.Direction()
		m.directionForm = newDirectionDialog(m.gradient.Directions(), m.pickedDirection, m.devMode)
		m.state = stateDirectionPicker
		return m, m.directionForm.Init()
	case RandomizeMsg:
		m.gradient.Randomize(msg.Mode)
		m.syncInputs()
		logging.Logger.Debug("Randomized gradient", "mode", msg.Mode.String(), "gradient", m.gradient.Render().Gradient)
		if msg.Mode == domain.PaletteCurated {
			return m, m.status.SetInfo(statusRandomCurated)
		}
		return m, m.status.SetInfo(statusRandomized)
	case SwapColorsMsg:
		m.gradient.Swap()
		m.syncInputs()
		return m, nil
	case CycleDirectionMsg:
		m.cycleDirection(msg.Step)
		return m, nil
	case CopyCSSMsg:
		return m, copyCSSCmd(m.clipboard, m.gradient.Render().CSS)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward anything else (cursor blink) to the focused text field
	if slot, ok := m.focus.slot(); ok && m.focus.isText() {
		var cmd tea.Cmd
		m.inputs[slot-1], cmd = m.inputs[slot-1].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.keys.Navigation

	if key.Matches(msg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}
	if key.Matches(msg, nav.FocusNext) {
		return m, m.moveFocus(1)
	}
	if key.Matches(msg, nav.FocusPrev) {
		return m, m.moveFocus(-1)
	}

	slot, hasSlot := m.focus.slot()
	switch {
	case m.focus.isText():
		return m.handleTextKey(slot, msg)
	case m.focus.isPicker() && hasSlot:
		if handled, cmd := m.handlePickerKey(slot, msg); handled {
			return m, cmd
		}
	case m.focus == focusDirection:
		switch {
		case key.Matches(msg, nav.Decrease):
			m.cycleDirection(-1)
			return m, nil
		case key.Matches(msg, nav.Increase):
			m.cycleDirection(1)
			return m, nil
		case key.Matches(msg, nav.Edit):
			return m.updateEditor(PickDirectionMsg{})
		}
	}

	dispatcher := NewActionDispatcher()
	for _, def := range GetDispatchableKeys() {
		if key.Matches(msg, m.keys.Binding(def.Name)) {
			return m.updateEditor(dispatcher.Dispatch(def))
		}
	}
	return m, nil
}

// handleTextKey routes keys to a hex field. Every edit is validated
// immediately; a valid value is committed and rewritten in canonical form.
func (m *Model) handleTextKey(slot domain.Slot, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Navigation.Cancel, m.keys.Navigation.Edit) {
		return m, m.setFocus(pickerFocus(slot))
	}

	input := &m.inputs[slot-1]
	before := input.Value()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	if value := input.Value(); value != before {
		if m.gradient.SetFromText(slot, value) && m.gradient.Text(slot) != value {
			input.SetValue(m.gradient.Text(slot))
			input.CursorEnd()
		}
	}
	return m, cmd
}

// handlePickerKey adjusts the selected channel of a picker
func (m *Model) handlePickerKey(slot domain.Slot, msg tea.KeyMsg) (bool, tea.Cmd) {
	nav := m.keys.Navigation
	i := slot - 1

	switch {
	case key.Matches(msg, nav.ChannelUp):
		m.channels[i] = (m.channels[i] + domain.Channel(len(channels)) - 1) % domain.Channel(len(channels))
	case key.Matches(msg, nav.ChannelDown):
		m.channels[i] = (m.channels[i] + 1) % domain.Channel(len(channels))
	case key.Matches(msg, nav.Decrease):
		m.adjustChannel(slot, -1)
	case key.Matches(msg, nav.Increase):
		m.adjustChannel(slot, 1)
	case key.Matches(msg, nav.DecreaseFast):
		m.adjustChannel(slot, -fastStep)
	case key.Matches(msg, nav.IncreaseFast):
		m.adjustChannel(slot, fastStep)
	case key.Matches(msg, nav.Edit):
		return true, m.setFocus(textFocus(slot))
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) adjustChannel(slot domain.Slot, delta int) {
	c := m.gradient.Color(slot).Adjust(m.channels[slot-1], delta)
	m.gradient.SetFromPicker(slot, c)
	m.syncInput(slot)
}

func (m *Model) cycleDirection(step int) {
	directions := m.gradient.Directions()
	current := 0
	for i, d := range directions {
		if d == m.gradient.Direction() {
			current = i
			break
		}
	}
	next := ((current+step)%len(directions) + len(directions)) % len(directions)
	m.gradient.SetDirection(directions[next])
}

func (m *Model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	switch {
	case msg.err == nil:
		return m.status.SetInfo(statusCopied)
	case errors.Is(msg.err, services.ErrNothingToCopy):
		return nil
	default:
		m.status.SetError(statusCopyFailed, msg.err)
		logging.Logger.Warn("Copy failed", "error", m.status.Err())
		return nil
	}
}

func (m *Model) moveFocus(step int) tea.Cmd {
	next := (int(m.focus) + step + int(focusCount)) % int(focusCount)
	return m.setFocus(focusArea(next))
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for _, slot := range domain.Slots {
		if f == textFocus(slot) {
			cmd = m.inputs[slot-1].Focus()
			continue
		}
		m.inputs[slot-1].Blur()
	}
	return cmd
}

func pickerFocus(slot domain.Slot) focusArea {
	if slot == domain.Slot2 {
		return focusPicker2
	}
	return focusPicker1
}

func textFocus(slot domain.Slot) focusArea {
	if slot == domain.Slot2 {
		return focusText2
	}
	return focusText1
}

// syncInputs copies the text of both slots into the text fields
func (m *Model) syncInputs() {
	for _, slot := range domain.Slots {
		m.syncInput(slot)
	}
}

func (m *Model) syncInput(slot domain.Slot) {
	input := &m.inputs[slot-1]
	if input.Value() != m.gradient.Text(slot) {
		input.SetValue(m.gradient.Text(slot))
		input.CursorEnd()
	}
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if m.commandPalette.Completed {
		result := m.commandPalette.Result
		m.state = stateEditor
		m.commandPalette = nil

		if result.Cancelled || result.Action == nil {
			return m, nil
		}

		if actionMsg := NewActionDispatcher().Dispatch(*result.Action); actionMsg != nil {
			return m.updateEditor(actionMsg)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateDirectionPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Navigation.Cancel, m.keys.Application.ForceQuit) {
			m.state = stateEditor
			m.directionForm = nil
			return m, nil
		}
	}

	updated, cmd := m.directionForm.Update(msg)
	m.directionForm = updated.(*Dialog)

	if form, ok := m.directionForm.Content().(*huh.Form); ok {
		switch form.State {
		case huh.StateCompleted:
			logging.Logger.Debug("Direction picked", "direction", *m.pickedDirection)
			m.gradient.SetDirection(*m.pickedDirection)
			m.state = stateEditor
			m.directionForm = nil
			return m, nil
		case huh.StateAborted:
			m.state = stateEditor
			m.directionForm = nil
			return m, nil
		}
	}

	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateEditor
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case stateEditor:
		return m.editorView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			palette := m.commandPalette.View()
			return bottomAnchoredOverlay(m.editorView(), palette, m.width, m.height, m.commandPalette.Height())
		}
	case stateDirectionPicker:
		if m.directionForm != nil {
			return m.directionForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	}
	return ""
}

func (m *Model) editorView() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString("\n")

	for _, slot := range domain.Slots {
		focusedSlot, ok := m.focus.slot()
		slotFocused := ok && focusedSlot == slot
		picker := renderPicker(m.gradient.Color(slot), m.channels[slot-1], slotFocused && m.focus.isPicker())
		hex := renderHexField(m.inputs[slot-1], m.gradient.Valid(slot))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, slotLabel(slot, slotFocused), picker, "   ", hex))
		b.WriteString("\n\n")
	}

	b.WriteString(m.directionView())
	b.WriteString("\n\n")

	rendered := m.gradient.Render()
	b.WriteString(renderPreview(rendered.Spec, min(m.width, maxPreviewW), previewRows))
	b.WriteString("\n")
	b.WriteString(theme.CodePanelStyle.Render(rendered.CSS))
	b.WriteString("\n")

	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) directionView() string {
	text := "‹ " + m.gradient.Direction().String() + " ›"
	if m.focus == focusDirection {
		return theme.FocusedLabelStyle.Width(theme.LabelStyle.GetWidth()).Render("Direction") +
			theme.FocusedLabelStyle.Render(text)
	}
	return theme.LabelStyle.Render("Direction") + theme.NormalStyle.Render(text)
}

// statusView always occupies statusHeight lines so the layout does not jump
func (m *Model) statusView() string {
	var text string
	switch m.status.Kind() {
	case StatusInfo:
		text = theme.SuccessStyle.Render(formatStatusForDisplay("", m.status.Message(), m.width))
	case StatusError:
		text = theme.ErrorStyle.Render(formatStatusForDisplay("", m.status.Message(), m.width))
	}
	if lines := strings.Count(text, "\n") + 1; lines < statusHeight {
		text += strings.Repeat("\n ", statusHeight-lines)
	}
	return text
}
