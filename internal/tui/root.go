package tui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iammorganparry/seans/internal/board"
	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/finance"
	"github.com/iammorganparry/seans/internal/models"
)

// ViewMode represents the current menu selection
type ViewMode int

const (
	ViewModeBoard   ViewMode = iota // Randevu Takvimi
	ViewModeEditor                  // Yeni Seans Ekle
	ViewModeFinance                 // Finansal Durum
	viewModeCount
)

var menuTitles = [viewModeCount]string{
	ViewModeBoard:   "Randevu Takvimi",
	ViewModeEditor:  "Yeni Seans Ekle",
	ViewModeFinance: "Finansal Durum",
}

// linkCopiedMsg is sent after a reminder link was written to the clipboard.
type linkCopiedMsg struct {
	client string
	err    error
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// Deps are the components the TUI routes between.
type Deps struct {
	Editor     *editor.Editor
	Board      *board.Board
	Aggregator *finance.Aggregator
	Currency   string
	FeeStep    int64
	Logger     *slog.Logger
}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int

	viewMode ViewMode
	showHelp bool

	editor     *editor.Editor
	board      *board.Board
	aggregator *finance.Aggregator
	currency   string
	logger     *slog.Logger

	// Editor state
	form       formModel
	formStatus string
	formErr    bool

	// Board state
	cursor       int
	expanded     map[string]bool
	notes        textarea.Model
	editingNotes string // id of the session whose notes are being edited
	boardStatus  string

	// Finance state
	history table.Model

	keys KeyMap
	help help.Model
}

// NewRootModel creates the root model over the given components.
func NewRootModel(deps Deps) Model {
	notes := textarea.New()
	notes.Placeholder = "Notlarınızı buraya girin..."
	notes.ShowLineNumbers = false
	notes.SetWidth(60)
	notes.SetHeight(4)

	history := table.New(
		table.WithColumns(historyColumns(deps.Currency)),
		table.WithHeight(10),
	)

	m := Model{
		viewMode:   ViewModeBoard,
		editor:     deps.Editor,
		board:      deps.Board,
		aggregator: deps.Aggregator,
		currency:   deps.Currency,
		logger:     deps.Logger,
		form:       newFormModel(deps.FeeStep),
		expanded:   make(map[string]bool),
		notes:      notes,
		history:    history,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	m.form.reset(m.editor.Today())
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - 8; w > 20 {
			m.notes.SetWidth(w)
		}
		return m, nil

	case linkCopiedMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", "error", msg.err)
			m.boardStatus = ErrorStyle.Render("Link kopyalanamadı: " + msg.err.Error())
		} else {
			m.boardStatus = SuccessStyle.Render(msg.client + " için hatırlatma linki kopyalandı.")
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			return m, tea.Quit
		}
		switch m.viewMode {
		case ViewModeEditor:
			return m.updateEditor(msg)
		case ViewModeBoard:
			if m.editingNotes != "" {
				return m.updateNotes(msg)
			}
		}
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if mode, ok := m.menuSelection(msg); ok {
			return m.switchTo(mode)
		}
		switch m.viewMode {
		case ViewModeBoard:
			return m.updateBoard(msg)
		case ViewModeFinance:
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// menuSelection maps a key to the menu entry it selects.
func (m Model) menuSelection(msg tea.KeyMsg) (ViewMode, bool) {
	switch {
	case key.Matches(msg, m.keys.Board):
		return ViewModeBoard, true
	case key.Matches(msg, m.keys.Editor):
		return ViewModeEditor, true
	case key.Matches(msg, m.keys.Finance):
		return ViewModeFinance, true
	case key.Matches(msg, m.keys.Next):
		return (m.viewMode + 1) % viewModeCount, true
	case key.Matches(msg, m.keys.Prev):
		return (m.viewMode + viewModeCount - 1) % viewModeCount, true
	}
	return m.viewMode, false
}

// switchTo routes to exactly one of the three components.
func (m Model) switchTo(mode ViewMode) (tea.Model, tea.Cmd) {
	m.viewMode = mode
	m.showHelp = false
	m.boardStatus = ""
	switch mode {
	case ViewModeEditor:
		cmd := m.form.setFocus(fieldClient)
		return m, cmd
	case ViewModeFinance:
		m.refreshHistory()
		m.history.Focus()
	case ViewModeBoard:
		if n := len(m.board.Sessions()); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}
	}
	return m, nil
}

// updateEditor handles keys while the new-session form is shown. Every
// printable key goes to the focused input.
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.switchTo(ViewModeBoard)
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.Next):
		cmd := m.form.next()
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.form.prev()
		return m, cmd
	case m.form.focus == fieldFee && key.Matches(msg, m.keys.FeeUp):
		m.form.stepFee(1)
		return m, nil
	case m.form.focus == fieldFee && key.Matches(msg, m.keys.FeeDown):
		m.form.stepFee(-1)
		return m, nil
	case msg.Type == tea.KeyUp:
		cmd := m.form.prev()
		return m, cmd
	case msg.Type == tea.KeyDown:
		cmd := m.form.next()
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm hands the form to the editor. On failure the typed values stay
// in place for correction.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	in, err := m.form.input()
	if err != nil {
		m.formErr = true
		m.formStatus = formErrorText(err)
		return m, nil
	}

	sess, err := m.editor.Submit(in)
	if err != nil {
		m.formErr = true
		m.formStatus = formErrorText(err)
		return m, nil
	}

	m.formErr = false
	m.formStatus = editor.Acknowledgement(sess)
	cmd := m.form.reset(m.editor.Today())
	return m, cmd
}

func formErrorText(err error) string {
	switch {
	case errors.Is(err, editor.ErrMissingRequired):
		return editor.MissingRequiredMessage
	case errors.Is(err, editor.ErrNegativeFee):
		return "Seans ücreti negatif olamaz."
	case errors.Is(err, editor.ErrDateInPast):
		return "Tarih bugünden önce olamaz."
	case errors.Is(err, models.ErrInvalidDate):
		return "Tarih YYYY-AA-GG biçiminde olmalı."
	case errors.Is(err, models.ErrInvalidClock):
		return "Saat SS:DD biçiminde olmalı."
	case errors.Is(err, errInvalidFee):
		return "Seans ücreti bir sayı olmalı."
	default:
		return err.Error()
	}
}

// updateBoard handles navigation and per-session actions on the board.
func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sessions := m.board.Sessions()
	if len(sessions) == 0 {
		return m, nil
	}
	if m.cursor >= len(sessions) {
		m.cursor = len(sessions) - 1
	}
	sel := sessions[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(sessions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Expand):
		m.expanded[sel.ID] = !m.expanded[sel.ID]
	case key.Matches(msg, m.keys.TogglePay):
		paid, err := m.board.TogglePaid(sel.ID)
		if err != nil {
			m.boardStatus = ErrorStyle.Render(err.Error())
			return m, nil
		}
		m.expanded[sel.ID] = true
		m.logger.Info("payment toggled", "session_id", sel.ID, "paid", paid)
	case key.Matches(msg, m.keys.EditNotes):
		m.expanded[sel.ID] = true
		m.editingNotes = sel.ID
		m.notes.SetValue(m.board.Field(sel).Notes)
		cmd := m.notes.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.CopyLink):
		link := m.board.Link(sel)
		client := sel.ClientName
		return m, func() tea.Msg {
			return linkCopiedMsg{client: client, err: copyToClipboard(link)}
		}
	}
	return m, nil
}

// updateNotes feeds keys to the notes area and writes its text back to the
// session after every key.
func (m Model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.notes.Blur()
		m.editingNotes = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	if err := m.board.SetNotes(m.editingNotes, m.notes.Value()); err != nil {
		m.boardStatus = ErrorStyle.Render(err.Error())
	}
	return m, cmd
}

// refreshHistory reloads the finance table in store order.
func (m *Model) refreshHistory() {
	report := m.aggregator.Report()
	rows := make([]table.Row, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, table.Row{
			r.Date.String(),
			r.ClientName,
			r.Fee.String(),
			paidMark(r.Paid),
			firstLine(r.Notes),
		})
	}
	m.history.SetRows(rows)
}

func historyColumns(currency string) []table.Column {
	return []table.Column{
		{Title: "Tarih", Width: 10},
		{Title: "Danışan", Width: 20},
		{Title: "Ücret (" + currency + ")", Width: 10},
		{Title: "Ödendi", Width: 6},
		{Title: "Notlar", Width: 30},
	}
}

func paidMark(paid bool) string {
	if paid {
		return "✓"
	}
	return "✗"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}

func (m Model) money(v interface{ String() string }) string {
	return v.String() + " " + m.currency
}

func (m Model) View() string {
	var body string
	switch m.viewMode {
	case ViewModeEditor:
		body = m.editorView()
	case ViewModeFinance:
		body = m.financeView()
	default:
		body = m.boardView()
	}

	footer := m.help.View(m.keys)
	if m.showHelp {
		footer = HelpStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderMenu(),
		"",
		body,
		"",
		footer,
	)
}

// renderHeader renders the title bar
func (m Model) renderHeader() string {
	title := TitleStyle.Render("🧠 Terapist Asistanı")
	return lipgloss.NewStyle().PaddingLeft(1).Render(title)
}

func (m Model) renderMenu() string {
	tabs := make([]string, 0, viewModeCount)
	for i, title := range menuTitles {
		if ViewMode(i) == m.viewMode {
			tabs = append(tabs, ActiveTabStyle.Render(title))
		} else {
			tabs = append(tabs, TabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) editorView() string {
	var b strings.Builder
	b.WriteString(SectionHeaderStyle.Render("Yeni Seans Oluştur"))
	b.WriteString("\n")
	b.WriteString(m.form.view(m.currency))
	if m.formStatus != "" {
		if m.formErr {
			b.WriteString(ErrorStyle.Render(m.formStatus))
		} else {
			b.WriteString(SuccessStyle.Render(m.formStatus))
		}
		b.WriteString("\n")
	}
	b.WriteString(DimStyle.Render("tab/↑↓ alan değiştir • enter seansı kaydet • esc geri"))
	return b.String()
}

func (m Model) boardView() string {
	var b strings.Builder
	b.WriteString(SectionHeaderStyle.Render("📅 Yaklaşan Seanslar"))
	b.WriteString("\n")

	if m.board.Empty() {
		b.WriteString(InfoStyle.Render(board.EmptyNotice))
		return b.String()
	}

	for i, sess := range m.board.Sessions() {
		b.WriteString(m.renderPanel(sess, i == m.cursor))
		b.WriteString("\n")
	}
	if m.boardStatus != "" {
		b.WriteString(m.boardStatus)
		b.WriteString("\n")
	}
	return b.String()
}

// renderPanel renders one expandable session panel.
func (m Model) renderPanel(sess *models.Session, selected bool) string {
	heading := PanelHeadingStyle.Render("▸ " + sess.Heading())
	if selected {
		heading = SelectedHeadingStyle.Render("▸ " + sess.Heading())
	}
	if !m.expanded[sess.ID] {
		if selected {
			return SelectedPanelStyle.Render(heading)
		}
		return PanelStyle.Render(heading)
	}

	field := m.board.Field(sess)
	var b strings.Builder
	b.WriteString(strings.Replace(heading, "▸", "▾", 1))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Danışan: ") + sess.ClientName + "\n")
	b.WriteString(LabelStyle.Render("İletişim: ") + sess.Phone + "\n")
	b.WriteString(LabelStyle.Render("Ücret: ") + m.money(sess.Fee) + "\n")
	if field.Paid {
		b.WriteString(PaidStyle.Render("[x] Ödeme Alındı") + "\n")
	} else {
		b.WriteString(UnpaidStyle.Render("[ ] Ödeme Alındı") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("📱 WhatsApp Hatırlatması Gönder") + "\n")
	b.WriteString(LinkStyle.Render(m.board.Link(sess)) + "\n")
	b.WriteString(DimStyle.Render("Linke tıkladığınızda WhatsApp açılır ve mesaj hazır gelir.") + "\n")
	if !board.HasDigits(sess.Phone) {
		b.WriteString(WarningStyle.Render("Telefon numarası yok; link numarasız oluşturuldu.") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Seans Notları:") + "\n")
	if m.editingNotes == sess.ID {
		b.WriteString(m.notes.View())
	} else if field.Notes == "" {
		b.WriteString(DimStyle.Render("Notlarınızı buraya girin..."))
	} else {
		b.WriteString(field.Notes)
	}

	if selected {
		return SelectedPanelStyle.Render(b.String())
	}
	return PanelStyle.Render(b.String())
}

func (m Model) financeView() string {
	var b strings.Builder
	b.WriteString(SectionHeaderStyle.Render("💰 Gelir Takibi"))
	b.WriteString("\n")

	report := m.aggregator.Report()
	if report.Empty() {
		b.WriteString(WarningStyle.Render(finance.EmptyWarning))
		return b.String()
	}

	t := report.Totals
	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMetric("Toplam Beklenen", m.money(t.Expected), ""),
		m.renderMetric("Tahsil Edilen", m.money(t.Received), SuccessStyle.Render("↑ "+m.money(t.Received))),
		m.renderMetric("Bekleyen Ödeme", m.money(t.Pending), ErrorStyle.Render("↓ -"+m.money(t.Pending))),
	)
	b.WriteString(metrics)
	b.WriteString("\n\n")
	b.WriteString(SectionHeaderStyle.Render("Seans Geçmişi Tablosu"))
	b.WriteString("\n")
	b.WriteString(m.history.View())
	return b.String()
}

func (m Model) renderMetric(label, value, delta string) string {
	content := DimStyle.Render(label) + "\n" + MetricValueStyle.Render(value)
	if delta != "" {
		content += "\n" + delta
	}
	return MetricStyle.Render(content)
}
