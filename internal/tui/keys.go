package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding

	// Menu
	Board   key.Binding
	Editor  key.Binding
	Finance key.Binding

	// Board actions
	Expand    key.Binding
	TogglePay key.Binding
	EditNotes key.Binding
	CopyLink  key.Binding

	// Form actions
	Submit  key.Binding
	FeeUp   key.Binding
	FeeDown key.Binding

	Escape    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Board: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "randevu takvimi"),
		),
		Editor: key.NewBinding(
			key.WithKeys("2", "n"),
			key.WithHelp("2/n", "yeni seans"),
		),
		Finance: key.NewBinding(
			key.WithKeys("3", "f"),
			key.WithHelp("3/f", "finansal durum"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "aç/kapat"),
		),
		TogglePay: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "ödeme alındı"),
		),
		EditNotes: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "notlar"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "whatsapp linkini kopyala"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "seansı kaydet"),
		),
		FeeUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "ücret +"),
		),
		FeeDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "ücret -"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "geri"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "yardım"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "çıkış"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "çıkış"),
		),
	}
}

// ShortHelp returns a short help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Board, k.Editor, k.Finance, k.Help, k.Quit}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Board, k.Editor, k.Finance, k.Next},
		{k.Up, k.Down, k.Expand, k.TogglePay, k.EditNotes, k.CopyLink},
		{k.Submit, k.FeeUp, k.FeeDown, k.Prev},
		{k.Escape, k.Help, k.Quit},
	}
}
