package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/models"
)

// Form field indexes, in tab order.
const (
	fieldClient = iota
	fieldTitle
	fieldDate
	fieldTime
	fieldFee
	fieldPhone
	fieldEmail
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldClient: "Danışan Adı Soyadı",
	fieldTitle:  "Seans Başlığı/Türü (Örn: BDT, İlk Görüşme)",
	fieldDate:   "Tarih (YYYY-AA-GG)",
	fieldTime:   "Saat (SS:DD)",
	fieldFee:    "Seans Ücreti",
	fieldPhone:  "Telefon (905...)",
	fieldEmail:  "E-posta Adresi",
}

// formModel is the new-session form.
type formModel struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	feeStep decimal.Decimal
}

func newFormModel(feeStep int64) formModel {
	f := formModel{feeStep: decimal.NewFromInt(feeStep)}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "❯ "
		ti.PromptStyle = InputPromptStyle
		ti.CharLimit = 200
		ti.Width = 50
		f.inputs[i] = ti
	}
	f.inputs[fieldDate].CharLimit = 10
	f.inputs[fieldDate].Placeholder = "2024-06-01"
	f.inputs[fieldTime].CharLimit = 5
	f.inputs[fieldTime].Placeholder = "09:00"
	f.inputs[fieldPhone].Placeholder = "WhatsApp hatırlatması için gereklidir."
	return f
}

// reset clears every field and pre-fills date, time and fee.
func (f *formModel) reset(date models.Date, clock models.Clock) tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.inputs[fieldDate].SetValue(date.String())
	f.inputs[fieldTime].SetValue(clock.String())
	f.inputs[fieldFee].SetValue("0")
	return f.setFocus(fieldClient)
}

func (f *formModel) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *formModel) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *formModel) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// stepFee moves the fee by one step in the given direction, never below zero.
// An unparseable fee is left alone.
func (f *formModel) stepFee(dir int64) {
	fee, err := parseFee(f.inputs[fieldFee].Value())
	if err != nil {
		return
	}
	fee = fee.Add(f.feeStep.Mul(decimal.NewFromInt(dir)))
	if fee.IsNegative() {
		fee = decimal.Zero
	}
	f.inputs[fieldFee].SetValue(fee.String())
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// input converts the typed values into an editor.Input. Only malformed
// values are reported here; required-field checks belong to the editor.
func (f formModel) input() (editor.Input, error) {
	in := editor.Input{
		ClientName: f.value(fieldClient),
		Title:      f.value(fieldTitle),
		Phone:      f.value(fieldPhone),
		Email:      f.value(fieldEmail),
	}

	if v := f.value(fieldDate); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			return in, err
		}
		in.Date = d
	}
	if v := f.value(fieldTime); v != "" {
		c, err := models.ParseClock(v)
		if err != nil {
			return in, err
		}
		in.Time = c
	}
	fee, err := parseFee(f.value(fieldFee))
	if err != nil {
		return in, err
	}
	in.Fee = fee
	return in, nil
}

func (f formModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

var errInvalidFee = errors.New("invalid fee")

func parseFee(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errInvalidFee, s)
	}
	return d, nil
}

func (f formModel) view(currency string) string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := fieldLabels[i]
		if i == fieldFee {
			label += " (" + currency + ")"
		}
		if i == f.focus {
			b.WriteString(FocusedLabelStyle.Render(label))
		} else {
			b.WriteString(LabelStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	return b.String()
}
