package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marina-studio/packtrack/internal/service"
	"github.com/marina-studio/packtrack/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	draftStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// statusStyles mirrors the per-status accent colors of the list.
var statusStyles = map[store.Status]lipgloss.Style{
	store.StatusReceived:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	store.StatusPacking:   lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	store.StatusShipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	store.StatusInTransit: lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
	store.StatusDelivered: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
}

func statusLabel(s store.Status) string {
	if st, ok := statusStyles[s]; ok {
		return st.Render("● " + string(s))
	}
	return string(s)
}

func (a *App) View() string {
	var body string
	switch a.modal {
	case modalAdd:
		body = a.renderAddModal()
	case modalEdit:
		body = a.renderEditModal()
	default:
		body = a.renderList()
	}
	if a.status != "" {
		body += "\n" + a.status
	}
	return body
}

func (a *App) renderList() string {
	title := titleStyle.Render("מעקב משלוחים")
	switch a.state {
	case listLoading:
		return title + "\n" + faintStyle.Render("טוען חבילות...")
	case listError:
		return title + "\n" + errorStyle.Render(msgLoadFailed) + "\n" + helpStyle.Render("[r] נסה שוב  [q] יציאה")
	}

	out := title + "\n"
	if len(a.packages) == 0 {
		out += faintStyle.Render("אין חבילות עדיין") + "\n"
	}
	for i, p := range a.packages {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		tracking := p.TrackingNumber
		if tracking == "" {
			tracking = faintStyle.Render("(אין מספר מעקב)")
		}
		out += fmt.Sprintf("%s %s  %-22s  %-18s  %-12s  %s  %s\n",
			marker,
			p.OrderDate.In(a.tz).Format(a.dateFmt),
			p.ProductName,
			p.Customer.Name,
			p.Customer.Phone,
			tracking,
			statusLabel(p.Status),
		)
	}
	out += helpStyle.Render("[n] חבילה חדשה  [enter] עריכה  [r] רענון  [q] יציאה")
	return out
}

func (a *App) renderField(label, value string, field formField) string {
	cursor := " "
	if a.form.focusedField() == field {
		cursor = "▶"
	}
	return fmt.Sprintf("%s %s: %s", cursor, label, value)
}

func (a *App) renderAddModal() string {
	out := titleStyle.Render("הוספת חבילה חדשה") + "\n"
	out += a.renderField("שם הלקוח/ה", a.form.customerName, fieldName) + "\n"
	out += a.renderField("טלפון", a.form.customerPhone, fieldPhone) + "\n"
	out += a.renderField("שם המוצר", a.form.productName, fieldProduct) + "\n"
	out += a.renderField("מספר מעקב", a.form.trackingNumber, fieldTracking) + "\n"

	if hint := a.duplicateHint(); hint != "" {
		out += faintStyle.Render(hint) + "\n"
	}

	submit := "[enter] הוסף"
	if a.submitting {
		submit = "שומר..."
	}
	out += helpStyle.Render(submit + "  [tab] שדה הבא  [esc] ביטול")
	return out
}

// duplicateHint surfaces likely existing customers for the typed
// name/phone. Informational only; a new customer is created either way.
func (a *App) duplicateHint() string {
	matches := service.FindSimilarCustomers(a.form.customerName, a.form.customerPhone, a.customers())
	if len(matches) == 0 {
		return ""
	}
	names := make([]string, 0, len(matches))
	for _, c := range matches {
		names = append(names, fmt.Sprintf("%s (%s)", c.Name, c.Phone))
	}
	return "ייתכן שהלקוח/ה כבר במערכת: " + strings.Join(names, ", ")
}

func (a *App) renderEditModal() string {
	out := titleStyle.Render("עריכת פרטי חבילה") + "\n"
	out += a.renderField("שם הלקוח/ה", a.form.customerName, fieldName) + "\n"
	out += a.renderField("טלפון", a.form.customerPhone, fieldPhone) + "\n"
	out += a.renderField("שם המוצר", a.form.productName, fieldProduct) + "\n"
	out += a.renderField("מספר מעקב", a.form.trackingNumber, fieldTracking) + "\n"
	out += a.renderField("סטטוס", statusLabel(a.form.status)+"  ←/→", fieldStatus) + "\n"

	if a.generating {
		out += "\n" + faintStyle.Render("מייצר הודעה...") + "\n"
	} else if a.draft != "" {
		out += "\nהודעה מוצעת ללקוח/ה (ניתן לערוך):\n"
		draft := a.draft
		if a.form.focusedField() == fieldDraft {
			draft += "▌"
		}
		out += draftStyle.Render(draft) + "\n"
	}

	save := "[enter] שמור שינויים"
	switch {
	case a.submitting:
		save = "שומר..."
	case !a.dirty():
		save = faintStyle.Render("(אין שינויים לשמירה)")
	}
	out += helpStyle.Render(save + "  [tab] שדה הבא  [esc] ביטול")
	return out
}
