// Package tui is the terminal front-end: a package list with add and
// edit modals, plus LLM-drafted customer notifications on status
// change.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marina-studio/packtrack/internal/config"
	"github.com/marina-studio/packtrack/internal/service"
	"github.com/marina-studio/packtrack/internal/store"
)

// The three user-facing failure strings. Every store error maps to
// exactly one of these; no structured errors cross into the view.
const (
	msgLoadFailed   = "אירעה שגיאה בטעינת החבילות."
	msgCreateFailed = "אירעה שגיאה בהוספת החבילה."
	msgUpdateFailed = "אירעה שגיאה בעדכון פרטי החבילה."
)

type listState string

const (
	listLoading listState = "loading"
	listLoaded  listState = "loaded"
	listError   listState = "error"
)

type modalState string

const (
	modalNone modalState = ""
	modalAdd  modalState = "add"
	modalEdit modalState = "edit"
)

// App ties together the package list and the two modals.
type App struct {
	ctx      context.Context
	store    store.Store
	notifier *service.NotifierService
	cfg      config.Config
	tz       *time.Location
	dateFmt  string

	state    listState
	packages []store.PackageWithCustomer
	cursor   int
	status   string

	modal      modalState
	form       form
	editID     string              // package id being edited
	editOrig   store.PackageUpdate // snapshot for dirty comparison
	submitting bool

	// notification draft state; genSeq tags each in-flight generation
	// so stale completions are dropped (latest request wins)
	genSeq     int
	generating bool
	draft      string
}

func New(ctx context.Context, cfg config.Config, st store.Store, notifier *service.NotifierService, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	dateFmt := cfg.UI.DateFormat
	if dateFmt == "" {
		dateFmt = "02/01/2006"
	}
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		store:    st,
		notifier: notifier,
		tz:       tz,
		dateFmt:  dateFmt,
		state:    listLoading,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadPackages()
}

// commands

func (a *App) loadPackages() tea.Cmd {
	return func() tea.Msg {
		list, err := a.store.ListWithCustomers(a.ctx)
		if err != nil {
			return loadFailedMsg{err}
		}
		return packagesMsg(list)
	}
}

func (a *App) createCmd(pkg store.NewPackage, cust store.NewCustomer) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.Create(a.ctx, pkg, cust); err != nil {
			return createFailedMsg{err}
		}
		return createdMsg{}
	}
}

func (a *App) updateCmd(packageID string, upd store.PackageUpdate) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.Update(a.ctx, packageID, upd); err != nil {
			return updateFailedMsg{err}
		}
		return updatedMsg{}
	}
}

func (a *App) generateCmd(seq int, in service.NotificationInput) tea.Cmd {
	return func() tea.Msg {
		// Draft never fails; provider errors become the fallback text.
		return notificationMsg{seq: seq, text: a.notifier.Draft(a.ctx, in)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		return a.handleListKey(m)

	case packagesMsg:
		a.state = listLoaded
		a.packages = []store.PackageWithCustomer(m)
		if a.cursor >= len(a.packages) {
			a.cursor = 0
		}
	case loadFailedMsg:
		a.state = listError
		a.status = msgLoadFailed
	case createdMsg:
		a.submitting = false
		a.modal = modalNone
		a.status = "החבילה נוספה"
		return a, a.loadPackages()
	case createFailedMsg:
		// modal stays open; resubmission is the retry path
		a.submitting = false
		a.status = msgCreateFailed
	case updatedMsg:
		a.submitting = false
		a.modal = modalNone
		a.draft = ""
		a.generating = false
		a.status = "הפרטים נשמרו"
		return a, a.loadPackages()
	case updateFailedMsg:
		a.submitting = false
		a.status = msgUpdateFailed
	case notificationMsg:
		if m.seq != a.genSeq {
			// a newer status change superseded this request
			return a, nil
		}
		a.generating = false
		a.draft = m.text
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.packages)-1 {
			a.cursor++
		}
	case "r":
		a.state = listLoading
		a.status = ""
		return a, a.loadPackages()
	case "n":
		a.openAddModal()
	case "enter":
		if a.state == listLoaded && len(a.packages) > 0 {
			a.openEditModal(a.packages[a.cursor])
		}
	}
	return a, nil
}

func (a *App) openAddModal() {
	a.modal = modalAdd
	a.form = newAddForm()
	a.status = ""
}

func (a *App) openEditModal(p store.PackageWithCustomer) {
	a.modal = modalEdit
	a.form = newEditForm(p)
	a.editID = p.ID
	a.editOrig = store.PackageUpdate{
		CustomerName:   p.Customer.Name,
		CustomerPhone:  p.Customer.Phone,
		ProductName:    p.ProductName,
		TrackingNumber: p.TrackingNumber,
		Status:         p.Status,
	}
	a.draft = ""
	a.generating = false
	a.status = ""
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.submitting = false
	a.generating = false
	a.draft = ""
	a.status = ""
}

// dirty reports whether any of the five editable fields differs from
// the loaded snapshot. Shallow field comparison, no version counter.
func (a *App) dirty() bool {
	return a.form.values() != a.editOrig
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.closeModal()
		return a, nil
	case "tab", "down":
		a.form.nextField()
		return a, nil
	case "shift+tab", "up":
		a.form.prevField()
		return a, nil
	case "left", "right":
		if a.form.focusedField() == fieldStatus {
			prev := a.form.status
			if m.String() == "right" {
				a.form.cycleStatus(1)
			} else {
				a.form.cycleStatus(-1)
			}
			if a.form.status != prev {
				return a, a.onStatusChanged()
			}
		}
		return a, nil
	case "enter":
		return a.submit()
	}

	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		a.form.backspace(&a.draft)
	case tea.KeySpace:
		a.form.insert(" ", &a.draft)
	case tea.KeyRunes:
		a.form.insert(string(m.Runes), &a.draft)
	}
	return a, nil
}

// onStatusChanged regenerates the draft when the picked status differs
// from the stored one and clears it when the pick reverts.
func (a *App) onStatusChanged() tea.Cmd {
	if a.modal != modalEdit {
		return nil
	}
	a.genSeq++
	if a.form.status == a.editOrig.Status {
		// nothing to announce
		a.generating = false
		a.draft = ""
		return nil
	}
	a.generating = true
	a.draft = ""
	return a.generateCmd(a.genSeq, service.NotificationInput{
		CustomerName:   a.form.customerName,
		ProductName:    a.form.productName,
		Status:         a.form.status,
		TrackingNumber: a.form.trackingNumber,
	})
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	if a.submitting {
		return a, nil
	}
	switch a.modal {
	case modalAdd:
		if !a.form.addComplete() {
			a.status = "נא למלא שם, טלפון ושם מוצר"
			return a, nil
		}
		a.submitting = true
		a.status = "שומר..."
		return a, a.createCmd(
			store.NewPackage{ProductName: a.form.productName, TrackingNumber: a.form.trackingNumber},
			store.NewCustomer{Name: a.form.customerName, Phone: a.form.customerPhone},
		)
	case modalEdit:
		if !a.dirty() {
			return a, nil
		}
		a.submitting = true
		a.status = "שומר..."
		return a, a.updateCmd(a.editID, a.form.values())
	}
	return a, nil
}

// customers returns the distinct customers of the loaded list, used
// for the possible-duplicate hint in the add modal.
func (a *App) customers() []store.Customer {
	seen := map[string]bool{}
	var out []store.Customer
	for _, p := range a.packages {
		if seen[p.Customer.ID] {
			continue
		}
		seen[p.Customer.ID] = true
		out = append(out, p.Customer)
	}
	return out
}

// messages

type packagesMsg []store.PackageWithCustomer

type loadFailedMsg struct{ err error }

type createdMsg struct{}

type createFailedMsg struct{ err error }

type updatedMsg struct{}

type updateFailedMsg struct{ err error }

type notificationMsg struct {
	seq  int
	text string
}
