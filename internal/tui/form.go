package tui

import (
	"strings"

	"github.com/marina-studio/packtrack/internal/store"
)

type formField int

const (
	fieldName formField = iota
	fieldPhone
	fieldProduct
	fieldTracking
	fieldStatus
	fieldDraft
)

// form holds the modal input state. The add modal uses the first four
// fields; the edit modal adds the status picker and the notification
// draft area.
type form struct {
	customerName   string
	customerPhone  string
	productName    string
	trackingNumber string
	status         store.Status

	focus     formField
	numFields int
}

func newAddForm() form {
	return form{numFields: 4}
}

func newEditForm(p store.PackageWithCustomer) form {
	return form{
		customerName:   p.Customer.Name,
		customerPhone:  p.Customer.Phone,
		productName:    p.ProductName,
		trackingNumber: p.TrackingNumber,
		status:         p.Status,
		numFields:      6,
	}
}

func (f *form) focusedField() formField { return f.focus }

func (f *form) nextField() {
	f.focus = formField((int(f.focus) + 1) % f.numFields)
}

func (f *form) prevField() {
	f.focus = formField((int(f.focus) - 1 + f.numFields) % f.numFields)
}

// insert appends s to the focused text field. draft points at the
// app-owned notification draft so it is editable in place.
func (f *form) insert(s string, draft *string) {
	switch f.focus {
	case fieldName:
		f.customerName += s
	case fieldPhone:
		f.customerPhone += s
	case fieldProduct:
		f.productName += s
	case fieldTracking:
		f.trackingNumber += s
	case fieldDraft:
		*draft += s
	}
}

func (f *form) backspace(draft *string) {
	trim := func(s string) string {
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return string(r[:len(r)-1])
	}
	switch f.focus {
	case fieldName:
		f.customerName = trim(f.customerName)
	case fieldPhone:
		f.customerPhone = trim(f.customerPhone)
	case fieldProduct:
		f.productName = trim(f.productName)
	case fieldTracking:
		f.trackingNumber = trim(f.trackingNumber)
	case fieldDraft:
		*draft = trim(*draft)
	}
}

// cycleStatus moves the status picker by delta through the fixed
// progression, wrapping at the ends.
func (f *form) cycleStatus(delta int) {
	statuses := store.Statuses()
	idx := f.status.Order()
	if idx < 0 {
		idx = 0
	}
	idx = (idx + delta + len(statuses)) % len(statuses)
	f.status = statuses[idx]
}

// values returns the flat update payload for the five editable fields.
func (f *form) values() store.PackageUpdate {
	return store.PackageUpdate{
		CustomerName:   f.customerName,
		CustomerPhone:  f.customerPhone,
		ProductName:    f.productName,
		TrackingNumber: f.trackingNumber,
		Status:         f.status,
	}
}

// addComplete reports whether the add form's required fields are set.
// Tracking number is optional at creation.
func (f *form) addComplete() bool {
	return strings.TrimSpace(f.customerName) != "" &&
		strings.TrimSpace(f.customerPhone) != "" &&
		strings.TrimSpace(f.productName) != ""
}
