// Package service holds the application services composed from the
// store and llm boundaries.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/marina-studio/packtrack/internal/llm"
	"github.com/marina-studio/packtrack/internal/store"
)

// NotificationInput carries the four fields a customer update message
// is built from.
type NotificationInput struct {
	CustomerName   string
	ProductName    string
	Status         store.Status
	TrackingNumber string
}

// NotifierService drafts a short Hebrew status-change message for a
// customer. A failed provider call is never surfaced: the caller
// always gets text, falling back to a deterministic template built
// from the same fields.
type NotifierService struct {
	Provider llm.Provider
}

const notificationPrompt = `את מרינה, בעלת עסק ששולחת מוצרים ללקוחות.
המשימה שלך היא לכתוב הודעת עדכון קצרה, ידידותית וחיובית ללקוח/ה.
ההודעה צריכה להיות בעברית.

פרטי ההזמנה:
- שם הלקוח/ה: %s
- שם המוצר: %s
- סטטוס חדש: %s
- מספר מעקב (אם קיים): %s

נא לנסח הודעה קצרה (2-3 משפטים) שתכלול את הפרטים האלה. התחילי בפנייה אישית ללקוח/ה.
לדוגמה, אם הסטטוס הוא 'נשלחה', תוכלי לכלול את מספר המעקב ולציין שהחבילה בדרך.
אם הסטטוס הוא 'נמסרה', ודאי שהלקוח/ה קיבל/ה את החבילה ותאחלי שיהנו מהמוצר.
הקפידי על טון חם ואישי.`

// Draft returns the suggested message for the given status change.
func (s *NotifierService) Draft(ctx context.Context, in NotificationInput) string {
	text, err := s.Provider.Generate(ctx, Prompt(in))
	if err != nil {
		return Fallback(in)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback(in)
	}
	return text
}

// Prompt renders the generation instruction for in.
func Prompt(in NotificationInput) string {
	tracking := strings.TrimSpace(in.TrackingNumber)
	if tracking == "" {
		tracking = "אין עדיין"
	}
	return fmt.Sprintf(notificationPrompt, in.CustomerName, in.ProductName, in.Status, tracking)
}

// Fallback is the deterministic template used when generation fails.
func Fallback(in NotificationInput) string {
	return fmt.Sprintf("היי %s, עדכון לגבי ההזמנה שלך (%s). הסטטוס שונה ל: %s.", in.CustomerName, in.ProductName, in.Status)
}
