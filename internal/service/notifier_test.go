package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marina-studio/packtrack/internal/store"
)

type fakeProvider struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func TestNotifierDraft(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{text: "  היי משה! החבילה שלך בדרך 🎁  "}
	svc := &NotifierService{Provider: provider}

	got := svc.Draft(context.Background(), NotificationInput{
		CustomerName:   "משה כהן",
		ProductName:    "שרשרת זהב",
		Status:         store.StatusShipped,
		TrackingNumber: "RR111IL",
	})
	require.Equal(t, "היי משה! החבילה שלך בדרך 🎁", got, "response is trimmed")

	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]
	require.Contains(t, prompt, "משה כהן")
	require.Contains(t, prompt, "שרשרת זהב")
	require.Contains(t, prompt, "נשלחה")
	require.Contains(t, prompt, "RR111IL")
}

func TestNotifierPromptWithoutTracking(t *testing.T) {
	t.Parallel()

	prompt := Prompt(NotificationInput{
		CustomerName: "דנה",
		ProductName:  "צמיד",
		Status:       store.StatusPacking,
	})
	require.Contains(t, prompt, "אין עדיין", "missing tracking number gets the placeholder")
	require.NotContains(t, prompt, "מספר מעקב (אם קיים): \n")
}

func TestNotifierFallbackOnProviderError(t *testing.T) {
	t.Parallel()

	svc := &NotifierService{Provider: &fakeProvider{err: errors.New("quota exceeded")}}
	in := NotificationInput{
		CustomerName: "ישראל ישראלי",
		ProductName:  "עגילים מעוצבים",
		Status:       store.StatusDelivered,
	}

	got := svc.Draft(context.Background(), in)
	require.Equal(t, "היי ישראל ישראלי, עדכון לגבי ההזמנה שלך (עגילים מעוצבים). הסטטוס שונה ל: נמסרה.", got)
	require.Equal(t, Fallback(in), got)
}

func TestNotifierFallbackOnEmptyResponse(t *testing.T) {
	t.Parallel()

	svc := &NotifierService{Provider: &fakeProvider{text: "   "}}
	in := NotificationInput{CustomerName: "א", ProductName: "ב", Status: store.StatusReceived}

	got := svc.Draft(context.Background(), in)
	require.True(t, strings.HasPrefix(got, "היי א"))
	require.Equal(t, Fallback(in), got)
}
