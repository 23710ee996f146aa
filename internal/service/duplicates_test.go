package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marina-studio/packtrack/internal/store"
)

func TestFindSimilarCustomers(t *testing.T) {
	t.Parallel()

	existing := []store.Customer{
		{ID: "c1", Name: "ישראל ישראלי", Phone: "050-1234567"},
		{ID: "c2", Name: "משה כהן", Phone: "052-7654321"},
	}

	t.Run("phone match beats formatting differences", func(t *testing.T) {
		t.Parallel()
		got := FindSimilarCustomers("מישהו אחר", "0501234567", existing)
		require.Len(t, got, 1)
		require.Equal(t, "c1", got[0].ID)
	})

	t.Run("near-identical name matches", func(t *testing.T) {
		t.Parallel()
		got := FindSimilarCustomers("משה כוהן", "", existing)
		require.Len(t, got, 1)
		require.Equal(t, "c2", got[0].ID)
	})

	t.Run("unrelated input matches nothing", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, FindSimilarCustomers("רות אלון", "053-0000000", existing))
	})

	t.Run("empty input matches nothing", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, FindSimilarCustomers("", "", existing))
	})
}
