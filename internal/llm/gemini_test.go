package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerate(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey string
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "היי דנה, "},
					{"text": "החבילה בדרך!  "},
				}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p := NewGeminiProvider("test-key", "gemini-2.5-flash")
	p.SetBaseURL(srv.URL)

	text, err := p.Generate(context.Background(), "כתבי הודעה")
	require.NoError(t, err)
	assert.Equal(t, "היי דנה, החבילה בדרך!", text, "parts are joined and trimmed")
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "כתבי הודעה", gotBody.Contents[0].Parts[0].Text)
}

func TestGeminiGenerateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "http error status",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"code":429,"message":"quota"}}`,
			wantErr: "status 429",
		},
		{
			name:    "api error payload",
			status:  http.StatusOK,
			body:    `{"error":{"code":400,"message":"bad model"}}`,
			wantErr: "api error 400",
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates":[]}`,
			wantErr: "empty response",
		},
		{
			name:    "blank text",
			status:  http.StatusOK,
			body:    `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`,
			wantErr: "empty response text",
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{"candidates":`,
			wantErr: "parse response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewGeminiProvider("test-key", "")
			p.SetBaseURL(srv.URL)

			_, err := p.Generate(context.Background(), "prompt")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGeminiGenerateNoKey(t *testing.T) {
	t.Parallel()

	p := NewGeminiProvider("", "gemini-2.5-flash")
	_, err := p.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrNoAPIKey)
}
