package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/intake/pkg/log"
)

func completionResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient("", "", log.WithModule("test"))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerate_Success(t *testing.T) {
	var captured chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse("היי! תודה שפנית אלינו 🙌")))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", log.WithModule("test"))
	require.NoError(t, err)

	content, err := client.Generate(context.Background(), Request{
		BusinessInfo:  "סטודיו ליוגה בתל אביב",
		Category:      "leads",
		Title:         "אוטומציית ליד מפייסבוק",
		Style:         StyleCasual,
		IncludeEmojis: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "היי! תודה שפנית אלינו 🙌", content)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "קליל וידידותי")
	assert.Contains(t, captured.Messages[1].Content, "סטודיו ליוגה בתל אביב")
	assert.Contains(t, captured.Messages[1].Content, "שלב אימוג׳ים")
	assert.Equal(t, DefaultModel, captured.Model)
}

func TestGenerate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", log.WithModule("test"))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{BusinessInfo: "עסק"})
	require.Error(t, err)

	var genErr *GenerationError

	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, http.StatusBadGateway, genErr.StatusCode)
}

func TestGenerate_EmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse("  ")))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", log.WithModule("test"))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{BusinessInfo: "עסק"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(completionResponse("מאוחר מדי"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", log.WithModule("test"),
		WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{BusinessInfo: "עסק"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerate_HourlyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse("תוכן")))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", log.WithModule("test"), WithHourlyLimit(2))
	require.NoError(t, err)

	for range 2 {
		_, err := client.Generate(context.Background(), Request{BusinessInfo: "עסק"})
		require.NoError(t, err)
	}

	_, err = client.Generate(context.Background(), Request{BusinessInfo: "עסק"})
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerate_BusinessInfoBound(t *testing.T) {
	client, err := NewClient("http://unused", "test-key", log.WithModule("test"))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{
		BusinessInfo: strings.Repeat("א", 501),
	})
	assert.ErrorIs(t, err, ErrBusinessInfoTooLong)
}
