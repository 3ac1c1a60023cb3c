package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordaneaster/phoenix/internal/backend"
)

// fakeTraining serves a minimal PostgREST surface: a progress table keyed
// by user and a content table that honors the not-in id filter for
// head-only counts.
func fakeTraining(t *testing.T, contentIDs []string, progressByUser map[string][]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/training_progress":
			userFilter := strings.TrimPrefix(r.URL.Query().Get("user_id"), "eq.")
			rows := make([]string, 0)
			for _, id := range progressByUser[userFilter] {
				rows = append(rows, `{"user_id":"`+userFilter+`","training_id":"`+id+`"}`)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[" + strings.Join(rows, ",") + "]"))

		case "/rest/v1/training_content":
			require.Equal(t, http.MethodHead, r.Method)
			excluded := map[string]bool{}
			if f := r.URL.Query().Get("id"); f != "" {
				require.True(t, strings.HasPrefix(f, "not.in.("), "unexpected id filter %q", f)
				inner := strings.TrimSuffix(strings.TrimPrefix(f, "not.in.("), ")")
				for _, id := range strings.Split(inner, ",") {
					excluded[id] = true
				}
			}
			count := 0
			for _, id := range contentIDs {
				if !excluded[id] {
					count++
				}
			}
			w.Header().Set("Content-Range", "0-0/"+strconv.Itoa(count))

		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestCountIncomplete_SetDifference(t *testing.T) {
	content := []string{"t1", "t2", "t3", "t4", "t5"}
	progress := map[string][]string{
		"u1": {"t1", "t3"},
	}
	srv := fakeTraining(t, content, progress)
	defer srv.Close()

	repo := NewTrainingRepo(backend.New(srv.URL, "k"))
	count, err := repo.CountIncomplete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

// With no progress rows the whole catalog counts; the not-in filter must
// not be sent at all, since an empty exclusion list would be malformed.
func TestCountIncomplete_NoProgress(t *testing.T) {
	content := []string{"t1", "t2"}
	srv := fakeTraining(t, content, map[string][]string{})
	defer srv.Close()

	repo := NewTrainingRepo(backend.New(srv.URL, "k"))
	count, err := repo.CountIncomplete(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountIncomplete_AllCompleted(t *testing.T) {
	content := []string{"t1", "t2"}
	progress := map[string][]string{"u1": {"t1", "t2"}}
	srv := fakeTraining(t, content, progress)
	defer srv.Close()

	repo := NewTrainingRepo(backend.New(srv.URL, "k"))
	count, err := repo.CountIncomplete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountIncomplete_ProgressFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := NewTrainingRepo(backend.New(srv.URL, "k"))
	_, err := repo.CountIncomplete(context.Background(), "u1")
	var be *backend.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 503, be.Status)
}

func TestMarkCompleted_InsertsProgressRow(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/training_progress", r.URL.Path)
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		body = string(buf)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := NewTrainingRepo(backend.New(srv.URL, "k"))
	require.NoError(t, repo.MarkCompleted(context.Background(), "u1", "t9"))
	assert.Contains(t, body, `"user_id":"u1"`)
	assert.Contains(t, body, `"training_id":"t9"`)
	assert.Contains(t, body, `"completed_at"`)
}
