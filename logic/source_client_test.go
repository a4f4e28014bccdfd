package logic_test

import (
	"context"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"skimbox/logic"
	"skimbox/shared"
	"skimbox/test/mocks"
	"testing"
	"time"
)

func setupSourceClientTest(t *testing.T, handler http.HandlerFunc) (*gomock.Controller, *httptest.Server, *shared.Config, logic.ISourceClient) {

	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	setupDummyMetrics(ctrl, mockMetrics)

	srv := httptest.NewServer(handler)
	cfg := &shared.Config{
		SourceApi: shared.SourceApi{BaseUrl: srv.URL, PageSize: 2, MaxItems: 800, TimeoutSec: 5},
	}
	sc := logic.NewSourceClient(cfg, mockLogger, mockMetrics)

	return ctrl, srv, cfg, sc
}

func writePage(w http.ResponseWriter, nextToken string, ids ...string) {
	posts := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, map[string]string{
			"id":         id,
			"text":       "post " + id,
			"author_id":  "a1",
			"created_at": "2024-03-01T00:00:00Z",
		})
	}
	resp := map[string]any{
		"data": posts,
		"includes": map[string]any{
			"users": []map[string]string{{"id": "a1", "username": "alice", "name": "Alice"}},
		},
		"meta": map[string]string{"next_token": nextToken},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func Test_FetchSavedItems_PaginatesAndCapsAtMax(t *testing.T) {

	tokens := make([]string, 0)
	handler := func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.URL.Query().Get("pagination_token"))
		if len(tokens) == 1 {
			writePage(w, "p2", "i1", "i2")
		} else {
			writePage(w, "p3", "i3", "i4")
		}
	}
	ctrl, srv, _, sc := setupSourceClientTest(t, handler)
	defer ctrl.Finish()
	defer srv.Close()

	items, err := sc.FetchSavedItems(context.Background(), "tok", "acct", 3)

	assert.Nil(t, err)
	assert.Equal(t, 3, len(items))
	assert.Equal(t, "i1", items[0].Id)
	assert.Equal(t, "i3", items[2].Id)
	assert.Equal(t, "alice", items[0].Handle)
	assert.Equal(t, []string{"", "p2"}, tokens)
}

func Test_FetchSavedItems_StopsOnLastPage(t *testing.T) {

	callCount := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		callCount++
		writePage(w, "", "i1", "i2")
	}
	ctrl, srv, _, sc := setupSourceClientTest(t, handler)
	defer ctrl.Finish()
	defer srv.Close()

	items, err := sc.FetchSavedItems(context.Background(), "tok", "acct", 10)

	assert.Nil(t, err)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, 1, callCount)
}

func Test_FetchSavedItems_StopsWhenPaginationIsStuck(t *testing.T) {

	// Empty pages that keep advertising a next token must not loop forever.
	callCount := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		callCount++
		writePage(w, "again")
	}
	ctrl, srv, _, sc := setupSourceClientTest(t, handler)
	defer ctrl.Finish()
	defer srv.Close()

	items, err := sc.FetchSavedItems(context.Background(), "tok", "acct", 10)

	assert.Nil(t, err)
	assert.Equal(t, 0, len(items))
	assert.Equal(t, 5, callCount)
}

func Test_FetchSavedItems_PausesBetweenPages(t *testing.T) {

	page := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		page++
		switch page {
		case 1:
			writePage(w, "p2", "i1")
		case 2:
			writePage(w, "p3", "i2")
		default:
			writePage(w, "", "i3")
		}
	}
	ctrl, srv, cfg, sc := setupSourceClientTest(t, handler)
	defer ctrl.Finish()
	defer srv.Close()
	cfg.SourceApi.PageSize = 1
	cfg.SourceApi.PageDelayMs = 15

	start := time.Now()
	items, err := sc.FetchSavedItems(context.Background(), "tok", "acct", 3)

	assert.Nil(t, err)
	assert.Equal(t, 3, len(items))
	// Two inter-page pauses for three pages.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
