package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftpipe/draftpipe/core"
)

func TestCollector_StartRunPostsRecord(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewCollector(srv.URL, func(o *CollectorOptions) { o.APIKey = "secret" })
	err := c.StartRun(context.Background(), core.RunStart{
		ID:        "run-1",
		Name:      "support_analyst",
		ParentID:  "parent-1",
		Inputs:    "inputs",
		StartedAt: time.Now().UTC(),
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/runs", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "run-1", gotBody["id"])
	assert.Equal(t, "parent-1", gotBody["parent_id"])
}

func TestCollector_EndRunPatchesByID(t *testing.T) {
	var gotMethod, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	c := NewCollector(srv.URL)
	err := c.EndRun(context.Background(), core.RunEnd{ID: "run-9", Outputs: "done", EndedAt: time.Now()})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/runs/run-9", gotPath)
}

func TestCollector_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewCollector(srv.URL)
	err := c.StartRun(context.Background(), core.RunStart{ID: "run-1"})

	assert.ErrorContains(t, err, "502")
}

func TestCollector_UnreachableBackendIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewCollector(srv.URL)
	err := c.EndRun(context.Background(), core.RunEnd{ID: "run-1"})

	assert.Error(t, err)
}
