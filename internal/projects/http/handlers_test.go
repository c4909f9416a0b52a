package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batuhansemiz/portfolio-backend/internal/auth"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/domain"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/repository"
)

type fakeStore struct {
	mu         sync.Mutex
	seq        int
	items      map[string]domain.Project
	listErr    error
	createErr  error
	lastUpdate *repository.Update
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]domain.Project)}
}

func (f *fakeStore) seed(p domain.Project) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	id := fmt.Sprintf("doc-%d", f.seq)
	p.ID = id
	f.items[id] = p
	return id
}

func (f *fakeStore) List(context.Context) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Project, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) Create(_ context.Context, p *domain.Project) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.seq++
	id := fmt.Sprintf("doc-%d", f.seq)
	stored := *p
	stored.ID = id
	stored.CreatedAt = time.Now().UTC()
	f.items[id] = stored
	return id, nil
}

func (f *fakeStore) Update(_ context.Context, id string, upd repository.Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.lastUpdate = &upd
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Technologies != nil {
		p.Technologies = *upd.Technologies
	}
	p.UpdatedAt = time.Now().UTC()
	f.items[id] = p
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, token string) (*auth.Identity, error) {
	if token == "valid-token" {
		return &auth.Identity{UID: "uid-1", Email: "caller@example.com"}, nil
	}
	return nil, auth.ErrInvalidToken
}

func setupAPI(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	r := gin.New()
	Register(r.Group("/projects"), store, fakeVerifier{})
	return r, store
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProjects_OrderedByCreatedAtDesc(t *testing.T) {
	r, store := setupAPI(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.seed(domain.Project{Title: "oldest", CreatedAt: base})
	store.seed(domain.Project{Title: "newest", CreatedAt: base.Add(2 * time.Hour)})
	store.seed(domain.Project{Title: "middle", CreatedAt: base.Add(time.Hour)})

	w := doJSON(r, http.MethodGet, "/projects", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Title)
	assert.Equal(t, "middle", got[1].Title)
	assert.Equal(t, "oldest", got[2].Title)
}

func TestListProjects_EmptyIsArray(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodGet, "/projects", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListProjects_StoreError(t *testing.T) {
	r, store := setupAPI(t)
	store.listErr = errors.New("boom")

	w := doJSON(r, http.MethodGet, "/projects", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())
}

func TestGetProject(t *testing.T) {
	r, store := setupAPI(t)
	id := store.seed(domain.Project{Title: "one", Description: "d", CreatedAt: time.Now().UTC()})

	w := doJSON(r, http.MethodGet, "/projects/"+id, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"`+id+`"`)

	w = doJSON(r, http.MethodGet, "/projects/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", w.Body.String())
}

func TestCreateProject_RequiresAuth(t *testing.T) {
	r, store := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/projects", "", `{"title":"t","description":"d"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/projects", "expired-token", `{"title":"t","description":"d"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Empty(t, store.items, "no record may be written on a rejected request")
}

func TestCreateProject_Validation(t *testing.T) {
	r, store := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/projects", "valid-token", `{"title":"only a title"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", w.Body.String())
	assert.Empty(t, store.items, "validation failure must not write to the store")
}

func TestCreateProject_Success(t *testing.T) {
	r, store := setupAPI(t)

	body := `{"title":"Portfolio Site","description":"A site","technologies":["TS","Go"]}`
	w := doJSON(r, http.MethodPost, "/projects", "valid-token", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Portfolio Site", resp.Title)

	// createdAt is stamped inside the store; the echo must not carry a
	// zero-value timestamp in its place.
	assert.NotContains(t, w.Body.String(), "0001-01-01")

	stored, err := store.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"TS", "Go"}, stored.Technologies)
}

func TestCreateProject_TechnologiesDefaultEmpty(t *testing.T) {
	r, store := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/projects", "valid-token", `{"title":"t","description":"d"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	stored, err := store.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.Technologies)
	assert.Empty(t, stored.Technologies)
}

func TestUpdateProject(t *testing.T) {
	r, store := setupAPI(t)
	id := store.seed(domain.Project{Title: "old", Description: "d", CreatedAt: time.Now().UTC()})

	w := doJSON(r, http.MethodPut, "/projects/nope", "valid-token", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/projects/"+id, "valid-token", `{"title":"new"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"new"`)

	stored, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Title)
	assert.Equal(t, "d", stored.Description, "unsent fields stay unchanged")
}

func TestUpdateProject_EmptyBody(t *testing.T) {
	r, store := setupAPI(t)
	id := store.seed(domain.Project{Title: "old", Description: "d", CreatedAt: time.Now().UTC()})

	// An empty body merges nothing, but the existence check still decides
	// the status: unknown ids answer 404, not 400.
	w := doJSON(r, http.MethodPut, "/projects/nope", "valid-token", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", w.Body.String())

	w = doJSON(r, http.MethodPut, "/projects/"+id, "valid-token", "")
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "old", stored.Title)
	assert.Equal(t, "d", stored.Description)
}

func TestUpdateProject_MalformedBody(t *testing.T) {
	r, store := setupAPI(t)
	id := store.seed(domain.Project{Title: "old", Description: "d", CreatedAt: time.Now().UTC()})

	w := doJSON(r, http.MethodPut, "/projects/"+id, "valid-token", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", w.Body.String())
}

func TestUpdateProject_IgnoresUnknownFields(t *testing.T) {
	r, store := setupAPI(t)
	id := store.seed(domain.Project{Title: "old", Description: "d", CreatedAt: time.Now().UTC()})

	body := `{"title":"new","id":"spoofed","createdAt":"2001-01-01T00:00:00Z","isAdmin":true}`
	w := doJSON(r, http.MethodPut, "/projects/"+id, "valid-token", body)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, store.lastUpdate)
	assert.NotNil(t, store.lastUpdate.Title)
	assert.Nil(t, store.lastUpdate.Description)
	assert.Nil(t, store.lastUpdate.Technologies)

	stored, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID, "document id is immutable")
}

func TestDeleteProject(t *testing.T) {
	r, store := setupAPI(t)
	id := store.seed(domain.Project{Title: "t", Description: "d", CreatedAt: time.Now().UTC()})

	w := doJSON(r, http.MethodDelete, "/projects/nope", "valid-token", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/projects/"+id, "valid-token", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	_, err := store.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
