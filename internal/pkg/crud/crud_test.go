package crud

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_go/internal/pkg/apperr"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type note struct {
	ID   int64
	Text string
}

type noteCreate struct {
	Text string `json:"text" binding:"required"`
}

type noteUpdate struct {
	Text *string `json:"text"`
}

type noteResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// noteStore In-memory store backing the facade under test
type noteStore struct {
	notes  map[int64]*note
	nextID int64
}

func newNoteStore() *noteStore {
	return &noteStore{notes: make(map[int64]*note), nextID: 1}
}

func (s *noteStore) List(_ context.Context, skip, limit int) ([]*note, error) {
	out := []*note{}
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if skip >= len(out) {
		return []*note{}, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *noteStore) Get(_ context.Context, id int64) (*note, error) {
	n, ok := s.notes[id]
	if !ok {
		return nil, apperr.NotFound("note not found")
	}
	return n, nil
}

func (s *noteStore) Create(_ context.Context, n *note) (*note, error) {
	n.ID = s.nextID
	s.nextID++
	s.notes[n.ID] = n
	return n, nil
}

func (s *noteStore) Update(_ context.Context, n *note) (*note, error) {
	s.notes[n.ID] = n
	return n, nil
}

func (s *noteStore) Delete(_ context.Context, id int64) error {
	delete(s.notes, id)
	return nil
}

func newNoteRouter() (*gin.Engine, *noteStore) {
	store := newNoteStore()
	h := NewHandler[*note](
		store,
		func(req *noteCreate) *note { return &note{Text: req.Text} },
		func(n *note, req *noteUpdate) *note {
			if req.Text != nil {
				n.Text = *req.Text
			}
			return n
		},
		func(n *note) *noteResponse { return &noteResponse{ID: n.ID, Text: n.Text} },
	)

	r := gin.New()
	h.Register(r.Group("/notes"))
	return r, store
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCrudCreateAndGet(t *testing.T) {
	r, _ := newNoteRouter()

	w := do(r, http.MethodPost, "/notes", noteCreate{Text: "hello"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"text":"hello"`)

	w = do(r, http.MethodGet, "/notes/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
}

func TestCrudGetMissing(t *testing.T) {
	r, _ := newNoteRouter()

	w := do(r, http.MethodGet, "/notes/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrudBadID(t *testing.T) {
	r, _ := newNoteRouter()

	w := do(r, http.MethodGet, "/notes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrudValidation(t *testing.T) {
	r, _ := newNoteRouter()

	w := do(r, http.MethodPost, "/notes", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCrudUpdate(t *testing.T) {
	r, store := newNoteRouter()
	do(r, http.MethodPost, "/notes", noteCreate{Text: "before"})

	text := "after"
	w := do(r, http.MethodPut, "/notes/1", noteUpdate{Text: &text})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "after", store.notes[1].Text)

	// nil fields leave the value untouched
	w = do(r, http.MethodPut, "/notes/1", noteUpdate{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "after", store.notes[1].Text)
}

func TestCrudDelete(t *testing.T) {
	r, store := newNoteRouter()
	do(r, http.MethodPost, "/notes", noteCreate{Text: "bye"})

	w := do(r, http.MethodDelete, "/notes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.notes)

	w = do(r, http.MethodDelete, "/notes/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrudListPaging(t *testing.T) {
	r, _ := newNoteRouter()
	for i := 0; i < 5; i++ {
		do(r, http.MethodPost, "/notes", noteCreate{Text: "n"})
	}

	w := do(r, http.MethodGet, "/notes?skip=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []noteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Data[0].ID)
}
