package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventscore/internal/auth"
	"eventscore/internal/criteria"
	"eventscore/internal/queue"
	"eventscore/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------- fakes ----------

type fakeUserStore struct {
	byEmail map[string]*user.User
	taken   map[string]bool
	nextID  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*user.User{}, taken: map[string]bool{}, nextID: 1}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	return f.taken[username] || f.taken[email], nil
}

func (f *fakeUserStore) CreateWithStudent(_ context.Context, u *user.User, s *user.Student) error {
	u.ID = f.nextID
	f.nextID++
	s.UserID = u.ID
	f.byEmail[u.Email] = u
	f.taken[u.Username] = true
	f.taken[u.Email] = true
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, email, hash string) error {
	if u, ok := f.byEmail[email]; ok {
		u.Password = hash
	}
	return nil
}

type fakeCriteriaStore struct {
	rows   map[int64]criteria.Criteria
	nextID int64
}

func newFakeCriteriaStore() *fakeCriteriaStore {
	return &fakeCriteriaStore{rows: map[int64]criteria.Criteria{}, nextID: 1}
}

func (f *fakeCriteriaStore) ListByEvent(_ context.Context, eventID int64) ([]criteria.Criteria, error) {
	var out []criteria.Criteria
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.rows[id]; ok && c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCriteriaStore) Insert(_ context.Context, c *criteria.Criteria) error {
	c.ID = f.nextID
	f.nextID++
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCriteriaStore) Update(_ context.Context, id int64, name string, maxScore int) (*criteria.Criteria, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	c.Name = name
	c.MaxScore = maxScore
	f.rows[id] = c
	return &c, nil
}

func (f *fakeCriteriaStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

type fakeMailer struct{ failing bool }

func (m *fakeMailer) SendNewPassword(context.Context, string, string) error { return mailErr(m.failing) }
func (m *fakeMailer) SendWelcome(context.Context, string, string) error     { return mailErr(m.failing) }

func mailErr(failing bool) error {
	if failing {
		return context.DeadlineExceeded
	}
	return nil
}

// ---------- harness ----------

type harness struct {
	router   *gin.Engine
	users    *fakeUserStore
	criteria *fakeCriteriaStore
	sessions auth.Sessions
	jobs     *queue.InMemory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	sessions := auth.Sessions{Issuer: "eventscore-test", SigningKey: "test-key", TTL: time.Hour}
	userStore := newFakeUserStore()
	critStore := newFakeCriteriaStore()
	jobs := queue.NewInMemory(8)

	h := New(
		user.NewService(userStore, &fakeMailer{}, 4),
		criteria.NewService(critStore),
		sessions,
		jobs,
		zap.NewNop().Sugar(),
	)

	r := gin.New()
	h.Register(r)
	return &harness{router: r, users: userStore, criteria: critStore, sessions: sessions, jobs: jobs}
}

func (h *harness) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) sessionCookie(t *testing.T, userID int64, role string) *http.Cookie {
	t.Helper()
	token, _, err := h.sessions.Issue(userID, role)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func sessionCookieFrom(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}
