package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Tasker/internal/auth"
	dom "Tasker/internal/domain"
	"Tasker/internal/handlers"
	"Tasker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// In-memory repos standing in for Postgres, with the same scoping and
// error semantics the SQL repos have.

type memUserRepo struct {
	byEmail map[string]dom.User
	nextID  int64
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (m *memUserRepo) Create(ctx context.Context, email, passwordHash string) (dom.User, error) {
	if _, ok := m.byEmail[email]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	u := dom.User{ID: m.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.nextID++
	m.byEmail[email] = u
	return u, nil
}

type memTaskRepo struct {
	tasks  map[int64]dom.Task
	nextID int64
}

func (m *memTaskRepo) Create(ctx context.Context, ownerID int64, title string, description *string) (dom.Task, error) {
	now := time.Now()
	t := dom.Task{ID: m.nextID, OwnerID: ownerID, Title: title, Description: description, CreatedAt: now, UpdatedAt: now}
	m.nextID++
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memTaskRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range m.tasks {
		if t.OwnerID == ownerID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (m *memTaskRepo) GetOwned(ctx context.Context, id, ownerID int64) (dom.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (m *memTaskRepo) Update(ctx context.Context, id, ownerID int64, patch dom.TaskPatch) (dom.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Task{}, pgx.ErrNoRows
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = time.Now()
	m.tasks[id] = t
	return t, nil
}

func (m *memTaskRepo) Toggle(ctx context.Context, id, ownerID int64) (dom.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now()
	m.tasks[id] = t
	return t, nil
}

func (m *memTaskRepo) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	t, ok := m.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}

func (m *memTaskRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.tasks[id]
	return ok, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	users := &memUserRepo{byEmail: map[string]dom.User{}, nextID: 1}
	tasks := &memTaskRepo{tasks: map[int64]dom.Task{}, nextID: 1}

	userSvc := service.NewUserService(users)
	taskSvc := service.NewTaskService(tasks, nil)
	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	taskHandler := handlers.NewTaskHandler(taskSvc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", auth.RequireAuth(tokens, users))
	protected.POST("/tasks", taskHandler.Create)
	protected.GET("/tasks", taskHandler.List)
	protected.GET("/tasks/:id", taskHandler.GetByID)
	protected.PATCH("/tasks/:id", taskHandler.Update)
	protected.DELETE("/tasks/:id", taskHandler.Delete)
	protected.POST("/tasks/:id/toggle", taskHandler.Toggle)
	return r
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
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

func signup(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/auth/signup", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestAPI_SignupLoginTaskLifecycle(t *testing.T) {
	r := newTestRouter(t)

	token := signup(t, r, "a@x.com", "password123")

	// Second signup with the same email conflicts.
	w := do(r, http.MethodPost, "/api/v1/auth/signup", "", `{"email":"a@x.com","password":"password123"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	// Login issues a fresh token.
	w = do(r, http.MethodPost, "/api/v1/auth/login", "", `{"email":"a@x.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Bad credentials are 401.
	w = do(r, http.MethodPost, "/api/v1/auth/login", "", `{"email":"a@x.com","password":"wrongpassword"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Create a task.
	w = do(r, http.MethodPost, "/api/v1/tasks", token, `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var task struct {
		ID        int64 `json:"id"`
		UserID    int64 `json:"userId"`
		Completed bool  `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.Equal(t, int64(1), task.ID)
	require.False(t, task.Completed)

	// Toggle it complete.
	w = do(r, http.MethodPost, "/api/v1/tasks/1/toggle", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"completed":true`)

	// Delete, then it is gone.
	w = do(r, http.MethodDelete, "/api/v1/tasks/1", token, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/v1/tasks/1", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_RequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	for _, route := range [][2]string{
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodPatch, "/api/v1/tasks/1"},
		{http.MethodPost, "/api/v1/tasks/1/toggle"},
		{http.MethodDelete, "/api/v1/tasks/1"},
	} {
		w := do(r, route[0], route[1], "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route[0], route[1])
	}
}

func TestAPI_CrossUserAccessIsForbidden(t *testing.T) {
	r := newTestRouter(t)

	tokenA := signup(t, r, "a@x.com", "password123")
	tokenB := signup(t, r, "b@x.com", "password123")

	w := do(r, http.MethodPost, "/api/v1/tasks", tokenA, `{"title":"private"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// User B sees an existing-but-foreign task as 403, a missing one as 404.
	w = do(r, http.MethodPatch, "/api/v1/tasks/1", tokenB, `{"title":"stolen"}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPatch, "/api/v1/tasks/99", tokenB, `{"title":"stolen"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	// B's own list is empty; A's still has the task.
	w = do(r, http.MethodGet, "/api/v1/tasks", tokenB, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"items":[]`)

	w = do(r, http.MethodGet, "/api/v1/tasks", tokenA, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"title":"private"`)
}

func TestAPI_Validation(t *testing.T) {
	r := newTestRouter(t)
	token := signup(t, r, "a@x.com", "password123")

	// Missing title.
	w := do(r, http.MethodPost, "/api/v1/tasks", token, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Title over 100 characters.
	long := strings.Repeat("x", 101)
	w = do(r, http.MethodPost, "/api/v1/tasks", token, fmt.Sprintf(`{"title":%q}`, long))
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Short password at signup.
	w = do(r, http.MethodPost, "/api/v1/auth/signup", "", `{"email":"b@x.com","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid id in path.
	w = do(r, http.MethodGet, "/api/v1/tasks/abc", token, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
