package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dom "github.com/AlliAyobami/myToDo/internal/domain"
	"github.com/AlliAyobami/myToDo/internal/problem"
	"github.com/AlliAyobami/myToDo/internal/service"
	"github.com/AlliAyobami/myToDo/internal/timeline"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// stubTaskRepo serves a fixed set of tasks, all owned by user 1's list 10.
type stubTaskRepo struct {
	tasks map[int64]dom.Task
}

func (r *stubTaskRepo) get(userID, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok || userID != 1 {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *stubTaskRepo) Create(_ context.Context, _ int64, t dom.Task) (dom.Task, error) {
	return t, nil
}

func (r *stubTaskRepo) GetByID(_ context.Context, userID, id int64) (dom.Task, error) {
	t, err := r.get(userID, id)
	if err == nil && t.DeletedAt != nil {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, err
}

func (r *stubTaskRepo) GetByIDAny(_ context.Context, userID, id int64) (dom.Task, error) {
	return r.get(userID, id)
}

func (r *stubTaskRepo) ListByList(context.Context, int64, int64, int, int) ([]dom.Task, int64, error) {
	return nil, 0, nil
}

func (r *stubTaskRepo) Update(_ context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	return r.get(userID, id)
}

func (r *stubTaskRepo) SoftDelete(_ context.Context, userID, id int64) error {
	_, err := r.get(userID, id)
	return err
}

type stubListRepo struct{}

func (stubListRepo) Create(_ context.Context, l dom.ToDoList) (dom.ToDoList, error) { return l, nil }
func (stubListRepo) GetByID(_ context.Context, userID, id int64) (dom.ToDoList, error) {
	if userID == 1 && id == 10 {
		return dom.ToDoList{ID: 10, UserID: 1, Name: "l", Status: dom.StatusPending}, nil
	}
	return dom.ToDoList{}, pgx.ErrNoRows
}
func (stubListRepo) ListByOwner(context.Context, int64, int, int) ([]dom.ToDoList, int64, error) {
	return nil, 0, nil
}
func (stubListRepo) Update(_ context.Context, _, _ int64, l dom.ToDoList) (dom.ToDoList, error) {
	return l, nil
}
func (stubListRepo) SoftDelete(context.Context, int64, int64) error { return nil }

func newTestRouter(t *testing.T, repo *stubTaskRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := timeline.NewEngine(timeline.FixedClock(handlerNow), 24*time.Hour)
	svc := service.NewTaskService(repo, stubListRepo{}, nil, engine)
	h := NewTaskHandler(svc)

	r := gin.New()
	// Stand in for RequireSession: every request runs as user 1.
	r.Use(func(c *gin.Context) { c.Set("user_id", int64(1)) })
	r.GET("/tasks/:id", h.GetByID)
	r.GET("/tasks/:id/timeline", h.Timeline)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestTimelineEndpointEnvelope(t *testing.T) {
	due := handlerNow.Add(-48 * time.Hour)
	repo := &stubTaskRepo{tasks: map[int64]dom.Task{
		5: {ID: 5, Title: "late", DueDate: &due, ListID: 10},
	}}

	w := doGet(newTestRouter(t, repo), "/tasks/5/timeline")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Severity string `json:"severity"`
			Message  string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "high", body.Data.Severity)
	assert.Equal(t, "Task is overdue by 2 days", body.Data.Message)
}

func TestTimelineEndpointMissingTask(t *testing.T) {
	w := doGet(newTestRouter(t, &stubTaskRepo{tasks: map[int64]dom.Task{}}), "/tasks/99/timeline")
	require.Equal(t, http.StatusNotFound, w.Code)

	var p problem.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, problem.TypeNotFound, p.Type)
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.NotEmpty(t, p.Detail)
}

func TestTimelineEndpointBadID(t *testing.T) {
	w := doGet(newTestRouter(t, &stubTaskRepo{tasks: map[int64]dom.Task{}}), "/tasks/abc/timeline")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var p problem.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, problem.TypeInvalid, p.Type)
}

func TestGetTaskIncludeDeleted(t *testing.T) {
	deleted := handlerNow.Add(-time.Hour)
	repo := &stubTaskRepo{tasks: map[int64]dom.Task{
		7: {ID: 7, Title: "gone", ListID: 10, DeletedAt: &deleted},
	}}
	r := newTestRouter(t, repo)

	// The default lookup hides the soft-deleted task.
	w := doGet(r, "/tasks/7")
	require.Equal(t, http.StatusNotFound, w.Code)

	// The audit lookup still finds it.
	w = doGet(r, "/tasks/7?include_deleted=true")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		ID        int64      `json:"id"`
		DeletedAt *time.Time `json:"deleted_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body.ID)
	assert.NotNil(t, body.DeletedAt)
}
