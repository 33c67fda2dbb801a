package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/services"
)

func authedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	token, err := services.GenerateJWT("asha@example.com", "")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("decode data: %v\nbody: %s", err, w.Body.String())
		}
	}
}

func TestTasksRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCreateAndToggleTask(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/tasks", model.DailyTask{
		Title:        "Ship weekly summary",
		WeeklyGoalID: "template-weekly-1",
		TargetID:     "target-1",
		Priority:     model.PriorityHigh,
	}))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body: %s", w.Code, w.Body.String())
	}

	var created model.DailyTask
	decodeData(t, w, &created)
	if created.ID == "" || created.Status != model.StatusToDo {
		t.Fatalf("created task = %+v", created)
	}

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/tasks/"+created.ID+"/toggle", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", w.Code)
	}

	var toggled model.DailyTask
	decodeData(t, w, &toggled)
	if toggled.Status != model.StatusDone || toggled.IsActive {
		t.Errorf("toggled task = %+v, want Done and inactive", toggled)
	}

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/tasks/missing/toggle", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("toggle on unknown id = %d, want 404", w.Code)
	}
}

func TestTrackingEndpointSingleActive(t *testing.T) {
	env := newTestEnv(t)

	// The two template tasks are already loaded.
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/tasks/template-daily-1/tracking", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("tracking status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/tasks/template-daily-2/tracking", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("tracking status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/tasks", nil))

	var tasks []model.DailyTask
	decodeData(t, w, &tasks)
	active := 0
	for _, task := range tasks {
		if task.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d active tasks, want 1", active)
	}
}

func TestDailyReportDownload(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/report/daily", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("report status = %d", w.Code)
	}

	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "daily-report-") {
		t.Errorf("Content-Disposition = %q", got)
	}
	body := w.Body.String()
	for _, frag := range []string{"DAILY WORK REPORT", "SUMMARY:", "NEXT ACTIONS:"} {
		if !strings.Contains(body, frag) {
			t.Errorf("report body missing %q", frag)
		}
	}
}

func TestCreateTaskValidation(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/tasks", map[string]string{
		"priority": "High",
	}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("create without title = %d, want 400", w.Code)
	}
}
