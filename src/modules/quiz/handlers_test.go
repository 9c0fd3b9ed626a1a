package quiz

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/database"
)

type envelope struct {
	Status  string          `json:"status"`
	Kind    string          `json:"kind"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	database.DB = newTestDB(t)

	app := fiber.New()
	app.Get("/quiz-question/:userId/:category", GetQuizQuestion)
	app.Post("/quiz-answer/:userId/:questionId", SubmitQuizAnswer)
	app.Get("/quiz-progress/:userId/:category", GetQuizProgress)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, target, err)
	}
	return resp.StatusCode, env
}

func TestQuizHandlersEndToEnd(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()

	_, questionIDs := seedCategory(t, database.DB, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
		{"What is the capital of Japan?", "Tokyo"},
	})

	status, env := doRequest(t, app, http.MethodGet, "/quiz-question/"+userID.String()+"/Geography", "")
	if status != http.StatusOK {
		t.Fatalf("next question status = %d, body %+v", status, env)
	}
	var next NextQuestionResult
	if err := json.Unmarshal(env.Data, &next); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if next.Question.QuestionID != questionIDs[0] || next.Question.QuestionText == "" {
		t.Errorf("unexpected first question: %+v", next.Question)
	}
	if next.Progress != "0.00%" {
		t.Errorf("progress = %s, want 0.00%%", next.Progress)
	}

	target := fmt.Sprintf("/quiz-answer/%s/%s", userID, questionIDs[0])
	status, env = doRequest(t, app, http.MethodPost, target, `{"userAnswer":" paris "}`)
	if status != http.StatusOK {
		t.Fatalf("submit status = %d, body %+v", status, env)
	}
	var submit SubmitAnswerResult
	if err := json.Unmarshal(env.Data, &submit); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !submit.IsCorrect || submit.CorrectAnswer != "Paris" || submit.Progress != "50.00%" {
		t.Errorf("unexpected submit result: %+v", submit)
	}

	status, env = doRequest(t, app, http.MethodGet, "/quiz-progress/"+userID.String()+"/geography", "")
	if status != http.StatusOK || !strings.Contains(string(env.Data), "50.00%") {
		t.Errorf("progress endpoint status = %d data = %s", status, env.Data)
	}
}

func TestQuizHandlerErrorKinds(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()

	_, questionIDs := seedCategory(t, database.DB, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
	})

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantKind   string
	}{
		{
			name:       "unknown category",
			method:     http.MethodGet,
			target:     "/quiz-question/" + userID.String() + "/History",
			wantStatus: http.StatusNotFound,
			wantKind:   KindCategoryNotFound,
		},
		{
			name:       "malformed user id",
			method:     http.MethodGet,
			target:     "/quiz-question/not-a-uuid/Geography",
			wantStatus: http.StatusBadRequest,
			wantKind:   KindInvalidInput,
		},
		{
			name:       "unknown question",
			method:     http.MethodPost,
			target:     fmt.Sprintf("/quiz-answer/%s/%s", userID, uuid.New()),
			body:       `{"userAnswer":"Paris"}`,
			wantStatus: http.StatusNotFound,
			wantKind:   KindQuestionNotFound,
		},
		{
			name:       "missing answer",
			method:     http.MethodPost,
			target:     fmt.Sprintf("/quiz-answer/%s/%s", userID, questionIDs[0]),
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   KindInvalidInput,
		},
		{
			name:       "answer is not a string",
			method:     http.MethodPost,
			target:     fmt.Sprintf("/quiz-answer/%s/%s", userID, questionIDs[0]),
			body:       `{"userAnswer":42}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doRequest(t, app, tt.method, tt.target, tt.body)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if env.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", env.Kind, tt.wantKind)
			}
		})
	}
}

// Exhausting the category yields 404 with the QUIZ_COMPLETE kind, so
// clients can tell a finished quiz from a missing one.
func TestQuizHandlerExhaustion(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()

	_, questionIDs := seedCategory(t, database.DB, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
	})

	target := fmt.Sprintf("/quiz-answer/%s/%s", userID, questionIDs[0])
	if status, env := doRequest(t, app, http.MethodPost, target, `{"userAnswer":"Paris"}`); status != http.StatusOK {
		t.Fatalf("submit status = %d, body %+v", status, env)
	}

	status, env := doRequest(t, app, http.MethodGet, "/quiz-question/"+userID.String()+"/Geography", "")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if env.Kind != KindQuizComplete {
		t.Errorf("kind = %q, want %q", env.Kind, KindQuizComplete)
	}
}
