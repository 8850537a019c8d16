package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"
	"pawlearn_backend/internal/service"
	"pawlearn_backend/pkg/database"
	"pawlearn_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupRouter wires the handlers under test against a fresh in-memory
// database, mirroring the production route table.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	animal := NewAnimalController(service.NewAnimalService(repository.NewAnimalRepository(db)))
	progress := NewProgressController(service.NewProgressService(repository.NewProgressRepository(db)))
	quiz := NewQuizController(service.NewQuizService(repository.NewQuizRepository(db), db))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/animals/:id", animal.Get)
	api.POST("/animals", animal.Create)
	api.DELETE("/animals/:id", animal.Delete)
	api.POST("/lesson-progress", progress.MarkStepComplete)
	api.GET("/quizzes/standalone", quiz.GetStandalone)
	api.POST("/quizzes/:quizId/attempt", quiz.Attempt)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestGetAnimalNotFoundStatus(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/animals/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Animal not found" {
		t.Errorf("body = %v", body)
	}
}

func TestGetAnimalInvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/animals/biscuit", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateAnimalAck(t *testing.T) {
	router, db := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/animals", map[string]interface{}{
		"name":          "Biscuit",
		"species":       "Dog",
		"date_of_birth": "2022-03-10",
		"image_path":    "/images/biscuit.jpg",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["message"] != "Animal added" {
		t.Errorf("message = %v", body["message"])
	}
	if body["animal_id"] == nil {
		t.Error("missing animal_id in ack")
	}

	var count int64
	db.Model(&model.Animal{}).Count(&count)
	if count != 1 {
		t.Errorf("animal rows = %d, want 1", count)
	}
}

func TestDeleteAnimalNotFoundStatus(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/animals/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMarkStepCompleteRequiresIDs(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/lesson-progress", map[string]interface{}{
		"lesson_id": 3,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "lesson_id and step_id are required" {
		t.Errorf("body = %v", body)
	}
}

func TestMarkStepCompleteAck(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/lesson-progress", map[string]interface{}{
		"lesson_id": 3,
		"step_id":   12,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != "Step completed" {
		t.Errorf("body = %v", body)
	}
}

func TestStandaloneQuizNotFoundStatus(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/quizzes/standalone", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAttemptEmptyAnswerKeyStatus(t *testing.T) {
	router, db := setupRouter(t)

	quiz := model.Quiz{Title: "Broken"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/attempt", quiz.QuizID), map[string]interface{}{
		"answers": map[string]uint{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Quiz has no answer key" {
		t.Errorf("body = %v", body)
	}
}
