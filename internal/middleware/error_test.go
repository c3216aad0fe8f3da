package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/boom", nil)
	r.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler(t *testing.T) {
	t.Run("app_error_keeps_code_and_status", func(t *testing.T) {
		rec := runWithError(t, apperrors.ErrBudgetNotFound)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}

		var body map[string]map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse body: %v", err)
		}
		if body["error"]["code"] != "BUDGET_NOT_FOUND" {
			t.Errorf("expected BUDGET_NOT_FOUND, got %q", body["error"]["code"])
		}
	})

	t.Run("unexpected_error_is_masked", func(t *testing.T) {
		rec := runWithError(t, errors.New("sqlite exploded"))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}

		var body map[string]map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse body: %v", err)
		}
		if body["error"]["code"] != "INTERNAL_ERROR" {
			t.Errorf("expected INTERNAL_ERROR, got %q", body["error"]["code"])
		}
		if body["error"]["message"] == "sqlite exploded" {
			t.Error("expected internal detail to be masked")
		}
	})

	t.Run("no_error_passes_through", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ok", nil)
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
