package expense

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"equiprent.GO/core/cache"
	"equiprent.GO/model/entity"
	"equiprent.GO/model/repository/state"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cache.GetInstance().Delete("state:snapshot")
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	st, err := state.NewStore(db)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	e := echo.New()
	RegisterExpenseRoutes(e.Group("/api"), st)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestExpense_AddListDelete(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/expenses",
		`{"description": "Truck fuel", "amount": 220, "category": "transport"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created entity.Expense
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Amount != 220 {
		t.Errorf("created = %+v", created)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/expenses", "")
	var list []entity.Expense
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %d, want 1", len(list))
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/expenses/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, e, http.MethodDelete, "/api/expenses/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete again status = %d, want 404", rec.Code)
	}
}

func TestExpense_Validation(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/expenses", `{"description": "", "amount": 10}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty description status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, e, http.MethodPost, "/api/expenses", `{"description": "x", "amount": 0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero amount status = %d, want 400", rec.Code)
	}
}
