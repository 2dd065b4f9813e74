package settings

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
	RegisterSettingsRoutes(e.Group("/api"), st)
	return e
}

func TestSettings_GetDefaults(t *testing.T) {
	e := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var got entity.SystemSettings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Currency != entity.CurrencySAR || got.RentalSystem != entity.RentalWeekly || got.NextContractNumber != 1001 {
		t.Errorf("settings = %+v", got)
	}
}

func TestSettings_Update(t *testing.T) {
	e := newTestServer(t)
	req := httptest.NewRequest(http.MethodPut, "/api/settings",
		strings.NewReader(`{"currency": "EGP", "rental_system": "monthly", "next_contract_number": 2000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got entity.SystemSettings
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.RentalSystem != entity.RentalMonthly || got.NextContractNumber != 2000 {
		t.Errorf("settings = %+v", got)
	}
}

func TestSettings_RejectsCounterRollbackAndBadSystem(t *testing.T) {
	e := newTestServer(t)
	cases := []string{
		`{"currency": "SAR", "rental_system": "weekly", "next_contract_number": 1}`,
		`{"currency": "SAR", "rental_system": "daily", "next_contract_number": 1001}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}
