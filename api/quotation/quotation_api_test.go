package quotation

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

func newTestServer(t *testing.T) (*echo.Echo, *state.Store) {
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
	_, err = st.Mutate(func(s entity.AppData) (entity.AppData, error) {
		s.Items = []entity.Item{
			{ID: "scaffold", Name: "Scaffolding Set", Category: "scaffolding", RatePerUnit: 150, AvailableQty: 20},
		}
		return s, nil
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	e := echo.New()
	RegisterQuotationRoutes(e.Group("/api"), st)
	return e, st
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

func availQty(t *testing.T, st *state.Store, id string) int {
	t.Helper()
	s, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, it := range s.Items {
		if it.ID == id {
			return it.AvailableQty
		}
	}
	t.Fatalf("item %s not found", id)
	return 0
}

const createBody = `{
	"customer": {"name": "Al Noor Contracting", "phone": "0501234567"},
	"lines": [{"item_id": "scaffold", "qty": 5}],
	"discount_value": 10,
	"discount_type": "percentage"
}`

func TestQuotationFlow_PermitAndConvert(t *testing.T) {
	e, st := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/quotations", createBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		Settlement struct {
			Subtotal float64 `json:"subtotal"`
			TotalDue float64 `json:"total_due"`
		} `json:"settlement"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != "pending" {
		t.Errorf("status = %s, want pending", created.Status)
	}
	if created.Settlement.Subtotal != 750 || created.Settlement.TotalDue != 675 {
		t.Errorf("settlement = %+v, want subtotal 750, due 675", created.Settlement)
	}
	if got := availQty(t, st, "scaffold"); got != 20 {
		t.Errorf("stock after create = %d, want 20", got)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/quotations/"+created.ID+"/permit", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("permit status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := availQty(t, st, "scaffold"); got != 15 {
		t.Errorf("stock after permit = %d, want 15", got)
	}

	// Issuing again is an invalid transition.
	rec = doJSON(t, e, http.MethodPost, "/api/quotations/"+created.ID+"/permit", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("re-permit status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/quotations/"+created.ID+"/convert", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("convert status = %d, body %s", rec.Code, rec.Body.String())
	}
	var rental entity.Rental
	if err := json.Unmarshal(rec.Body.Bytes(), &rental); err != nil {
		t.Fatalf("decode rental: %v", err)
	}
	if rental.ID != "1001" {
		t.Errorf("contract id = %s, want 1001", rental.ID)
	}
	if got := availQty(t, st, "scaffold"); got != 15 {
		t.Errorf("stock after convert = %d, want 15 (permit already deducted)", got)
	}
}

func TestQuotationFlow_ArchivePermitRestores(t *testing.T) {
	e, st := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/quotations", createBody)
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	doJSON(t, e, http.MethodPost, "/api/quotations/"+created.ID+"/permit", "")
	if got := availQty(t, st, "scaffold"); got != 15 {
		t.Fatalf("stock after permit = %d, want 15", got)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/quotations/"+created.ID+"/archive", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("archive status = %d", rec.Code)
	}
	if got := availQty(t, st, "scaffold"); got != 20 {
		t.Errorf("stock after archive = %d, want 20", got)
	}
}

func TestQuotation_NotFoundAndValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/quotations/nope/permit", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing quote status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/quotations", `{"customer":{"name":""},"lines":[{"item_id":"scaffold","qty":1}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty customer status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/quotations", `{"customer":{"name":"x"},"lines":[{"item_id":"scaffold","qty":1}],"mode":"weird"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad mode status = %d, want 400", rec.Code)
	}
}

func TestQuotation_ListFilterByStatus(t *testing.T) {
	e, _ := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/api/quotations", createBody)
	rec := doJSON(t, e, http.MethodPost, "/api/quotations", `{"customer":{"name":"Beta"},"lines":[{"item_id":"scaffold","qty":1}],"mode":"permit"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("permit create status = %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/quotations?status=permit", "")
	var list []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("permit list = %d entries, want 1", len(list))
	}

	rec = doJSON(t, e, http.MethodGet, "/api/quotations", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("full list = %d entries, want 2", len(list))
	}
}
