package quotation

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"equiprent.GO/api"
	"equiprent.GO/model/entity"
	"equiprent.GO/model/repository/state"
	"equiprent.GO/service/billing"
	"equiprent.GO/service/lifecycle"
)

func init() {
	api.RegisterModule(RegisterQuotationRoutes)
}

type createRequest struct {
	lifecycle.QuotationInput
	Mode lifecycle.CreateMode `json:"mode"`
}

type quotationView struct {
	entity.Quotation
	Settlement billing.Settlement `json:"settlement"`
}

func RegisterQuotationRoutes(apiGroup *echo.Group, st *state.Store) {
	g := apiGroup.Group("/quotations")

	// POST /api/quotations – create a quotation or, with mode=permit, a
	// direct material-release permit
	g.POST("", func(c echo.Context) error {
		var body createRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		mode := body.Mode
		if mode == "" {
			mode = lifecycle.ModeQuotation
		}
		if mode != lifecycle.ModeQuotation && mode != lifecycle.ModePermit {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "mode must be quotation or permit"})
		}

		var created entity.Quotation
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			next, q, err := lifecycle.CreateQuotation(s, body.QuotationInput, mode, time.Now())
			created = q
			return next, err
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.JSON(http.StatusCreated, quotationView{created, billing.SettleQuotation(created)})
	})

	// GET /api/quotations?status=pending|permit|converted
	g.GET("", func(c echo.Context) error {
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		status := c.QueryParam("status")
		out := make([]quotationView, 0, len(s.Quotations))
		for _, q := range s.Quotations {
			if status != "" && string(q.Status) != status {
				continue
			}
			out = append(out, quotationView{q, billing.SettleQuotation(q)})
		}
		return c.JSON(http.StatusOK, out)
	})

	// GET /api/quotations/:id
	g.GET("/:id", func(c echo.Context) error {
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		for _, q := range s.Quotations {
			if q.ID == c.Param("id") {
				return c.JSON(http.StatusOK, quotationView{q, billing.SettleQuotation(q)})
			}
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "quotation not found"})
	})

	// POST /api/quotations/:id/permit – escalate to material-release permit
	g.POST("/:id/permit", func(c echo.Context) error {
		next, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.IssuePermit(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.JSON(http.StatusOK, echo.Map{"items": next.Items})
	})

	// POST /api/quotations/:id/convert – convert to an active rental contract
	g.POST("/:id/convert", func(c echo.Context) error {
		var created entity.Rental
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			next, r, err := lifecycle.Convert(s, c.Param("id"), time.Now())
			created = r
			return next, err
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.JSON(http.StatusCreated, created)
	})

	// POST /api/quotations/:id/archive
	g.POST("/:id/archive", func(c echo.Context) error {
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.ArchiveQuotation(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	// DELETE /api/quotations/:id
	g.DELETE("/:id", func(c echo.Context) error {
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.DeleteQuotation(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})
}
