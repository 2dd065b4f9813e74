package rental

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
	api.RegisterModule(RegisterRentalRoutes)
	api.RegisterModule(RegisterArchiveRoutes)
}

type rentalView struct {
	entity.Rental
	Settlement billing.Settlement `json:"settlement"`
}

func view(r entity.Rental, system entity.RentalSystem, now time.Time) rentalView {
	return rentalView{r, billing.Settle(r, system, now)}
}

func RegisterRentalRoutes(apiGroup *echo.Group, st *state.Store) {
	g := apiGroup.Group("/rentals")

	// POST /api/rentals – open a contract directly, without a quotation
	g.POST("", func(c echo.Context) error {
		var body lifecycle.RentalInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		var created entity.Rental
		next, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			out, r, err := lifecycle.CreateRental(s, body, time.Now())
			created = r
			return out, err
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.JSON(http.StatusCreated, view(created, next.SystemSettings.RentalSystem, time.Now()))
	})

	// GET /api/rentals?status=active|closed
	g.GET("", func(c echo.Context) error {
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		now := time.Now()
		status := c.QueryParam("status")
		out := make([]rentalView, 0, len(s.Rentals))
		for _, r := range s.Rentals {
			if status != "" && string(r.Status) != status {
				continue
			}
			out = append(out, view(r, s.SystemSettings.RentalSystem, now))
		}
		return c.JSON(http.StatusOK, out)
	})

	// GET /api/rentals/:id – document plus its settlement as of now
	g.GET("/:id", func(c echo.Context) error {
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		for _, r := range s.Rentals {
			if r.ID == c.Param("id") {
				return c.JSON(http.StatusOK, view(r, s.SystemSettings.RentalSystem, time.Now()))
			}
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "rental not found"})
	})

	// POST /api/rentals/:id/payments
	g.POST("/:id/payments", func(c echo.Context) error {
		var body struct {
			Amount float64 `json:"amount"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return mutateRental(c, st, func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.AddPayment(s, c.Param("id"), body.Amount, time.Now())
		})
	})

	// POST /api/rentals/:id/returns – partial return of one line
	g.POST("/:id/returns", func(c echo.Context) error {
		var body struct {
			LineID string `json:"line_id"`
			Qty    int    `json:"qty"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return mutateRental(c, st, func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.ReturnItem(s, c.Param("id"), body.LineID, body.Qty, time.Now())
		})
	})

	// POST /api/rentals/:id/items – add material mid-contract
	g.POST("/:id/items", func(c echo.Context) error {
		var body struct {
			ItemID string `json:"item_id"`
			Qty    int    `json:"qty"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return mutateRental(c, st, func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.AddItem(s, c.Param("id"), body.ItemID, body.Qty, time.Now())
		})
	})

	// POST /api/rentals/:id/discount
	g.POST("/:id/discount", func(c echo.Context) error {
		var body struct {
			Value float64             `json:"value"`
			Type  entity.DiscountType `json:"type"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return mutateRental(c, st, func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.ApplyDiscount(s, c.Param("id"), body.Value, body.Type)
		})
	})

	// POST /api/rentals/:id/close
	g.POST("/:id/close", func(c echo.Context) error {
		return mutateRental(c, st, func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.Close(s, c.Param("id"))
		})
	})

	// POST /api/rentals/:id/archive
	g.POST("/:id/archive", func(c echo.Context) error {
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.ArchiveRental(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})
}

// mutateRental applies one lifecycle op and responds with the updated
// rental plus its fresh settlement.
func mutateRental(c echo.Context, st *state.Store, fn func(entity.AppData) (entity.AppData, error)) error {
	next, err := st.Mutate(fn)
	if err != nil {
		return api.RespondError(c, err)
	}
	api.InvalidateStateCaches(c.Request().Context())
	for _, r := range next.Rentals {
		if r.ID == c.Param("id") {
			return c.JSON(http.StatusOK, view(r, next.SystemSettings.RentalSystem, time.Now()))
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func RegisterArchiveRoutes(apiGroup *echo.Group, st *state.Store) {
	g := apiGroup.Group("/archive")

	// GET /api/archive
	g.GET("", func(c echo.Context) error {
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		now := time.Now()
		out := make([]rentalView, 0, len(s.ArchivedRentals))
		for _, r := range s.ArchivedRentals {
			out = append(out, view(r, s.SystemSettings.RentalSystem, now))
		}
		return c.JSON(http.StatusOK, out)
	})

	// POST /api/archive/:id/restore – back to active, deducting stock again
	g.POST("/:id/restore", func(c echo.Context) error {
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.RestoreRental(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	// DELETE /api/archive/:id – permanent removal
	g.DELETE("/:id", func(c echo.Context) error {
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.DeleteArchivedRental(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
