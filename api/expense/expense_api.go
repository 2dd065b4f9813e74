package expense

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"equiprent.GO/api"
	"equiprent.GO/model/entity"
	"equiprent.GO/model/repository/state"
	"equiprent.GO/service/lifecycle"
)

func init() {
	api.RegisterModule(RegisterExpenseRoutes)
}

func RegisterExpenseRoutes(apiGroup *echo.Group, st *state.Store) {
	g := apiGroup.Group("/expenses")

	// GET /api/expenses
	g.GET("", func(c echo.Context) error {
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, s.Expenses)
	})

	// POST /api/expenses
	g.POST("", func(c echo.Context) error {
		var body lifecycle.ExpenseInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		var created entity.Expense
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			next, exp, err := lifecycle.AddExpense(s, body, time.Now())
			created = exp
			return next, err
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	})

	// DELETE /api/expenses/:id
	g.DELETE("/:id", func(c echo.Context) error {
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.DeleteExpense(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
