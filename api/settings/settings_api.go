package settings

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"equiprent.GO/api"
	"equiprent.GO/model/entity"
	"equiprent.GO/model/repository/state"
	"equiprent.GO/service/lifecycle"
)

func init() {
	api.RegisterModule(RegisterSettingsRoutes)
}

func RegisterSettingsRoutes(apiGroup *echo.Group, st *state.Store) {
	g := apiGroup.Group("/settings")

	// GET /api/settings
	g.GET("", func(c echo.Context) error {
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, s.SystemSettings)
	})

	// PUT /api/settings – currency, billing cadence, contract counter
	// (forward only)
	g.PUT("", func(c echo.Context) error {
		var body entity.SystemSettings
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		next, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.UpdateSettings(s, body)
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, next.SystemSettings)
	})
}
