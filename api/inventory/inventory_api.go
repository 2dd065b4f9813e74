package inventory

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"equiprent.GO/api"
	"equiprent.GO/config"
	"equiprent.GO/model/entity"
	"equiprent.GO/model/repository/state"
	"equiprent.GO/service/lifecycle"
)

const cacheTTL = 5 * time.Minute

func init() {
	api.RegisterModule(RegisterInventoryRoutes)
}

func RegisterInventoryRoutes(apiGroup *echo.Group, st *state.Store) {
	g := apiGroup.Group("/inventory")

	// GET /api/inventory – catalog with live available quantities.
	// Served from Redis when configured; every mutation drops the key.
	g.GET("", func(c echo.Context) error {
		ctx := c.Request().Context()
		if config.RedisClient != nil {
			if cached, err := config.RedisClient.Get(ctx, api.CacheKeyInventory).Bytes(); err == nil {
				return c.JSONBlob(http.StatusOK, cached)
			}
		}
		s, err := st.Load()
		if err != nil {
			return api.RespondError(c, err)
		}
		if config.RedisClient != nil {
			if raw, err := json.Marshal(s.Items); err == nil {
				_ = config.RedisClient.Set(ctx, api.CacheKeyInventory, raw, cacheTTL)
			}
		}
		return c.JSON(http.StatusOK, s.Items)
	})

	// POST /api/inventory – add a catalog item
	g.POST("", func(c echo.Context) error {
		var body lifecycle.ItemInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		var created entity.Item
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			next, item, err := lifecycle.CreateItem(s, body)
			created = item
			return next, err
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.JSON(http.StatusCreated, created)
	})

	// PUT /api/inventory/:id – edit; existing documents keep their
	// snapshotted rates
	g.PUT("/:id", func(c echo.Context) error {
		var body lifecycle.ItemInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		next, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.UpdateItem(s, c.Param("id"), body)
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.JSON(http.StatusOK, next.Items)
	})

	// DELETE /api/inventory/:id
	g.DELETE("/:id", func(c echo.Context) error {
		_, err := st.Mutate(func(s entity.AppData) (entity.AppData, error) {
			return lifecycle.DeleteItem(s, c.Param("id"))
		})
		if err != nil {
			return api.RespondError(c, err)
		}
		api.InvalidateStateCaches(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})
}
