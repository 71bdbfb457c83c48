package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	storex "github.com/hostbridge/support-agent/store"
)

type planResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

func listPlansHandler(plans storex.Plans) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := plans.List(c.Request().Context(), storex.MaxPlanListSize)
		if err != nil {
			return serverError(c, "failed to list plans", err)
		}

		out := make([]planResponse, 0, len(list))
		for _, p := range list {
			out = append(out, planResponse{
				Name:        p.Name,
				Description: p.Description,
				Cost:        p.Cost,
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}
