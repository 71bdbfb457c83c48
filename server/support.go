package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	contractx "github.com/hostbridge/support-agent/agent/contract"
	toolx "github.com/hostbridge/support-agent/agent/tool"
	storex "github.com/hostbridge/support-agent/store"
)

type supportReq struct {
	CustomerID string `json:"customer_id"`
	Query      string `json:"query"`
}

func supportHandler(advisor contractx.Advisor, customers storex.Customers, plans storex.Plans) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req supportReq
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "bad request")
		}

		// Malformed ids are a client error, distinct from "customer not
		// found" which the advisor reports as a normal result.
		id, err := storex.ParseCustomerID(req.CustomerID)
		if err != nil {
			return badRequest(c, "invalid customer id")
		}
		if strings.TrimSpace(req.Query) == "" {
			return badRequest(c, "query is required")
		}

		executor := toolx.NewExecutor(toolx.Deps{
			CustomerID: id,
			Customers:  customers,
			Plans:      plans,
		})

		result, err := advisor.Advise(c.Request().Context(), contractx.AdviseRequest{
			CustomerID: id,
			Query:      req.Query,
		}, executor)
		if err != nil {
			if errors.Is(err, contractx.ErrValidation) {
				return badRequest(c, "invalid support query")
			}
			return serverError(c, "error processing support query", err)
		}

		return c.JSON(http.StatusOK, result)
	}
}
