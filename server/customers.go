package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	storex "github.com/hostbridge/support-agent/store"
)

type createCustomerReq struct {
	Name           string    `json:"name"`
	SubscribedPlan string    `json:"subscribed_plan"`
	RenewalDate    time.Time `json:"renewal_date"`
	AverageUsage   int       `json:"average_usage"`
}

type customerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SubscribedPlan string    `json:"subscribed_plan"`
	RenewalDate    time.Time `json:"renewal_date"`
	AverageUsage   int       `json:"average_usage"`
	EscalationLog  string    `json:"escalation_log,omitempty"`
}

func toCustomerResponse(c *storex.Customer) customerResponse {
	return customerResponse{
		ID:             storex.FormatCustomerID(c.ID),
		Name:           c.Name,
		SubscribedPlan: c.SubscribedPlan,
		RenewalDate:    c.RenewalDate,
		AverageUsage:   c.AverageUsage,
		EscalationLog:  c.EscalationLog,
	}
}

func createCustomerHandler(customers storex.Customers) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createCustomerReq
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "bad request")
		}

		req.Name = strings.TrimSpace(req.Name)
		req.SubscribedPlan = strings.TrimSpace(req.SubscribedPlan)

		switch {
		case req.Name == "":
			return badRequest(c, "name is required")
		case req.SubscribedPlan == "":
			return badRequest(c, "subscribed_plan is required")
		case req.RenewalDate.IsZero():
			return badRequest(c, "renewal_date is required")
		case req.AverageUsage < 0:
			return badRequest(c, "average_usage must be >= 0")
		}

		customer := &storex.Customer{
			Name:           req.Name,
			SubscribedPlan: req.SubscribedPlan,
			RenewalDate:    req.RenewalDate,
			AverageUsage:   req.AverageUsage,
		}
		if err := customers.Create(c.Request().Context(), customer); err != nil {
			return serverError(c, "failed to create customer", err)
		}

		return c.JSON(http.StatusCreated, toCustomerResponse(customer))
	}
}

func getCustomerHandler(customers storex.Customers) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := storex.ParseCustomerID(c.Param("customer_id"))
		if err != nil {
			return badRequest(c, "invalid customer id")
		}

		customer, err := customers.GetByID(c.Request().Context(), id)
		if err != nil {
			return serverError(c, "failed to fetch customer", err)
		}
		if customer == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
		}

		return c.JSON(http.StatusOK, toCustomerResponse(customer))
	}
}
