package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/members/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/members/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/members/:id", "204"))
	assert.Equal(t, 2.0, got)
}

func TestDomainCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordMemberMutation("create")
	m.RecordAccessFlag("plot")
	m.RecordAccessFlag("plot")
	m.RecordResolution("closed")
	m.WSConnectionOpened()
	m.WSConnectionOpened()
	m.WSConnectionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MemberMutations.WithLabelValues("create")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AccessFlagUpdates.WithLabelValues("plot")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportResolutions.WithLabelValues("closed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSConnectionsActive))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := NewMetrics()
	m.RecordMemberMutation("delete")

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `studio_admin_member_mutations_total{op="delete"} 1`)
}
