package rayid_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"gear-tracker/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.FromContext(c))
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	id := resp.Header.Get(rayid.HeaderName)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, string(body))
}

func TestRayID_Propagated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "upstream-42")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-42", resp.Header.Get(rayid.HeaderName))
}
