package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateStruct(v any) error {
	return validator.New().Struct(v)
}

func TestJsonErrorWritesStatusAndEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusInternalServerError, "Server error")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"success":false`)
	assert.Contains(t, string(body), "INTERNAL_ERROR")
	assert.Contains(t, string(body), "Server error")
}

// JsonError's return value is c.JSON's, which is nil once the body is
// written. Handlers must not treat it as a failure signal for their own
// control flow; branch on the underlying error and call JsonError at the
// return site.
func TestJsonErrorReturnIsNotAFailureSignal(t *testing.T) {
	var ret error
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		ret = JsonError(c, fiber.StatusBadRequest, "nope")
		return ret
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, ret)
}

func TestJsonValidationErrorStatus(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	app := fiber.New()
	app.Get("/v", func(c *fiber.Ctx) error {
		return JsonValidationError(c, validateStruct(payload{Email: "not-an-email"}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/v", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "VALIDATION_ERROR")
	assert.Contains(t, string(body), "Email")
}
