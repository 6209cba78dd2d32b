package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	applog "stockroom/internal/log"
	"stockroom/internal/validate"
)

// envelope writes {key: payload, "mensagem": msg}.
func envelope(c *fiber.Ctx, status int, key string, payload any, msg string) error {
	body := fiber.Map{key: payload}
	if msg != "" {
		body["mensagem"] = msg
	}
	return c.Status(status).JSON(body)
}

// attachment renders write into a CSV download named filename.
func attachment(c *fiber.Ctx, filename string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	c.Attachment(filename)
	return c.Send(buf.Bytes())
}

// pathID resolves :id; anything but a positive integer is a 404, as if the
// route did not match.
func pathID(c *fiber.Ctx) (int64, error) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		applog.Warn(c, "request.body.invalid", map[string]any{"err": err.Error()})
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	return nil
}

// nullKeys lists which of known are present in a JSON object body with a
// null value.
func nullKeys(c *fiber.Ctx, known ...string) []string {
	var fields map[string]json.RawMessage
	if err := c.App().Config().JSONDecoder(c.Body(), &fields); err != nil {
		return nil
	}
	var keys []string
	for _, k := range known {
		if v, ok := fields[k]; ok && string(bytes.TrimSpace(v)) == "null" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ErrorHandler turns client errors into {"error": msg} and everything else
// into a logged, generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong. Please try again.",
	})
}
