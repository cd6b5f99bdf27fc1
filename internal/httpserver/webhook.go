package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

type WebhookHTTP struct {
	Users  *service.UserService
	Secret []byte
}

// maxWebhookBody bounds the raw payload read; identity events are a
// few hundred bytes.
const maxWebhookBody = 1 << 20

// IdentityWebhook receives user lifecycle events from the identity
// provider. The raw body is HMAC-verified before anything is decoded.
func (h *WebhookHTTP) IdentityWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "webhook.identity")

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"success": false, "message": "body too large"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	if !h.verify(body, c.Request().Header.Get("X-Signature")) {
		l.Warn("identity_webhook_rejected", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid signature"})
	}

	var ev transport.IdentityEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid payload"})
	}

	if err := h.Users.HandleIdentityEvent(ctx, ev); err != nil {
		return respondError(c, "webhook.identity", err)
	}

	l.Info("identity_event_handled", "type", ev.Type)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *WebhookHTTP) verify(body []byte, signature string) bool {
	if len(h.Secret) == 0 || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, h.Secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
