package auth

import (
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// SignatureMiddleware rejects webhook deliveries whose body was not signed with the app secret.
// The SHA-256 header is preferred when both headers are present.
func SignatureMiddleware(verifier *SignatureVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(SignatureHeaderSHA256)
		if header == "" {
			header = c.Get(SignatureHeader)
		}

		err := verifier.Verify(c.Body(), header)
		if err == nil {
			return c.Next()
		}
		if verifier.Permits(err) {
			zerolog.Ctx(c.UserContext()).Warn().Msg("Accepting webhook delivery without a signature.")
			return c.Next()
		}

		code := fiber.StatusForbidden
		if errors.Is(err, ErrMissingSignature) {
			code = fiber.StatusUnauthorized
		}
		return richerrors.Error{
			Code:        code,
			ExternalMsg: "Invalid request signature",
			Err:         err,
		}
	}
}
