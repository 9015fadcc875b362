package middleware

import (
	"crypto/subtle"

	"tourquote/config"
	domainerrors "tourquote/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderGatePassphrase carries the console passphrase on every admin request.
const HeaderGatePassphrase = "X-Gate-Passphrase"

// GateMiddleware guards the admin console behind a shared passphrase. It is a
// convenience gate against accidental access, not an authentication system:
// anyone holding the passphrase is fully trusted.
type GateMiddleware struct {
	cfg *config.Config
}

// NewGateMiddleware is the constructor for GateMiddleware.
func NewGateMiddleware(cfg *config.Config) *GateMiddleware {
	return &GateMiddleware{cfg: cfg}
}

// Check validates the passphrase header. When no passphrase is configured the
// gate is open.
func (m *GateMiddleware) Check(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.Gate == nil || m.cfg.Gate.Passphrase == "" {
			return next(c)
		}

		supplied := c.Request().Header.Get(HeaderGatePassphrase)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(m.cfg.Gate.Passphrase)) != 1 {
			return domainerrors.ErrGateRejected
		}

		return next(c)
	}
}
