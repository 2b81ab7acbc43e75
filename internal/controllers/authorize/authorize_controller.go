package authorize

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:embed templates/authorize.html
var templates embed.FS

// AuthorizeController renders the account linking login page.
type AuthorizeController struct {
	page        *template.Template
	newAuthCode func() string
}

type pageData struct {
	AccountLinkingToken string
	RedirectURI         string
	RedirectURISuccess  string
}

// NewAuthorizeController creates a new AuthorizeController. Authorization codes are random UUIDs.
func NewAuthorizeController() (*AuthorizeController, error) {
	page, err := template.ParseFS(templates, "templates/authorize.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorize template: %w", err)
	}
	return &AuthorizeController{
		page:        page,
		newAuthCode: uuid.NewString,
	}, nil
}

// Authorize godoc
// @Summary      Account linking page
// @Description  Renders the login page the account link button points at. A successful login redirects to redirect_uri with a generated authorization_code.
// @Tags         Account Linking
// @Produce      html
// @Param        account_linking_token  query  string  false  "Token issued by the platform"
// @Param        redirect_uri           query  string  true   "Where to send the user after login"
// @Success      200  "Login page"
// @Failure      400  "Missing or invalid redirect_uri"
// @Router       /authorize [get]
func (a *AuthorizeController) Authorize(c *fiber.Ctx) error {
	redirectURI := c.Query("redirect_uri")
	if redirectURI == "" {
		return richerrors.Error{
			ExternalMsg: "redirect_uri is required",
			Code:        fiber.StatusBadRequest,
		}
	}
	success, err := url.Parse(redirectURI)
	if err != nil || !success.IsAbs() {
		return richerrors.Error{
			ExternalMsg: "Invalid redirect_uri",
			Err:         fmt.Errorf("invalid redirect uri %q: %w", redirectURI, err),
			Code:        fiber.StatusBadRequest,
		}
	}

	authCode := a.newAuthCode()
	query := success.Query()
	query.Set("authorization_code", authCode)
	success.RawQuery = query.Encode()

	var buf bytes.Buffer
	if err := a.page.Execute(&buf, pageData{
		AccountLinkingToken: c.Query("account_linking_token"),
		RedirectURI:         redirectURI,
		RedirectURISuccess:  success.String(),
	}); err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to render page",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	zerolog.Ctx(c.UserContext()).Info().Str("authCode", authCode).Msg("Rendered account linking page.")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
