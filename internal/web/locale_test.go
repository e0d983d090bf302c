package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaaabdelzaher/web-sub000/internal/i18n"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler"
)

// newLocaleTestApp wires the locale middleware and the language switch
// route the way New does, plus one route echoing the resolved language.
func newLocaleTestApp() *fiber.App {
	app := fiber.New()
	app.Use(LocaleMiddleware)
	app.Get("/language/:lang", SwitchLanguage)
	app.Get("/current", func(c *fiber.Ctx) error {
		lang := handler.Lang(c)

		return c.JSON(fiber.Map{
			"lang": string(lang),
			"dir":  i18n.Dir(lang),
		})
	})

	return app
}

func languageCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()

	for _, cookie := range res.Cookies() {
		if cookie.Name == i18n.CookieKey {
			return cookie
		}
	}

	t.Fatalf("response carries no %s cookie", i18n.CookieKey)

	return nil
}

func TestSwitchLanguagePersistsPreference(t *testing.T) {
	app := newLocaleTestApp()

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/language/ar", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get(fiber.HeaderLocation), "no referer falls back to the landing page")

	cookie := languageCookie(t, res)
	assert.Equal(t, "ar", cookie.Value)
	assert.Positive(t, cookie.MaxAge, "preference must outlive the session")

	// A later visit carrying the cookie resolves Arabic and rtl, the
	// survive-a-restart read-back of the stored preference.
	req := httptest.NewRequest(http.MethodGet, "/current", nil)
	req.AddCookie(&http.Cookie{Name: i18n.CookieKey, Value: cookie.Value})

	res2, err := app.Test(req)
	require.NoError(t, err)
	defer res2.Body.Close()

	assert.JSONEq(t, `{"lang":"ar","dir":"rtl"}`, readBody(t, res2))
}

func TestSwitchLanguageRedirectsToReferer(t *testing.T) {
	app := newLocaleTestApp()

	req := httptest.NewRequest(http.MethodGet, "/language/en", nil)
	req.Header.Set(fiber.HeaderReferer, "/blog")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, "/blog", res.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, "en", languageCookie(t, res).Value)
}

func TestLocaleMiddlewareDefaults(t *testing.T) {
	testCases := []struct {
		name     string
		cookie   string
		expected string
	}{
		{"no preference stored", "", `{"lang":"en","dir":"ltr"}`},
		{"arabic stored", "ar", `{"lang":"ar","dir":"rtl"}`},
		{"unknown value falls back", "fr", `{"lang":"en","dir":"ltr"}`},
	}

	app := newLocaleTestApp()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/current", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: i18n.CookieKey, Value: tc.cookie})
			}

			res, err := app.Test(req)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.JSONEq(t, tc.expected, readBody(t, res))
		})
	}
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return string(body)
}
