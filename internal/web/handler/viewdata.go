package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alaaabdelzaher/web-sub000/internal/auth"
	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/i18n"
)

// ViewData assembles the template data every page shares: language and
// text direction, the flash banner, the active navigation and the
// public site settings. Handlers extend the map with their own keys.
func ViewData(c *fiber.Ctx, cfg *config.Config, state *cms.State) fiber.Map {
	lang := Lang(c)
	msg, errMsg := Flash(c)

	data := fiber.Map{
		"SiteTitle": cfg.Title,
		"Lang":      string(lang),
		"Dir":       i18n.Dir(lang),
		"Msg":       msg,
		"Err":       errMsg,
		"Nav":       ActiveNavigation(state),
		"Settings":  PublicSettings(state),
	}

	if sessionData, ok := auth.CurrentUser(c); ok {
		data["User"] = sessionData.User
		data["Permissions"] = auth.RolePermissions(sessionData.User.Role)
	}

	return data
}

// ActiveNavigation returns the enabled navigation items in menu order.
func ActiveNavigation(state *cms.State) []models.NavigationItem {
	items := state.Navigation.Items()

	active := make([]models.NavigationItem, 0, len(items))

	for _, item := range items {
		if item.IsActive {
			active = append(active, item)
		}
	}

	return active
}

// PublicSettings maps the publicly visible site settings by key.
func PublicSettings(state *cms.State) map[string]string {
	settings := state.Settings.Items()

	public := make(map[string]string, len(settings))

	for _, s := range settings {
		if s.IsPublic {
			public[s.SettingKey] = s.SettingValue
		}
	}

	return public
}
