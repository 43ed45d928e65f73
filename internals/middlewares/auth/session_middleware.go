package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"barprep_backend/internals/constants"
	helper "barprep_backend/internals/helpers"
	"barprep_backend/internals/sessions"
)

const SessionCookieName = "session_token"

// SetSessionCookie writes the session cookie: httpOnly, sameSite=lax,
// expiry matching the store's sliding TTL.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(sessions.SessionTTL),
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}

func storeToLocals(c *fiber.Ctx, token string, sess sessions.Session) {
	c.Locals("session_token", token)
	c.Locals("user_id", sess.UserID)
	c.Locals("user_name", sess.UserName)
	c.Locals("user_email", sess.Email)
	c.Locals("user_role", sess.Role)
}

// RequireSession rejects requests without a valid session cookie. Reading the
// session slides its TTL, so the cookie expiry is refreshed alongside.
func RequireSession(store sessions.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
		}

		sess, err := store.Get(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, sessions.ErrSessionNotFound) {
				ClearSessionCookie(c)
				return helper.JsonError(c, fiber.StatusUnauthorized, "Session expired")
			}
			log.Printf("[ERROR] session store: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		storeToLocals(c, token, sess)
		SetSessionCookie(c, token)
		return c.Next()
	}
}

// OptionalSession loads the session when present but never rejects.
func OptionalSession(store sessions.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return c.Next()
		}

		sess, err := store.Get(c.UserContext(), token)
		if err != nil {
			return c.Next()
		}

		storeToLocals(c, token, sess)
		SetSessionCookie(c, token)
		return c.Next()
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != constants.RoleAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("the admin area"))
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id from locals, empty when anonymous.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// IsAdmin reports whether the current session carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("user_role").(string)
	return role == constants.RoleAdmin
}
