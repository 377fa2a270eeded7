package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/services"
)

const accessDecisionKey = "access_decision"

// SessionToken reads the session token from the Authorization header, then
// from the session cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// AccessDecision returns the guard decision stored by RequireAdmin.
func AccessDecision(c *gin.Context) (services.AccessDecision, bool) {
	v, ok := c.Get(accessDecisionKey)
	if !ok {
		return services.AccessDecision{}, false
	}
	decision, ok := v.(services.AccessDecision)
	return decision, ok
}
