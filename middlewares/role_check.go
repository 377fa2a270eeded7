package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/metrics"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type AccessChecker interface {
	CheckAccess(ctx context.Context, token string) services.AccessDecision
}

// RequireAdmin runs the session guard once for the request and lets it
// through only when access is granted. Browsers navigating to a page get a
// redirect; API callers get JSON holding the redirect target.
func RequireAdmin(guard AccessChecker, cookieName string, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := guard.CheckAccess(c.Request.Context(), SessionToken(c, cookieName))
		c.Set(accessDecisionKey, decision)

		if decision.Verdict == services.Granted {
			c.Next()
			return
		}

		if m != nil {
			m.AdminAccessDenied.WithLabelValues(decision.Verdict.String()).Inc()
		}
		utils.InfoLogger.WithFields(map[string]interface{}{
			"path":    c.Request.URL.Path,
			"verdict": decision.Verdict.String(),
		}).Info("admin access denied")

		if wantsHTML(c) {
			c.Redirect(http.StatusSeeOther, decision.Redirect())
			c.Abort()
			return
		}

		code := http.StatusUnauthorized
		if decision.Verdict == services.RedirectToHome {
			code = http.StatusForbidden
		}
		utils.RespondRedirect(c, code, decision.Notice, decision.Redirect(), nil)
		c.Abort()
	}
}

func wantsHTML(c *gin.Context) bool {
	return c.Request.Method == http.MethodGet &&
		c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}
