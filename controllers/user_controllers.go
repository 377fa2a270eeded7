package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/middlewares"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type UserController struct {
	Auth         *services.AuthService
	CookieName   string
	SecureCookie bool
}

func NewUserController(auth *services.AuthService, cookieName string, secureCookie bool) *UserController {
	return &UserController{Auth: auth, CookieName: cookieName, SecureCookie: secureCookie}
}

func (uc *UserController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(uc.CookieName, token, maxAge, "/", "", uc.SecureCookie, true)
}

// SignUp registers a new account. It grants no role.
func (uc *UserController) SignUp(c *gin.Context) {
	var creds services.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.MsgInvalidEmail)
		return
	}

	user, err := uc.Auth.SignUp(c.Request.Context(), creds)
	if errors.Is(err, services.ErrEmailTaken) {
		utils.RespondError(c, http.StatusConflict, services.MsgEmailTaken)
		return
	}
	if err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}

	utils.RespondJSON(c, http.StatusCreated, services.MsgSignedUp, gin.H{
		"user_id": user.ID,
	})
}

// SignIn -> session token, also set as cookie
func (uc *UserController) SignIn(c *gin.Context) {
	var creds services.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.MsgInvalidEmail)
		return
	}

	token, sess, err := uc.Auth.SignIn(c.Request.Context(), creds)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.RespondError(c, http.StatusUnauthorized, services.MsgInvalidLogin)
		return
	}
	if err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}

	uc.setSessionCookie(c, token, int(time.Until(sess.ExpiresAt).Seconds()))
	utils.RespondRedirect(c, http.StatusOK, services.MsgSignedIn, "/admin", gin.H{
		"token":   token,
		"session": sess,
	})
}

func (uc *UserController) SignOut(c *gin.Context) {
	token := middlewares.SessionToken(c, uc.CookieName)
	if err := uc.Auth.SignOut(c.Request.Context(), token); err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}
	uc.setSessionCookie(c, "", -1)
	utils.RespondRedirect(c, http.StatusOK, services.MsgSignedOut, "/", nil)
}

// Session reports the current session. A visitor who is already signed in is
// sent on to the admin panel.
func (uc *UserController) Session(c *gin.Context) {
	token := middlewares.SessionToken(c, uc.CookieName)
	sess, err := uc.Auth.Session(c.Request.Context(), token)
	if errors.Is(err, services.ErrNoSession) {
		utils.RespondError(c, http.StatusUnauthorized, services.MsgLoginRequired)
		return
	}
	if err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}
	utils.RespondRedirect(c, http.StatusOK, services.MsgAlreadySignedIn, "/admin", sess)
}
