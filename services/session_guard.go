package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
)

type Verdict int

const (
	RedirectToLogin Verdict = iota
	RedirectToHome
	Granted
)

func (v Verdict) String() string {
	switch v {
	case Granted:
		return "granted"
	case RedirectToHome:
		return "redirect_to_home"
	default:
		return "redirect_to_login"
	}
}

// AccessDecision is the outcome of one admin access check. It lives for a
// single request.
type AccessDecision struct {
	Verdict Verdict
	Session *Session
	Notice  string
}

// Redirect is where a denied visitor is sent. Empty when granted.
func (d AccessDecision) Redirect() string {
	switch d.Verdict {
	case RedirectToLogin:
		return "/auth"
	case RedirectToHome:
		return "/"
	}
	return ""
}

type SessionResolver interface {
	Session(ctx context.Context, token string) (*Session, error)
}

type RoleChecker interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

type SessionGuard struct {
	sessions SessionResolver
	roles    RoleChecker
}

func NewSessionGuard(sessions SessionResolver, roles RoleChecker) *SessionGuard {
	return &SessionGuard{sessions: sessions, roles: roles}
}

// CheckAccess grants only when a session exists and its user holds an admin
// role row. Any lookup failure denies.
func (g *SessionGuard) CheckAccess(ctx context.Context, token string) AccessDecision {
	sess, err := g.sessions.Session(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			utils.ErrorLogger.WithError(err).Error("session lookup failed")
		}
		return AccessDecision{Verdict: RedirectToLogin, Notice: MsgLoginRequired}
	}

	isAdmin, err := g.roles.HasRole(ctx, sess.UserID, models.RoleAdmin)
	if err != nil {
		utils.ErrorLogger.WithError(err).WithField("user_id", sess.UserID).Error("admin role lookup failed")
		return AccessDecision{Verdict: RedirectToHome, Session: sess, Notice: MsgUnauthorized}
	}
	if !isAdmin {
		return AccessDecision{Verdict: RedirectToHome, Session: sess, Notice: MsgUnauthorized}
	}
	return AccessDecision{Verdict: Granted, Session: sess}
}
