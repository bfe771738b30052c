package adminauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"leadhub-backend/internal/auth"
	"leadhub-backend/internal/httpx"
	"leadhub-backend/internal/middleware"
	"leadhub-backend/internal/transport"
	"leadhub-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service      *Service
	tokens       *auth.Manager
	val          *validation.Validator
	log          *slog.Logger
	cookieSecure bool
}

func NewHandler(service *Service, tokens *auth.Manager, val *validation.Validator, log *slog.Logger, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		tokens:       tokens,
		val:          val,
		log:          log.With(slog.String("resource", "admin-auth")),
		cookieSecure: cookieSecure,
	}
}

// Routes mounts the OTP login flow. The otpLimit middleware throttles code
// issuance per IP; profile sits behind the admin middleware.
func (h *Handler) Routes(r chi.Router, otpLimit, admin func(http.Handler) http.Handler) {
	r.Route("/admin/auth", func(r chi.Router) {
		r.With(otpLimit).Post("/send-otp", h.SendOTP)
		r.With(otpLimit).Post("/resend-otp", h.SendOTP)
		r.Post("/verify-otp", h.VerifyOTP)
		r.Post("/refresh", h.Refresh)
		r.Post("/logout", h.Logout)
		r.With(admin).Get("/profile", h.Profile)
	})
}

func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var payload SendOTPPayload
	if err := httpx.DecodeJSON(r.Body, &payload); err != nil {
		log.Warn("send otp: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json body", nil)
		return
	}
	if err := h.val.Struct(payload); err != nil {
		log.Warn("send otp: validation failed")
		transport.WriteError(w, http.StatusBadRequest, "validation failed", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	if err := h.service.SendOTP(ctx, payload.Email); err != nil {
		if errors.Is(err, ErrUnknownAdmin) {
			// Same response as success so the endpoint cannot be used to
			// probe which emails have accounts.
			log.Warn("send otp: unknown email")
			transport.WriteSuccess(w, http.StatusOK, "if this email has an account, a code is on its way", nil)
			return
		}
		log.Error("send otp: failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "could not send code, please try again", nil)
		return
	}

	log.Info("send otp: ok")
	transport.WriteSuccess(w, http.StatusOK, "if this email has an account, a code is on its way", nil)
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var payload VerifyOTPPayload
	if err := httpx.DecodeJSON(r.Body, &payload); err != nil {
		log.Warn("verify otp: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json body", nil)
		return
	}
	if err := h.val.Struct(payload); err != nil {
		log.Warn("verify otp: validation failed")
		transport.WriteError(w, http.StatusBadRequest, "validation failed", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	result, err := h.service.VerifyOTP(ctx, payload.Email, payload.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownAdmin), errors.Is(err, ErrNoChallenge),
			errors.Is(err, ErrExpiredCode), errors.Is(err, ErrWrongCode),
			errors.Is(err, ErrTooManyAttempts):
			log.Warn("verify otp: rejected", slog.String("reason", err.Error()))
			transport.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
		default:
			log.Error("verify otp: failed", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "could not verify code, please try again", nil)
		}
		return
	}

	h.setAuthCookies(w, result.Tokens.AccessToken, result.Tokens.RefreshToken)
	log.Info("verify otp: ok")
	transport.WriteSuccess(w, http.StatusOK, "login successful", result)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	cookie, err := r.Cookie(auth.RefreshCookieName)
	if err != nil || cookie.Value == "" {
		log.Warn("refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	claims, err := h.tokens.Parse(cookie.Value)
	if err != nil || claims.Role != "admin" {
		log.Warn("refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	access, err := h.tokens.NewAccessToken(claims.Subject, "admin")
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	refresh, err := h.tokens.NewRefreshToken(claims.Subject, "admin")
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	h.setAuthCookies(w, access, refresh)
	log.Info("refresh: ok")
	transport.WriteSuccess(w, http.StatusOK, "session refreshed", TokenPair{AccessToken: access, RefreshToken: refresh})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	h.clearAuthCookies(w)
	log.Info("logout: ok")
	transport.WriteSuccess(w, http.StatusOK, "logged out", nil)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	email := middleware.AdminEmailFromContext(r.Context())
	if email == "" {
		transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	admin, err := h.service.Profile(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUnknownAdmin) {
			transport.WriteError(w, http.StatusNotFound, "admin account not found", nil)
			return
		}
		log.Error("profile: failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "something went wrong, please try again", nil)
		return
	}

	transport.WriteSuccess(w, http.StatusOK, "profile fetched", admin)
}

func (h *Handler) setAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookieName,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.tokens.AccessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.RefreshCookieName,
		Value:    refresh,
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.tokens.RefreshTTL.Seconds()),
	})
}

func (h *Handler) clearAuthCookies(w http.ResponseWriter) {
	expire := time.Now().Add(-1 * time.Hour)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.RefreshCookieName,
		Value:    "",
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("trace_id", id))
	}
	return h.log
}
