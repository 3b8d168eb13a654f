package httptransport

import (
	"net/http"

	"openfairdb/internal/auth/device"
	"openfairdb/internal/boundary"
	"openfairdb/internal/domain"
	"openfairdb/internal/web/guards"
	pkgerrors "openfairdb/pkg/errors"
	"openfairdb/pkg/requestcontext"
)

var errInvalidCredentials = pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload boundary.Credentials
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.users.FindByEmail(r.Context(), domain.Email(payload.Email))
	if err != nil {
		// Same answer for unknown accounts and wrong passwords.
		h.metrics.AuthFailures.Inc()
		WriteError(w, errInvalidCredentials)
		return
	}
	if !user.Password.Verify(payload.Password) {
		h.metrics.AuthFailures.Inc()
		WriteError(w, errInvalidCredentials)
		return
	}

	userID, err := h.users.NumericID(r.Context(), user.Email)
	if err != nil {
		WriteError(w, err)
		return
	}
	accountCookie, err := h.cookies.NewAccountCookie(user.Email)
	if err != nil {
		WriteError(w, err)
		return
	}
	userCookie, err := h.cookies.NewUserCookie(userID)
	if err != nil {
		WriteError(w, err)
		return
	}
	token, err := h.tokens.Generate(user.Email, user.Role)
	if err != nil {
		WriteError(w, err)
		return
	}

	http.SetCookie(w, accountCookie)
	http.SetCookie(w, userCookie)

	rawUA := requestcontext.UserAgent(r.Context())
	h.logger.InfoContext(r.Context(), "login",
		"email", user.Email,
		"device", device.ParseUserAgent(rawUA),
		"fingerprint", h.devices.ComputeFingerprint(rawUA),
		"client_ip", requestcontext.ClientIP(r.Context()),
	)
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookies.ClearAccountCookie())
	http.SetCookie(w, h.cookies.ClearUserCookie())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload boundary.Credentials
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	email, err := domain.ParseEmail(payload.Email)
	if err != nil {
		WriteError(w, err)
		return
	}
	if len(payload.Password) < 8 {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "password too short"))
		return
	}
	if _, err := h.users.FindByEmail(r.Context(), email); err == nil {
		WriteError(w, pkgerrors.New(pkgerrors.CodeConflict, "account already exists"))
		return
	}

	password, err := domain.NewPassword(payload.Password)
	if err != nil {
		WriteError(w, err)
		return
	}
	user := domain.User{
		Email:    email,
		Password: password,
		Role:     domain.RoleUser,
	}
	if err := h.users.Save(r.Context(), user); err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.UsersCreated.Inc()
	h.logger.InfoContext(r.Context(), "user registered", "email", email)
	writeJSON(w, http.StatusCreated, boundary.UserFromDomain(user))
}

func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	// The account cookie is authoritative; the numeric login cookie of the
	// legacy clients resolves the same account by id.
	if email := guards.AccountEmailFromContext(r.Context()); email != "" {
		user, err := h.users.FindByEmail(r.Context(), domain.Email(email))
		if err != nil {
			WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, boundary.UserFromDomain(user))
		return
	}
	userID, err := h.cookies.Login(r)
	if err != nil {
		WriteError(w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
		return
	}
	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boundary.UserFromDomain(user))
}

func (h *Handler) handleResetPasswordRequest(w http.ResponseWriter, r *http.Request) {
	var payload boundary.RequestPasswordReset
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	// The response never reveals whether an account exists.
	if _, err := h.users.FindByEmail(r.Context(), domain.Email(payload.Email)); err == nil {
		token := h.resetTokens.Issue(domain.Email(payload.Email))
		// There is no mailer; the token is logged for the operator to relay.
		h.logger.InfoContext(r.Context(), "password reset requested",
			"email", payload.Email,
			"token", token,
		)
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload boundary.ResetPassword
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	if len(payload.NewPassword) < 8 {
		WriteError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "password too short"))
		return
	}

	email, err := h.resetTokens.Redeem(payload.Token)
	if err != nil {
		WriteError(w, err)
		return
	}
	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		if pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
			WriteError(w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid reset token"))
			return
		}
		WriteError(w, err)
		return
	}

	password, err := domain.NewPassword(payload.NewPassword)
	if err != nil {
		WriteError(w, err)
		return
	}
	user.Password = password
	if err := h.users.Save(r.Context(), user); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
