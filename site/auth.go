package site

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio/constants"
	"portfolio/database"
)

type contextKey string

const signedInUserKey = contextKey("signed_in_user")

func getSignedInUserOrNil(r *http.Request) *database.AdminUser {
	return userFromContext(r.Context())
}

func userFromContext(ctx context.Context) *database.AdminUser {
	adminUser, _ := ctx.Value(signedInUserKey).(*database.AdminUser)
	return adminUser
}

func isAdminContext(ctx context.Context) bool {
	return userFromContext(ctx) != nil
}

func isAdmin(r *http.Request) bool {
	return getSignedInUserOrNil(r) != nil
}

// TryPutUserInContextMiddleware resolves the admin from the session cookie
// or, for API clients, from a bearer token. Requests without either pass
// through anonymously.
func (s *Server) TryPutUserInContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.userFromSessionCookie(w, r)
		if user == nil {
			user = s.userFromBearerToken(r)
		}
		if user == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), signedInUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) userFromSessionCookie(w http.ResponseWriter, r *http.Request) *database.AdminUser {
	cookie, err := r.Cookie(constants.SESSION_COOKIE_NAME)
	if err != nil || cookie.Value == "" {
		return nil
	}

	user, err := s.store.GetAdminUserBySession(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			s.requestLog(r).WithError(err).Error("failed to resolve session")
		}
		// clear the invalid cookie
		s.clearSessionCookie(w)
		return nil
	}
	return user
}

func (s *Server) userFromBearerToken(r *http.Request) *database.AdminUser {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < 8 || !strings.EqualFold(header[:7], "bearer ") {
		return nil
	}

	id, err := s.parseAPIToken(strings.TrimSpace(header[7:]))
	if err != nil {
		return nil
	}

	user, err := s.store.GetAdminUser(r.Context(), id)
	if err != nil {
		return nil
	}
	return user
}

// APIAuthMiddleware answers 401 JSON when no admin is signed in.
func APIAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AuthProtectedMiddleware sends anonymous visitors of admin screens to the
// login page.
func AuthProtectedMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, user *database.AdminUser) error {
	token, err := generateAuthToken()
	if err != nil {
		return err
	}

	ttl := s.cfg.Auth.SessionTTL
	if ttl <= 0 {
		ttl = constants.DEFAULT_SESSION_TTL
	}
	if err := s.store.SetAdminSession(r.Context(), user.ID, token, ttl); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SESSION_COOKIE_NAME,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Server) endSession(w http.ResponseWriter, r *http.Request) {
	if user := getSignedInUserOrNil(r); user != nil {
		if err := s.store.ClearAdminSession(r.Context(), user.ID); err != nil {
			s.requestLog(r).WithError(err).Error("failed to clear session")
		}
	}
	s.clearSessionCookie(w)
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SESSION_COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (s *Server) issueAPIToken(user *database.AdminUser) (string, time.Time, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = constants.API_TOKEN_TTL
	}
	now := s.now()
	expiresAt := now.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		Issuer:    constants.APP_NAME,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *Server) parseAPIToken(tokenStr string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(constants.APP_NAME),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
}

func (s *Server) apiLogin(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticateJSON(w, r)
	if !ok {
		return
	}
	if err := s.startSession(w, r, user); err != nil {
		s.respondStoreError(w, r, err, "", "sign in")
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Email: user.Email, Name: user.Name})
}

func (s *Server) apiToken(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticateJSON(w, r)
	if !ok {
		return
	}
	token, expiresAt, err := s.issueAPIToken(user)
	if err != nil {
		s.respondStoreError(w, r, err, "", "issue token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"token": token, "expiresAt": expiresAt})
}

func (s *Server) authenticateJSON(w http.ResponseWriter, r *http.Request) (*database.AdminUser, bool) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := s.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return nil, false
	}

	user, err := s.store.Authenticate(r.Context(), req.Email, req.Password)
	if errors.Is(err, database.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return nil, false
	}
	if err != nil {
		s.respondStoreError(w, r, err, "", "sign in")
		return nil, false
	}
	return user, true
}

func (s *Server) apiLogout(w http.ResponseWriter, r *http.Request) {
	s.endSession(w, r)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

func (s *Server) apiSession(w http.ResponseWriter, r *http.Request) {
	user := getSignedInUserOrNil(r)
	if user == nil {
		respondJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Email: user.Email, Name: user.Name})
}
