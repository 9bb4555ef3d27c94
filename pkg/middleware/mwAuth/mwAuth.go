package mwAuth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"school-schedule/internal/auth"
	"school-schedule/pkg/response"
	"school-schedule/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

var errNoToken = errors.New("authorization token not provided")

// New verifies an HMAC signed bearer token and stores the caller in the request context.
func New(log *slog.Logger, secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		log.Info("auth middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			principal, err := authenticate(r, secret)
			if err != nil {
				log.Warn("request rejected",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
					sl.Err(err),
				)
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(string(response.UNAUTHORIZED), err.Error()))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		}

		return http.HandlerFunc(fn)
	}
}

func authenticate(r *http.Request, secret []byte) (auth.Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return auth.Principal{}, errNoToken
	}

	scheme, tokenStr, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || tokenStr == "" {
		return auth.Principal{}, errors.New("invalid authorization header format")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithJSONNumber())
	if err != nil || !token.Valid {
		return auth.Principal{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Principal{}, errors.New("invalid token claims")
	}

	userID := claimUserID(claims["user_id"])
	if userID == "" {
		return auth.Principal{}, errors.New("invalid user id in token")
	}

	return auth.Principal{
		UserID: userID,
		Roles:  claimRoles(claims["roles"]),
	}, nil
}

// claimUserID accepts string ids and integral numeric ids. Numbers are kept
// as json.Number so ids above 2^53 survive decoding unchanged.
func claimUserID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		if _, err := id.Int64(); err != nil {
			return ""
		}
		return id.String()
	default:
		return ""
	}
}

func claimRoles(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}

	return roles
}

// IssueToken signs a token for the given user with HS256.
func IssueToken(secret []byte, userID string, roles []string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"roles":   roles,
		"iat":     time.Now().Unix(),
	}
	if ttl > 0 {
		claims["exp"] = time.Now().Add(ttl).Unix()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
