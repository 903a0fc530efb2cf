package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tripmate/internal/domain"
)

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID int64
	Role   domain.Role
	Name   string
}

func (id Identity) Actor() domain.Actor { return domain.Actor{ID: id.UserID, Role: id.Role} }

type ctxKey struct{}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Verifier validates HMAC-signed bearer tokens. Token issuance belongs to
// the external auth service; only validation happens here.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) parse(raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, fmt.Errorf("invalid token: %w", domain.ErrForbidden)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("invalid claims: %w", domain.ErrForbidden)
	}

	var userID int64
	switch sub := claims["sub"].(type) {
	case float64:
		userID = int64(sub)
	case string:
		if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil {
			return Identity{}, fmt.Errorf("invalid sub claim: %w", domain.ErrForbidden)
		}
	default:
		return Identity{}, fmt.Errorf("missing sub claim: %w", domain.ErrForbidden)
	}

	roleStr, _ := claims["role"].(string)
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid role claim: %w", domain.ErrForbidden)
	}
	name, _ := claims["name"].(string)
	return Identity{UserID: userID, Role: role, Name: name}, nil
}

// Middleware attaches the caller identity to the request context when a
// valid bearer token is present. Requests without a token pass through
// anonymously; RequireAuth gates the protected routes.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if h == "" {
			next.ServeHTTP(w, r)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		id, err := v.parse(raw)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"invalid or expired token"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewToken signs an identity. Used by tests and local tooling; the
// production issuer lives outside this service.
func NewToken(secret string, userID int64, role domain.Role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", userID),
		"role": string(role),
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
