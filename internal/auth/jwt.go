package auth

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "jwt"

// Claims represents the session token payload: a user id and role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a numeric user id.
func (c Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Sessions issues and validates session cookies. The token is the only
// session state; there is no server-side session table.
type Sessions struct {
	Issuer       string
	SigningKey   string
	TTL          time.Duration
	CookieDomain string
	Secure       bool
}

// Issue signs a session token binding a user id and role.
func (s Sessions) Issue(userID int64, role string) (string, time.Time, error) {
	exp := time.Now().Add(s.TTL)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.SigningKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// SetCookie issues a token and writes it as an HTTP-only cookie.
func (s Sessions) SetCookie(c *gin.Context, userID int64, role string) error {
	token, _, err := s.Issue(userID, role)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(s.TTL.Seconds()), "/", s.CookieDomain, s.Secure, true)
	return nil
}

// ClearCookie expires the session cookie.
func (s Sessions) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", s.CookieDomain, s.Secure, true)
}

// Parse validates a token and returns its claims.
func (s Sessions) Parse(tokenStr string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.SigningKey), nil
	})
	if err != nil {
		return Claims{}, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if s.Issuer != "" && claims.Issuer != s.Issuer {
		return Claims{}, errors.New("issuer mismatch")
	}
	return *claims, nil
}
