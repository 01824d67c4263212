// internal/httpserver/tokens.go
//
// Round tokens: HS256 JWTs whose subject is the round ID. A token is issued
// by POST /game/new and required for every later request on that round.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errTokenMismatch = errors.New("token does not match round")

// signRoundToken creates a token for round id, valid for opts.TokenTTL.
func (s *Server) signRoundToken(id string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
	})
	return t.SignedString([]byte(s.opts.TokenSecret))
}

// verifyRoundToken checks signature and expiry, and that the token was
// issued for round id.
func (s *Server) verifyRoundToken(tok, id string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.TokenSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	if claims.Subject == "" || claims.Subject != id {
		return errTokenMismatch
	}
	return nil
}

// authorized writes a 401 and returns false unless the request carries a
// valid token for round id.
func (s *Server) authorized(w http.ResponseWriter, r *http.Request, id string) bool {
	tok := bearer(r)
	if tok == "" {
		writeJSON(w, http.StatusUnauthorized, errorRes{Error: "missing_token"})
		return false
	}
	if err := s.verifyRoundToken(tok, id); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorRes{Error: "invalid_token"})
		return false
	}
	return true
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
