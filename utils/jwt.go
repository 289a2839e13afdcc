package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry extracts the expiry claim from a bearer token without verifying
// its signature. The client never validates tokens locally; the server is the
// only authority. This peek exists so a restored-but-stale session can be
// logged before the first request fails.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := new(jwt.Parser)
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("failed to parse claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("token does not contain a valid 'exp' claim")
	}
	return time.Unix(int64(exp), 0), nil
}

// TokenSubject extracts the subject (account ID) from a token without
// verification. Returns an error if the claim is absent or empty.
func TokenSubject(tokenString string) (string, error) {
	parser := new(jwt.Parser)
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("failed to parse claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
