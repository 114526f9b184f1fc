package auth

import (
	"errors"
	"fmt"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"

	"github.com/gofiber/fiber/v2"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/configs"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", errors.New("no token provided")
	}

	// tolerate repeated whitespace and case differences in the scheme
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("invalid token format")
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("empty token")
	}
	return tok, nil
}

/* ======== Verifiers ======== */

// verifyToken resolves the caller's email from either a platform-issued HS256
// JWT or a Google/Firebase ID token, whichever the deployment is configured for.
func verifyToken(tokenString string) (string, error) {
	if configs.JWTSecret != "" {
		if email, err := verifyPlatformJWT(tokenString); err == nil {
			return email, nil
		}
	}
	if configs.GoogleClientID != "" {
		return verifyGoogleIDToken(tokenString)
	}
	return "", errors.New("no verifier configured or token rejected")
}

func verifyPlatformJWT(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	email, ok := claims["email"].(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", errors.New("token has no email claim")
	}
	// lowercased to match the casing the donor directory stores
	return strings.ToLower(strings.TrimSpace(email)), nil
}

func verifyGoogleIDToken(tokenString string) (string, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(tokenString, []string{configs.GoogleClientID}); err != nil {
		return "", err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(tokenString)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(claimSet.Email) == "" {
		return "", errors.New("ID token has no email claim")
	}
	return strings.ToLower(strings.TrimSpace(claimSet.Email)), nil
}
