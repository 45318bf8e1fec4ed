package authorization

import (
	"log"
	"strings"

	"github.com/cristalhq/jwt/v4"
)

func NewVerifier(secretKey []byte) (jwt.Verifier, error) {
	return jwt.NewVerifierHS(jwt.HS256, secretKey)
}

func GetToken(tokenString string, verifier jwt.Verifier) (*jwt.Token, error) {
	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		log.Println(err)
		return nil, err
	}
	return token, nil
}

func GetMapClaims(tokenBytes []byte, verifier jwt.Verifier) map[string]string {
	var claims map[string]string

	err := jwt.ParseClaims(tokenBytes, verifier, &claims)
	if err != nil {
		log.Println(err)
	}

	return claims
}

// ExtractBearerToken returns the raw token from an Authorization header,
// or the empty string when the header is missing or malformed.
func ExtractBearerToken(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
