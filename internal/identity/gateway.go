package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrNoVerifierKey = errors.New("identity: neither a JWT secret nor a public key is configured")
)

// Gateway turns a bearer token into an Identity. An empty token is an anonymous caller, not an error.
type Gateway interface {
	Authenticate(token string) (Identity, error)
}

type JWTGateway struct {
	keyFunc jwt.Keyfunc
	parser  *jwt.Parser
}

// NewJWTGateway verifies session tokens with an RSA public key when publicKeyPEM is set,
// otherwise with the shared HMAC secret.
func NewJWTGateway(secret, publicKeyPEM string) (*JWTGateway, error) {
	if publicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("identity: parse public key: %w", err)
		}
		return &JWTGateway{
			keyFunc: func(*jwt.Token) (interface{}, error) { return key, nil },
			parser:  jwt.NewParser(jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})),
		}, nil
	}

	if secret == "" {
		return nil, ErrNoVerifierKey
	}
	return &JWTGateway{
		keyFunc: func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})),
	}, nil
}

func (g *JWTGateway) Authenticate(token string) (Identity, error) {
	if token == "" {
		return Anonymous(), nil
	}

	parsed, err := g.parser.Parse(token, g.keyFunc)
	if err != nil || !parsed.Valid {
		return Anonymous(), ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Anonymous(), ErrInvalidToken
	}

	userId, _ := claims["sub"].(string)
	if userId == "" {
		// tokens minted by our own tooling carry user_id instead of sub
		userId, _ = claims["user_id"].(string)
	}
	if userId == "" {
		return Anonymous(), ErrInvalidToken
	}

	return Identity{
		UserId:   userId,
		Plans:    entitlementClaim(claims["pla"]),
		Features: entitlementClaim(claims["fea"]),
	}, nil
}

// entitlementClaim accepts "u:pro", "u:a,o:b" or a JSON array of such entries
// and returns the names with their scope prefix removed.
func entitlementClaim(raw interface{}) []string {
	var entries []string
	switch v := raw.(type) {
	case string:
		entries = strings.Split(v, ",")
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				entries = append(entries, s)
			}
		}
	default:
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if scope, name, found := strings.Cut(entry, ":"); found && (scope == "u" || scope == "o") {
			entry = name
		}
		if entry != "" {
			names = append(names, entry)
		}
	}
	return names
}
