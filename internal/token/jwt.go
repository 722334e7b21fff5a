package token

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTTL  = 15 * time.Minute
	refreshSkew = 30 * time.Second
)

// Claims identify the project a hosted API call is made for.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

const scopeRecords = "records"

// JWT signs bearer tokens for the hosted record API with a shared HMAC secret.
// Issued tokens are cached and reused until shortly before they expire.
type JWT struct {
	projectID string
	secretKey string
	ttl       time.Duration
	now       func() time.Time

	mu      sync.Mutex
	current string
	expires time.Time
}

// NewJWT creates a token source for projectID. A non-positive ttl selects the default.
func NewJWT(projectID, secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWT{
		projectID: projectID,
		secretKey: secretKey,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Token returns a cached token or signs a new one.
func (j *JWT) Token() (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	if j.current != "" && now.Add(refreshSkew).Before(j.expires) {
		return j.current, nil
	}

	expires := now.Add(j.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   j.projectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Scope: scopeRecords,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign api token: %w", err)
	}

	j.current = tokenString
	j.expires = expires
	return tokenString, nil
}

// Parse validates a token signed with secretKey and returns the project ID.
func Parse(tokenString, secretKey string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse api token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("api token is invalid")
	}
	if claims.Scope != scopeRecords {
		return "", fmt.Errorf("token scope mismatch: %s", claims.Scope)
	}
	return claims.Subject, nil
}
