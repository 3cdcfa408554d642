package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const consoleAudience = "console"

// ErrInvalidToken indica cookie de sessão adulterado, expirado ou malformado.
var ErrInvalidToken = errors.New("token de sessão inválido")

// Claims representa as informações presentes no cookie de sessão.
// O Subject carrega o identificador do estado do console no store.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager encapsula geração e validação dos cookies de sessão.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager cria o gerenciador com segredo e TTL configurados.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL devolve a validade configurada.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// NewSessionID gera identificador aleatório para um console novo.
func NewSessionID() string {
	return uuid.NewString()
}

// Issue cria um JWT HS256 vinculado ao identificador de sessão.
func (m *TokenManager) Issue(sessionID string) (string, time.Time, error) {
	now := m.now().UTC()
	expires := now.Add(m.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Audience:  jwt.ClaimStrings{consoleAudience},
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Parse verifica assinatura, audience e expiração e devolve o identificador de sessão.
func (m *TokenManager) Parse(tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(consoleAudience),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
