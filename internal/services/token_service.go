package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/errors"
)

const tokenIssuer = "API Clientes"

// TokenService emite e verifica tokens JWT assinados (HS256).
// O subject do token é o e-mail do usuário.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService cria um novo TokenService
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GerarToken emite um token para o usuário com a janela de validade configurada
func (s *TokenService) GerarToken(usuario *entities.Usuario) (string, error) {
	agora := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   usuario.Email,
		IssuedAt:  jwt.NewNumericDate(agora),
		ExpiresAt: jwt.NewNumericDate(agora.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ExtrairSubject valida o token e retorna o subject (e-mail do usuário).
// Assinatura inválida, emissor errado ou expiração resultam em ErrNaoAutenticado.
func (s *TokenService) ExtrairSubject(tokenJWT string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenJWT,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", errors.ErrNaoAutenticado
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.ErrNaoAutenticado
	}

	return claims.Subject, nil
}
