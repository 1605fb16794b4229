package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/lumipath/challenges/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(parent *entity.Parent) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	ParentID   string `json:"parent_id"`
	ParentName string `json:"parent_name"`
}
