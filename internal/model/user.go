package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string
	Balance  int64
}

type UserClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
}
