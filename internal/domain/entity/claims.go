package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity carried by an access token.
type Claims struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// Session is the resolved identity of the current caller.
type Session struct {
	UserID   string
	Nickname string
}
