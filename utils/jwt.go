package utils

import (
	"errors"
	"time"

	"tradecall/config"

	"github.com/golang-jwt/jwt"
)

func signingSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "tradecall-dev"
	}
	return []byte(secret)
}

// GeneratePaymentRequestToken creates a signed token embedding a booking ID.
// The operator email links back to the office endpoint with this token so the
// payment-request action can be triggered without a separate login.
func GeneratePaymentRequestToken(bookingID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": bookingID,
		"use": "payment_request",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

// ParsePaymentRequestToken validates a payment-request token and returns the
// booking ID it was issued for.
func ParsePaymentRequestToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if use, _ := claims["use"].(string); use != "payment_request" {
		return "", errors.New("token not issued for payment requests")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("token missing booking id")
	}
	return sub, nil
}
