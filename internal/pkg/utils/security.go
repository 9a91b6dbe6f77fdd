package utils

import (
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var (
	reUppercase = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	reLowercase = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	reDigit     = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
)

// ValidatePasswordPolicy enforces the account password rules: minimum eight
// characters with at least one uppercase letter, one lowercase letter and one
// digit.
func ValidatePasswordPolicy(password string) bool {
	return len(password) >= 8 &&
		reUppercase.MatchString(password) &&
		reLowercase.MatchString(password) &&
		reDigit.MatchString(password)
}

// TempPasswordFromIdentification derives the one-time password handed to newly
// provisioned accounts: the last four characters of the identification plus a
// fixed suffix.
func TempPasswordFromIdentification(identification string) string {
	last := identification
	if len(identification) >= 4 {
		last = identification[len(identification)-4:]
	}
	return last + constvars.TempPasswordSuffix
}

func GenerateJWT(sessionID, secret string, expiration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(expiration).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(nil)
}
