package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const currentOperatorKey = "currentOperator"

// is returned when email/password don’t match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Operator is the authenticated caller of the admin API.
type Operator struct {
	Email string
}

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// retrieves *Operator from Gin context (after JWTMiddleware has run).
func GetCurrentOperator(c *gin.Context) (*Operator, bool) {
	v, exists := c.Get(currentOperatorKey)
	if !exists {
		return nil, false
	}
	op, ok := v.(*Operator)
	return op, ok
}
