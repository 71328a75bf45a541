package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ガードの種別。cookie名とJWTのaudに対応する。
const (
	GuardAdmin    = "admin"
	GuardCustomer = "customer"
)

const (
	CookieAdminSession    = "admin_session"
	CookieCustomerSession = "customer_session"
)

const sessionTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Guard string `json:"guard"`
	jwt.RegisteredClaims
}

// HS256のセッショントークン発行/検証
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// ロールはクッキーに焼かない。ガード側が毎回DBから読み直す。
func (t *TokenIssuer) Issue(subjectID int64, guard string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(sessionTTL)

	claims := Claims{
		Guard: guard,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// guardが一致しないトークンは弾く
func (t *TokenIssuer) Parse(tokenString string, guard string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Guard != guard {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}
