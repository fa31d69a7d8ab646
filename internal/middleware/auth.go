package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BidderCookieName: cookie с подписанной личностью участника.
const BidderCookieName = "bidder_token"

const bidderTokenTTL = 30 * 24 * time.Hour

// Bidder: имя и телефон, под которыми участник делает ставки.
type Bidder struct {
	Name        string
	PhoneNumber string
}

type bidderClaims struct {
	jwt.RegisteredClaims
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type ctxKey int

const bidderKey ctxKey = iota

// SetBidderCookie подписывает личность участника и кладёт её в cookie.
func SetBidderCookie(w http.ResponseWriter, name, phoneNumber, secret string) error {
	exp := time.Now().Add(bidderTokenTTL)
	claims := bidderClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
		Name:             name,
		PhoneNumber:      phoneNumber,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     BidderCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func parseBidderToken(token, secret string) (Bidder, error) {
	claims := &bidderClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Bidder{}, err
	}
	if claims.Name == "" {
		return Bidder{}, errors.New("empty bidder name")
	}
	return Bidder{Name: claims.Name, PhoneNumber: claims.PhoneNumber}, nil
}

// WithBidder кладёт участника из cookie в контекст. Без cookie запрос идёт дальше анонимно.
func WithBidder(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(BidderCookieName)
			if err == nil {
				if b, err := parseBidderToken(c.Value, secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), bidderKey, b))
				} else {
					sugar.Debugw("bidder cookie rejected", "error", err)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetBidderFromContext(ctx context.Context) (Bidder, bool) {
	b, ok := ctx.Value(bidderKey).(Bidder)
	return b, ok
}
