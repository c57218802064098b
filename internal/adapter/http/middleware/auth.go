package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/pkg/apierrors"
)

const (
	userIDKey    = "user_id"
	authTokenKey = "auth_token"
)

// AuthMiddleware verifies the bearer token with the shared HS256 secret and
// stores the caller id plus the raw Authorization header in the request
// context, so handlers can forward the header to sibling services.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		userID := claimString(claims, "id")
		if userID == "" {
			userID = claimString(claims, "user_id")
		}
		if userID == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Set(authTokenKey, header)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller id, empty when the route
// did not pass through AuthMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// BearerToken returns the raw Authorization header of the current request.
func BearerToken(c *gin.Context) string {
	return c.GetString(authTokenKey)
}

func claimString(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return value
}
