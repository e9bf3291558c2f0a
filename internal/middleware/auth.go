package middleware

import (
	"net/http"
	"strings"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type accessClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer-токен (HS256) и кладёт Actor в контекст запроса.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := parseActor(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or missing token"},
			)
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth извлекает Actor, если токен передан, но не требует его.
func OptionalAuth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if actor, ok := parseActor(c, secret); ok {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// ActorFrom возвращает Actor запроса; второй результат false для анонима.
func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

func parseActor(c *ginext.Context, secret string) (domain.Actor, bool) {
	header := c.GetHeader("Authorization")
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return domain.Actor{}, false
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return domain.Actor{}, false
	}

	return domain.Actor{ID: claims.Subject, IsAdmin: claims.IsAdmin}, true
}
