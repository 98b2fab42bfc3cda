package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

const actorContextKey = "actor"

// ActorMiddleware attributes each request to an actor for the audit trail.
// A request carrying the configured agent token acts as "agent"; everything
// else is the board's owner, "user". Richer auth schemes live outside the core.
func ActorMiddleware(agentToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := domain.ActorUser
		if token := c.GetHeader("X-Agent-Token"); token != "" && agentToken != "" {
			if subtle.ConstantTimeCompare([]byte(token), []byte(agentToken)) == 1 {
				actor = domain.ActorAgent
			}
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) domain.Actor {
	if value, exists := c.Get(actorContextKey); exists {
		if actor, ok := value.(domain.Actor); ok {
			return actor
		}
	}
	return domain.ActorUser
}
