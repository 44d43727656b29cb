package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ISSA5922/ambertek-export/i18n"
)

// Guard gates the cart-checkout and order routes behind authentication.
// An unauthenticated caller gets a localized 401 pointing at the login
// endpoint, and the originally requested path is remembered against the
// session so login can send the user back where they were headed.
type Guard struct {
	mu   sync.Mutex
	next map[string]string
}

func NewGuard() *Guard {
	return &Guard{next: make(map[string]string)}
}

// RequireAuth is the gin middleware. It expects AuthOptional to have run.
func (g *Guard) RequireAuth(c *gin.Context) {
	if _, ok := UserID(c); ok {
		c.Next()
		return
	}

	path := c.Request.URL.Path
	if sid := SessionID(c); sid != "" {
		g.mu.Lock()
		g.next[sid] = path
		g.mu.Unlock()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": i18n.T(Locale(c), "login.required"),
		"login": "/auth/login",
		"next":  path,
	})
}

// ConsumeNext returns the remembered path for the session, clearing it.
// Empty when nothing was remembered.
func (g *Guard) ConsumeNext(sessionID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	path := g.next[sessionID]
	delete(g.next, sessionID)
	return path
}
