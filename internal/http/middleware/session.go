package middleware

import (
	"context"
	"net/http"

	"github.com/sadpe/extractor/internal/auth"
)

type contextKey string

const (
	// SessionCookie é o nome do cookie que carrega o token da sessão.
	SessionCookie = "sad_console"

	ContextKeySessionID contextKey = "session_id"
)

// Session valida o cookie de sessão e injeta o identificador no contexto.
// Cookie ausente ou inválido segue sem identificador; o handler cria um console novo.
func Session(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := tokens.Parse(c.Value)
			if err != nil {
				LoggerFrom(r.Context()).Debug().Err(err).Msg("cookie de sessão descartado")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetSessionID(r.Context(), id)))
		})
	}
}

// SetSessionID injeta o identificador de sessão no contexto.
func SetSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, id)
}

// GetSessionID recupera o identificador de sessão do contexto.
func GetSessionID(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeySessionID).(string)
	return val
}
