package middleware

import (
	"net/http"

	"github.com/gorilla/csrf"
)

// CSRFFieldName é o nome do campo oculto nos formulários.
const CSRFFieldName = "csrf_token"

// CSRF protege os formulários do console. Sem cookies seguros a requisição é
// marcada como HTTP puro para que a checagem de Referer aceite localhost.
func CSRF(authKey []byte, secure bool) func(http.Handler) http.Handler {
	protect := csrf.Protect(
		authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(CSRFFieldName),
		csrf.CookieName("sad_csrf"),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	LoggerFrom(r.Context()).Warn().Err(csrf.FailureReason(r)).Msg("csrf rejeitado")
	WritePlainError(w, http.StatusForbidden, "Requisição inválida. Recarregue a página e tente novamente.")
}
