package middleware

import (
	"net/http"
	"strings"
)

// ColorSchemeHint é o client hint com a preferência de tema do sistema.
const ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// SecurityHeaders aplica cabeçalhos básicos para páginas HTML.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", "default-src 'self'; img-src 'self'; style-src 'self'; form-action 'self'; frame-ancestors 'none'")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}

// ClientHints pede ao navegador o hint de tema. Critical-CH faz o navegador
// repetir a primeira requisição já com o hint.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", ColorSchemeHint)
		h.Set("Critical-CH", ColorSchemeHint)
		h.Add("Vary", ColorSchemeHint)
		next.ServeHTTP(w, r)
	})
}

// PrefersDark lê a preferência de tema informada pelo sistema.
// Ausência do hint equivale a tema claro.
func PrefersDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(ColorSchemeHint)), `"`)
	return strings.EqualFold(v, "dark")
}
