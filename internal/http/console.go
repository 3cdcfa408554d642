package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sadpe/extractor/internal/auth"
	"github.com/sadpe/extractor/internal/console"
	httpmiddleware "github.com/sadpe/extractor/internal/http/middleware"
	"github.com/sadpe/extractor/internal/session"
)

// loadConsole recupera o console do navegador. Sem estado salvo, cria um
// console deslogado com o tema lido do sistema neste momento.
func (h *Handler) loadConsole(r *http.Request) (*console.Console, string, bool, error) {
	if id := httpmiddleware.GetSessionID(r.Context()); id != "" {
		c, err := h.store.Load(r.Context(), id)
		if err == nil {
			return c, id, false, nil
		}
		if !errors.Is(err, session.ErrNotFound) {
			return nil, "", false, fmt.Errorf("carregar console: %w", err)
		}
	}
	return console.New(httpmiddleware.PrefersDark(r)), auth.NewSessionID(), true, nil
}

// saveConsole grava o estado e renova o cookie, estendendo a validade.
func (h *Handler) saveConsole(w http.ResponseWriter, r *http.Request, id string, c *console.Console) error {
	if err := h.store.Save(r.Context(), id, c, h.tokens.TTL()); err != nil {
		return fmt.Errorf("salvar console: %w", err)
	}
	token, expires, err := h.tokens.Issue(id)
	if err != nil {
		return fmt.Errorf("emitir token: %w", err)
	}
	h.setSessionCookie(w, token, expires)
	return nil
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	httpmiddleware.LoggerFrom(r.Context()).Error().Err(err).Msg("falha ao atender console")
	httpmiddleware.WritePlainError(w, http.StatusInternalServerError, "erro interno")
}

// Index renderiza a tela de login ou a tela ativa.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	c, id, fresh, err := h.loadConsole(r)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if fresh {
		if err := h.saveConsole(w, r, id, c); err != nil {
			h.internalError(w, r, err)
			return
		}
	}
	h.writePage(w, r, c)
}

// Login abre a sessão a partir do e-mail selecionado. E-mail sem papel é
// ignorado em silêncio e a tela de login continua aberta.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := httpmiddleware.LoggerFrom(r.Context())

	c, id, fresh, err := h.loadConsole(r)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	role, err := c.Login(r.PostFormValue("email"), r.PostFormValue("senha"))
	if err != nil {
		loginAttempts.WithLabelValues("", resultRejected).Inc()
		logger.Warn().Err(err).Msg("login rejeitado")
		if fresh {
			if err := h.saveConsole(w, r, id, c); err != nil {
				h.internalError(w, r, err)
				return
			}
		}
		seeOther(w, r)
		return
	}

	// identificador novo a cada login
	if !fresh {
		if err := h.store.Delete(r.Context(), id); err != nil {
			logger.Warn().Err(err).Msg("não foi possível descartar sessão anterior")
		}
	}
	id = auth.NewSessionID()
	if err := h.saveConsole(w, r, id, c); err != nil {
		h.internalError(w, r, err)
		return
	}

	loginAttempts.WithLabelValues(string(role), resultOK).Inc()
	logger.Info().Str("role", string(role)).Msg("login realizado")
	seeOther(w, r)
}

// Logout encerra a sessão e volta ao tema do sistema.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "logout", func(c *console.Console) error {
		if err := c.Logout(httpmiddleware.PrefersDark(r)); err != nil {
			return err
		}
		logouts.Inc()
		return nil
	})
}

// Navigate troca a tela ativa respeitando as permissões do papel.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	raw := r.PostFormValue("page")
	h.apply(w, r, "navigate", func(c *console.Console) error {
		page, ok := console.ParsePage(raw)
		if !ok {
			navigationRequests.WithLabelValues("unknown", resultRejected).Inc()
			return console.ErrNavigationDenied
		}
		if err := c.RequestNavigate(page); err != nil {
			navigationRequests.WithLabelValues(string(page), resultRejected).Inc()
			return err
		}
		navigationRequests.WithLabelValues(string(page), resultOK).Inc()
		return nil
	})
}

// ToggleSidebar abre ou fecha a barra lateral.
func (h *Handler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "sidebar", (*console.Console).ToggleSidebar)
}

// CloseSidebar fecha a barra lateral.
func (h *Handler) CloseSidebar(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "sidebar_close", (*console.Console).CloseSidebar)
}

// ToggleDarkMode alterna o tema durante a sessão.
func (h *Handler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "dark_mode", (*console.Console).ToggleDarkMode)
}

// ToggleUserMenu abre ou fecha o menu do avatar.
func (h *Handler) ToggleUserMenu(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "user_menu", (*console.Console).ToggleUserMenu)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, control string, fn func(*console.Console) error) {
	h.apply(w, r, control, func(c *console.Console) error {
		if err := fn(c); err != nil {
			return err
		}
		uiToggles.WithLabelValues(control).Inc()
		return nil
	})
}

// apply executa uma ação sobre o console e volta para "/". Erros do domínio
// são rejeições silenciosas: nada muda e nenhuma mensagem é exibida.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request, action string, fn func(*console.Console) error) {
	c, id, fresh, err := h.loadConsole(r)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	changed := true
	if err := fn(c); err != nil {
		changed = false
		httpmiddleware.LoggerFrom(r.Context()).Debug().Err(err).Str("action", action).Msg("ação ignorada")
	}

	if changed || fresh {
		if err := h.saveConsole(w, r, id, c); err != nil {
			h.internalError(w, r, err)
			return
		}
	}
	seeOther(w, r)
}
