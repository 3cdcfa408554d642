package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sad_extractor",
		Subsystem: "console",
		Name:      "logins_total",
		Help:      "Tentativas de login por papel derivado e resultado.",
	}, []string{"role", "result"})

	navigationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sad_extractor",
		Subsystem: "console",
		Name:      "navigations_total",
		Help:      "Pedidos de navegação por tela e resultado.",
	}, []string{"page", "result"})

	logouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sad_extractor",
		Subsystem: "console",
		Name:      "logouts_total",
		Help:      "Sessões encerradas.",
	})

	uiToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sad_extractor",
		Subsystem: "console",
		Name:      "ui_toggles_total",
		Help:      "Interações com controles da interface.",
	}, []string{"control"})
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
)
