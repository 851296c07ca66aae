// Package providers enumerates the ticket platforms papercut can receive
// webhooks from. The set is static; configuration only toggles entries on
// and off.
package providers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/papercut-dev/papercut/internal/config"
	"github.com/papercut-dev/papercut/internal/linear"
	"github.com/papercut-dev/papercut/internal/ticket"
)

// Provider is one mounted webhook source.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string
	// Register mounts the provider's routes on the webhooks group.
	Register(r gin.IRouter)
}

// Deliver receives each accepted ticket.
type Deliver func(*ticket.Ticket)

// Build resolves the enabled providers for this configuration.
func Build(cfg config.Config, deliver Deliver, log *zap.Logger) []Provider {
	var enabled []Provider

	if !cfg.Providers.Linear.Disabled {
		h := linear.NewHandler(cfg.Providers.Linear.SigningSecret, deliver, log.Named("linear"))
		enabled = append(enabled, &linearProvider{handler: h})
	}

	return enabled
}

type linearProvider struct {
	handler *linear.Handler
}

func (p *linearProvider) Name() string           { return "linear" }
func (p *linearProvider) Register(r gin.IRouter) { p.handler.Register(r) }
