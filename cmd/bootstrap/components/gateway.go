package components

import (
	"context"

	"chatorder/internal/infra/agent"
	"chatorder/internal/infra/commerce"
	"chatorder/internal/infra/session"
	"chatorder/internal/pkg/clock"
	"chatorder/internal/pkg/config"
	"chatorder/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewAgentGateway,
			fx.As(new(commands.AgentGateway)),
		),
		fx.Annotate(
			NewCommerceGateway,
			fx.As(new(commands.CommerceGateway)),
		),
		fx.Annotate(
			session.NewStore,
			fx.As(new(commands.SessionStore)),
		),
	),
)

func NewAgentGateway(cfg config.Config) (*agent.VertexGateway, error) {
	return agent.NewVertexGateway(context.Background(), cfg.Agent)
}

func NewCommerceGateway(cfg config.Config, clk clock.Clock) *commerce.Client {
	return commerce.NewClient(cfg.Commerce, clk)
}
