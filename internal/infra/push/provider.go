package push

import (
	"context"
	"log/slog"
	"net/http"

	"pillmate/config"
	"pillmate/internal/domain/entity"
	"pillmate/internal/domain/lifecycle"
	"pillmate/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the push sender, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the platform router from the configured backends. A missing backend
// is logged and its subscriptions fail delivery without being pruned.
func New(params Params) (service.PushSender, error) {
	senders := map[entity.PushPlatform]service.PushSender{}

	webSender, err := NewWebPushSender(params.Config.Push, &http.Client{Timeout: params.Config.Push.SendTimeout})
	if err != nil {
		params.Logger.Warn("Web Push disabled", slog.Any("error", err))
	} else {
		senders[entity.PushPlatformWeb] = webSender
	}

	if params.Config.Firebase != nil && params.Config.Firebase.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		fcmSender, err := NewFirebaseSender(ctx, params.Config.Firebase.ProjectID, params.Config.Firebase.CredentialsPath)
		if err != nil {
			return nil, err
		}
		senders[entity.PushPlatformFCM] = fcmSender
	}

	return NewRouter(senders), nil
}
