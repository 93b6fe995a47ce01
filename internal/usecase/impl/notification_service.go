package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pillmate/config"
	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSendTimeout        = 10 * time.Second
	defaultMaxConcurrentSends = 8
	defaultAlarmTitle         = "💊 Time for your medication"
	defaultCompartmentTitle   = "Medication"

	selfTestTitle = "🔔 PillMate test notification"
	selfTestBody  = "Push notifications are working on this device."
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	subscriptionRepo repository.PushSubscriptionRepository
	compartmentRepo  repository.CompartmentRepository
	sender           service.PushSender
	metrics          service.MetricsRecorder
	sendTimeout      time.Duration
	maxConcurrent    int
	icon             string
	badge            string
	alarmTitle       string
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	SubscriptionRepo repository.PushSubscriptionRepository
	CompartmentRepo  repository.CompartmentRepository
	Sender           service.PushSender
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	srv := &notificationService{
		subscriptionRepo: params.SubscriptionRepo,
		compartmentRepo:  params.CompartmentRepo,
		sender:           params.Sender,
		metrics:          params.Metrics,
		sendTimeout:      defaultSendTimeout,
		maxConcurrent:    defaultMaxConcurrentSends,
		alarmTitle:       defaultAlarmTitle,
		logger:           params.Logger,
	}

	if params.Config != nil && params.Config.Push != nil {
		push := params.Config.Push
		if push.SendTimeout > 0 {
			srv.sendTimeout = push.SendTimeout
		}
		if push.MaxConcurrentSends > 0 {
			srv.maxConcurrent = push.MaxConcurrentSends
		}
		if push.DefaultAlarmTitle != "" {
			srv.alarmTitle = push.DefaultAlarmTitle
		}
		srv.icon = push.Icon
		srv.badge = push.Badge
	}

	return srv
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// deliveryOutcome is the result of one per-endpoint send.
type deliveryOutcome struct {
	sent bool
	gone bool
	err  error
}

// NotifyUser sends the message to every endpoint of the user concurrently. Endpoints
// reported gone are deleted; any other failure leaves the subscription in place.
func (srv *notificationService) NotifyUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]any) (*usecase.DispatchResult, error) {
	subscriptions, err := srv.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions")
	}

	result := &usecase.DispatchResult{Total: len(subscriptions)}
	if len(subscriptions) == 0 {
		srv.log(ctx).Info("No push subscriptions for user", slog.String("user_id", userID.String()))

		return result, nil
	}

	message := &service.PushMessage{
		Title: title,
		Body:  body,
		Icon:  srv.icon,
		Badge: srv.badge,
		Data:  data,
	}

	outcomes := make([]deliveryOutcome, len(subscriptions))
	var group errgroup.Group
	group.SetLimit(srv.maxConcurrent)
	for i, subscription := range subscriptions {
		group.Go(func() error {
			outcomes[i] = srv.deliver(ctx, subscription, message)

			return nil
		})
	}
	_ = group.Wait()

	for i, outcome := range outcomes {
		subscription := subscriptions[i]
		switch {
		case outcome.sent:
			result.Sent++
			srv.metrics.PushDelivered(service.PushResultSent)
		case outcome.gone:
			srv.metrics.PushDelivered(service.PushResultGone)
			srv.pruneSubscription(ctx, subscription)
		default:
			srv.metrics.PushDelivered(service.PushResultFailed)
			srv.log(ctx).Warn("Push delivery failed",
				slog.String("subscription_id", subscription.ID.String()),
				slog.String("platform", string(subscription.Platform)),
				slog.Any("error", outcome.err),
			)
		}
	}

	srv.log(ctx).Info("Push dispatch finished",
		slog.String("user_id", userID.String()),
		slog.Int("sent", result.Sent),
		slog.Int("total", result.Total),
	)

	return result, nil
}

func (srv *notificationService) deliver(ctx context.Context, subscription *entity.PushSubscription, message *service.PushMessage) deliveryOutcome {
	sendCtx, cancel := context.WithTimeout(ctx, srv.sendTimeout)
	defer cancel()

	err := srv.sender.Send(sendCtx, subscription, message)
	if err == nil {
		return deliveryOutcome{sent: true}
	}

	return deliveryOutcome{gone: errors.Is(err, service.ErrEndpointGone), err: err}
}

func (srv *notificationService) pruneSubscription(ctx context.Context, subscription *entity.PushSubscription) {
	err := srv.subscriptionRepo.DeleteSubscription(ctx, subscription.ID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		srv.log(ctx).Error("Failed to prune gone push subscription",
			slog.String("subscription_id", subscription.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Pruned gone push subscription", slog.String("subscription_id", subscription.ID.String()))
}

// StartAlarm notifies the device owner that a dose in one of the device's compartments is due.
func (srv *notificationService) StartAlarm(ctx context.Context, device *entity.Device, input *usecase.StartAlarmInput) (*usecase.DispatchResult, error) {
	compartment, err := loadDeviceCompartment(ctx, srv.compartmentRepo, device.ID, input.CompartmentID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = srv.alarmTitle
	}

	data := map[string]any{
		"route":         "/dashboard",
		"deviceId":      device.ID.String(),
		"compartmentId": compartment.ID.String(),
		"scheduledAt":   input.ScheduledAt.UTC().Format(time.RFC3339),
		"action":        "open_app",
	}
	if input.ScheduleID != nil {
		data["scheduleId"] = input.ScheduleID.String()
	}

	return srv.NotifyUser(ctx, device.UserID, title, alarmBody(device, compartment, input.ScheduledAt), data)
}

// alarmBody renders the compartment title, the local HH:MM and the compartment index.
func alarmBody(device *entity.Device, compartment *entity.Compartment, scheduledAt time.Time) string {
	name := strings.TrimSpace(compartment.Title)
	if name == "" {
		name = defaultCompartmentTitle
	}

	return fmt.Sprintf("%s — %s (compartment %d)", name, scheduledAt.In(device.Location()).Format("15:04"), compartment.Idx)
}

// SendSelfTest sends a test notification to the caller's own endpoints.
func (srv *notificationService) SendSelfTest(ctx context.Context, userID uuid.UUID) (*usecase.DispatchResult, error) {
	data := map[string]any{
		"route":  "/dashboard",
		"action": "self_test",
	}

	return srv.NotifyUser(ctx, userID, selfTestTitle, selfTestBody, data)
}

// Subscribe registers the endpoint for the user, refreshing its keys if already known.
func (srv *notificationService) Subscribe(ctx context.Context, userID uuid.UUID, input *usecase.SubscribeInput) (*entity.PushSubscription, error) {
	platform := input.Platform
	if platform == "" {
		platform = entity.PushPlatformWeb
	}

	var violations []domainerrors.FieldViolation
	if strings.TrimSpace(input.Endpoint) == "" {
		violations = append(violations, domainerrors.FieldViolation{Field: "endpoint", Reason: "is required"})
	}
	switch platform {
	case entity.PushPlatformWeb:
		if input.P256dh == "" || input.Auth == "" {
			violations = append(violations, domainerrors.FieldViolation{Field: "keys", Reason: "p256dh and auth are required for web push"})
		}
	case entity.PushPlatformFCM:
	default:
		violations = append(violations, domainerrors.FieldViolation{Field: "platform", Reason: "must be web or fcm"})
	}
	if len(violations) > 0 {
		return nil, domainerrors.NewValidationError(violations...)
	}

	now := time.Now()
	subscription := &entity.PushSubscription{
		ID:         uuid.New(),
		UserID:     userID,
		Endpoint:   strings.TrimSpace(input.Endpoint),
		P256dh:     input.P256dh,
		Auth:       input.Auth,
		Platform:   platform,
		DeviceInfo: input.DeviceInfo,
		LastSeen:   &now,
		CreatedAt:  now,
	}

	if err := srv.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to store push subscription")
	}

	srv.log(ctx).Info("Push subscription stored",
		slog.String("user_id", userID.String()),
		slog.String("platform", string(platform)),
	)

	return subscription, nil
}

// Unsubscribe removes the user's endpoint.
func (srv *notificationService) Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error {
	err := srv.subscriptionRepo.DeleteSubscriptionByEndpoint(ctx, userID, strings.TrimSpace(endpoint))
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return domainerrors.ErrSubscriptionNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete push subscription")
	}

	return nil
}
