package push

import (
	"context"
	"testing"

	"pillmate/internal/domain/entity"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	calls int
}

func (r *recordingSender) Send(context.Context, *entity.PushSubscription, *service.PushMessage) error {
	r.calls++
	return nil
}

func TestRouter_DispatchesByPlatform(t *testing.T) {
	web := &recordingSender{}
	fcm := &recordingSender{}
	router := NewRouter(map[entity.PushPlatform]service.PushSender{
		entity.PushPlatformWeb: web,
		entity.PushPlatformFCM: fcm,
	})

	ctx := context.Background()
	require.NoError(t, router.Send(ctx, &entity.PushSubscription{Platform: entity.PushPlatformWeb}, &service.PushMessage{}))
	require.NoError(t, router.Send(ctx, &entity.PushSubscription{Platform: ""}, &service.PushMessage{}))
	require.NoError(t, router.Send(ctx, &entity.PushSubscription{Platform: entity.PushPlatformFCM}, &service.PushMessage{}))

	assert.Equal(t, 2, web.calls)
	assert.Equal(t, 1, fcm.calls)
}

func TestRouter_UnconfiguredPlatform(t *testing.T) {
	router := NewRouter(map[entity.PushPlatform]service.PushSender{
		entity.PushPlatformWeb: &recordingSender{},
		entity.PushPlatformFCM: nil,
	})

	err := router.Send(context.Background(), &entity.PushSubscription{Platform: entity.PushPlatformFCM}, &service.PushMessage{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlatformUnsupported))
	assert.False(t, errors.Is(err, service.ErrEndpointGone))
}
