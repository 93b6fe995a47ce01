package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"pillmate/internal/domain/entity"
	"pillmate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDeviceMapper_RoundTrip(t *testing.T) {
	device := &entity.Device{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Serial:     "PM-0001",
		SecretHash: "$2a$10$abcdefghijklmnopqrstuv",
		Name:       "Kitchen",
		Timezone:   "America/Mexico_City",
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, device, toDeviceDomain(fromDeviceDomain(device)))
	assert.Nil(t, toDeviceDomain(nil))
	assert.Nil(t, fromDeviceDomain(nil))
}

func TestScheduleMapper_TimeOfDay(t *testing.T) {
	m := &model.ScheduleModel{
		ID:            uuid.New(),
		CompartmentID: uuid.New(),
		TimeOfDay:     datatypes.NewTime(8, 45, 0, 0),
		DaysOfWeek:    0b0011111,
		WindowMinutes: 15,
		EnableLED:     true,
	}

	s := toScheduleDomain(m)
	require.NotNil(t, s)
	assert.Equal(t, entity.TimeOfDay{Hour: 8, Minute: 45}, s.TimeOfDay)
	assert.Equal(t, entity.DayMask(0b0011111), s.DaysOfWeek)
	assert.Equal(t, 15, s.WindowMinutes)
	assert.True(t, s.EnableLED)
	assert.False(t, s.EnableBuzzer)
}

func TestCommandMapper_DefaultsEmptyPayload(t *testing.T) {
	cmd := &entity.Command{
		DeviceID: uuid.New(),
		Type:     entity.CommandTypeReboot,
		Status:   entity.CommandStatusPending,
	}

	m := fromCommandDomain(cmd)
	assert.JSONEq(t, `{}`, string(m.Payload))
	assert.Equal(t, "reboot", m.Type)

	cmd.Payload = json.RawMessage(`{"minutes":5}`)
	back := toCommandDomain(fromCommandDomain(cmd))
	assert.JSONEq(t, `{"minutes":5}`, string(back.Payload))
	assert.Equal(t, entity.CommandStatusPending, back.Status)
}

func TestPushSubscriptionMapper_DefaultsPlatform(t *testing.T) {
	sub := &entity.PushSubscription{
		UserID:   uuid.New(),
		Endpoint: "https://push.example.com/abc",
		P256dh:   "p256",
		Auth:     "auth",
	}

	m := fromPushSubscriptionDomain(sub)
	assert.Equal(t, "web", m.Platform)

	back := toPushSubscriptionDomain(m)
	assert.Equal(t, entity.PushPlatformWeb, back.Platform)
	assert.Equal(t, "p256", back.P256dh)
}

func TestCompartmentMapper_RoundTrip(t *testing.T) {
	angle := 90
	c := &entity.Compartment{
		ID:            uuid.New(),
		DeviceID:      uuid.New(),
		Idx:           2,
		Title:         "Compartment 2",
		Active:        true,
		ServoAngleDeg: &angle,
	}

	assert.Equal(t, c, toCompartmentDomain(fromCompartmentDomain(c)))
}
