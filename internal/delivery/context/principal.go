package context

import (
	"pillmate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "user_id"
	keyDevice = "device"
)

// SetUserID stores the authenticated user on the echo context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(keyUserID, userID)
}

// GetUserID returns the authenticated user, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// SetDevice stores the authenticated device on the echo context.
func SetDevice(c echo.Context, device *entity.Device) {
	c.Set(keyDevice, device)
}

// GetDevice returns the authenticated device, if any.
func GetDevice(c echo.Context) (*entity.Device, bool) {
	device, ok := c.Get(keyDevice).(*entity.Device)

	return device, ok && device != nil
}
