package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
)

// The recipient check runs before the repository is touched, so a nil repo
// is enough for the rejection cases.

func TestNotificationCreateRequiresExactlyOneRecipient(t *testing.T) {
	svc := NewNotificationService(nil)
	clientID := "7b0b0c1e-8f3a-4f6e-9c2d-1a2b3c4d5e6f"
	technicianID := "6a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"

	t.Run("neither recipient", func(t *testing.T) {
		_, err := svc.Create(context.Background(), models.NotificationCreate{
			Message: "Your booking was confirmed",
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperror.From(err).Code)
	})

	t.Run("both recipients", func(t *testing.T) {
		_, err := svc.Create(context.Background(), models.NotificationCreate{
			ClientID:     &clientID,
			TechnicianID: &technicianID,
			Message:      "Your booking was confirmed",
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperror.From(err).Code)
	})
}
