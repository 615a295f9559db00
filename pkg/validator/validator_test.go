package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/models"
)

func validClientCreate() models.ClientCreate {
	return models.ClientCreate{
		Name:         "Ada",
		Surname:      "Lovelace",
		Email:        "ada@example.com",
		PhoneNumber:  "9012345678",
		Password:     "s3cret-pass",
		LocationName: "Tashkent",
		Latitude:     41.2995,
		Longitude:    69.2401,
	}
}

func TestValidateClientCreateOK(t *testing.T) {
	assert.NoError(t, Validate(validClientCreate()))
}

func TestValidateClientCreateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ClientCreate)
		wantMsg string
	}{
		{
			"missing name",
			func(c *models.ClientCreate) { c.Name = "" },
			"Name is required",
		},
		{
			"bad email",
			func(c *models.ClientCreate) { c.Email = "not-an-email" },
			"Email must be a valid email address",
		},
		{
			"short phone",
			func(c *models.ClientCreate) { c.PhoneNumber = "12345" },
			"PhoneNumber must be exactly 10 digits",
		},
		{
			"phone with letters",
			func(c *models.ClientCreate) { c.PhoneNumber = "90123abc78" },
			"PhoneNumber must be exactly 10 digits",
		},
		{
			"short password",
			func(c *models.ClientCreate) { c.Password = "short" },
			"Password must be at least 8",
		},
		{
			"latitude out of range",
			func(c *models.ClientCreate) { c.Latitude = 91 },
			"Latitude must be a valid latitude",
		},
		{
			"longitude out of range",
			func(c *models.ClientCreate) { c.Longitude = 181 },
			"Longitude must be a valid longitude",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClientCreate()
			tt.mutate(&c)
			err := Validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateBookingCreate(t *testing.T) {
	booking := models.BookingCreate{
		ClientID:     "7b0b0c1e-8f3a-4f6e-9c2d-1a2b3c4d5e6f",
		TechnicianID: "6a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
		ServiceType:  "plumbing",
		Price:        120.50,
	}
	assert.NoError(t, Validate(booking))

	booking.Price = 0
	err := Validate(booking)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Price must be greater than 0")

	booking.Price = 10
	booking.ClientID = "not-a-uuid"
	assert.Error(t, Validate(booking))
}

func TestValidateReviewRatingBounds(t *testing.T) {
	review := models.ReviewCreate{
		BookingID:    "7b0b0c1e-8f3a-4f6e-9c2d-1a2b3c4d5e6f",
		ClientID:     "6a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
		TechnicianID: "5c2d3e4f-5061-7283-94a5-b6c7d8e9f0a1",
		Rating:       4.5,
	}
	assert.NoError(t, Validate(review))

	review.Rating = 5.5
	err := Validate(review)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rating must be at most 5")
}

func TestValidateAdminRole(t *testing.T) {
	admin := models.AdminCreate{
		Name:        "Root",
		Surname:     "Admin",
		Email:       "root@example.com",
		PhoneNumber: "9000000000",
		Password:    "super-secret",
		Role:        models.RoleSuperAdmin,
	}
	assert.NoError(t, Validate(admin))

	admin.Role = "janitor"
	err := Validate(admin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Role must be one of")
}

func TestValidateSparseUpdateSkipsAbsentFields(t *testing.T) {
	// nil pointers carry no value, so their tags must not fire
	assert.NoError(t, Validate(models.ClientUpdate{}))

	bad := "nope"
	assert.Error(t, Validate(models.ClientUpdate{Email: &bad}))
}
