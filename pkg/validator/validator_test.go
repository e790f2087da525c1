package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"omitempty,phone"`
	Born   string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Status string `json:"status" validate:"omitempty,oneof=PENDING PAID"`
	Years  int    `json:"years" validate:"gte=0,lte=70"`
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	c := contact{Name: "Ann", Email: "ann@x.com", Phone: "+62 812-555-1", Born: "1990-05-17", Status: "PAID", Years: 3}
	assert.NoError(t, v.Validate(&c))

	c.Phone = "555-1"
	assert.NoError(t, v.Validate(&c))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()
	c := contact{Email: "not-an-email", Phone: "call me", Born: "17/05/1990", Status: "REFUNDED", Years: 71}

	err := v.Validate(&c)
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "phone must be a valid phone number", errs["phone"])
	assert.Equal(t, "date_of_birth must match the format 2006-01-02", errs["date_of_birth"])
	assert.Equal(t, "status must be one of: PENDING PAID", errs["status"])
	assert.Equal(t, "years must be less than or equal to 70", errs["years"])
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}

type stamp struct {
	time.Time
}

type visit struct {
	At stamp `json:"date_time" validate:"required"`
}

func TestValidate_RequiredStruct(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&visit{})
	require.Error(t, err)
	assert.Equal(t, "date_time is required", v.FormatValidationErrors(err)["date_time"])

	assert.NoError(t, v.Validate(&visit{At: stamp{time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}}))
}
