package validation

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,dateonly"`
}

func validate(t *testing.T, req sampleRequest) error {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v.Struct(req)
}

func TestInit_DateOnlyAndTagNames(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()

	err := validate(t, sampleRequest{Email: "john@example.com", DateOfBirth: "1990-01-15"})
	require.NoError(t, err)

	err = validate(t, sampleRequest{Email: "john@example.com", DateOfBirth: "15/01/1990"})
	require.Error(t, err)

	details := ToDetails(err)
	// Field names come from the json tag, not the Go field name.
	assert.Contains(t, details, "dateOfBirth")
	assert.Equal(t, "must be a date in YYYY-MM-DD format", details["dateOfBirth"])
}

func TestToDetails_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()

	err := validate(t, sampleRequest{Email: "not-an-email", DateOfBirth: "1990-01-15"})
	require.Error(t, err)
	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])

	assert.Nil(t, ToDetails(nil))
}
