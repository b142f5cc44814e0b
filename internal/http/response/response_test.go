package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		PlanID  string `validate:"required"`
		Billing string `validate:"omitempty,oneof=monthly annual"`
		Note    string `validate:"max=3"`
	}

	v := validator.New()
	err := v.Struct(TestStruct{Billing: "weekly", Note: "too long"})
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field PlanID is a required field")
	assert.Contains(t, resp.Error, "field Billing must be one of: monthly annual")
	assert.Contains(t, resp.Error, "field Note is too long")
}
