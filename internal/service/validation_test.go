package service

import (
	"errors"
	"testing"

	apperrors "continuous-improvement-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNewValidator_JSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := validationError(v.Struct(&UpdateIdeaRequest{FullName: "x", WorkArea: "y", CurrentSituation: "z", IdeaDescription: " \t"}))

	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "idea_description", ve.Field)
	assert.Equal(t, "is required", ve.Message)
}

func TestNewValidator_RegistersNotBlank(t *testing.T) {
	var v *validator.Validate
	assert.NotPanics(t, func() { v = NewValidator() })

	assert.Error(t, v.Var(" \t ", "notblank"))
	assert.NoError(t, v.Var("Warehouse", "notblank"))
}

func TestValidationError_NonValidatorError(t *testing.T) {
	err := validationError(errors.New("boom"))

	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestResolveFullName(t *testing.T) {
	assert.Equal(t, "Ana", resolveFullName(" Ana ", []string{"Luis"}))
	assert.Equal(t, "Ana, Luis", resolveFullName("", []string{"Ana", " ", "Luis"}))
	assert.Equal(t, "", resolveFullName("", nil))
}

func TestUniqueAndMissingIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1}, uniqueIDs([]uint{3, 1, 3, 1}))
	assert.Equal(t, []uint{}, uniqueIDs(nil))
	assert.Equal(t, []uint{4, 12}, missingIDs([]uint{1, 4, 2, 12}, []uint{2, 1}))
	assert.Nil(t, missingIDs([]uint{1}, []uint{1}))
}
