package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogErrorContext(t *testing.T) {
	err := NewCatalogError("data/brushes.yaml", "Simpson", "Chubby 2", "chubby(", ErrPatternInvalid)

	assert.ErrorIs(t, err, ErrPatternInvalid)
	msg := err.Error()
	assert.Contains(t, msg, "data/brushes.yaml")
	assert.Contains(t, msg, "Simpson")
	assert.Contains(t, msg, "Chubby 2")
	assert.Contains(t, msg, "chubby(")
}

func TestCatalogErrorWithoutModel(t *testing.T) {
	err := NewCatalogError("data/handles.yaml", "Jayaruh", "", "", errors.New("brand declares no patterns"))
	assert.Contains(t, err.Error(), "data/handles.yaml: Jayaruh")
}
