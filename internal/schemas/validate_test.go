package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCVDocument_Valid(t *testing.T) {
	document := []byte(`{
		"personal_info": {"name": "John Doe", "email": "john@example.com"},
		"desired_role": {"desired_role": "Engineer"},
		"sections": [{"type": "experience", "enabled": true, "order": 1}],
		"experience": []
	}`)
	assert.NoError(t, ValidateCVDocument(document))
}

func TestValidateCVDocument_MissingRequiredFields(t *testing.T) {
	err := ValidateCVDocument([]byte(`{"personal_info": {"name": "John Doe"}}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "desired_role")
	assert.Contains(t, err.Error(), "email")
}

func TestValidateCVDocument_SectionEntryNeedsType(t *testing.T) {
	err := ValidateCVDocument([]byte(`{
		"personal_info": {"name": "John Doe", "email": "john@example.com"},
		"desired_role": {},
		"sections": [{"enabled": true}]
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestValidateCVDocument_WrongTypes(t *testing.T) {
	err := ValidateCVDocument([]byte(`{
		"personal_info": {"name": "John Doe", "email": "john@example.com"},
		"desired_role": {},
		"experience": {"not": "an array"}
	}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateCVDocument_MalformedJSON(t *testing.T) {
	err := ValidateCVDocument([]byte(`{"personal_info": `))
	require.Error(t, err)

	// Unreadable input is a runtime failure, not a schema violation list.
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
