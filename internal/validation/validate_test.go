package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCVData_Valid(t *testing.T) {
	err := ValidateCVData(map[string]any{
		"personal_info": map[string]any{"name": "John Doe", "email": "john@example.com"},
		"desired_role":  map[string]any{"desired_role": "Engineer"},
	})
	assert.NoError(t, err)
}

func TestValidateCVData_AllViolationsCollected(t *testing.T) {
	err := ValidateCVData(map[string]any{
		"personal_info": map[string]any{"name": "John Doe"},
	})
	require.Error(t, err)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Len(t, dataErr.Violations, 2)
	assert.Contains(t, err.Error(), "Missing top-level field: 'desired_role'")
	assert.Contains(t, err.Error(), "Missing required field: 'personal_info.email'")
}

func TestValidateCVData_BlankEmailRejected(t *testing.T) {
	err := ValidateCVData(map[string]any{
		"personal_info": map[string]any{"name": "John Doe", "email": "   "},
		"desired_role":  map[string]any{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "personal_info.email")
}

func TestValidateCVData_NonObjectFieldsRejected(t *testing.T) {
	err := ValidateCVData(map[string]any{
		"personal_info": "not an object",
		"desired_role":  "not an object",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field 'personal_info' must be an object")
	assert.Contains(t, err.Error(), "Field 'desired_role' must be an object")
}

func TestValidateCVData_EmptyDocument(t *testing.T) {
	err := ValidateCVData(map[string]any{})
	require.Error(t, err)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Contains(t, dataErr.Violations, "Missing top-level field: 'personal_info'")
	assert.Contains(t, dataErr.Violations, "Missing top-level field: 'desired_role'")
}

func TestValidateCVData_AbsentPersonalInfoEnumeratesItsFields(t *testing.T) {
	err := ValidateCVData(map[string]any{
		"desired_role": map[string]any{},
	})
	require.Error(t, err)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Len(t, dataErr.Violations, 3)
	assert.Contains(t, dataErr.Violations, "Missing top-level field: 'personal_info'")
	assert.Contains(t, dataErr.Violations, "Missing required field: 'personal_info.name'")
	assert.Contains(t, dataErr.Violations, "Missing required field: 'personal_info.email'")
}
