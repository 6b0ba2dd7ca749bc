// Package validation checks CV input data against the required schema.
package validation

import (
	"strings"
)

var (
	requiredTopLevelFields     = []string{"personal_info", "desired_role"}
	requiredPersonalInfoFields = []string{"name", "email"}
)

// ValidateCVData checks the required CV document shape. Every violation
// found is collected into a single DataError so the user sees the full list
// at once, not just the first problem.
func ValidateCVData(cvData map[string]any) error {
	var violations []string

	for _, field := range requiredTopLevelFields {
		if _, present := cvData[field]; !present {
			violations = append(violations, "Missing top-level field: '"+field+"'")
		}
	}

	// A missing personal_info still enumerates its required fields, so the
	// violation list is the same whether the object is absent or empty.
	personalInfo, isObject := cvData["personal_info"].(map[string]any)
	if _, declared := cvData["personal_info"]; declared && !isObject {
		violations = append(violations, "Field 'personal_info' must be an object")
	} else {
		for _, field := range requiredPersonalInfoFields {
			if !presentAndNonBlank(personalInfo[field]) {
				violations = append(violations, "Missing required field: 'personal_info."+field+"'")
			}
		}
	}

	if raw, declared := cvData["desired_role"]; declared {
		if _, ok := raw.(map[string]any); !ok {
			violations = append(violations, "Field 'desired_role' must be an object")
		}
	}

	if len(violations) > 0 {
		return &DataError{
			Message:    "invalid CV data:\n- " + strings.Join(violations, "\n- "),
			Violations: violations,
		}
	}
	return nil
}

func presentAndNonBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}
