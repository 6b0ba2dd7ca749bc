package schemas

// cvDocumentSchema is the JSON Schema for CV input documents. It checks the
// structural shape ahead of generation; the fatal required-field rules live
// in the validation package so their messages stay precise.
const cvDocumentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "CV Document",
  "type": "object",
  "required": ["personal_info", "desired_role"],
  "properties": {
    "personal_info": {
      "type": "object",
      "required": ["name", "email"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "email": {"type": "string", "minLength": 3},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "social": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "label": {"type": "string"},
              "url": {"type": "string"}
            }
          }
        }
      }
    },
    "desired_role": {"type": "object"},
    "summary": {"type": "object"},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"type": "string", "minLength": 1},
          "enabled": {"type": "boolean"},
          "order": {"type": "number"}
        }
      }
    },
    "experience": {"type": "array"},
    "education": {"type": "array"},
    "core_skills": {"type": "array"},
    "skills": {"type": "array"},
    "languages": {"type": "array"},
    "awards": {"type": "array"},
    "certifications": {"type": "array"}
  }
}`
