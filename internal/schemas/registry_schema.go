package schemas

// RegistrySchema is the JSON Schema for the scoring registry file: category
// vocabularies, company requirement profiles, and the two weight tables.
const RegistrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Scoring Registry",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "category_weights": {"$ref": "#/definitions/weights"},
    "criteria_weights": {"$ref": "#/definitions/weights"},
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "required_keywords": {"$ref": "#/definitions/keywordList"},
          "preferred_keywords": {"$ref": "#/definitions/keywordList"},
          "minimum_experience_years": {"type": "integer", "minimum": 0},
          "required_education": {"$ref": "#/definitions/keywordList"},
          "minimum_ats_score": {"type": "integer", "minimum": 0, "maximum": 100}
        }
      }
    },
    "companies": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["job_category", "required_keywords"],
        "properties": {
          "job_category": {"type": "string", "minLength": 1},
          "position": {"type": "string"},
          "required_keywords": {"$ref": "#/definitions/keywordList"},
          "preferred_keywords": {"$ref": "#/definitions/keywordList"},
          "required_skills": {"$ref": "#/definitions/keywordList"},
          "preferred_skills": {"$ref": "#/definitions/keywordList"},
          "minimum_experience_years": {"type": "integer", "minimum": 0},
          "required_education": {"$ref": "#/definitions/keywordList"},
          "minimum_ats_score": {"type": "integer", "minimum": 0, "maximum": 100}
        }
      }
    }
  },
  "definitions": {
    "keywordList": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "weights": {
      "type": "object",
      "additionalProperties": {"type": "integer", "minimum": 0}
    }
  }
}`
