package resumes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/internal/repository"
)

const uuidPattern = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`

// buildFilterSchema returns the JSON-Schema the list filter document must
// satisfy. Unknown keys are rejected so a typoed field name fails loudly
// instead of silently matching everything.
func buildFilterSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"status":    map[string]any{"type": "string", "enum": constants.Statuses},
			"companyId": map[string]any{"type": "string", "pattern": uuidPattern},
			"jobId":     map[string]any{"type": "string", "pattern": uuidPattern},
			"userId":    map[string]any{"type": "string", "pattern": uuidPattern},
			"email":     map[string]any{"type": "string", "minLength": 3},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseFilter turns the caller's JSON filter document into a repository
// filter. An empty document means no filtering.
func ParseFilter(raw string) (repository.ListFilter, error) {
	var out repository.ListFilter
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return out, nil
	}

	if err := ValidateJSONAgainstSchema(buildFilterSchema(), []byte(raw)); err != nil {
		return out, err
	}

	var doc struct {
		Status    *string `json:"status"`
		CompanyID *string `json:"companyId"`
		JobID     *string `json:"jobId"`
		UserID    *string `json:"userId"`
		Email     *string `json:"email"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return out, fmt.Errorf("unmarshal filter: %w", err)
	}

	if doc.Status != nil {
		st, _ := constants.ParseStatus(*doc.Status)
		out.Status = &st
	}
	parse := func(s *string) (*uuid.UUID, error) {
		if s == nil {
			return nil, nil
		}
		id, err := uuid.Parse(*s)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	var err error
	if out.CompanyID, err = parse(doc.CompanyID); err != nil {
		return repository.ListFilter{}, fmt.Errorf("companyId: %w", err)
	}
	if out.JobID, err = parse(doc.JobID); err != nil {
		return repository.ListFilter{}, fmt.Errorf("jobId: %w", err)
	}
	if out.UserID, err = parse(doc.UserID); err != nil {
		return repository.ListFilter{}, fmt.Errorf("userId: %w", err)
	}
	out.Email = doc.Email
	return out, nil
}
