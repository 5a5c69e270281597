package resumes_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/internal/resumes"
)

func TestParseFilterEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "{}"} {
		f, err := resumes.ParseFilter(raw)
		if err != nil {
			t.Fatalf("ParseFilter(%q) failed: %v", raw, err)
		}
		if f.Status != nil || f.CompanyID != nil || f.JobID != nil || f.UserID != nil || f.Email != nil {
			t.Fatalf("ParseFilter(%q) = %+v, want zero filter", raw, f)
		}
	}
}

func TestParseFilterFields(t *testing.T) {
	companyID := uuid.New()
	raw := `{"status":"REVIEWING","companyId":"` + companyID.String() + `","email":"a@b.io"}`

	f, err := resumes.ParseFilter(raw)
	if err != nil {
		t.Fatalf("ParseFilter failed: %v", err)
	}
	if f.Status == nil || *f.Status != constants.StatusReviewing {
		t.Fatalf("status = %v, want REVIEWING", f.Status)
	}
	if f.CompanyID == nil || *f.CompanyID != companyID {
		t.Fatalf("companyId = %v, want %s", f.CompanyID, companyID)
	}
	if f.Email == nil || *f.Email != "a@b.io" {
		t.Fatalf("email = %v, want a@b.io", f.Email)
	}
	if f.JobID != nil || f.UserID != nil {
		t.Fatalf("unset fields should stay nil, got %+v", f)
	}
}

func TestParseFilterRejectsUnknownKeys(t *testing.T) {
	_, err := resumes.ParseFilter(`{"stattus":"PENDING"}`)
	if err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestParseFilterRejectsBadValues(t *testing.T) {
	cases := []string{
		`{"status":"SHIPPED"}`,
		`{"companyId":"not-a-uuid"}`,
		`{"status":42}`,
		`not json`,
	}
	for _, raw := range cases {
		if _, err := resumes.ParseFilter(raw); err == nil {
			t.Errorf("ParseFilter(%q) succeeded, want error", raw)
		}
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}
	if err := resumes.ValidateJSONAgainstSchema(schema, []byte(`{"name":"x"}`)); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	err := resumes.ValidateJSONAgainstSchema(schema, []byte(`{"other":1}`))
	if err == nil {
		t.Fatal("expected invalid document to be rejected")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Fatalf("unexpected error: %v", err)
	}
}
