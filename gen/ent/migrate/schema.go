// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ResumesColumns holds the columns for the "resumes" table.
	ResumesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString},
		{Name: "company_id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "created_by_id", Type: field.TypeUUID},
		{Name: "created_by_email", Type: field.TypeString},
		{Name: "updated_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "updated_by_email", Type: field.TypeString, Nullable: true},
		{Name: "deleted_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "deleted_by_email", Type: field.TypeString, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ResumesTable holds the schema information for the "resumes" table.
	ResumesTable = &schema.Table{
		Name:       "resumes",
		Columns:    ResumesColumns,
		PrimaryKey: []*schema.Column{ResumesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resume_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResumesColumns[5], ResumesColumns[15]},
			},
			{
				Name:    "resume_company_id",
				Unique:  false,
				Columns: []*schema.Column{ResumesColumns[2]},
			},
			{
				Name:    "resume_job_id",
				Unique:  false,
				Columns: []*schema.Column{ResumesColumns[3]},
			},
			{
				Name:    "resume_is_deleted_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResumesColumns[13], ResumesColumns[15]},
			},
		},
	}
	// ResumeStatusEventsColumns holds the columns for the "resume_status_events" table.
	ResumeStatusEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "actor_id", Type: field.TypeUUID},
		{Name: "actor_email", Type: field.TypeString},
		{Name: "resume_id", Type: field.TypeUUID},
	}
	// ResumeStatusEventsTable holds the schema information for the "resume_status_events" table.
	ResumeStatusEventsTable = &schema.Table{
		Name:       "resume_status_events",
		Columns:    ResumeStatusEventsColumns,
		PrimaryKey: []*schema.Column{ResumeStatusEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "resume_status_events_resumes_history",
				Columns:    []*schema.Column{ResumeStatusEventsColumns[6]},
				RefColumns: []*schema.Column{ResumesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "statusevent_resume_id_seq",
				Unique:  true,
				Columns: []*schema.Column{ResumeStatusEventsColumns[6], ResumeStatusEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResumesTable,
		ResumeStatusEventsTable,
	}
)

func init() {
	ResumesTable.Annotation = &entsql.Annotation{
		Table: "resumes",
	}
	ResumeStatusEventsTable.ForeignKeys[0].RefTable = ResumesTable
	ResumeStatusEventsTable.Annotation = &entsql.Annotation{
		Table: "resume_status_events",
	}
}
