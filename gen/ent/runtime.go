// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/haidangnguyen/resume-tracker/db/ent/schema"
	"github.com/haidangnguyen/resume-tracker/gen/ent/resume"
	"github.com/haidangnguyen/resume-tracker/gen/ent/statusevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	resumeFields := schema.Resume{}.Fields()
	_ = resumeFields
	// resumeDescURL is the schema descriptor for url field.
	resumeDescURL := resumeFields[1].Descriptor()
	// resume.URLValidator is a validator for the "url" field. It is called by the builders before save.
	resume.URLValidator = resumeDescURL.Validators[0].(func(string) error)
	// resumeDescEmail is the schema descriptor for email field.
	resumeDescEmail := resumeFields[4].Descriptor()
	// resume.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	resume.EmailValidator = resumeDescEmail.Validators[0].(func(string) error)
	// resumeDescStatus is the schema descriptor for status field.
	resumeDescStatus := resumeFields[6].Descriptor()
	// resume.DefaultStatus holds the default value on creation for the status field.
	resume.DefaultStatus = resumeDescStatus.Default.(string)
	// resume.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	resume.StatusValidator = resumeDescStatus.Validators[0].(func(string) error)
	// resumeDescCreatedByEmail is the schema descriptor for created_by_email field.
	resumeDescCreatedByEmail := resumeFields[8].Descriptor()
	// resume.CreatedByEmailValidator is a validator for the "created_by_email" field. It is called by the builders before save.
	resume.CreatedByEmailValidator = resumeDescCreatedByEmail.Validators[0].(func(string) error)
	// resumeDescIsDeleted is the schema descriptor for is_deleted field.
	resumeDescIsDeleted := resumeFields[13].Descriptor()
	// resume.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	resume.DefaultIsDeleted = resumeDescIsDeleted.Default.(bool)
	// resumeDescCreatedAt is the schema descriptor for created_at field.
	resumeDescCreatedAt := resumeFields[15].Descriptor()
	// resume.DefaultCreatedAt holds the default value on creation for the created_at field.
	resume.DefaultCreatedAt = resumeDescCreatedAt.Default.(func() time.Time)
	// resumeDescUpdatedAt is the schema descriptor for updated_at field.
	resumeDescUpdatedAt := resumeFields[16].Descriptor()
	// resume.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resume.DefaultUpdatedAt = resumeDescUpdatedAt.Default.(func() time.Time)
	// resume.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resume.UpdateDefaultUpdatedAt = resumeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// resumeDescID is the schema descriptor for id field.
	resumeDescID := resumeFields[0].Descriptor()
	// resume.DefaultID holds the default value on creation for the id field.
	resume.DefaultID = resumeDescID.Default.(func() uuid.UUID)
	statuseventFields := schema.StatusEvent{}.Fields()
	_ = statuseventFields
	// statuseventDescStatus is the schema descriptor for status field.
	statuseventDescStatus := statuseventFields[2].Descriptor()
	// statusevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	statusevent.StatusValidator = func() func(string) error {
		validators := statuseventDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// statuseventDescSeq is the schema descriptor for seq field.
	statuseventDescSeq := statuseventFields[3].Descriptor()
	// statusevent.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	statusevent.SeqValidator = statuseventDescSeq.Validators[0].(func(int) error)
	// statuseventDescOccurredAt is the schema descriptor for occurred_at field.
	statuseventDescOccurredAt := statuseventFields[4].Descriptor()
	// statusevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	statusevent.DefaultOccurredAt = statuseventDescOccurredAt.Default.(func() time.Time)
	// statuseventDescActorEmail is the schema descriptor for actor_email field.
	statuseventDescActorEmail := statuseventFields[6].Descriptor()
	// statusevent.ActorEmailValidator is a validator for the "actor_email" field. It is called by the builders before save.
	statusevent.ActorEmailValidator = statuseventDescActorEmail.Validators[0].(func(string) error)
	// statuseventDescID is the schema descriptor for id field.
	statuseventDescID := statuseventFields[0].Descriptor()
	// statusevent.DefaultID holds the default value on creation for the id field.
	statusevent.DefaultID = statuseventDescID.Default.(func() uuid.UUID)
}
