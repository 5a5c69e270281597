// Code generated by ent, DO NOT EDIT.

package resume

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/haidangnguyen/resume-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldURL, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCompanyID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldJobID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldEmail, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldStatus, v))
}

// CreatedByID applies equality check predicate on the "created_by_id" field. It's identical to CreatedByIDEQ.
func CreatedByID(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCreatedByID, v))
}

// CreatedByEmail applies equality check predicate on the "created_by_email" field. It's identical to CreatedByEmailEQ.
func CreatedByEmail(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCreatedByEmail, v))
}

// UpdatedByID applies equality check predicate on the "updated_by_id" field. It's identical to UpdatedByIDEQ.
func UpdatedByID(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUpdatedByID, v))
}

// UpdatedByEmail applies equality check predicate on the "updated_by_email" field. It's identical to UpdatedByEmailEQ.
func UpdatedByEmail(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUpdatedByEmail, v))
}

// DeletedByID applies equality check predicate on the "deleted_by_id" field. It's identical to DeletedByIDEQ.
func DeletedByID(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldDeletedByID, v))
}

// DeletedByEmail applies equality check predicate on the "deleted_by_email" field. It's identical to DeletedByEmailEQ.
func DeletedByEmail(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldDeletedByEmail, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldIsDeleted, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUpdatedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContainsFold(FieldURL, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldCompanyID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldJobID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContainsFold(FieldEmail, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedByIDEQ applies the EQ predicate on the "created_by_id" field.
func CreatedByIDEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCreatedByID, v))
}

// CreatedByIDNEQ applies the NEQ predicate on the "created_by_id" field.
func CreatedByIDNEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldCreatedByID, v))
}

// CreatedByIDIn applies the In predicate on the "created_by_id" field.
func CreatedByIDIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldCreatedByID, vs...))
}

// CreatedByIDNotIn applies the NotIn predicate on the "created_by_id" field.
func CreatedByIDNotIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldCreatedByID, vs...))
}

// CreatedByIDGT applies the GT predicate on the "created_by_id" field.
func CreatedByIDGT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldCreatedByID, v))
}

// CreatedByIDGTE applies the GTE predicate on the "created_by_id" field.
func CreatedByIDGTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldCreatedByID, v))
}

// CreatedByIDLT applies the LT predicate on the "created_by_id" field.
func CreatedByIDLT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldCreatedByID, v))
}

// CreatedByIDLTE applies the LTE predicate on the "created_by_id" field.
func CreatedByIDLTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldCreatedByID, v))
}

// CreatedByEmailEQ applies the EQ predicate on the "created_by_email" field.
func CreatedByEmailEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCreatedByEmail, v))
}

// CreatedByEmailNEQ applies the NEQ predicate on the "created_by_email" field.
func CreatedByEmailNEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldCreatedByEmail, v))
}

// CreatedByEmailIn applies the In predicate on the "created_by_email" field.
func CreatedByEmailIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldCreatedByEmail, vs...))
}

// CreatedByEmailNotIn applies the NotIn predicate on the "created_by_email" field.
func CreatedByEmailNotIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldCreatedByEmail, vs...))
}

// CreatedByEmailGT applies the GT predicate on the "created_by_email" field.
func CreatedByEmailGT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldCreatedByEmail, v))
}

// CreatedByEmailGTE applies the GTE predicate on the "created_by_email" field.
func CreatedByEmailGTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldCreatedByEmail, v))
}

// CreatedByEmailLT applies the LT predicate on the "created_by_email" field.
func CreatedByEmailLT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldCreatedByEmail, v))
}

// CreatedByEmailLTE applies the LTE predicate on the "created_by_email" field.
func CreatedByEmailLTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldCreatedByEmail, v))
}

// CreatedByEmailContains applies the Contains predicate on the "created_by_email" field.
func CreatedByEmailContains(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContains(FieldCreatedByEmail, v))
}

// CreatedByEmailHasPrefix applies the HasPrefix predicate on the "created_by_email" field.
func CreatedByEmailHasPrefix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasPrefix(FieldCreatedByEmail, v))
}

// CreatedByEmailHasSuffix applies the HasSuffix predicate on the "created_by_email" field.
func CreatedByEmailHasSuffix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasSuffix(FieldCreatedByEmail, v))
}

// CreatedByEmailEqualFold applies the EqualFold predicate on the "created_by_email" field.
func CreatedByEmailEqualFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEqualFold(FieldCreatedByEmail, v))
}

// CreatedByEmailContainsFold applies the ContainsFold predicate on the "created_by_email" field.
func CreatedByEmailContainsFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContainsFold(FieldCreatedByEmail, v))
}

// UpdatedByIDEQ applies the EQ predicate on the "updated_by_id" field.
func UpdatedByIDEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUpdatedByID, v))
}

// UpdatedByIDNEQ applies the NEQ predicate on the "updated_by_id" field.
func UpdatedByIDNEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldUpdatedByID, v))
}

// UpdatedByIDIn applies the In predicate on the "updated_by_id" field.
func UpdatedByIDIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldUpdatedByID, vs...))
}

// UpdatedByIDNotIn applies the NotIn predicate on the "updated_by_id" field.
func UpdatedByIDNotIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldUpdatedByID, vs...))
}

// UpdatedByIDGT applies the GT predicate on the "updated_by_id" field.
func UpdatedByIDGT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldUpdatedByID, v))
}

// UpdatedByIDGTE applies the GTE predicate on the "updated_by_id" field.
func UpdatedByIDGTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldUpdatedByID, v))
}

// UpdatedByIDLT applies the LT predicate on the "updated_by_id" field.
func UpdatedByIDLT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldUpdatedByID, v))
}

// UpdatedByIDLTE applies the LTE predicate on the "updated_by_id" field.
func UpdatedByIDLTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldUpdatedByID, v))
}

// UpdatedByIDIsNil applies the IsNil predicate on the "updated_by_id" field.
func UpdatedByIDIsNil() predicate.Resume {
	return predicate.Resume(sql.FieldIsNull(FieldUpdatedByID))
}

// UpdatedByIDNotNil applies the NotNil predicate on the "updated_by_id" field.
func UpdatedByIDNotNil() predicate.Resume {
	return predicate.Resume(sql.FieldNotNull(FieldUpdatedByID))
}

// UpdatedByEmailEQ applies the EQ predicate on the "updated_by_email" field.
func UpdatedByEmailEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUpdatedByEmail, v))
}

// UpdatedByEmailNEQ applies the NEQ predicate on the "updated_by_email" field.
func UpdatedByEmailNEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldUpdatedByEmail, v))
}

// UpdatedByEmailIn applies the In predicate on the "updated_by_email" field.
func UpdatedByEmailIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldUpdatedByEmail, vs...))
}

// UpdatedByEmailNotIn applies the NotIn predicate on the "updated_by_email" field.
func UpdatedByEmailNotIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldUpdatedByEmail, vs...))
}

// UpdatedByEmailGT applies the GT predicate on the "updated_by_email" field.
func UpdatedByEmailGT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldUpdatedByEmail, v))
}

// UpdatedByEmailGTE applies the GTE predicate on the "updated_by_email" field.
func UpdatedByEmailGTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldUpdatedByEmail, v))
}

// UpdatedByEmailLT applies the LT predicate on the "updated_by_email" field.
func UpdatedByEmailLT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldUpdatedByEmail, v))
}

// UpdatedByEmailLTE applies the LTE predicate on the "updated_by_email" field.
func UpdatedByEmailLTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldUpdatedByEmail, v))
}

// UpdatedByEmailContains applies the Contains predicate on the "updated_by_email" field.
func UpdatedByEmailContains(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContains(FieldUpdatedByEmail, v))
}

// UpdatedByEmailHasPrefix applies the HasPrefix predicate on the "updated_by_email" field.
func UpdatedByEmailHasPrefix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasPrefix(FieldUpdatedByEmail, v))
}

// UpdatedByEmailHasSuffix applies the HasSuffix predicate on the "updated_by_email" field.
func UpdatedByEmailHasSuffix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasSuffix(FieldUpdatedByEmail, v))
}

// UpdatedByEmailIsNil applies the IsNil predicate on the "updated_by_email" field.
func UpdatedByEmailIsNil() predicate.Resume {
	return predicate.Resume(sql.FieldIsNull(FieldUpdatedByEmail))
}

// UpdatedByEmailNotNil applies the NotNil predicate on the "updated_by_email" field.
func UpdatedByEmailNotNil() predicate.Resume {
	return predicate.Resume(sql.FieldNotNull(FieldUpdatedByEmail))
}

// UpdatedByEmailEqualFold applies the EqualFold predicate on the "updated_by_email" field.
func UpdatedByEmailEqualFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEqualFold(FieldUpdatedByEmail, v))
}

// UpdatedByEmailContainsFold applies the ContainsFold predicate on the "updated_by_email" field.
func UpdatedByEmailContainsFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContainsFold(FieldUpdatedByEmail, v))
}

// DeletedByIDEQ applies the EQ predicate on the "deleted_by_id" field.
func DeletedByIDEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldDeletedByID, v))
}

// DeletedByIDNEQ applies the NEQ predicate on the "deleted_by_id" field.
func DeletedByIDNEQ(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldDeletedByID, v))
}

// DeletedByIDIn applies the In predicate on the "deleted_by_id" field.
func DeletedByIDIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldDeletedByID, vs...))
}

// DeletedByIDNotIn applies the NotIn predicate on the "deleted_by_id" field.
func DeletedByIDNotIn(vs ...uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldDeletedByID, vs...))
}

// DeletedByIDGT applies the GT predicate on the "deleted_by_id" field.
func DeletedByIDGT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldDeletedByID, v))
}

// DeletedByIDGTE applies the GTE predicate on the "deleted_by_id" field.
func DeletedByIDGTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldDeletedByID, v))
}

// DeletedByIDLT applies the LT predicate on the "deleted_by_id" field.
func DeletedByIDLT(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldDeletedByID, v))
}

// DeletedByIDLTE applies the LTE predicate on the "deleted_by_id" field.
func DeletedByIDLTE(v uuid.UUID) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldDeletedByID, v))
}

// DeletedByIDIsNil applies the IsNil predicate on the "deleted_by_id" field.
func DeletedByIDIsNil() predicate.Resume {
	return predicate.Resume(sql.FieldIsNull(FieldDeletedByID))
}

// DeletedByIDNotNil applies the NotNil predicate on the "deleted_by_id" field.
func DeletedByIDNotNil() predicate.Resume {
	return predicate.Resume(sql.FieldNotNull(FieldDeletedByID))
}

// DeletedByEmailEQ applies the EQ predicate on the "deleted_by_email" field.
func DeletedByEmailEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldDeletedByEmail, v))
}

// DeletedByEmailNEQ applies the NEQ predicate on the "deleted_by_email" field.
func DeletedByEmailNEQ(v string) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldDeletedByEmail, v))
}

// DeletedByEmailIn applies the In predicate on the "deleted_by_email" field.
func DeletedByEmailIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldDeletedByEmail, vs...))
}

// DeletedByEmailNotIn applies the NotIn predicate on the "deleted_by_email" field.
func DeletedByEmailNotIn(vs ...string) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldDeletedByEmail, vs...))
}

// DeletedByEmailGT applies the GT predicate on the "deleted_by_email" field.
func DeletedByEmailGT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldDeletedByEmail, v))
}

// DeletedByEmailGTE applies the GTE predicate on the "deleted_by_email" field.
func DeletedByEmailGTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldDeletedByEmail, v))
}

// DeletedByEmailLT applies the LT predicate on the "deleted_by_email" field.
func DeletedByEmailLT(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldDeletedByEmail, v))
}

// DeletedByEmailLTE applies the LTE predicate on the "deleted_by_email" field.
func DeletedByEmailLTE(v string) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldDeletedByEmail, v))
}

// DeletedByEmailContains applies the Contains predicate on the "deleted_by_email" field.
func DeletedByEmailContains(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContains(FieldDeletedByEmail, v))
}

// DeletedByEmailHasPrefix applies the HasPrefix predicate on the "deleted_by_email" field.
func DeletedByEmailHasPrefix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasPrefix(FieldDeletedByEmail, v))
}

// DeletedByEmailHasSuffix applies the HasSuffix predicate on the "deleted_by_email" field.
func DeletedByEmailHasSuffix(v string) predicate.Resume {
	return predicate.Resume(sql.FieldHasSuffix(FieldDeletedByEmail, v))
}

// DeletedByEmailIsNil applies the IsNil predicate on the "deleted_by_email" field.
func DeletedByEmailIsNil() predicate.Resume {
	return predicate.Resume(sql.FieldIsNull(FieldDeletedByEmail))
}

// DeletedByEmailNotNil applies the NotNil predicate on the "deleted_by_email" field.
func DeletedByEmailNotNil() predicate.Resume {
	return predicate.Resume(sql.FieldNotNull(FieldDeletedByEmail))
}

// DeletedByEmailEqualFold applies the EqualFold predicate on the "deleted_by_email" field.
func DeletedByEmailEqualFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldEqualFold(FieldDeletedByEmail, v))
}

// DeletedByEmailContainsFold applies the ContainsFold predicate on the "deleted_by_email" field.
func DeletedByEmailContainsFold(v string) predicate.Resume {
	return predicate.Resume(sql.FieldContainsFold(FieldDeletedByEmail, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldIsDeleted, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Resume {
	return predicate.Resume(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Resume {
	return predicate.Resume(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Resume {
	return predicate.Resume(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasHistory applies the HasEdge predicate on the "history" edge.
func HasHistory() predicate.Resume {
	return predicate.Resume(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HistoryTable, HistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHistoryWith applies the HasEdge predicate on the "history" edge with a given conditions (other predicates).
func HasHistoryWith(preds ...predicate.StatusEvent) predicate.Resume {
	return predicate.Resume(func(s *sql.Selector) {
		step := newHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Resume) predicate.Resume {
	return predicate.Resume(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Resume) predicate.Resume {
	return predicate.Resume(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Resume) predicate.Resume {
	return predicate.Resume(sql.NotPredicates(p))
}
