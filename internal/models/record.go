package models

import (
	"fmt"
	"strings"

	apperrors "github.com/RohanBhoge/whatsapp-api/pkg/errors"
)

// Column headers of the source spreadsheet. These key strings (including
// spacing and punctuation) are a contract with the upstream sheet and the
// inbound webhook payloads and must not be changed.
const (
	FieldMobileNo        = "Mobile No"
	FieldApplicationID   = "Application ID"
	FieldApplicantName   = "Applicant Name"
	FieldApplicationType = "Application Type (Certificate Name)"
)

// Record is one row of source data keyed by column header.
type Record map[string]string

// Get returns the value for a column, defaulting to "" for missing headers.
func (r Record) Get(key string) string {
	return r[key]
}

// RecordFromJSON coerces a decoded JSON object into a Record. Sheet-sourced
// webhooks deliver numeric cells as JSON numbers, so non-string values are
// rendered with fmt.Sprint.
func RecordFromJSON(data map[string]any) Record {
	record := make(Record, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case nil:
			record[key] = ""
		case string:
			record[key] = v
		case float64:
			// JSON numbers decode as float64; integral cells must not grow
			// a trailing ".0"
			if v == float64(int64(v)) {
				record[key] = fmt.Sprintf("%d", int64(v))
			} else {
				record[key] = fmt.Sprint(v)
			}
		default:
			record[key] = fmt.Sprint(v)
		}
	}
	return record
}

// Applicant is the validated, typed view of a Record.
type Applicant struct {
	Phone           string
	ApplicationID   string
	Name            string
	CertificateType string
}

// NormalizePhone strips all space characters from a phone number.
func NormalizePhone(phone string) string {
	return strings.ReplaceAll(phone, " ", "")
}

// Applicant maps the record into its typed form. Missing columns default to
// the empty string. Returns ErrMissingRequiredFields when the normalized
// phone number or the application ID is empty; name and certificate type
// carry no such requirement.
func (r Record) Applicant() (Applicant, error) {
	applicant := Applicant{
		Phone:           NormalizePhone(r.Get(FieldMobileNo)),
		ApplicationID:   r.Get(FieldApplicationID),
		Name:            r.Get(FieldApplicantName),
		CertificateType: r.Get(FieldApplicationType),
	}

	if applicant.Phone == "" || applicant.ApplicationID == "" {
		return Applicant{}, apperrors.ErrMissingRequiredFields
	}

	return applicant, nil
}
