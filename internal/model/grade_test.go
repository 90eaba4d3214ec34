package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeInputRecord(t *testing.T) {
	surname, group, subject, teacher := "Ivanov", "CS-1", "Math", "Petrov"
	ticket, grade := 12, 5

	in := GradeInput{
		Surname:      &surname,
		StudentGroup: &group,
		Subject:      &subject,
		TicketNumber: &ticket,
		Grade:        &grade,
		Teacher:      &teacher,
	}

	assert.Equal(t, GradeRecord{
		ID:           7,
		Surname:      "Ivanov",
		StudentGroup: "CS-1",
		Subject:      "Math",
		TicketNumber: 12,
		Grade:        5,
		Teacher:      "Petrov",
	}, in.Record(7))
}

func TestGradeInputRecordMissingFields(t *testing.T) {
	assert.Equal(t, GradeRecord{ID: 1}, GradeInput{}.Record(1))
}

func TestGradeRecordTableName(t *testing.T) {
	assert.Equal(t, "student_grades", GradeRecord{}.TableName())
}
