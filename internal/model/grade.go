package model

// GradeRecord is one student's grade for one subject, stored in student_grades.
type GradeRecord struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"` // assigned by the database
	Surname      string `json:"surname" gorm:"not null"`
	StudentGroup string `json:"student_group" gorm:"not null"`
	Subject      string `json:"subject" gorm:"not null"`
	TicketNumber int    `json:"ticket_number" gorm:"not null"`
	Grade        int    `json:"grade" gorm:"not null"`
	Teacher      string `json:"teacher" gorm:"not null"`
}

func (GradeRecord) TableName() string {
	return "student_grades"
}

// GradeInput is the request body for create and update. Fields are pointers so
// that a missing field can be told apart from an empty string or a zero.
type GradeInput struct {
	Surname      *string `json:"surname" validate:"required"`
	StudentGroup *string `json:"student_group" validate:"required"`
	Subject      *string `json:"subject" validate:"required"`
	TicketNumber *int    `json:"ticket_number" validate:"required"`
	Grade        *int    `json:"grade" validate:"required"`
	Teacher      *string `json:"teacher" validate:"required"`
}

// Record converts the input into a GradeRecord with the given id.
// Missing fields become zero values; callers validate first.
func (in GradeInput) Record(id int64) GradeRecord {
	return GradeRecord{
		ID:           id,
		Surname:      deref(in.Surname),
		StudentGroup: deref(in.StudentGroup),
		Subject:      deref(in.Subject),
		TicketNumber: deref(in.TicketNumber),
		Grade:        deref(in.Grade),
		Teacher:      deref(in.Teacher),
	}
}

// GradeFilter narrows ListGrades. The zero value matches every row.
type GradeFilter struct {
	Surname      string
	StudentGroup string
	Subject      string
	Teacher      string
	GradeMin     *int
	GradeMax     *int
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
