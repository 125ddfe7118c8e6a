package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DoctorName     string `gorm:"size:100;not null" json:"doctor_name"`
	DepartmentName string `gorm:"size:100;index;not null" json:"department_name"`

	DateTime time.Time `gorm:"index;not null" json:"date_time"`

	// Per-department, per-day sequential display value. Not unique: the
	// reservation path guards against duplicates, imported numbers are not
	// re-validated.
	QueueNumber string `gorm:"size:10;not null" json:"queue_number"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConsultationFee float64 `gorm:"default:0" json:"consultation_fee"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
