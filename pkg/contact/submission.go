package contact

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// Submission statuses
const (
	StatusPending = "pending"
	StatusExpired = "expired"
)

// StaleAfter is how long a submission stays pending before it expires
const StaleAfter = time.Hour * 24 * 30

// Submission is the stored record of an Inquiry
type Submission struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text"`
	Type    string `json:"type"`
	Status  string `json:"status" gorm:"default:'pending'"`
}

func (Submission) TableName() string {
	return "contact_submissions"
}

// SaveSubmission stores a normalized inquiry as a new pending submission.
// Identical inquiries are stored again as independent records.
func SaveSubmission(db *gorm.DB, inquiry Inquiry) (*Submission, error) {
	normalized := inquiry.Normalize()
	submission := &Submission{
		Name:    normalized.Name,
		Email:   normalized.Email,
		Subject: normalized.Subject,
		Message: normalized.Message,
		Type:    normalized.Type,
		Status:  StatusPending,
	}
	if err := db.Create(submission).Error; err != nil {
		return nil, errors.Wrap(err, "save contact submission")
	}
	return submission, nil
}

// ListSubmissions returns up to limit submissions, newest first
func ListSubmissions(db *gorm.DB, limit int) ([]Submission, error) {
	submissions := []Submission{}
	if err := db.Order("created_at desc").Limit(limit).Find(&submissions).Error; err != nil {
		return nil, errors.Wrap(err, "list contact submissions")
	}
	return submissions, nil
}

// ExpireStaleSubmissions marks pending submissions older than StaleAfter as expired
func ExpireStaleSubmissions(db *gorm.DB, now time.Time) (int64, error) {
	cutoff := now.Add(-StaleAfter)
	result := db.Model(&Submission{}).
		Where("status = ? AND created_at < ?", StatusPending, cutoff).
		Update("status", StatusExpired)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "expire contact submissions")
	}
	return result.RowsAffected, nil
}

// GormStore stores submissions in Postgres
type GormStore struct {
	DB *gorm.DB
}

// Save stores a new pending submission
func (s *GormStore) Save(inquiry Inquiry) (*Submission, error) {
	return SaveSubmission(s.DB, inquiry)
}

// List returns the newest submissions
func (s *GormStore) List(limit int) ([]Submission, error) {
	return ListSubmissions(s.DB, limit)
}

// Inquiry returns the fields the sender submitted
func (s Submission) Inquiry() Inquiry {
	return Inquiry{
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
		Type:    s.Type,
	}
}
