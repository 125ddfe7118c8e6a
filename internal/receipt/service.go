package receipt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/mail"
	"github.com/smartque/smartque-api/internal/models"
	"github.com/smartque/smartque-api/internal/storage"
)

// Service emails the receipt for a completed appointment to its owner and,
// when an archive is configured, stores a copy. Everything is best-effort.
type Service struct {
	db      *gorm.DB
	mailer  mail.Mailer
	archive *storage.S3Archive // may be nil
	log     *logrus.Logger
}

func NewService(
	db *gorm.DB,
	mailer mail.Mailer,
	archive *storage.S3Archive,
	log *logrus.Logger,
) *Service {
	return &Service{
		db:      db,
		mailer:  mailer,
		archive: archive,
		log:     log,
	}
}

func (s *Service) Send(ctx context.Context, ap models.Appointment) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, ap.UserID).Error; err != nil {
		s.log.WithError(err).WithField("appointment_id", ap.ID).
			Warn("receipt skipped, owner lookup failed")
		return
	}

	ref := uuid.NewString()
	pdf, err := Build(ap, user, ref)
	if err != nil {
		s.log.WithError(err).WithField("appointment_id", ap.ID).
			Warn("receipt build failed")
		return
	}

	subject, body := mail.ReceiptEmail(user.Name, ap.DepartmentName)
	if err := s.mailer.SendWithAttachment(
		user.Email, subject, body, "receipt.pdf", pdf,
	); err != nil {
		s.log.WithError(err).WithField("appointment_id", ap.ID).
			Warn("receipt email failed")
	}

	if s.archive != nil {
		key := fmt.Sprintf(
			"receipts/%s/appointment-%d-%s.pdf",
			ap.DateTime.Format("2006/01"), ap.ID, ref,
		)
		if err := s.archive.Put(ctx, key, pdf, "application/pdf"); err != nil {
			s.log.WithError(err).WithField("key", key).
				Warn("receipt archive failed")
		}
	}
}
