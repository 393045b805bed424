package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tour-backend/models"
)

var (
	ErrDuplicateAssignment = errors.New("assignment already exists for this tour and guide")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrGuideNotFound       = errors.New("guide not found")
	ErrInvalidStatus       = errors.New("invalid assignment status")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrNotAssignmentOwner  = errors.New("assignment belongs to another guide")
)

// isDuplicateKey detects a unique-index violation. MySQL reports error 1062;
// the sqlite driver used in tests reports a UNIQUE constraint message.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "Duplicate entry")
}

type AssignmentService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewAssignmentService(db *gorm.DB, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{DB: db, Logger: logger}
}

// ListByTour returns a tour's assignments with guide identity attached.
func (s *AssignmentService) ListByTour(tourID uint) ([]models.TripAssignment, error) {
	var assignments []models.TripAssignment
	err := s.DB.
		Where("tour_id = ?", tourID).
		Preload("Guide").
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// Create assigns a guide to a tour template and notifies them. The duplicate
// guard runs inside the insert transaction: the unique index on
// (tour_id, user_id, tour_instance_id) catches instance-level duplicates, and
// the explicit existence check covers the template-level case, where the NULL
// instance id keeps MySQL's unique index from firing.
func (s *AssignmentService) Create(tourID, userID uint, status models.AssignmentStatus) (*models.TripAssignment, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var guide models.User
	if err := s.DB.First(&guide, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}

	assignment := models.TripAssignment{
		TourID: tourID,
		UserID: userID,
		Status: status,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.TripAssignment{}).
			Where("tour_id = ? AND user_id = ? AND tour_instance_id IS NULL", tourID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateAssignment
		}

		if err := tx.Create(&assignment).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateAssignment
			}
			return err
		}

		return s.notifyAssigned(tx, &assignment, &guide)
	})
	if err != nil {
		return nil, err
	}

	assignment.Guide = guide
	return &assignment, nil
}

// notifyAssigned writes the guide's inbox entry. The tour title is embedded in
// the message; if the tour row cannot be resolved we fall back to "Tour #<id>".
func (s *AssignmentService) notifyAssigned(tx *gorm.DB, assignment *models.TripAssignment, guide *models.User) error {
	title := fmt.Sprintf("Tour #%d", assignment.TourID)
	var tour models.Tour
	if err := tx.First(&tour, assignment.TourID).Error; err == nil && tour.Title != "" {
		title = tour.Title
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.Logger.Warn("tour lookup failed while building notification",
			zap.Uint("tour_id", assignment.TourID), zap.Error(err))
	}

	n := models.Notification{
		UserID:  guide.ID,
		Kind:    models.NotificationTourAssigned,
		Title:   "New tour assignment",
		Message: fmt.Sprintf("You have been assigned to %s. Please confirm your availability.", title),
	}
	if err := n.SetData(models.NotificationData{
		TourID:       assignment.TourID,
		TourTitle:    title,
		AssignmentID: assignment.ID,
	}); err != nil {
		return err
	}
	return tx.Create(&n).Error
}

// UpdateStatus patches an assignment's status. The assignment must belong to
// the given tour; illegal transitions are rejected at this boundary.
func (s *AssignmentService) UpdateStatus(tourID, assignmentID uint, next models.AssignmentStatus) (*models.TripAssignment, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	var assignment models.TripAssignment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tour_id = ?", assignmentID, tourID).
			First(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}
		if !assignment.Status.CanTransition(next) {
			return ErrIllegalTransition
		}
		if assignment.Status == next {
			return nil
		}
		assignment.Status = next
		return tx.Model(&assignment).Update("status", next).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Guide").First(&assignment, assignment.ID).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Delete removes an assignment together with its check-ins and notes.
// Notifications referencing it are kept: the inbox is per-user history and the
// embedded tour title keeps old entries readable.
func (s *AssignmentService) Delete(tourID, assignmentID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var assignment models.TripAssignment
		if err := tx.Where("id = ? AND tour_id = ?", assignmentID, tourID).
			First(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}
		if err := tx.Where("assignment_id = ?", assignment.ID).
			Delete(&models.TripCheckIn{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assignment_id = ?", assignment.ID).
			Delete(&models.TripNote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&assignment).Error
	})
}

// Confirm is the guide's self-service accept, invoked from a notification.
// The status transition and the read flag on the originating notification are
// committed together so a crash cannot leave a confirmed assignment with an
// unread "please confirm" entry.
func (s *AssignmentService) Confirm(assignmentID, userID uint) (*models.TripAssignment, error) {
	var assignment models.TripAssignment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&assignment, assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}
		if assignment.UserID != userID {
			return ErrNotAssignmentOwner
		}
		if assignment.Status != models.AssignmentPending {
			return ErrIllegalTransition
		}
		assignment.Status = models.AssignmentAccepted
		if err := tx.Model(&assignment).Update("status", models.AssignmentAccepted).Error; err != nil {
			return err
		}
		return tx.Model(&models.Notification{}).
			Where("user_id = ? AND kind = ? AND is_read = ?", userID, models.NotificationTourAssigned, false).
			Where(datatypes.JSONQuery("data").Equals(assignmentID, "assignment_id")).
			Update("is_read", true).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Tour").First(&assignment, assignment.ID).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// MyAssignments lists the caller's assignments with their tours.
func (s *AssignmentService) MyAssignments(userID uint) ([]models.TripAssignment, error) {
	var assignments []models.TripAssignment
	err := s.DB.
		Where("user_id = ?", userID).
		Preload("Tour").
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

// AddCheckIn records an itinerary checkpoint on the caller's assignment.
// Admins may write to any assignment.
func (s *AssignmentService) AddCheckIn(assignmentID, actorID uint, admin bool, in models.TripCheckIn) (*models.TripCheckIn, error) {
	assignment, err := s.ownedAssignment(assignmentID, actorID, admin)
	if err != nil {
		return nil, err
	}
	in.ID = 0
	in.AssignmentID = assignment.ID
	if in.CheckedAt.IsZero() {
		in.CheckedAt = time.Now()
	}
	if err := s.DB.Create(&in).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *AssignmentService) ListCheckIns(assignmentID, actorID uint, admin bool) ([]models.TripCheckIn, error) {
	if _, err := s.ownedAssignment(assignmentID, actorID, admin); err != nil {
		return nil, err
	}
	var checkIns []models.TripCheckIn
	err := s.DB.Where("assignment_id = ?", assignmentID).
		Order("checked_at ASC").
		Find(&checkIns).Error
	return checkIns, err
}

// AddNote appends a free-text log entry to the caller's assignment.
func (s *AssignmentService) AddNote(assignmentID, actorID uint, admin bool, body string) (*models.TripNote, error) {
	assignment, err := s.ownedAssignment(assignmentID, actorID, admin)
	if err != nil {
		return nil, err
	}
	note := models.TripNote{AssignmentID: assignment.ID, Body: body}
	if err := s.DB.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *AssignmentService) ListNotes(assignmentID, actorID uint, admin bool) ([]models.TripNote, error) {
	if _, err := s.ownedAssignment(assignmentID, actorID, admin); err != nil {
		return nil, err
	}
	var notes []models.TripNote
	err := s.DB.Where("assignment_id = ?", assignmentID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

func (s *AssignmentService) ownedAssignment(assignmentID, actorID uint, admin bool) (*models.TripAssignment, error) {
	var assignment models.TripAssignment
	if err := s.DB.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if !admin && assignment.UserID != actorID {
		return nil, ErrNotAssignmentOwner
	}
	return &assignment, nil
}
