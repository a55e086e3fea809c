package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

// UserService implements user management: listing, profile patches, password
// changes, deletion.
type UserService struct {
	users    ports.UserRepository
	classes  ports.ClassRepository
	subjects ports.SubjectRepository
	proj     *projector
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, classes ports.ClassRepository, subjects ports.SubjectRepository, log zerolog.Logger) *UserService {
	return &UserService{
		users:    users,
		classes:  classes,
		subjects: subjects,
		proj:     newProjector(users, subjects, classes, log),
		log:      log,
	}
}

func (s *UserService) List(ctx context.Context) ([]*ports.UserView, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, s.proj.userView(ctx, u))
	}
	return views, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*ports.UserView, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.proj.userView(ctx, u), nil
}

// UpdateProfile applies a partial patch. Role-conditioned fields are gated:
// classId only applies to students, teachingSubjects only to teachers, and
// both are resolved strictly — unlike assignment references, a missing
// referent here is an error.
func (s *UserService) UpdateProfile(ctx context.Context, id string, patch ports.ProfilePatch) (*ports.UserView, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Email != nil && *patch.Email != u.Email {
		taken, err := s.users.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		u.Email = *patch.Email
	}
	if patch.PhotoURL != nil {
		u.PhotoURL = *patch.PhotoURL
	}

	if patch.ClassID != nil && u.Role == domain.RoleStudent {
		if _, err := s.classes.FindByID(ctx, *patch.ClassID); err != nil {
			return nil, err
		}
		u.ClassID = *patch.ClassID
	}

	if patch.TeachingSubjectIDs != nil && u.Role == domain.RoleTeacher {
		for _, subjectID := range patch.TeachingSubjectIDs {
			if _, err := s.subjects.FindByID(ctx, subjectID); err != nil {
				return nil, err
			}
		}
		u.TeachingSubjectIDs = patch.TeachingSubjectIDs
	}

	u.UpdatedAt = time.Now().UTC()

	saved, err := s.users.Save(ctx, u)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to update profile")
		return nil, err
	}
	return s.proj.userView(ctx, saved), nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now().UTC()

	_, err = s.users.Save(ctx, u)
	return err
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
