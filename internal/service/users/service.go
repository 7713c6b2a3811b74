// Package users implements admin-only account management.
package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
)

const (
	emailDomain = "granja.com"
	bcryptCost  = 10
)

// Service implements the admin user-management operations.
type Service struct {
	users   mongodb.UserStore
	records mongodb.RecordStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a users service instance.
func NewService(users mongodb.UserStore, records mongodb.RecordStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, records: records, logger: logger, now: time.Now}
}

// List returns all accounts with their submitted-record counts.
func (s *Service) List(ctx context.Context, actor identity.Actor) ([]models.UserSummary, error) {
	if !actor.Is(models.RoleAdmin) {
		return nil, models.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		count, err := s.records.CountByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.UserSummary{User: u, RecordCount: count})
	}
	return summaries, nil
}

// CreateUserInput is the admin account-creation payload. Email and password
// are optional; absent values are generated.
type CreateUserInput struct {
	Name     string      `json:"nombre"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Password string      `json:"password"`
}

// CreateUserResult includes the generated temporary password when the admin
// did not supply one.
type CreateUserResult struct {
	User         models.User `json:"usuario"`
	TempPassword string      `json:"passwordTemporal,omitempty"`
	Message      string      `json:"mensaje"`
}

// Create registers a new account. When no email is given one is derived from
// the name and suffixed with a counter until unique; when no password is given
// a temporary one is generated and returned once.
func (s *Service) Create(ctx context.Context, actor identity.Actor, input CreateUserInput) (CreateUserResult, error) {
	if !actor.Is(models.RoleAdmin) {
		return CreateUserResult{}, models.ErrForbidden
	}
	if strings.TrimSpace(input.Name) == "" || input.Role == "" {
		return CreateUserResult{}, fmt.Errorf("%w: nombre y rol son requeridos", models.ErrInvalidInput)
	}
	if !models.ValidRole(input.Role) {
		return CreateUserResult{}, fmt.Errorf("%w: rol %q", models.ErrInvalidInput, input.Role)
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		generated, err := s.uniqueEmail(ctx, GenerateEmail(input.Name))
		if err != nil {
			return CreateUserResult{}, err
		}
		email = generated
	} else {
		if _, err := s.users.FindByEmail(ctx, email); err == nil {
			return CreateUserResult{}, models.ErrEmailTaken
		} else if !errors.Is(err, models.ErrNotFound) {
			return CreateUserResult{}, err
		}
	}

	password := input.Password
	generatedPassword := ""
	if password == "" {
		generatedPassword = tempPassword()
		password = generatedPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return CreateUserResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user, err := s.users.Insert(ctx, models.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hash),
		Role:         input.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return CreateUserResult{}, err
	}

	result := CreateUserResult{User: user, Message: "Usuario creado exitosamente"}
	if generatedPassword != "" {
		result.TempPassword = generatedPassword
		result.Message = fmt.Sprintf("Usuario creado. Contraseña temporal: %s", generatedPassword)
	}

	s.logger.Info("user created", zap.String("user_id", user.ID.Hex()), zap.String("role", string(user.Role)))
	return result, nil
}

// UpdateUserInput is the admin account-update payload; zero-valued fields are
// left untouched.
type UpdateUserInput struct {
	ID       primitive.ObjectID
	Name     string
	Email    string
	Role     models.Role
	Active   *bool
	Password string
}

// Update applies the changed fields to the account.
func (s *Service) Update(ctx context.Context, actor identity.Actor, input UpdateUserInput) (models.User, error) {
	if !actor.Is(models.RoleAdmin) {
		return models.User{}, models.ErrForbidden
	}
	if input.ID.IsZero() {
		return models.User{}, fmt.Errorf("%w: id de usuario requerido", models.ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return models.User{}, err
	}

	if input.Name != "" {
		user.Name = strings.TrimSpace(input.Name)
	}
	if input.Email != "" {
		email := strings.TrimSpace(strings.ToLower(input.Email))
		if other, err := s.users.FindByEmail(ctx, email); err == nil && other.ID != user.ID {
			return models.User{}, models.ErrEmailTaken
		} else if err != nil && !errors.Is(err, models.ErrNotFound) {
			return models.User{}, err
		}
		user.Email = email
	}
	if input.Role != "" {
		if !models.ValidRole(input.Role) {
			return models.User{}, fmt.Errorf("%w: rol %q", models.ErrInvalidInput, input.Role)
		}
		user.Role = input.Role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = s.now()
	return s.users.Replace(ctx, user)
}

// DeleteResult reports whether the account was removed or only deactivated.
type DeleteResult struct {
	Deactivated bool   `json:"desactivado"`
	Message     string `json:"mensaje"`
}

// Delete removes the account, or deactivates it instead when it owns
// production records so attribution is preserved. Admins cannot delete their
// own account.
func (s *Service) Delete(ctx context.Context, actor identity.Actor, id primitive.ObjectID) (DeleteResult, error) {
	if !actor.Is(models.RoleAdmin) {
		return DeleteResult{}, models.ErrForbidden
	}
	if id.IsZero() {
		return DeleteResult{}, fmt.Errorf("%w: id de usuario requerido", models.ErrInvalidInput)
	}
	if id == actor.UserID {
		return DeleteResult{}, fmt.Errorf("%w: no puedes eliminar tu propio usuario", models.ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}

	count, err := s.records.CountByUser(ctx, user.ID)
	if err != nil {
		return DeleteResult{}, err
	}

	if count > 0 {
		user.Active = false
		user.UpdatedAt = s.now()
		if _, err := s.users.Replace(ctx, user); err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{Deactivated: true, Message: "Usuario desactivado (tiene registros asociados)"}, nil
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Message: "Usuario eliminado exitosamente"}, nil
}

func (s *Service) uniqueEmail(ctx context.Context, base string) (string, error) {
	email := base
	local, domain, _ := strings.Cut(base, "@")
	for counter := 1; ; counter++ {
		_, err := s.users.FindByEmail(ctx, email)
		if errors.Is(err, models.ErrNotFound) {
			return email, nil
		}
		if err != nil {
			return "", err
		}
		email = fmt.Sprintf("%s%d@%s", local, counter, domain)
	}
}

var deaccent = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ü", "u", "ñ", "n",
)

// GenerateEmail derives a login email from a display name: lowercased,
// deaccented, first and last name joined with a dot.
func GenerateEmail(name string) string {
	normalized := deaccent.Replace(strings.ToLower(strings.TrimSpace(name)))

	var b strings.Builder
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('.')
		}
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '.' })
	local := "usuario"
	switch {
	case len(parts) > 1:
		local = parts[0] + "." + parts[len(parts)-1]
	case len(parts) == 1:
		local = parts[0]
	}

	return local + "@" + emailDomain
}

func tempPassword() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "temp" + hex.EncodeToString(buf)
}
