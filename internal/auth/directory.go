package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Directory is the bun backed user store. It exclusively owns the user
// lifecycle: every create and update passes through the hashing and
// uniqueness rules here.
type Directory struct {
	db     *bun.DB
	logger Logger
}

// NewDirectory creates a Directory on the given bun handle.
func NewDirectory(db *bun.DB) *Directory {
	return &Directory{
		db:     db,
		logger: defLogger{},
	}
}

func (d *Directory) WithLogger(logger Logger) *Directory {
	if logger != nil {
		d.logger = logger
	}
	return d
}

// Create registers a new account. The username check runs first and
// wins on conflict; the email check only runs for a free username.
// The candidate password is hashed before anything is stored.
func (d *Directory) Create(ctx context.Context, candidate UserCandidate) (*User, error) {
	existing, err := d.FindByUsername(ctx, candidate.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	taken, err := d.emailExists(ctx, candidate.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(candidate.Password)
	if err != nil {
		return nil, err
	}

	role := candidate.Role
	if role == "" {
		role = DefaultRole
	}

	user := &User{
		Username:     candidate.Username,
		Email:        candidate.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if _, err := d.db.NewInsert().Model(user).Exec(ctx); err != nil {
		// The existence checks above are not atomic with the insert;
		// a concurrent registration can still trip the constraint.
		return nil, d.translateUniqueViolation(err)
	}

	d.logger.Debug("directory created user id=%d username=%s", user.ID, user.Username)

	return user, nil
}

// FindByID returns the full record or ErrUserNotFound.
func (d *Directory) FindByID(ctx context.Context, id int64) (*User, error) {
	user := new(User)

	err := d.db.NewSelect().
		Model(user).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user by id")
	}

	return user, nil
}

// FindByUsername returns (nil, nil) for an absent username. The login
// path interprets absence itself so it never leaks account existence.
func (d *Directory) FindByUsername(ctx context.Context, username string) (*User, error) {
	user := new(User)

	err := d.db.NewSelect().
		Model(user).
		Where("?TableAlias.username = ?", username).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user by username")
	}

	return user, nil
}

// FindAll returns every account in insertion order.
func (d *Directory) FindAll(ctx context.Context) ([]*User, error) {
	var users []*User

	err := d.db.NewSelect().
		Model(&users).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list users")
	}

	return users, nil
}

// Update overwrites the fields present in changes. A new password is
// hashed here and the plaintext discarded.
func (d *Directory) Update(ctx context.Context, id int64, changes UserChanges) (*User, error) {
	user, err := d.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Username != nil {
		user.Username = *changes.Username
	}
	if changes.Email != nil {
		user.Email = *changes.Email
	}
	if changes.Password != nil {
		hash, err := HashPassword(*changes.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if _, err := d.db.NewUpdate().Model(user).WherePK().Exec(ctx); err != nil {
		return nil, d.translateUniqueViolation(err)
	}

	return user, nil
}

// Delete removes the account, or ErrUserNotFound when it is absent.
func (d *Directory) Delete(ctx context.Context, id int64) error {
	user, err := d.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := d.db.NewDelete().Model(user).WherePK().Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete user")
	}

	return nil
}

func (d *Directory) emailExists(ctx context.Context, email string) (bool, error) {
	exists, err := d.db.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.email = ?", email).
		Exists(ctx)
	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check email")
	}
	return exists, nil
}

// translateUniqueViolation maps a constraint error raised at write time
// to the same conflict errors the existence checks produce.
func (d *Directory) translateUniqueViolation(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique") {
		if strings.Contains(msg, "username") {
			return ErrUsernameTaken
		}
		if strings.Contains(msg, "email") {
			return ErrEmailTaken
		}
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist user")
}
