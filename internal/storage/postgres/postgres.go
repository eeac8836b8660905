package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"communityHub/internal/config"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

const userColumns = `id, email, full_name, username, bio, avatar_url,
		github_profile, linkedin_profile, skills, is_active, role,
		created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.Username,
		&u.Bio,
		&u.AvatarURL,
		&u.GithubProfile,
		&u.LinkedinProfile,
		pq.Array(&u.Skills),
		&u.IsActive,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) CreateUser(user models.User, passwordHash string) (string, error) {
	query := `
		INSERT INTO users (id, email, full_name, username, bio, avatar_url,
			github_profile, linkedin_profile, skills, is_active, role, hashed_password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id string
	err := s.DB.QueryRow(query,
		uuid.NewString(),
		user.Email,
		user.FullName,
		user.Username,
		user.Bio,
		user.AvatarURL,
		user.GithubProfile,
		user.LinkedinProfile,
		pq.Array(user.Skills),
		user.IsActive,
		user.Role,
		passwordHash,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", storage.ErrEmailTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// UserByEmail matches the email case-insensitively, mirroring how login
// credentials are presented.
func (s *Storage) UserByEmail(email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1)`

	user, err := scanUser(s.DB.QueryRow(query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// UserCredentials returns the user together with the stored password
// hash. It is the only read that exposes the hash, and only to login.
func (s *Storage) UserCredentials(email string) (*models.User, string, error) {
	query := `
		SELECT ` + userColumns + `, hashed_password
		FROM users
		WHERE lower(email) = lower($1)`

	var u models.User
	var hash string
	err := s.DB.QueryRow(query, email).Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.Username,
		&u.Bio,
		&u.AvatarURL,
		&u.GithubProfile,
		&u.LinkedinProfile,
		pq.Array(&u.Skills),
		&u.IsActive,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
		&hash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", storage.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to get user credentials: %w", err)
	}

	return &u, hash, nil
}

func (s *Storage) UserByID(id string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	user, err := scanUser(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Storage) Users(search string, skip, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%'
			OR username ILIKE '%' || $1 || '%'
			OR email ILIKE '%' || $1 || '%')
		ORDER BY created_at
		OFFSET $2 LIMIT $3`

	rows, err := s.DB.Query(query, search, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// UpdateUserProfile merges only the fields present in the patch; nil
// patch fields leave the stored values untouched.
func (s *Storage) UpdateUserProfile(id string, patch models.UserPatch) (*models.User, error) {
	query := `
		UPDATE users SET
			full_name = COALESCE($2, full_name),
			bio = COALESCE($3, bio),
			avatar_url = COALESCE($4, avatar_url),
			github_profile = COALESCE($5, github_profile),
			linkedin_profile = COALESCE($6, linkedin_profile),
			skills = COALESCE($7, skills),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var skills interface{}
	if patch.Skills != nil {
		skills = pq.Array(patch.Skills)
	}

	user, err := scanUser(s.DB.QueryRow(query,
		id,
		patch.FullName,
		patch.Bio,
		patch.AvatarURL,
		patch.GithubProfile,
		patch.LinkedinProfile,
		skills,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// SetUserRole is the admin-only promotion path; registration always
// assigns the member role regardless of payload.
func (s *Storage) SetUserRole(id, role string) (*models.User, error) {
	query := `
		UPDATE users SET role = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(s.DB.QueryRow(query, id, role))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to set user role: %w", err)
	}

	return user, nil
}
