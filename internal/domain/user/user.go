// Package user holds platform accounts: mentees, mentors and administrators.
package user

import (
	"fmt"
	"net/mail"
	"time"

	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/id"
)

// Role is the account role. Mentees browse and subscribe; mentors publish
// posts and take bookings; admins manage the catalog.
type Role string

const (
	RoleMentee Role = "mentee"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

var validRoles = map[Role]bool{
	RoleMentee: true,
	RoleMentor: true,
	RoleAdmin:  true,
}

type User struct {
	dbID         uint
	sid          string
	email        string
	passwordHash string
	displayName  string
	role         Role
	bio          string
	photoKey     string
	resumeKey    string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an account. passwordHash must already be hashed; the
// aggregate never sees plaintext.
func NewUser(email, passwordHash, displayName string, role Role) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address %q", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		sid:          id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds an account from persistence.
func ReconstructUser(
	dbID uint,
	sid, email, passwordHash, displayName string,
	role Role,
	bio, photoKey, resumeKey string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		dbID:         dbID,
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		bio:          bio,
		photoKey:     photoKey,
		resumeKey:    resumeKey,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) DBID() uint {
	return u.dbID
}

func (u *User) SID() string {
	return u.sid
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) Bio() string {
	return u.bio
}

func (u *User) PhotoKey() string {
	return u.photoKey
}

func (u *User) ResumeKey() string {
	return u.resumeKey
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(dbID uint) {
	u.dbID = dbID
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) IsMentor() bool {
	return u.role == RoleMentor
}

func (u *User) UpdateProfile(displayName, bio string) error {
	if displayName == "" {
		return fmt.Errorf("display name is required")
	}
	u.displayName = displayName
	u.bio = bio
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) SetPhotoKey(key string) {
	u.photoKey = key
	u.updatedAt = biztime.NowUTC()
}

func (u *User) SetResumeKey(key string) {
	u.resumeKey = key
	u.updatedAt = biztime.NowUTC()
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return validRoles[Role(s)]
}
