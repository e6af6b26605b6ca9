package domain

import "time"

// User domain model (users table)
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Phone        string    `gorm:"uniqueIndex;size:32" json:"-"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	FullName     string    `gorm:"size:128" json:"full_name"`
	Username     string    `gorm:"uniqueIndex;size:128" json:"username"`
	AvatarURL    string    `gorm:"size:512" json:"avatar_url,omitempty"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	IsBanned     bool      `gorm:"default:false" json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary is the short author/actor block embedded in feed items,
// chat lists and notifications
type UserSummary struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ToSummary converts User to UserSummary
func (u *User) ToSummary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}

// UserResponse represents a user in auth responses
type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		IsAdmin:   u.IsAdmin,
	}
}

// ProfileResponse is a public profile with follow aggregates
type ProfileResponse struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	Bio            string `json:"bio,omitempty"`
	IsAdmin        bool   `json:"is_admin"`
	IsBanned       bool   `json:"is_banned"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
}

// AdminUserResponse is the moderation view of a user, phone included
type AdminUserResponse struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"is_admin"`
	IsBanned  bool   `json:"is_banned"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToAdminResponse converts User to AdminUserResponse
func (u *User) ToAdminResponse() *AdminUserResponse {
	return &AdminUserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		IsBanned:  u.IsBanned,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest carries the optional profile fields; nil means "leave as is"
type UpdateProfileRequest struct {
	UserID    uint    `json:"user_id" binding:"required"`
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}
