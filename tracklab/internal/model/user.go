package model

import "github.com/Astemirdum/tracklab-service/pkg/auth"

type User struct {
	ID           int64     `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password"`
	Role         auth.Role `json:"role" db:"role"`
	Email        string    `json:"email" db:"email"`
	Contact      string    `json:"contact" db:"contact"`
	Department   string    `json:"department" db:"department"`
	ProfileImage string    `json:"profileImage" db:"profile_image"`
}

func (u User) Actor() auth.Actor {
	return auth.Actor{UserID: u.ID, Username: u.Username, Role: u.Role}
}

type ProfileUpdate struct {
	Email      string
	Contact    string
	Department string
}

type Session struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      User   `json:"user"`
}
