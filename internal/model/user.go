package model

import "time"

// Role is a user's authorization tier.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleMaster Role = "MASTER" // exactly one MASTER exists after bootstrap
)

// UserStatus tracks the signup approval workflow.
type UserStatus string

const (
	UserPending  UserStatus = "PENDING"
	UserApproved UserStatus = "APPROVED"
	UserRejected UserStatus = "REJECTED"
)

type User struct {
	ID            string     `bson:"_id" json:"id"`
	Username      string     `bson:"username" json:"username"` // immutable after creation
	Password      string     `bson:"password" json:"password"` // plaintext by default, see DESIGN.md
	Name          string     `bson:"name" json:"name"`
	Phone         string     `bson:"phone" json:"phone"`
	BankName      string     `bson:"bankName" json:"bankName"`
	AccountNumber string     `bson:"accountNumber" json:"accountNumber"`
	Role          Role       `bson:"role" json:"role"`
	Status        UserStatus `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}

// RegisterRequest is the signup payload for both user and admin registration.
type RegisterRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserUpdate holds the self-service editable fields. Nil means "leave unchanged".
// Username and Name are immutable after creation and deliberately absent.
type UserUpdate struct {
	Password      *string `json:"password,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	BankName      *string `json:"bankName,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
}

// UserResponse is the wire shape for user records (password omitted).
type UserResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	BankName      string     `json:"bankName"`
	AccountNumber string     `json:"accountNumber"`
	Role          Role       `json:"role"`
	Status        UserStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToResponse converts a User to its wire shape (excludes password).
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		Phone:         u.Phone,
		BankName:      u.BankName,
		AccountNumber: u.AccountNumber,
		Role:          u.Role,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
	}
}
