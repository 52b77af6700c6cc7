package models

// User is an account that owns teams, services and models and acts on evaluations
type User struct {
	BaseModel
	Username     string   `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'team_member'" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
