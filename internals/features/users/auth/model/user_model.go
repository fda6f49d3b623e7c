package model

type UserModel struct {
	ID             int    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"type:varchar(255);not null" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
