package models

type TeamMember struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Role      string  `gorm:"not null" json:"role"`
	AvatarURL *string `gorm:"column:avatar_url" json:"avatar_url"`
	Email     *string `gorm:"uniqueIndex" json:"email"`

	// Relations
	Tasks []Task `gorm:"foreignKey:AssigneeID" json:"-"`
}
