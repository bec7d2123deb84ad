package ds

const (
	RoleDonor    = "donor"
	RoleReceiver = "receiver"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:receiver" json:"role"`
	BloodGroup   string `gorm:"type:varchar(5)" json:"bloodGroup"`
}
