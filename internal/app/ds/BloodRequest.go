package ds

type BloodRequest struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	RequesterID    uint          `gorm:"not null;index" json:"-"`
	BloodGroup     string        `gorm:"type:varchar(5)" json:"bloodGroup"`
	Hospital       string        `gorm:"type:varchar(255)" json:"hospital"`
	Contact        string        `gorm:"type:varchar(100)" json:"contact"`
	Urgency        string        `gorm:"type:varchar(20)" json:"urgency"`
	Status         RequestStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	Date           Date          `gorm:"type:date;not null" json:"date"`
	DonorID        *uint         `gorm:"index" json:"donorId"`
	RequesterEmail string        `gorm:"type:varchar(255);index" json:"requesterEmail"`
	Amount         int           `gorm:"not null" json:"amount"`
	AmountStatus   AmountStatus  `gorm:"type:varchar(10);not null;default:PAID;index" json:"amountStatus"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}
