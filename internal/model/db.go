package model

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Role      string    `gorm:"size:16;not null;default:'member'" json:"role"` // member | admin
	CreatedAt time.Time `json:"createdAt"`
}

type Campaign struct {
	ID          string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `json:"description"`
	Goal        int64     `gorm:"not null" json:"goal"` // target amount in cents
	ImageURL    string    `gorm:"size:512" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Review struct {
	ID        string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Email     string    `gorm:"size:255;index" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Rating    int32     `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// DonorInfo is a pending donation intent. Several rows may exist per email;
// they are bulk-deleted when a payment for that email is finalized.
type DonorInfo struct {
	ID         string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Email      string    `gorm:"size:255;index;not null" json:"email"`
	Amount     int64     `gorm:"not null" json:"amount"` // cents
	CampaignID string    `gorm:"size:36;index" json:"campaignId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Payment is an append-only settlement record. Never updated or deleted.
type Payment struct {
	ID            string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Email         string    `gorm:"size:255;index;not null" json:"email"`
	Amount        int64     `gorm:"not null" json:"amount"` // cents
	TransactionID string    `gorm:"size:128" json:"transactionId"`
	Status        string    `gorm:"size:32" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
