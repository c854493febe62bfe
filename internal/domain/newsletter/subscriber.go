package newsletter

import "time"

// Subscriber emails are stored lower-cased; the unique index makes the
// case-insensitive uniqueness rule hold at the storage layer too.
type Subscriber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	IPAddress string `gorm:"column:ip_address" json:"ip_address"`
	UserAgent string `json:"user_agent"`

	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}
