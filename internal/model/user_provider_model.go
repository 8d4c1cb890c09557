package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProvider struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderName   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_providers_account"`
	ProviderUserId string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_providers_account"`
	AvatarURL      string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (UserProvider) TableName() string {
	return "user_providers"
}
