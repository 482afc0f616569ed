package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"petstay/constants"
)

type Pet struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"userId"`
	Name         string         `json:"name"`
	Type         string         `gorm:"type:varchar(10)" json:"type"`
	Vaccinations pq.StringArray `gorm:"type:text[]" json:"vaccinations"`
	Avatar       string         `json:"avatar"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Pet) ValidateType() error {
	if p.Type != constants.PetTypeCat && p.Type != constants.PetTypeDog {
		return fmt.Errorf("invalid pet type: %s, must be cat or dog", p.Type)
	}
	return nil
}
