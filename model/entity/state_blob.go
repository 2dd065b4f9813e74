package entity

import "time"

// StateBlob is the single persistence row: the whole AppData snapshot as
// one JSON value under a fixed key.
type StateBlob struct {
	Key       string    `gorm:"column:key;primaryKey;type:varchar(64)" json:"key"`
	Value     []byte    `gorm:"column:value;type:blob;not null" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (StateBlob) TableName() string {
	return "app_state"
}
