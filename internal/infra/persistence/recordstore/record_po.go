package recordstore

import (
	"time"

	"gorm.io/datatypes"
)

type RecordPo struct {
	RecordKey string         `gorm:"column:record_key;primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"column:value;type:json;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (RecordPo) TableName() string {
	return "priority_system_records"
}
