package models

import "time"

// SystemConfig is a process-wide string key/value setting.
type SystemConfig struct {
	Key         string    `gorm:"column:key;primaryKey"`
	Value       string    `gorm:"column:value;not null"`
	Description *string   `gorm:"column:description"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// ConfigMaxTrainingDays caps the distinct weekly training days in a plan.
const ConfigMaxTrainingDays = "max_training_days"

// DefaultMaxTrainingDays applies when the setting is absent or malformed.
const DefaultMaxTrainingDays = 6
