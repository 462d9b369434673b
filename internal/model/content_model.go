package model

import "gorm.io/datatypes"

type Destination struct {
	Id          string                      `gorm:"type:text;primaryKey"`
	Name        string                      `gorm:"type:text;not null"`
	Category    string                      `gorm:"type:text;not null"`
	Region      *string                     `gorm:"type:text"`
	Weather     *string                     `gorm:"type:text"`
	Duration    *string                     `gorm:"type:text"`
	BestTime    *string                     `gorm:"column:best_time;type:text"`
	Description *string                     `gorm:"type:text"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images_json;not null"`
}

func (Destination) TableName() string {
	return "destinations"
}

type Stay struct {
	Id       string                      `gorm:"type:text;primaryKey"`
	Name     string                      `gorm:"type:text;not null"`
	Location string                      `gorm:"type:text;not null"`
	Type     string                      `gorm:"type:text;not null"`
	Price    int                         `gorm:"not null"`
	Rating   float64                     `gorm:"not null"`
	Image    string                      `gorm:"type:text;not null"`
	Images   datatypes.JSONSlice[string] `gorm:"column:images_json;not null"`
}

func (Stay) TableName() string {
	return "stays"
}

type Experience struct {
	Id          string                      `gorm:"type:text;primaryKey"`
	Title       string                      `gorm:"type:text;not null"`
	Category    string                      `gorm:"type:text;not null"`
	Duration    *string                     `gorm:"type:text"`
	Rating      float64                     `gorm:"not null"`
	Short       *string                     `gorm:"type:text"`
	Description *string                     `gorm:"type:text"`
	Image       *string                     `gorm:"type:text"`
	Highlights  datatypes.JSONSlice[string] `gorm:"column:highlights_json;not null"`
}

func (Experience) TableName() string {
	return "experiences"
}

type Event struct {
	Id          string  `gorm:"type:text;primaryKey"`
	Title       string  `gorm:"type:text;not null"`
	Category    string  `gorm:"type:text;not null"`
	Location    string  `gorm:"type:text;not null"`
	StartDate   string  `gorm:"column:start_date;type:text;not null"`
	EndDate     *string `gorm:"column:end_date;type:text"`
	Description *string `gorm:"type:text"`
	Image       *string `gorm:"type:text"`
}

func (Event) TableName() string {
	return "events"
}
