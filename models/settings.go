package models

import "time"

// Settings - настройки приложения, одна строка на инсталляцию (ID всегда 1)
type Settings struct {
	ID                  uint      `json:"-" gorm:"primaryKey"`
	Currency            string    `json:"currency" gorm:"type:varchar(3);default:USD"`
	DefaultLoanTerm     int       `json:"defaultLoanTerm" gorm:"default:30"`
	DefaultInterestRate float64   `json:"defaultInterestRate" gorm:"default:6.5"`
	Notifications       bool      `json:"notifications" gorm:"default:true"`
	DarkMode            bool      `json:"darkMode" gorm:"default:false"`
	MeasurementUnit     string    `json:"measurementUnit" gorm:"type:varchar(4);default:sqft"` // sqft | sqm
	Language            string    `json:"language" gorm:"type:varchar(2);default:es"`          // es | en
	MarketDataLocation  string    `json:"marketDataLocation" gorm:"type:varchar(255);default:'New York, NY'"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings возвращает настройки по умолчанию (как при первом запуске приложения)
func DefaultSettings() Settings {
	return Settings{
		ID:                  1,
		Currency:            "USD",
		DefaultLoanTerm:     30,
		DefaultInterestRate: 6.5,
		Notifications:       true,
		DarkMode:            false,
		MeasurementUnit:     "sqft",
		Language:            "es",
		MarketDataLocation:  "New York, NY",
	}
}
