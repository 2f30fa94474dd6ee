package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Property - одно отслеживаемое объявление недвижимости
type Property struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title          string         `json:"title" gorm:"type:varchar(255);not null"`
	Address        string         `json:"address" gorm:"type:text"`
	Price          float64        `json:"price" gorm:"not null"`
	Currency       string         `json:"currency" gorm:"type:varchar(3);default:USD"` // строго: "USD" | "EUR"
	Bedrooms       int            `json:"bedrooms"`
	Bathrooms      float64        `json:"bathrooms"`
	Sqft           float64        `json:"sqft"`
	YearBuilt      int            `json:"yearBuilt"`
	PropertyType   string         `json:"propertyType" gorm:"type:varchar(20)"` // house | condo | townhouse | apartment
	ImageURL       string         `json:"imageUrl" gorm:"type:text"`
	Description    string         `json:"description" gorm:"type:text"`
	IsFavorite     bool           `json:"isFavorite" gorm:"default:false"`
	PriceIndicator string         `json:"priceIndicator" gorm:"type:varchar(10)"` // "" | good | expensive
	Features       datatypes.JSON `json:"features" gorm:"type:jsonb"`
	Neighborhood   string         `json:"neighborhood" gorm:"type:varchar(255)"`
	PricePerSqft   int            `json:"pricePerSqft"`
	ListingAgent   string         `json:"listingAgent" gorm:"type:varchar(255)"`
	DaysOnMarket   int            `json:"daysOnMarket" gorm:"default:0"`

	// Расширенные необязательные поля карточки
	AdditionalImages datatypes.JSON `json:"additionalImages,omitempty" gorm:"type:jsonb"`
	MapURL           *string        `json:"mapUrl,omitempty" gorm:"type:text"`
	VirtualTourURL   *string        `json:"virtualTourUrl,omitempty" gorm:"type:text"`
	LotSize          *string        `json:"lotSize,omitempty" gorm:"type:varchar(100)"`
	ParkingSpaces    *int           `json:"parkingSpaces,omitempty"`
	Heating          *string        `json:"heating,omitempty" gorm:"type:varchar(100)"`
	Cooling          *string        `json:"cooling,omitempty" gorm:"type:varchar(100)"`
	Flooring         *string        `json:"flooring,omitempty" gorm:"type:varchar(100)"`
	Appliances       datatypes.JSON `json:"appliances,omitempty" gorm:"type:jsonb"`
	Utilities        *string        `json:"utilities,omitempty" gorm:"type:text"`
	HOA              *string        `json:"hoa,omitempty" gorm:"type:text"`
	Taxes            *string        `json:"taxes,omitempty" gorm:"type:text"`

	Comments []PropertyComment `json:"comments,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Property) TableName() string {
	return "properties"
}

// PropertyComment - заметка пользователя, привязанная к объявлению
type PropertyComment struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PropertyID string    `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	Type       string    `json:"type" gorm:"type:varchar(20);default:note"`       // note | reminder | observation | question
	Priority   string    `json:"priority" gorm:"type:varchar(10);default:medium"` // low | medium | high
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (PropertyComment) TableName() string {
	return "property_comments"
}

// JSONStrings упаковывает срез строк в jsonb-колонку
func JSONStrings(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

// FeatureList распаковывает jsonb-колонку обратно в срез строк
func FeatureList(raw datatypes.JSON) []string {
	var values []string
	if len(raw) == 0 {
		return values
	}
	_ = json.Unmarshal(raw, &values)
	return values
}
