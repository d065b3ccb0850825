package models

import (
	"time"

	"gorm.io/gorm"
)

// 房源状态
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertyRented    PropertyStatus = "rented"
)

// City 城市
type City struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

// Feature 设施标签
type Feature struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;unique" json:"name"`
}

// Property 房源
type Property struct {
	gorm.Model
	OwnerID     uint           `gorm:"index" json:"ownerId"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Bedrooms    int            `gorm:"default:0" json:"bedrooms"`
	Bathrooms   int            `gorm:"default:0" json:"bathrooms"`
	LandArea    float64        `gorm:"type:decimal(10,2);default:0" json:"landArea"`
	FloorArea   float64        `gorm:"type:decimal(10,2);default:0" json:"floorArea"`
	Status      PropertyStatus `gorm:"size:20;not null;default:'available';index" json:"status"`
	ListedAt    time.Time      `json:"listedAt"`

	Pricing  *PropertyPricing  `gorm:"foreignKey:PropertyID" json:"pricing,omitempty"`
	Location *PropertyLocation `gorm:"foreignKey:PropertyID" json:"location,omitempty"`
	Features []Feature         `gorm:"many2many:property_features" json:"features,omitempty"`
}

// PropertyPricing 房源价格，与房源一对一
type PropertyPricing struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	PropertyID       uint       `gorm:"not null;uniqueIndex" json:"propertyId"`
	RentPrice        float64    `gorm:"type:decimal(10,2);not null" json:"rentPrice"`
	ElectricityPrice *float64   `gorm:"type:decimal(10,2)" json:"electricityPrice,omitempty"`
	WaterPrice       *float64   `gorm:"type:decimal(10,2)" json:"waterPrice,omitempty"`
	AvailableFrom    *time.Time `json:"availableFrom,omitempty"`
}

// PropertyLocation 房源位置，与房源一对一
type PropertyLocation struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	PropertyID   uint     `gorm:"not null;uniqueIndex" json:"propertyId"`
	CityID       uint     `gorm:"not null;index" json:"cityId"`
	StreetNumber string   `gorm:"size:255" json:"streetNumber,omitempty"`
	Latitude     *float64 `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude    *float64 `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`
	City         *City    `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

// PropertySummary 推荐结果中返回的房源摘要
type PropertySummary struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Bedrooms  int            `json:"bedrooms"`
	Bathrooms int            `json:"bathrooms"`
	RentPrice float64        `json:"rentPrice"`
	CityID    uint           `json:"cityId,omitempty"`
	Status    PropertyStatus `json:"status"`
	Features  []string       `json:"features"`
}

// ToSummary 转换为摘要
func (p *Property) ToSummary() PropertySummary {
	s := PropertySummary{
		ID:        p.ID,
		Title:     p.Title,
		Bedrooms:  p.Bedrooms,
		Bathrooms: p.Bathrooms,
		Status:    p.Status,
		Features:  make([]string, 0, len(p.Features)),
	}
	if p.Pricing != nil {
		s.RentPrice = p.Pricing.RentPrice
	}
	if p.Location != nil {
		s.CityID = p.Location.CityID
	}
	for _, f := range p.Features {
		s.Features = append(s.Features, f.Name)
	}
	return s
}
