package models

import (
	"time"

	"gorm.io/gorm"
)

// 评价审核状态
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// 看房预约状态
type ViewingRequestStatus string

const (
	ViewingPending  ViewingRequestStatus = "pending"
	ViewingAccepted ViewingRequestStatus = "accepted"
	ViewingDenied   ViewingRequestStatus = "denied"
)

// WishList 收藏，用户和房源组成联合主键
type WishList struct {
	UserID     uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	PropertyID uint      `gorm:"primaryKey;autoIncrement:false;index" json:"propertyId"`
	AddedAt    time.Time `json:"addedAt"`
}

// PropertyView 浏览记录
type PropertyView struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	PropertyID uint      `gorm:"not null;index" json:"propertyId"`
	ViewedAt   time.Time `json:"viewedAt"`
}

// Review 评价，评分范围1-5
type Review struct {
	gorm.Model
	UserID     uint         `gorm:"not null;index" json:"userId"`
	PropertyID uint         `gorm:"not null;index" json:"propertyId"`
	Rating     int          `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string       `gorm:"type:text" json:"comment"`
	Status     ReviewStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
}

// ViewingRequest 看房预约
type ViewingRequest struct {
	gorm.Model
	UserID        uint                 `gorm:"not null;index" json:"userId"`
	PropertyID    uint                 `gorm:"not null;index" json:"propertyId"`
	RequestedTime time.Time            `gorm:"not null" json:"requestedTime"`
	Status        ViewingRequestStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	Message       string               `gorm:"type:text" json:"message"`
}
