package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentalhub/rental-recommender/models"
	"github.com/rentalhub/rental-recommender/pkg/recommender"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// SnapshotRepository 为推荐引擎读取只读数据快照
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建快照仓库
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// FindUser 按ID查找用户，不存在时返回 ErrUserNotFound
func (r *SnapshotRepository) FindUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	return &user, nil
}

// Load 在一个事务中读取推荐所需的全部实体，房源按ID排序
func (r *SnapshotRepository) Load(ctx context.Context) (*recommender.Snapshot, error) {
	var (
		properties []models.Property
		features   []models.Feature
		wishLists  []models.WishList
		views      []models.PropertyView
		reviews    []models.Review
		requests   []models.ViewingRequest
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Pricing").Preload("Location").Preload("Features").
			Order("id").Find(&properties).Error; err != nil {
			return fmt.Errorf("load properties: %w", err)
		}
		if err := tx.Order("id").Find(&features).Error; err != nil {
			return fmt.Errorf("load features: %w", err)
		}
		if err := tx.Order("user_id, property_id").Find(&wishLists).Error; err != nil {
			return fmt.Errorf("load wishlists: %w", err)
		}
		if err := tx.Order("id").Find(&views).Error; err != nil {
			return fmt.Errorf("load property views: %w", err)
		}
		if err := tx.Order("id").Find(&reviews).Error; err != nil {
			return fmt.Errorf("load reviews: %w", err)
		}
		if err := tx.Order("id").Find(&requests).Error; err != nil {
			return fmt.Errorf("load viewing requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snap := &recommender.Snapshot{
		Properties:      make([]recommender.Property, 0, len(properties)),
		Features:        make([]recommender.Feature, 0, len(features)),
		WishLists:       make([]recommender.WishList, 0, len(wishLists)),
		Views:           make([]recommender.PropertyView, 0, len(views)),
		Reviews:         make([]recommender.Review, 0, len(reviews)),
		ViewingRequests: make([]recommender.ViewingRequest, 0, len(requests)),
	}
	for i := range properties {
		snap.Properties = append(snap.Properties, toSnapshotProperty(&properties[i]))
	}
	for _, f := range features {
		snap.Features = append(snap.Features, recommender.Feature{ID: f.ID, Name: f.Name})
	}
	for _, w := range wishLists {
		snap.WishLists = append(snap.WishLists, recommender.WishList{UserID: w.UserID, PropertyID: w.PropertyID})
	}
	for _, v := range views {
		snap.Views = append(snap.Views, recommender.PropertyView{UserID: v.UserID, PropertyID: v.PropertyID})
	}
	for _, rv := range reviews {
		snap.Reviews = append(snap.Reviews, recommender.Review{
			UserID:     rv.UserID,
			PropertyID: rv.PropertyID,
			Rating:     rv.Rating,
			Status:     recommender.ReviewStatus(rv.Status),
		})
	}
	for _, vr := range requests {
		snap.ViewingRequests = append(snap.ViewingRequests, recommender.ViewingRequest{UserID: vr.UserID, PropertyID: vr.PropertyID})
	}
	return snap, nil
}

// PropertiesByIDs 按给定ID顺序返回房源，不存在的ID被忽略
func (r *SnapshotRepository) PropertiesByIDs(ctx context.Context, ids []uint) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}

	var properties []models.Property
	if err := r.db.WithContext(ctx).Preload("Pricing").Preload("Location").Preload("Features").
		Where("id IN ?", ids).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("load properties by ids: %w", err)
	}

	byID := make(map[uint]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	ordered := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// Ping 检查数据库连接
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func toSnapshotProperty(p *models.Property) recommender.Property {
	sp := recommender.Property{
		ID:          p.ID,
		Description: p.Description,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		LandArea:    p.LandArea,
		FloorArea:   p.FloorArea,
		Status:      recommender.PropertyStatus(p.Status),
		FeatureIDs:  make([]uint, 0, len(p.Features)),
	}
	if p.Pricing != nil {
		sp.Pricing = &recommender.PropertyPricing{PropertyID: p.ID, RentPrice: p.Pricing.RentPrice}
	}
	if p.Location != nil {
		sp.Location = &recommender.PropertyLocation{
			PropertyID: p.ID,
			CityID:     p.Location.CityID,
			Latitude:   p.Location.Latitude,
			Longitude:  p.Location.Longitude,
		}
	}
	for _, f := range p.Features {
		sp.FeatureIDs = append(sp.FeatureIDs, f.ID)
	}
	return sp
}
