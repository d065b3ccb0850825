package database

import (
	"fmt"
	"time"

	"github.com/rentalhub/rental-recommender/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 演示账号的默认密码
const demoPassword = "password123"

type seedProperty struct {
	title       string
	description string
	city        int
	bedrooms    int
	bathrooms   int
	land, floor float64
	rent        float64
	status      models.PropertyStatus
	features    []int
}

var (
	seedCities   = []string{"Phnom Penh", "Siem Reap", "Battambang"}
	seedFeatures = []string{"Air conditioning", "Parking", "Swimming pool", "Garden", "Balcony", "Gym", "Security"}
	seedUsers    = []struct {
		name  string
		email string
		role  models.UserRole
	}{
		{"Demo Owner", "owner@example.com", models.RolePropertyOwner},
		{"Alice", "alice@example.com", models.RoleCustomer},
		{"Bob", "bob@example.com", models.RoleCustomer},
		{"Chanthy", "chanthy@example.com", models.RoleCustomer},
		{"Dara", "dara@example.com", models.RoleCustomer},
	}
	seedProperties = []seedProperty{
		{"Riverside studio", "Bright studio apartment near the riverside with balcony and river views", 0, 1, 1, 40, 35, 350, models.PropertyAvailable, []int{0, 4}},
		{"Family villa", "Spacious family villa with private garden, swimming pool and parking", 0, 4, 3, 400, 280, 1800, models.PropertyAvailable, []int{0, 1, 2, 3, 6}},
		{"Downtown condo", "Modern condo in downtown with gym, pool and 24h security", 0, 2, 2, 90, 85, 900, models.PropertyAvailable, []int{0, 2, 5, 6}},
		{"Temple view house", "Quiet wooden house close to the temples with a large garden", 1, 3, 2, 300, 150, 600, models.PropertyAvailable, []int{1, 3}},
		{"Old market flat", "Affordable flat above the old market, walking distance to restaurants", 1, 1, 1, 50, 45, 250, models.PropertyAvailable, []int{0}},
		{"Boutique townhouse", "Renovated townhouse with rooftop balcony and air conditioning", 1, 3, 3, 120, 160, 850, models.PropertyAvailable, []int{0, 4}},
		{"Countryside home", "Countryside home with rice field views, garden and parking", 2, 3, 2, 600, 140, 400, models.PropertyAvailable, []int{1, 3}},
		{"City shophouse", "Shophouse in the city centre, suitable for family and small business", 2, 4, 2, 100, 200, 700, models.PropertyAvailable, []int{1, 6}},
		{"Lakeside apartment", "Two bedroom apartment by the lake with balcony and gym access", 0, 2, 1, 80, 75, 650, models.PropertyRented, []int{0, 4, 5}},
	}
)

// Seed 写入演示数据，已有用户时跳过
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		cities := make([]models.City, len(seedCities))
		for i, name := range seedCities {
			cities[i] = models.City{Name: name}
		}
		if err := tx.Create(&cities).Error; err != nil {
			return fmt.Errorf("seed cities: %w", err)
		}

		features := make([]models.Feature, len(seedFeatures))
		for i, name := range seedFeatures {
			features[i] = models.Feature{Name: name}
		}
		if err := tx.Create(&features).Error; err != nil {
			return fmt.Errorf("seed features: %w", err)
		}

		users := make([]models.User, len(seedUsers))
		for i, u := range seedUsers {
			users[i] = models.User{
				Name:            u.name,
				Email:           u.email,
				Password:        string(hashed),
				Role:            u.role,
				IsEmailVerified: true,
				IsActive:        true,
			}
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		owner := users[0]

		now := time.Now()
		properties := make([]models.Property, len(seedProperties))
		for i, sp := range seedProperties {
			p := models.Property{
				OwnerID:     owner.ID,
				Title:       sp.title,
				Description: sp.description,
				Bedrooms:    sp.bedrooms,
				Bathrooms:   sp.bathrooms,
				LandArea:    sp.land,
				FloorArea:   sp.floor,
				Status:      sp.status,
				ListedAt:    now,
				Pricing:     &models.PropertyPricing{RentPrice: sp.rent},
				Location:    &models.PropertyLocation{CityID: cities[sp.city].ID},
			}
			for _, fi := range sp.features {
				p.Features = append(p.Features, features[fi])
			}
			properties[i] = p
		}
		if err := tx.Create(&properties).Error; err != nil {
			return fmt.Errorf("seed properties: %w", err)
		}

		alice, bob, chanthy, dara := users[1], users[2], users[3], users[4]
		pid := func(i int) uint { return properties[i].ID }

		wishLists := []models.WishList{
			{UserID: alice.ID, PropertyID: pid(0), AddedAt: now},
			{UserID: alice.ID, PropertyID: pid(2), AddedAt: now},
			{UserID: bob.ID, PropertyID: pid(1), AddedAt: now},
			{UserID: chanthy.ID, PropertyID: pid(3), AddedAt: now},
		}
		views := []models.PropertyView{
			{UserID: alice.ID, PropertyID: pid(8), ViewedAt: now},
			{UserID: bob.ID, PropertyID: pid(6), ViewedAt: now},
			{UserID: bob.ID, PropertyID: pid(2), ViewedAt: now},
			{UserID: chanthy.ID, PropertyID: pid(5), ViewedAt: now},
			{UserID: chanthy.ID, PropertyID: pid(2), ViewedAt: now},
			{UserID: dara.ID, PropertyID: pid(2), ViewedAt: now},
		}
		reviews := []models.Review{
			{UserID: bob.ID, PropertyID: pid(1), Rating: 5, Comment: "Great place for kids", Status: models.ReviewApproved},
			{UserID: chanthy.ID, PropertyID: pid(4), Rating: 3, Comment: "Noisy at night", Status: models.ReviewApproved},
			{UserID: alice.ID, PropertyID: pid(5), Rating: 4, Status: models.ReviewPending},
		}
		requests := []models.ViewingRequest{
			{UserID: alice.ID, PropertyID: pid(3), RequestedTime: now.Add(48 * time.Hour), Status: models.ViewingPending},
			{UserID: bob.ID, PropertyID: pid(7), RequestedTime: now.Add(72 * time.Hour), Status: models.ViewingAccepted},
		}

		if err := tx.Create(&wishLists).Error; err != nil {
			return fmt.Errorf("seed wishlists: %w", err)
		}
		if err := tx.Create(&views).Error; err != nil {
			return fmt.Errorf("seed property views: %w", err)
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}
		if err := tx.Create(&requests).Error; err != nil {
			return fmt.Errorf("seed viewing requests: %w", err)
		}
		return nil
	})
}
