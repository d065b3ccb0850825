package recommender

// PropertyStatus 房源状态
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusRented    PropertyStatus = "rented"
)

// ReviewStatus 评价审核状态
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// PropertyPricing 房源价格
type PropertyPricing struct {
	PropertyID uint
	RentPrice  float64
}

// PropertyLocation 房源位置，推荐只使用城市
type PropertyLocation struct {
	PropertyID uint
	CityID     uint
	Latitude   *float64
	Longitude  *float64
}

// Property 推荐引擎看到的房源快照
type Property struct {
	ID          uint
	Description string
	Bedrooms    int
	Bathrooms   int
	LandArea    float64
	FloorArea   float64
	Status      PropertyStatus
	Pricing     *PropertyPricing
	Location    *PropertyLocation
	FeatureIDs  []uint
}

// RentPrice 返回租金，没有价格记录时为0
func (p *Property) RentPrice() float64 {
	if p.Pricing == nil {
		return 0
	}
	return p.Pricing.RentPrice
}

// CityID 返回城市ID，没有位置记录时ok为false
func (p *Property) CityID() (uint, bool) {
	if p.Location == nil {
		return 0, false
	}
	return p.Location.CityID, true
}

// Feature 设施标签
type Feature struct {
	ID   uint
	Name string
}

// WishList 收藏记录
type WishList struct {
	UserID     uint
	PropertyID uint
}

// PropertyView 浏览记录
type PropertyView struct {
	UserID     uint
	PropertyID uint
}

// Review 评价记录
type Review struct {
	UserID     uint
	PropertyID uint
	Rating     int
	Status     ReviewStatus
}

// ViewingRequest 看房预约记录
type ViewingRequest struct {
	UserID     uint
	PropertyID uint
}

// Snapshot 一次推荐调用读取的只读数据快照。
// Properties 的顺序就是候选集的基础顺序，所有并列排序都以它为准。
type Snapshot struct {
	Properties      []Property
	Features        []Feature
	WishLists       []WishList
	Views           []PropertyView
	Reviews         []Review
	ViewingRequests []ViewingRequest
}

// Candidates 返回所有可出租房源，保持快照顺序
func (s *Snapshot) Candidates() []Property {
	out := make([]Property, 0, len(s.Properties))
	for _, p := range s.Properties {
		if p.Status == StatusAvailable {
			out = append(out, p)
		}
	}
	return out
}
