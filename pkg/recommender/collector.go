package recommender

// UserInteractions 某个用户的四类交互记录
type UserInteractions struct {
	WishLists       []WishList
	Views           []PropertyView
	Reviews         []Review
	ViewingRequests []ViewingRequest
}

// Rating 协同过滤训练用的 (用户, 房源, 评分) 三元组
type Rating struct {
	UserID     uint
	PropertyID uint
	Value      float64
}

// CollectUserInteractions 收集指定用户的交互记录。
// 调用方负责先确认用户存在。
func CollectUserInteractions(snap *Snapshot, userID uint) UserInteractions {
	var ui UserInteractions
	for _, w := range snap.WishLists {
		if w.UserID == userID {
			ui.WishLists = append(ui.WishLists, w)
		}
	}
	for _, v := range snap.Views {
		if v.UserID == userID {
			ui.Views = append(ui.Views, v)
		}
	}
	for _, r := range snap.Reviews {
		if r.UserID == userID {
			ui.Reviews = append(ui.Reviews, r)
		}
	}
	for _, vr := range snap.ViewingRequests {
		if vr.UserID == userID {
			ui.ViewingRequests = append(ui.ViewingRequests, vr)
		}
	}
	return ui
}

// Empty 用户是否没有任何交互
func (ui UserInteractions) Empty() bool {
	return len(ui.WishLists) == 0 && len(ui.Views) == 0 &&
		len(ui.Reviews) == 0 && len(ui.ViewingRequests) == 0
}

// PropertyIDs 返回四类交互涉及的房源ID并集
func (ui UserInteractions) PropertyIDs() map[uint]struct{} {
	ids := make(map[uint]struct{})
	for _, w := range ui.WishLists {
		ids[w.PropertyID] = struct{}{}
	}
	for _, v := range ui.Views {
		ids[v.PropertyID] = struct{}{}
	}
	for _, r := range ui.Reviews {
		ids[r.PropertyID] = struct{}{}
	}
	for _, vr := range ui.ViewingRequests {
		ids[vr.PropertyID] = struct{}{}
	}
	return ids
}

// ProfileWeight 返回房源在用户画像中的权重，多类交互取最大值
func (ui UserInteractions) ProfileWeight(propertyID uint, w ProfileWeights) float64 {
	weight := w.Default
	for _, r := range ui.Reviews {
		if r.PropertyID == propertyID && w.Review > weight {
			weight = w.Review
		}
	}
	for _, item := range ui.WishLists {
		if item.PropertyID == propertyID && w.Wishlist > weight {
			weight = w.Wishlist
		}
	}
	return weight
}

// CollectGlobalRatings 把所有用户的交互转换成合成评分。
// 只有审核通过的评价参与训练。
func CollectGlobalRatings(snap *Snapshot, r SyntheticRatings) []Rating {
	ratings := make([]Rating, 0,
		len(snap.Reviews)+len(snap.WishLists)+len(snap.Views)+len(snap.ViewingRequests))

	for _, rv := range snap.Reviews {
		if rv.Status != ReviewApproved {
			continue
		}
		ratings = append(ratings, Rating{UserID: rv.UserID, PropertyID: rv.PropertyID, Value: float64(rv.Rating)})
	}
	for _, w := range snap.WishLists {
		ratings = append(ratings, Rating{UserID: w.UserID, PropertyID: w.PropertyID, Value: r.Wishlist})
	}
	for _, v := range snap.Views {
		ratings = append(ratings, Rating{UserID: v.UserID, PropertyID: v.PropertyID, Value: r.View})
	}
	for _, vr := range snap.ViewingRequests {
		ratings = append(ratings, Rating{UserID: vr.UserID, PropertyID: vr.PropertyID, Value: r.ViewingRequest})
	}
	return ratings
}

// viewCounts 统计每个房源的总浏览次数
func viewCounts(snap *Snapshot) map[uint]int {
	counts := make(map[uint]int)
	for _, v := range snap.Views {
		counts[v.PropertyID]++
	}
	return counts
}
