package models

// RecommendationQuery 推荐查询参数
type RecommendationQuery struct {
	TopN          int      `form:"top_n" binding:"omitempty,min=1,max=100"`
	ContentWeight *float64 `form:"content_weight" binding:"omitempty,min=0,max=1"`
	Include       string   `form:"include" binding:"omitempty,oneof=properties"`
}

// RecommendationResponse 推荐响应
type RecommendationResponse struct {
	PropertyIDs []uint            `json:"property_ids"`
	Strategy    string            `json:"strategy,omitempty"`
	Properties  []PropertySummary `json:"properties,omitempty"`
}
