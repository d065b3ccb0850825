package recommender

import (
	"context"
	"fmt"
	"sort"
)

// Strategy 本次推荐走的路径
type Strategy string

const (
	StrategyHybrid  Strategy = "hybrid"
	StrategyPopular Strategy = "popular"
	StrategyEmpty   Strategy = "empty"
)

// Recommendation 推荐结果
type Recommendation struct {
	PropertyIDs []uint
	Strategy    Strategy
}

// Recommender 混合推荐器。
// 只持有不可变配置，每次调用都从快照重新计算，可以被多个请求并发使用。
type Recommender struct {
	cfg Config
}

// NewRecommender 创建推荐器
func NewRecommender(cfg Config) (*Recommender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommender config: %w", err)
	}
	return &Recommender{cfg: cfg}, nil
}

// Config 返回推荐器配置
func (r *Recommender) Config() Config {
	return r.cfg
}

// Recommend 为用户生成按分数降序排列的房源ID列表
func (r *Recommender) Recommend(ctx context.Context, snap *Snapshot, userID uint, opts Options) ([]uint, error) {
	rec, err := r.RecommendDetailed(ctx, snap, userID, opts)
	if err != nil {
		return nil, err
	}
	return rec.PropertyIDs, nil
}

// RecommendDetailed 与 Recommend 相同，同时返回所用的推荐路径
func (r *Recommender) RecommendDetailed(ctx context.Context, snap *Snapshot, userID uint, opts Options) (Recommendation, error) {
	topN, contentWeight, err := r.cfg.resolve(opts)
	if err != nil {
		return Recommendation{}, err
	}

	candidates := snap.Candidates()
	if len(candidates) == 0 {
		return Recommendation{PropertyIDs: []uint{}, Strategy: StrategyEmpty}, nil
	}

	ui := CollectUserInteractions(snap, userID)
	if ui.Empty() {
		return Recommendation{PropertyIDs: popular(snap, candidates, topN), Strategy: StrategyPopular}, nil
	}

	fm := BuildFeatures(candidates, snap.Features, r.cfg.Epsilon)

	contentScores, ok := ScoreContent(fm, candidates, ui, r.cfg)
	if !ok {
		// 交互过的房源都已下架，退回热度推荐
		return Recommendation{PropertyIDs: popular(snap, candidates, topN), Strategy: StrategyPopular}, nil
	}

	ratings := CollectGlobalRatings(snap, r.cfg.Ratings)
	collabScores, err := ScoreCollaborative(ctx, ratings, candidates, userID, r.cfg)
	if err != nil {
		return Recommendation{}, fmt.Errorf("collaborative scoring: %w", err)
	}

	hybrid := make([]float64, len(candidates))
	for i := range candidates {
		hybrid[i] = contentWeight*contentScores[i] + (1-contentWeight)*collabScores[i]
	}

	return Recommendation{
		PropertyIDs: rank(candidates, hybrid, ui.PropertyIDs(), topN),
		Strategy:    StrategyHybrid,
	}, nil
}

type scoredProperty struct {
	id    uint
	score float64
}

// rank 排除已交互的房源后按分数稳定降序取前 topN 个
func rank(candidates []Property, scores []float64, exclude map[uint]struct{}, topN int) []uint {
	scored := make([]scoredProperty, 0, len(candidates))
	for i, p := range candidates {
		if _, skip := exclude[p.ID]; skip {
			continue
		}
		scored = append(scored, scoredProperty{id: p.ID, score: scores[i]})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return topIDs(scored, topN)
}

// popular 按总浏览量降序推荐，浏览量相同保持快照顺序
func popular(snap *Snapshot, candidates []Property, topN int) []uint {
	counts := viewCounts(snap)

	scored := make([]scoredProperty, len(candidates))
	for i, p := range candidates {
		scored[i] = scoredProperty{id: p.ID, score: float64(counts[p.ID])}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return topIDs(scored, topN)
}

func topIDs(scored []scoredProperty, topN int) []uint {
	if len(scored) > topN {
		scored = scored[:topN]
	}
	ids := make([]uint, len(scored))
	for i, s := range scored {
		ids[i] = s.id
	}
	return ids
}
