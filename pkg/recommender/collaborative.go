package recommender

import (
	"context"
	"fmt"
	"math/rand"
)

// ScoreCollaborative 计算协同过滤分数，结果与 candidates 一一对应并归一化到 [0, 1]。
// 全局没有任何评分时全部为0；没有被任何人交互过的房源使用平均合成评分。
func ScoreCollaborative(ctx context.Context, ratings []Rating, candidates []Property, userID uint, cfg Config) ([]float64, error) {
	scores := make([]float64, len(candidates))
	if len(ratings) == 0 {
		return scores, nil
	}

	seen := make(map[uint]struct{})
	for _, r := range ratings {
		seen[r.PropertyID] = struct{}{}
	}
	mean := meanRating(ratings, cfg.Ratings.Neutral)

	rng := rand.New(rand.NewSource(cfg.Factorization.Seed))
	train, _ := SplitRatings(ratings, cfg.Factorization.TestSize, rng)

	model, err := FitFactorModel(ctx, train, cfg.Factorization, rng)
	if err != nil {
		return nil, fmt.Errorf("fit factor model: %w", err)
	}

	for i, p := range candidates {
		if _, ok := seen[p.ID]; ok {
			scores[i] = model.Predict(userID, p.ID)
		} else {
			scores[i] = mean
		}
	}
	return minMaxNormalize(scores), nil
}

// meanRating 所有合成评分的平均值，没有评分时返回 neutral
func meanRating(ratings []Rating, neutral float64) float64 {
	if len(ratings) == 0 {
		return neutral
	}
	sum := 0.0
	for _, r := range ratings {
		sum += r.Value
	}
	return sum / float64(len(ratings))
}
