package recommender

// ScoreContent 计算基于内容的分数，结果与 candidates 一一对应并归一化到 [0, 1]。
// 用户在当前候选集中没有交互过的房源时 ok 为 false，调用方应改用热度推荐。
func ScoreContent(fm *FeatureMatrix, candidates []Property, ui UserInteractions, cfg Config) (scores []float64, ok bool) {
	interacted := ui.PropertyIDs()

	var (
		rows       [][]float64
		weights    []float64
		userCities = make(map[uint]struct{})
	)
	// 按候选顺序遍历，保证画像计算与快照顺序一致
	for i, p := range candidates {
		if _, hit := interacted[p.ID]; !hit {
			continue
		}
		rows = append(rows, fm.Rows[i])
		weights = append(weights, ui.ProfileWeight(p.ID, cfg.Profile))
		if city, has := p.CityID(); has {
			userCities[city] = struct{}{}
		}
	}
	if len(rows) == 0 {
		return nil, false
	}

	profile := weightedAverage(rows, weights)

	blended := make([]float64, len(candidates))
	for i, p := range candidates {
		raw := cosineSimilarity(profile, fm.Rows[i])
		blended[i] = cfg.SimilarityWeight*raw + cfg.LocationWeight*locationAffinity(p, userCities, cfg)
	}
	return minMaxNormalize(blended), true
}

// locationAffinity 候选房源所在城市是否是用户交互过的城市
func locationAffinity(p Property, userCities map[uint]struct{}, cfg Config) float64 {
	if city, ok := p.CityID(); ok {
		if _, hit := userCities[city]; hit {
			return cfg.LocationMatch
		}
	}
	return cfg.LocationMiss
}
