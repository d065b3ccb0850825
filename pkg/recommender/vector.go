package recommender

import "math"

// cosineSimilarity 计算余弦相似度
func cosineSimilarity(v1, v2 []float64) float64 {
	dotProduct := 0.0
	norm1 := 0.0
	norm2 := 0.0

	for i := range v1 {
		dotProduct += v1[i] * v2[i]
		norm1 += v1[i] * v1[i]
		norm2 += v2[i] * v2[i]
	}

	// 避免除零错误
	if norm1 == 0 || norm2 == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(norm1) * math.Sqrt(norm2))
}

// normalizeL2 原地做L2归一化，零向量保持不变
func normalizeL2(v []float64) {
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] /= norm
	}
}

// minMaxNormalize 缩放到 [0, 1]，所有值相等时全部为0
func minMaxNormalize(scores []float64) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 0 {
		return out
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}

	span := hi - lo
	if span <= 0 {
		return out
	}
	for i, s := range scores {
		out[i] = (s - lo) / span
	}
	return out
}

// standardizeColumns 按列标准化为零均值、单位方差（总体标准差），eps防止除零
func standardizeColumns(m [][]float64, eps float64) {
	if len(m) == 0 {
		return
	}
	n := float64(len(m))
	for j := range m[0] {
		mean := 0.0
		for i := range m {
			mean += m[i][j]
		}
		mean /= n

		variance := 0.0
		for i := range m {
			d := m[i][j] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / n)

		for i := range m {
			m[i][j] = (m[i][j] - mean) / (std + eps)
		}
	}
}

// weightedAverage 计算若干行的加权平均
func weightedAverage(rows [][]float64, weights []float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	avg := make([]float64, len(rows[0]))
	total := 0.0
	for k, row := range rows {
		w := weights[k]
		total += w
		for j, x := range row {
			avg[j] += w * x
		}
	}
	if total == 0 {
		return avg
	}
	for j := range avg {
		avg[j] /= total
	}
	return avg
}
