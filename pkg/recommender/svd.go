package recommender

import (
	"context"
	"math"
	"math/rand"
)

// FactorModel 带偏置的隐因子模型: r̂ = μ + b_u + b_i + q_i·p_u
type FactorModel struct {
	cfg        FactorizationConfig
	globalMean float64
	userIndex  map[uint]int
	itemIndex  map[uint]int
	userBias   []float64
	itemBias   []float64
	userFactor [][]float64
	itemFactor [][]float64
}

// SplitRatings 按种子打乱后切分训练集和验证集。
// 验证集大小为 ceil(testSize*n)，训练集至少保留一条。
func SplitRatings(ratings []Rating, testSize float64, rng *rand.Rand) (train, test []Rating) {
	n := len(ratings)
	perm := rng.Perm(n)

	testN := int(math.Ceil(testSize * float64(n)))
	if testN >= n {
		testN = n - 1
	}
	if testN < 0 {
		testN = 0
	}

	test = make([]Rating, 0, testN)
	train = make([]Rating, 0, n-testN)
	for k, idx := range perm {
		if k < testN {
			test = append(test, ratings[idx])
		} else {
			train = append(train, ratings[idx])
		}
	}
	return train, test
}

// FitFactorModel 用随机梯度下降训练模型，每轮开始前检查 ctx
func FitFactorModel(ctx context.Context, train []Rating, cfg FactorizationConfig, rng *rand.Rand) (*FactorModel, error) {
	m := &FactorModel{
		cfg:       cfg,
		userIndex: make(map[uint]int),
		itemIndex: make(map[uint]int),
	}

	sum := 0.0
	for _, r := range train {
		sum += r.Value
		if _, ok := m.userIndex[r.UserID]; !ok {
			m.userIndex[r.UserID] = len(m.userIndex)
		}
		if _, ok := m.itemIndex[r.PropertyID]; !ok {
			m.itemIndex[r.PropertyID] = len(m.itemIndex)
		}
	}
	if len(train) > 0 {
		m.globalMean = sum / float64(len(train))
	}

	m.userBias = make([]float64, len(m.userIndex))
	m.itemBias = make([]float64, len(m.itemIndex))
	m.userFactor = randomFactors(len(m.userIndex), cfg, rng)
	m.itemFactor = randomFactors(len(m.itemIndex), cfg, rng)

	lr, reg := cfg.LearningRate, cfg.Regularization
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, r := range train {
			u := m.userIndex[r.UserID]
			i := m.itemIndex[r.PropertyID]
			pu, qi := m.userFactor[u], m.itemFactor[i]

			dot := 0.0
			for f := range pu {
				dot += qi[f] * pu[f]
			}
			err := r.Value - (m.globalMean + m.userBias[u] + m.itemBias[i] + dot)

			m.userBias[u] += lr * (err - reg*m.userBias[u])
			m.itemBias[i] += lr * (err - reg*m.itemBias[i])

			for f := range pu {
				puf, qif := pu[f], qi[f]
				pu[f] += lr * (err*qif - reg*puf)
				qi[f] += lr * (err*puf - reg*qif)
			}
		}
	}
	return m, nil
}

func randomFactors(n int, cfg FactorizationConfig, rng *rand.Rand) [][]float64 {
	out := make([][]float64, n)
	for k := range out {
		row := make([]float64, cfg.Factors)
		for f := range row {
			row[f] = cfg.InitMean + rng.NormFloat64()*cfg.InitStdDev
		}
		out[k] = row
	}
	return out
}

// Predict 预测用户对房源的评分并裁剪到评分区间。
// 未见过的用户或房源只使用已知的偏置项。
func (m *FactorModel) Predict(userID, propertyID uint) float64 {
	est := m.globalMean

	u, knownUser := m.userIndex[userID]
	i, knownItem := m.itemIndex[propertyID]
	if knownUser {
		est += m.userBias[u]
	}
	if knownItem {
		est += m.itemBias[i]
	}
	if knownUser && knownItem {
		pu, qi := m.userFactor[u], m.itemFactor[i]
		for f := range pu {
			est += qi[f] * pu[f]
		}
	}

	return math.Max(m.cfg.RatingMin, math.Min(m.cfg.RatingMax, est))
}
