package recommender

// numericColumns 数值特征: 卧室, 卫生间, 租金, 占地面积, 建筑面积
const numericColumns = 5

// FeatureMatrix 候选房源的组合特征矩阵。
// Rows[i] 对应 candidates[i]，列依次为 TF-IDF 文本、标准化数值、设施独热编码。
type FeatureMatrix struct {
	Rows       [][]float64
	Index      map[uint]int
	Vocabulary []string
	TextDim    int
	NumericDim int
	FeatureDim int
}

// Dim 返回总列数
func (fm *FeatureMatrix) Dim() int {
	return fm.TextDim + fm.NumericDim + fm.FeatureDim
}

// BuildFeatures 为候选房源构建组合特征矩阵。
// features 是全局设施词表，决定独热编码的维度。
func BuildFeatures(candidates []Property, features []Feature, eps float64) *FeatureMatrix {
	descriptions := make([]string, len(candidates))
	for i, p := range candidates {
		descriptions[i] = p.Description
	}
	vocabulary, text := TFIDF(descriptions)

	numeric := make([][]float64, len(candidates))
	for i, p := range candidates {
		numeric[i] = []float64{
			float64(p.Bedrooms),
			float64(p.Bathrooms),
			p.RentPrice(),
			p.LandArea,
			p.FloorArea,
		}
	}
	standardizeColumns(numeric, eps)

	featureColumn := make(map[uint]int, len(features))
	for _, f := range features {
		if _, ok := featureColumn[f.ID]; !ok {
			featureColumn[f.ID] = len(featureColumn)
		}
	}

	fm := &FeatureMatrix{
		Rows:       make([][]float64, len(candidates)),
		Index:      make(map[uint]int, len(candidates)),
		Vocabulary: vocabulary,
		TextDim:    len(vocabulary),
		NumericDim: numericColumns,
		FeatureDim: len(featureColumn),
	}

	for i, p := range candidates {
		row := make([]float64, 0, fm.Dim())
		row = append(row, text[i]...)
		row = append(row, numeric[i]...)

		oneHot := make([]float64, fm.FeatureDim)
		for _, fid := range p.FeatureIDs {
			if col, ok := featureColumn[fid]; ok {
				oneHot[col] = 1
			}
		}
		row = append(row, oneHot...)

		fm.Rows[i] = row
		fm.Index[p.ID] = i
	}
	return fm
}
