package recommender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecommender(t *testing.T) *Recommender {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Factorization.Factors = 8
	r, err := NewRecommender(cfg)
	require.NoError(t, err)
	return r
}

func property(id uint, city uint, bedrooms int, rent float64, features ...uint) Property {
	return Property{
		ID:          id,
		Description: "",
		Bedrooms:    bedrooms,
		Bathrooms:   1,
		LandArea:    100,
		FloorArea:   80,
		Status:      StatusAvailable,
		Pricing:     &PropertyPricing{PropertyID: id, RentPrice: rent},
		Location:    &PropertyLocation{PropertyID: id, CityID: city},
		FeatureIDs:  features,
	}
}

// 用户1收藏A、浏览B，C未交互
func scenarioSnapshot() *Snapshot {
	return &Snapshot{
		Properties: []Property{
			property(1, 1, 2, 500),  // A
			property(2, 2, 4, 1500), // B
			property(3, 1, 3, 800),  // C
		},
		WishLists: []WishList{{UserID: 1, PropertyID: 1}},
		Views:     []PropertyView{{UserID: 1, PropertyID: 2}},
	}
}

// 多用户、多房源的快照
func marketSnapshot() *Snapshot {
	snap := &Snapshot{
		Features: []Feature{{ID: 1, Name: "pool"}, {ID: 2, Name: "parking"}, {ID: 3, Name: "garden"}},
	}
	descriptions := []string{
		"Spacious family house with a large garden and quiet street",
		"Modern studio apartment close to downtown with parking",
		"Cozy apartment near the river, balcony and parking",
		"Luxury villa with private pool and garden",
		"Small studio for students near the university",
		"Family house with garden, garage and parking space",
		"Penthouse apartment with pool and city views",
		"",
	}
	for i, d := range descriptions {
		id := uint(i + 1)
		p := property(id, uint(i%3)+1, 1+i%4, float64(400+150*i), uint(i%3)+1)
		p.Description = d
		p.FloorArea = float64(40 + 15*i)
		snap.Properties = append(snap.Properties, p)
	}
	snap.Properties[7].Status = StatusRented
	snap.Properties[6].Pricing = nil

	snap.WishLists = []WishList{
		{UserID: 1, PropertyID: 1}, {UserID: 2, PropertyID: 2}, {UserID: 2, PropertyID: 3},
		{UserID: 3, PropertyID: 4}, {UserID: 4, PropertyID: 6},
	}
	snap.Views = []PropertyView{
		{UserID: 1, PropertyID: 6}, {UserID: 1, PropertyID: 8}, {UserID: 2, PropertyID: 5},
		{UserID: 3, PropertyID: 7}, {UserID: 3, PropertyID: 1}, {UserID: 4, PropertyID: 1},
		{UserID: 5, PropertyID: 2},
	}
	snap.Reviews = []Review{
		{UserID: 1, PropertyID: 6, Rating: 4, Status: ReviewApproved},
		{UserID: 2, PropertyID: 3, Rating: 2, Status: ReviewApproved},
		{UserID: 3, PropertyID: 4, Rating: 5, Status: ReviewPending},
	}
	snap.ViewingRequests = []ViewingRequest{
		{UserID: 4, PropertyID: 5}, {UserID: 2, PropertyID: 7},
	}
	return snap
}

func TestRecommend_Scenario(t *testing.T) {
	r := newTestRecommender(t)
	snap := scenarioSnapshot()

	ids, err := r.Recommend(context.Background(), snap, 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, ids)

	// C 的内容分必须大于0
	candidates := snap.Candidates()
	fm := BuildFeatures(candidates, snap.Features, r.cfg.Epsilon)
	scores, ok := ScoreContent(fm, candidates, CollectUserInteractions(snap, 1), r.cfg)
	require.True(t, ok)
	assert.Greater(t, scores[2], 0.0)
}

func TestRecommend_Idempotent(t *testing.T) {
	r := newTestRecommender(t)
	snap := marketSnapshot()

	for _, userID := range []uint{1, 2, 3, 4} {
		first, err := r.Recommend(context.Background(), snap, userID, Options{})
		require.NoError(t, err)
		second, err := r.Recommend(context.Background(), snap, userID, Options{})
		require.NoError(t, err)
		assert.Equal(t, first, second, "user %d", userID)
	}
}

func TestRecommend_ExcludesInteracted(t *testing.T) {
	r := newTestRecommender(t)
	snap := marketSnapshot()

	for _, userID := range []uint{1, 2, 3, 4, 5} {
		rec, err := r.RecommendDetailed(context.Background(), snap, userID, Options{TopN: 3})
		require.NoError(t, err)
		require.Equal(t, StrategyHybrid, rec.Strategy)
		assert.LessOrEqual(t, len(rec.PropertyIDs), 3)

		interacted := CollectUserInteractions(snap, userID).PropertyIDs()
		seen := make(map[uint]bool)
		for _, id := range rec.PropertyIDs {
			_, hit := interacted[id]
			assert.False(t, hit, "user %d got interacted property %d", userID, id)
			assert.False(t, seen[id], "duplicate property %d", id)
			assert.NotEqual(t, uint(8), id, "rented property recommended")
			seen[id] = true
		}
	}
}

func TestRecommend_EmptyCandidates(t *testing.T) {
	r := newTestRecommender(t)
	snap := scenarioSnapshot()
	for i := range snap.Properties {
		snap.Properties[i].Status = StatusRented
	}

	rec, err := r.RecommendDetailed(context.Background(), snap, 1, Options{})
	require.NoError(t, err)
	assert.Empty(t, rec.PropertyIDs)
	assert.NotNil(t, rec.PropertyIDs)
	assert.Equal(t, StrategyEmpty, rec.Strategy)
}

func TestRecommend_PopularFallback(t *testing.T) {
	r := newTestRecommender(t)
	snap := &Snapshot{
		Properties: []Property{property(1, 1, 2, 500), property(2, 1, 2, 500), property(3, 1, 2, 500)},
	}
	views := map[uint]int{1: 5, 2: 2, 3: 5}
	for _, pid := range []uint{1, 2, 3} {
		for k := 0; k < views[pid]; k++ {
			snap.Views = append(snap.Views, PropertyView{UserID: uint(100 + k), PropertyID: pid})
		}
	}

	rec, err := r.RecommendDetailed(context.Background(), snap, 1, Options{TopN: 2})
	require.NoError(t, err)
	assert.Equal(t, StrategyPopular, rec.Strategy)
	assert.Equal(t, []uint{1, 3}, rec.PropertyIDs)
}

func TestRecommend_FallbackWhenInteractedPropertiesRented(t *testing.T) {
	r := newTestRecommender(t)
	snap := scenarioSnapshot()
	snap.Properties[0].Status = StatusRented
	snap.Properties[1].Status = StatusRented

	rec, err := r.RecommendDetailed(context.Background(), snap, 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, StrategyPopular, rec.Strategy)
	assert.Equal(t, []uint{3}, rec.PropertyIDs)
}

func TestRecommend_ContentWeightBoundaries(t *testing.T) {
	r := newTestRecommender(t)
	snap := marketSnapshot()
	const userID = 1
	const topN = 10

	candidates := snap.Candidates()
	ui := CollectUserInteractions(snap, userID)
	fm := BuildFeatures(candidates, snap.Features, r.cfg.Epsilon)
	content, ok := ScoreContent(fm, candidates, ui, r.cfg)
	require.True(t, ok)
	collab, err := ScoreCollaborative(context.Background(), CollectGlobalRatings(snap, r.cfg.Ratings), candidates, userID, r.cfg)
	require.NoError(t, err)

	pureContent := 1.0
	ids, err := r.Recommend(context.Background(), snap, userID, Options{TopN: topN, ContentWeight: &pureContent})
	require.NoError(t, err)
	assert.Equal(t, rank(candidates, content, ui.PropertyIDs(), topN), ids)

	pureCollab := 0.0
	ids, err = r.Recommend(context.Background(), snap, userID, Options{TopN: topN, ContentWeight: &pureCollab})
	require.NoError(t, err)
	assert.Equal(t, rank(candidates, collab, ui.PropertyIDs(), topN), ids)
}

func TestRecommend_InvalidOptions(t *testing.T) {
	r := newTestRecommender(t)
	snap := scenarioSnapshot()

	bad := 1.5
	_, err := r.Recommend(context.Background(), snap, 1, Options{ContentWeight: &bad})
	assert.ErrorIs(t, err, ErrInvalidContentWeight)

	_, err = r.Recommend(context.Background(), snap, 1, Options{TopN: -1})
	assert.ErrorIs(t, err, ErrInvalidTopN)
}

func TestRecommend_CanceledContext(t *testing.T) {
	r := newTestRecommender(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Recommend(ctx, scenarioSnapshot(), 1, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRecommender_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Factorization.TestSize = 1
	_, err := NewRecommender(cfg)
	assert.Error(t, err)
}

func TestRank_StableTies(t *testing.T) {
	candidates := []Property{{ID: 10}, {ID: 11}, {ID: 12}, {ID: 13}}
	scores := []float64{0.5, 0.9, 0.5, 0.5}
	exclude := map[uint]struct{}{12: {}}

	assert.Equal(t, []uint{11, 10, 13}, rank(candidates, scores, exclude, 5))
	assert.Equal(t, []uint{11}, rank(candidates, scores, exclude, 1))
}
