package services

import (
	"testing"
	"time"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

var rankRate = decimal.NewFromFloat(0.02)

func openGig(id, clientID uint, skills []string, budget string, age time.Duration) models.Gig {
	return models.Gig{
		GID:            id,
		ClientID:       clientID,
		RequiredSkills: datatypes.NewJSONSlice(skills),
		Budget:         decimal.RequireFromString(budget),
		Status:         models.GigStatusOpen,
		CreatedAt:      time.Now().Add(-age),
	}
}

func gigIDs(gigs []models.Gig) []uint {
	ids := make([]uint, len(gigs))
	for i, g := range gigs {
		ids[i] = g.GID
	}
	return ids
}

func TestRank_TierOrdering(t *testing.T) {
	viewer := models.User{
		UID:             7,
		Skills:          datatypes.NewJSONSlice([]string{"design"}),
		FollowedClients: datatypes.NewJSONSlice([]uint{3}),
	}

	// The followed client's gig is the oldest and still outranks a
	// fresher skill match, which in turn outranks the newest residual.
	followed := openGig(1, 3, []string{"copywriting"}, "500", 72*time.Hour)
	skillMatch := openGig(2, 4, []string{"UI Design"}, "500", 24*time.Hour)
	residual := openGig(3, 5, []string{"plumbing"}, "500", time.Hour)

	ranked, err := Rank([]models.Gig{residual, skillMatch, followed}, viewer, nil, dto.DiscoveryFilter{}, rankRate)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, gigIDs(ranked))
}

func TestRank_NewestFirstWithinTier(t *testing.T) {
	viewer := models.User{UID: 7}

	older := openGig(1, 4, nil, "100", 48*time.Hour)
	newer := openGig(2, 5, nil, "100", time.Hour)

	ranked, err := Rank([]models.Gig{older, newer}, viewer, nil, dto.DiscoveryFilter{}, rankRate)
	assert.NoError(t, err)
	assert.Equal(t, []uint{2, 1}, gigIDs(ranked))
}

func TestRank_ExcludesBlockedAndApplied(t *testing.T) {
	viewer := models.User{
		UID:            7,
		BlockedClients: datatypes.NewJSONSlice([]uint{5}),
	}

	fromBlocked := openGig(1, 5, nil, "100", time.Hour)
	alreadyApplied := openGig(2, 4, nil, "100", time.Hour)
	visible := openGig(3, 6, nil, "100", time.Hour)

	ranked, err := Rank([]models.Gig{fromBlocked, alreadyApplied, visible}, viewer,
		map[uint]bool{2: true}, dto.DiscoveryFilter{}, rankRate)
	assert.NoError(t, err)
	assert.Equal(t, []uint{3}, gigIDs(ranked))
}

func TestRank_SkillFilter(t *testing.T) {
	viewer := models.User{UID: 7}

	design := openGig(1, 4, []string{"UI Design"}, "100", time.Hour)
	plumbing := openGig(2, 5, []string{"plumbing"}, "100", time.Hour)

	ranked, err := Rank([]models.Gig{design, plumbing}, viewer, nil,
		dto.DiscoveryFilter{Skills: []string{"design"}}, rankRate)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1}, gigIDs(ranked))
}

func TestRank_PayoutBoundsUseNetAmount(t *testing.T) {
	viewer := models.User{UID: 7}

	// Budget 100 nets 98 after the 2% commission. A min filter of 99
	// must exclude it even though the gross clears the bar.
	gig := openGig(1, 4, nil, "100", time.Hour)

	ranked, err := Rank([]models.Gig{gig}, viewer, nil,
		dto.DiscoveryFilter{MinPayout: ptrString("99")}, rankRate)
	assert.NoError(t, err)
	assert.Empty(t, ranked)

	ranked, err = Rank([]models.Gig{gig}, viewer, nil,
		dto.DiscoveryFilter{MinPayout: ptrString("98")}, rankRate)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1}, gigIDs(ranked))

	ranked, err = Rank([]models.Gig{gig}, viewer, nil,
		dto.DiscoveryFilter{MaxPayout: ptrString("97")}, rankRate)
	assert.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRank_BadPayoutFilter(t *testing.T) {
	viewer := models.User{UID: 7}
	gig := openGig(1, 4, nil, "100", time.Hour)

	_, err := Rank([]models.Gig{gig}, viewer, nil,
		dto.DiscoveryFilter{MinPayout: ptrString("not-a-number")}, rankRate)
	assert.Error(t, err)
}

func TestRank_Deterministic(t *testing.T) {
	viewer := models.User{
		UID:             7,
		Skills:          datatypes.NewJSONSlice([]string{"go", "design"}),
		FollowedClients: datatypes.NewJSONSlice([]uint{3}),
	}

	gigs := []models.Gig{
		openGig(1, 3, []string{"go"}, "200", time.Hour),
		openGig(2, 4, []string{"design"}, "300", 2*time.Hour),
		openGig(3, 5, []string{"cooking"}, "400", 3*time.Hour),
		openGig(4, 3, []string{"cooking"}, "500", 4*time.Hour),
		openGig(5, 6, []string{"go", "design"}, "600", 5*time.Hour),
	}

	first, err := Rank(gigs, viewer, nil, dto.DiscoveryFilter{}, rankRate)
	assert.NoError(t, err)
	second, err := Rank(gigs, viewer, nil, dto.DiscoveryFilter{}, rankRate)
	assert.NoError(t, err)
	assert.Equal(t, gigIDs(first), gigIDs(second))

	// Followed tier (clients 3) first, then skill matches, then rest.
	assert.Equal(t, []uint{1, 4, 2, 5, 3}, gigIDs(first))
}

func TestSkillOverlap(t *testing.T) {
	cases := []struct {
		name     string
		required []string
		viewer   []string
		want     bool
	}{
		{"exact", []string{"design"}, []string{"design"}, true},
		{"case insensitive", []string{"Design"}, []string{"dESIGN"}, true},
		{"substring", []string{"UI Design"}, []string{"design"}, true},
		{"shared word", []string{"logo design"}, []string{"design systems"}, true},
		{"no overlap", []string{"plumbing"}, []string{"design"}, false},
		{"empty viewer", []string{"design"}, nil, false},
		{"empty required", nil, []string{"design"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, skillOverlap(tc.required, tc.viewer))
		})
	}
}
