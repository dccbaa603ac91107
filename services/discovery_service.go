package services

import (
	"sort"
	"strings"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/shopspring/decimal"
)

// DiscoveryService orders open gigs for a viewing student: gigs from
// followed clients first, then skill matches, then the rest, newest
// first within each tier. It is a pure read-side transformation.
type DiscoveryService struct {
	Repos *repositories.Repos
	rate  decimal.Decimal
}

func NewDiscoveryService(repos *repositories.Repos, commissionRate decimal.Decimal) *DiscoveryService {
	return &DiscoveryService{Repos: repos, rate: commissionRate}
}

func (s *DiscoveryService) ListOpenGigs(studentID uint, filter dto.DiscoveryFilter) ([]models.Gig, error) {
	viewer, err := s.Repos.User.GetByID(studentID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	gigs, err := s.Repos.Gig.ListOpen()
	if err != nil {
		return nil, err
	}

	appliedIDs, err := s.Repos.Gig.ListAppliedGigIDs(studentID)
	if err != nil {
		return nil, err
	}
	applied := make(map[uint]bool, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = true
	}

	return Rank(gigs, viewer, applied, filter, s.rate)
}

// Rank is deterministic: the same inputs always produce the same
// ordering. Exported so the tiering rules can be tested without a
// database.
func Rank(gigs []models.Gig, viewer models.User, applied map[uint]bool, filter dto.DiscoveryFilter, rate decimal.Decimal) ([]models.Gig, error) {
	blocked := make(map[uint]bool, len(viewer.BlockedClients))
	for _, id := range viewer.BlockedClients {
		blocked[id] = true
	}
	followed := make(map[uint]bool, len(viewer.FollowedClients))
	for _, id := range viewer.FollowedClients {
		followed[id] = true
	}

	var tierFollowed, tierSkill, tierRest []models.Gig
	for _, gig := range gigs {
		if blocked[gig.ClientID] || applied[gig.GID] {
			continue
		}
		switch {
		case followed[gig.ClientID]:
			tierFollowed = append(tierFollowed, gig)
		case skillOverlap(gig.RequiredSkills, viewer.Skills):
			tierSkill = append(tierSkill, gig)
		default:
			tierRest = append(tierRest, gig)
		}
	}

	newestFirst := func(tier []models.Gig) {
		sort.SliceStable(tier, func(i, j int) bool {
			return tier[i].CreatedAt.After(tier[j].CreatedAt)
		})
	}
	newestFirst(tierFollowed)
	newestFirst(tierSkill)
	newestFirst(tierRest)

	ordered := make([]models.Gig, 0, len(tierFollowed)+len(tierSkill)+len(tierRest))
	ordered = append(ordered, tierFollowed...)
	ordered = append(ordered, tierSkill...)
	ordered = append(ordered, tierRest...)

	return applyFilters(ordered, filter, rate)
}

// skillOverlap reports a token-level match between required and viewer
// skills: case-insensitive, substring in either direction, or any
// shared word. "UI Design" matches "design".
func skillOverlap(required, viewer []string) bool {
	for _, r := range required {
		rl := strings.ToLower(strings.TrimSpace(r))
		if rl == "" {
			continue
		}
		for _, v := range viewer {
			vl := strings.ToLower(strings.TrimSpace(v))
			if vl == "" {
				continue
			}
			if strings.Contains(rl, vl) || strings.Contains(vl, rl) {
				return true
			}
			if sharesWord(rl, vl) {
				return true
			}
		}
	}
	return false
}

func sharesWord(a, b string) bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(a) {
		words[w] = true
	}
	for _, w := range strings.Fields(b) {
		if words[w] {
			return true
		}
	}
	return false
}

// applyFilters drops gigs outside the selections without disturbing
// the relative ordering. Payout bounds compare against the net amount.
func applyFilters(gigs []models.Gig, filter dto.DiscoveryFilter, rate decimal.Decimal) ([]models.Gig, error) {
	var minPayout, maxPayout *decimal.Decimal
	if filter.MinPayout != nil && *filter.MinPayout != "" {
		v, err := decimal.NewFromString(*filter.MinPayout)
		if err != nil {
			return nil, err
		}
		minPayout = &v
	}
	if filter.MaxPayout != nil && *filter.MaxPayout != "" {
		v, err := decimal.NewFromString(*filter.MaxPayout)
		if err != nil {
			return nil, err
		}
		maxPayout = &v
	}

	netFactor := decimal.NewFromInt(1).Sub(rate)

	out := gigs[:0:0]
	for _, gig := range gigs {
		if len(filter.Skills) > 0 && !skillOverlap(gig.RequiredSkills, filter.Skills) {
			continue
		}
		net := gig.Budget.Mul(netFactor)
		if minPayout != nil && net.LessThan(*minPayout) {
			continue
		}
		if maxPayout != nil && net.GreaterThan(*maxPayout) {
			continue
		}
		out = append(out, gig)
	}
	return out, nil
}
