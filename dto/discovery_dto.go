package dto

// DiscoveryFilter holds the client-side filter selections applied
// after tiering. Payout bounds are compared against the net amount.
type DiscoveryFilter struct {
	Skills    []string `form:"skills"`
	MinPayout *string  `form:"min"`
	MaxPayout *string  `form:"max"`
}
