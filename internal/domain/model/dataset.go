package model

// Tier is a module difficulty. Any scalar JSON value decodes; values other
// than the three displayed tiers are simply never shown.
type Tier string

func (t *Tier) UnmarshalJSON(data []byte) error {
	var text Text
	if err := text.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Tier(text)
	return nil
}

const (
	TierFoundational  Tier = "foundational"
	TierIntermediate  Tier = "intermediate"
	TierAdvanced      Tier = "advanced"
	TierUncategorized Tier = "Uncategorized"
)

// DisplayedTiers is the fixed column order of the catalog. Uncategorized is
// never displayed.
var DisplayedTiers = []Tier{TierFoundational, TierIntermediate, TierAdvanced}

// DefaultTierPoints is used when the dataset carries no difficulty_points.
var DefaultTierPoints = map[Tier]Number{
	TierFoundational: NewNumber(50),
	TierIntermediate: NewNumber(100),
	TierAdvanced:     NewNumber(300),
}

type Dataset struct {
	Users            []ScoredEntity  `json:"users"`
	Universities     []ScoredEntity  `json:"universities"`
	Packages         []Module        `json:"packages"`
	DifficultyPoints map[Tier]Number `json:"difficulty_points,omitempty"`
}

// ScoredEntity is either a user (FullName set) or a university.
type ScoredEntity struct {
	FullName    Text   `json:"full_name,omitempty"`
	University  Text   `json:"university,omitempty"`
	TotalPoints Number `json:"total_points"`
}

func (e ScoredEntity) DisplayName() string {
	if e.FullName != "" {
		return e.FullName.String()
	}
	return e.University.String()
}

type Module struct {
	PackageID        Text              `json:"package_id"`
	PackageName      Text              `json:"package_name"`
	Difficulty       Tier              `json:"difficulty"`
	PassingThreshold Text              `json:"passing_threshold"`
	ReleaseDate      Text              `json:"release_date"`
	Universities     []UniversityClaim `json:"universities"`
	Users            []UserClaim       `json:"users"`
}

// HasClaims is the claimed status of a module: at least one user claim,
// whatever the university claims say.
func (m Module) HasClaims() bool {
	return len(m.Users) > 0
}

type UniversityClaim struct {
	Name  Text   `json:"name"`
	Users Number `json:"users"`
}

type UserClaim struct {
	FullName              Text   `json:"full_name"`
	ChallengePointsEarned Number `json:"challenge_points_earned"`
}

// Normalize applies the load-time defaults: missing tiers fall into
// Uncategorized and missing lists become empty.
func (d *Dataset) Normalize() {
	if d.Users == nil {
		d.Users = []ScoredEntity{}
	}
	if d.Universities == nil {
		d.Universities = []ScoredEntity{}
	}
	if d.Packages == nil {
		d.Packages = []Module{}
	}
	for i := range d.Packages {
		m := &d.Packages[i]
		if m.Difficulty == "" {
			m.Difficulty = TierUncategorized
		}
		if m.Universities == nil {
			m.Universities = []UniversityClaim{}
		}
		if m.Users == nil {
			m.Users = []UserClaim{}
		}
	}
}

// TierPoints returns the point mapping in effect for the dataset.
func (d *Dataset) TierPoints() map[Tier]Number {
	if d.DifficultyPoints != nil {
		return d.DifficultyPoints
	}
	return DefaultTierPoints
}
