package catalog

// Direction describes one vocational direction: a kind of future rather
// than a job title.
type Direction struct {
	ID           string
	Prefix       string
	Name         string
	Description  string
	Examples     []string
	TypicalCosts []string
}

var directions = []Direction{
	{
		ID:          "formation-discipleship",
		Prefix:      "fd",
		Name:        "Formation & Discipleship",
		Description: "Helping people grow in faith through teaching, mentoring, small groups, or spiritual direction.",
		Examples: []string{
			"Youth worker", "small group leader", "campus minister", "spiritual director", "discipleship pastor",
		},
		TypicalCosts: []string{
			"Slow fruit", "carrying others' burdens", "hidden work", "vulnerability in sharing your own journey",
		},
	},
	{
		ID:          "leadership-stewardship",
		Prefix:      "ls",
		Name:        "Leadership & Stewardship",
		Description: "Building and leading organisations, teams, or systems for greater effectiveness and health.",
		Examples: []string{
			"Church leadership", "nonprofit director", "manager", "entrepreneur", "organisational consultant",
		},
		TypicalCosts: []string{
			"Criticism and misunderstanding", "loneliness of leadership", "difficult decisions affecting others", "slow change",
		},
	},
	{
		ID:          "justice-mercy",
		Prefix:      "jm",
		Name:        "Justice, Mercy & the Poor",
		Description: "Standing with the marginalised, advocating for justice, serving those in need.",
		Examples: []string{
			"Social worker", "advocate", "relief worker", "community organiser", "public defender", "charity founder",
		},
		TypicalCosts: []string{
			"Proximity to suffering", "burnout", "systemic frustration", "being misunderstood by those with more comfort",
		},
	},
	{
		ID:          "cultural-creation",
		Prefix:      "cc",
		Name:        "Cultural Creation & Influence",
		Description: "Shaping culture through creativity, media, arts, business, education, or public life.",
		Examples: []string{
			"Artist", "writer", "filmmaker", "entrepreneur", "teacher", "journalist", "creative professional",
		},
		TypicalCosts: []string{
			"Working in secular spaces", "being a minority voice", "slow influence", "criticism of your work",
		},
	},
	{
		ID:          "pioneering-mission",
		Prefix:      "pm",
		Name:        "Pioneering, Mission & the Margins",
		Description: "Going to new places (geographical or cultural) where the gospel or the church is not yet established.",
		Examples: []string{
			"Church planter", "missionary", "campus pioneer", "marketplace missionary", "cross-cultural worker",
		},
		TypicalCosts: []string{
			"Loneliness", "cultural displacement", "slow or invisible fruit", "danger", "starting from scratch repeatedly",
		},
	},
}

var directionByID = func() map[string]Direction {
	m := make(map[string]Direction, len(directions))
	for _, d := range directions {
		m[d.ID] = d
	}
	return m
}()

// AllDirections returns every vocational direction in catalog order.
func AllDirections() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions)
	return out
}

// DirectionByID returns the vocational direction with the given identifier.
func DirectionByID(id string) (Direction, bool) {
	d, ok := directionByID[id]
	return d, ok
}

// CostQuestionIndex is the per-direction question number that asks about
// willingness to bear the direction's costs rather than its pull.
const CostQuestionIndex = 3
