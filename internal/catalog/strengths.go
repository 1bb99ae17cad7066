package catalog

// Strength describes one created-strength domain.
type Strength struct {
	ID            string
	Prefix        string
	Name          string
	Description   string
	LowEnergyDesc string
}

var strengths = []Strength{
	{
		ID:            "strategic-patterning",
		Prefix:        "sp",
		Name:          "Strategic Patterning",
		Description:   "The ability to see connections across time and complexity, recognising how different pieces fit together toward future outcomes.",
		LowEnergyDesc: "You prefer to stay in the moment rather than constantly thinking ahead, and long-term planning can feel exhausting or abstract.",
	},
	{
		ID:            "analytical-discernment",
		Prefix:        "ad",
		Name:          "Analytical Discernment",
		Description:   "The ability to break down complexity, weigh evidence, and distinguish what's true or important from what isn't.",
		LowEnergyDesc: "You tend to trust your gut and move forward without needing to analyse everything.",
	},
	{
		ID:            "vision-imagination",
		Prefix:        "vi",
		Name:          "Vision & Imagination",
		Description:   "The ability to see possibilities that don't yet exist and inspire others with pictures of what could be.",
		LowEnergyDesc: "You prefer dealing with what's real and concrete rather than imagining possibilities.",
	},
	{
		ID:            "execution-drive",
		Prefix:        "ed",
		Name:          "Execution Drive",
		Description:   "The ability to move from idea to action, pushing through obstacles and completing what was started.",
		LowEnergyDesc: "Getting things done can feel like a grind rather than a joy.",
	},
	{
		ID:            "responsibility-orientation",
		Prefix:        "ro",
		Name:          "Responsibility Orientation",
		Description:   "Taking ownership, following through on commitments, and being someone others can depend on.",
		LowEnergyDesc: "You value flexibility over commitment and adapt easily when plans change.",
	},
	{
		ID:            "stability-reliability",
		Prefix:        "sr",
		Name:          "Stability & Reliability",
		Description:   "Creating consistency, maintaining structures, and providing a steady presence that grounds others.",
		LowEnergyDesc: "You thrive on novelty and change, and routine might bore you.",
	},
	{
		ID:            "adaptability",
		Prefix:        "ap",
		Name:          "Adaptability",
		Description:   "Responding flexibly to change, staying present rather than rigidly planning, and going with the flow.",
		LowEnergyDesc: "You prefer to know what's coming, and uncertainty stresses you out.",
	},
	{
		ID:            "learning-velocity",
		Prefix:        "lv",
		Name:          "Learning Velocity",
		Description:   "Quickly absorbing new information and enjoying the process of becoming competent at new things.",
		LowEnergyDesc: "You prefer to go deep in familiar areas rather than constantly learning new things.",
	},
	{
		ID:            "relational-attunement",
		Prefix:        "ra",
		Name:          "Relational Attunement",
		Description:   "Sensing what others feel, building genuine connection, and making people feel truly known.",
		LowEnergyDesc: "You're more task-focused than relationally focused and might miss emotional cues.",
	},
	{
		ID:            "influence-persuasion",
		Prefix:        "ip",
		Name:          "Influence & Persuasion",
		Description:   "Moving others toward action or belief, communicating compellingly and bringing people along with you.",
		LowEnergyDesc: "You're not driven to convince others and would rather do your own thing than spend energy persuading people.",
	},
	{
		ID:            "courage-initiative",
		Prefix:        "ci",
		Name:          "Courage & Initiative",
		Description:   "Moving first into uncertain spaces, taking risks, and speaking hard truths when needed.",
		LowEnergyDesc: "You prefer safety and certainty, and speaking up in tense situations can feel really costly.",
	},
	{
		ID:            "harmony-mediation",
		Prefix:        "hm",
		Name:          "Harmony & Mediation",
		Description:   "Finding common ground, reducing conflict, and helping opposing sides understand each other.",
		LowEnergyDesc: "You're comfortable with conflict and don't feel compelled to resolve it.",
	},
	{
		ID:            "precision-excellence",
		Prefix:        "pe",
		Name:          "Precision & Excellence",
		Description:   "Getting things right, attending to quality, and refusing to settle for \"good enough.\"",
		LowEnergyDesc: "You're more interested in progress than perfection.",
	},
	{
		ID:            "systems-stewardship",
		Prefix:        "ss",
		Name:          "Systems & Stewardship",
		Description:   "Seeing how parts connect, designing for sustainability, and thinking about long-term health rather than quick fixes.",
		LowEnergyDesc: "You prefer to focus on immediate, tangible problems rather than abstract systems.",
	},
}

var strengthByID = func() map[string]Strength {
	m := make(map[string]Strength, len(strengths))
	for _, s := range strengths {
		m[s.ID] = s
	}
	return m
}()

// AllStrengths returns every strength domain in catalog order.
func AllStrengths() []Strength {
	out := make([]Strength, len(strengths))
	copy(out, strengths)
	return out
}

// StrengthByID returns the strength domain with the given identifier.
func StrengthByID(id string) (Strength, bool) {
	s, ok := strengthByID[id]
	return s, ok
}
