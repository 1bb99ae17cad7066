package catalog

// Gift describes one spiritual gift and the scripture it is drawn from.
type Gift struct {
	ID           string
	Prefix       string
	Name         string
	Description  string
	Scripture    string
	ScriptureRef string
}

var gifts = []Gift{
	{
		ID:           "wisdom",
		Prefix:       "wis",
		Name:         "Wisdom",
		Description:  "The Spirit-enabled ability to see into the heart of situations and apply divine truth with discernment.",
		Scripture:    "To one there is given through the Spirit a message of wisdom...",
		ScriptureRef: "1 Corinthians 12:8",
	},
	{
		ID:           "knowledge",
		Prefix:       "kno",
		Name:         "Knowledge",
		Description:  "The Spirit-enabled ability to understand and articulate truths about God and His ways.",
		Scripture:    "...to another a message of knowledge by means of the same Spirit...",
		ScriptureRef: "1 Corinthians 12:8",
	},
	{
		ID:           "faith",
		Prefix:       "fai",
		Name:         "Faith",
		Description:  "The Spirit-enabled ability to trust God with extraordinary confidence, especially in difficult circumstances.",
		Scripture:    "...to another faith by the same Spirit...",
		ScriptureRef: "1 Corinthians 12:9",
	},
	{
		ID:           "healing",
		Prefix:       "hea",
		Name:         "Healing",
		Description:  "The Spirit-enabled ability to be a channel through which God brings restoration to body, mind, or spirit.",
		Scripture:    "...to another gifts of healing by that one Spirit...",
		ScriptureRef: "1 Corinthians 12:9",
	},
	{
		ID:           "miracles",
		Prefix:       "mir",
		Name:         "Miracles",
		Description:  "The Spirit-enabled ability to be a conduit for God's supernatural intervention in the natural order.",
		Scripture:    "...to another miraculous powers...",
		ScriptureRef: "1 Corinthians 12:10",
	},
	{
		ID:           "prophecy",
		Prefix:       "pro",
		Name:         "Prophecy",
		Description:  "The Spirit-enabled ability to receive and communicate messages from God for encouragement, strengthening, and comfort.",
		Scripture:    "...to another prophecy... But the one who prophesies speaks to people for their strengthening, encouraging and comfort.",
		ScriptureRef: "1 Corinthians 12:10, 14:3",
	},
	{
		ID:           "discernment-of-spirits",
		Prefix:       "dis",
		Name:         "Discernment of Spirits",
		Description:  "The Spirit-enabled ability to distinguish between what is of God, human origin, or spiritual opposition.",
		Scripture:    "...to another distinguishing between spirits...",
		ScriptureRef: "1 Corinthians 12:10",
	},
	{
		ID:           "tongues",
		Prefix:       "ton",
		Name:         "Tongues",
		Description:  "The Spirit-enabled ability to speak in languages unknown to the speaker, for prayer, praise, or communication.",
		Scripture:    "...to another speaking in different kinds of tongues...",
		ScriptureRef: "1 Corinthians 12:10",
	},
	{
		ID:           "interpretation-of-tongues",
		Prefix:       "int",
		Name:         "Interpretation of Tongues",
		Description:  "The Spirit-enabled ability to make known the meaning of messages spoken in tongues.",
		Scripture:    "...and to still another the interpretation of tongues.",
		ScriptureRef: "1 Corinthians 12:10",
	},
	{
		ID:           "teaching",
		Prefix:       "tea",
		Name:         "Teaching",
		Description:  "The Spirit-enabled ability to explain and apply Scripture in ways that bring understanding and transformation.",
		Scripture:    "If it is teaching, then teach...",
		ScriptureRef: "Romans 12:7",
	},
	{
		ID:           "shepherding",
		Prefix:       "she",
		Name:         "Shepherding (Pastoring)",
		Description:  "The Spirit-enabled ability to guide, protect, and nurture believers toward spiritual maturity.",
		Scripture:    "Be shepherds of God's flock that is under your care, watching over them...",
		ScriptureRef: "1 Peter 5:2",
	},
	{
		ID:           "apostolic",
		Prefix:       "apo",
		Name:         "Apostolic / Sending",
		Description:  "The Spirit-enabled ability to establish new works and provide leadership across communities of faith.",
		Scripture:    "And God has placed in the church first of all apostles...",
		ScriptureRef: "1 Corinthians 12:28",
	},
	{
		ID:           "evangelism",
		Prefix:       "eva",
		Name:         "Evangelism",
		Description:  "The Spirit-enabled ability to communicate the gospel with clarity and see people respond to Christ.",
		Scripture:    "Christ himself gave... the evangelists...",
		ScriptureRef: "Ephesians 4:11",
	},
	{
		ID:           "service",
		Prefix:       "ser",
		Name:         "Service (Helps)",
		Description:  "The Spirit-enabled ability to identify and meet practical needs in ways that free others for their work.",
		Scripture:    "If it is serving, then serve...",
		ScriptureRef: "Romans 12:7",
	},
	{
		ID:           "encouragement",
		Prefix:       "enc",
		Name:         "Encouragement (Exhortation)",
		Description:  "The Spirit-enabled ability to strengthen others through words that comfort, challenge, and call forward.",
		Scripture:    "If it is to encourage, then give encouragement...",
		ScriptureRef: "Romans 12:8",
	},
	{
		ID:           "giving",
		Prefix:       "giv",
		Name:         "Giving",
		Description:  "The Spirit-enabled ability to contribute resources with extraordinary generosity and joy.",
		Scripture:    "...if it is giving, then give generously...",
		ScriptureRef: "Romans 12:8",
	},
}

var giftByID = func() map[string]Gift {
	m := make(map[string]Gift, len(gifts))
	for _, g := range gifts {
		m[g.ID] = g
	}
	return m
}()

// AllGifts returns every spiritual gift in catalog order.
func AllGifts() []Gift {
	out := make([]Gift, len(gifts))
	copy(out, gifts)
	return out
}

// GiftByID returns the gift with the given identifier.
func GiftByID(id string) (Gift, bool) {
	g, ok := giftByID[id]
	return g, ok
}
