package domain

// SignalCategory is one entry of the static buying-signal taxonomy.
type SignalCategory struct {
	Name     string
	Color    string
	Weight   int
	Keywords []string
}

// taxonomy is initialized once and never written afterwards.
var taxonomy = []SignalCategory{
	{
		Name:   "🚀 New Product Launch",
		Color:  "#00ff88",
		Weight: 3,
		Keywords: []string{
			"launch", "launches", "launched", "new product", "unveil", "unveils",
			"announces", "introduces", "release", "released", "debut", "new feature",
			"new solution", "new platform", "new service", "new offering",
		},
	},
	{
		Name:   "💰 Funding & Investment",
		Color:  "#ffcc00",
		Weight: 4,
		Keywords: []string{
			"funding", "raises", "raised", "investment", "series a", "series b",
			"series c", "seed round", "venture", "vc", "million", "billion",
			"capital", "investor", "valuation", "ipo", "goes public", "listed",
		},
	},
	{
		Name:   "📈 Expansion & Growth",
		Color:  "#00ccff",
		Weight: 3,
		Keywords: []string{
			"expand", "expansion", "expands", "opens", "new office", "new location",
			"enters market", "new market", "growth", "scaling", "scale up",
			"new region", "international", "global expansion", "new headquarters",
		},
	},
	{
		Name:   "👥 Hiring Surge",
		Color:  "#ff6b6b",
		Weight: 2,
		Keywords: []string{
			"hiring", "hire", "recruitment", "jobs", "career", "talent",
			"headcount", "team expansion", "new employees", "workforce",
			"looking for", "join our team", "we're growing",
		},
	},
	{
		Name:   "🤝 Partnership & M&A",
		Color:  "#cc88ff",
		Weight: 3,
		Keywords: []string{
			"partnership", "partner", "acquisition", "acquires", "acquired",
			"merger", "merges", "collaboration", "collaborate", "deal",
			"joint venture", "strategic alliance", "teaming up",
		},
	},
	{
		Name:   "⚙️ Technology Adoption",
		Color:  "#ff9944",
		Weight: 2,
		Keywords: []string{
			"digital transformation", "ai", "automation", "cloud", "migrates",
			"adopts", "implements", "deploys", "technology", "innovation",
			"modernize", "upgrade", "new system", "new platform", "tech stack",
		},
	},
	{
		Name:   "🌍 Market Entry",
		Color:  "#44ffcc",
		Weight: 3,
		Keywords: []string{
			"enters", "launch in", "new country", "new territory", "market entry",
			"expands to", "now available in", "opens in", "first in",
		},
	},
	{
		Name:   "👤 Leadership Change",
		Color:  "#ff44aa",
		Weight: 2,
		Keywords: []string{
			"ceo", "appoints", "appointed", "new cto", "new cfo", "new vp",
			"chief", "executive", "leadership", "president", "director",
			"joins as", "promoted to", "new hire",
		},
	},
	{
		Name:   "📊 Financial Performance",
		Color:  "#88ccff",
		Weight: 2,
		Keywords: []string{
			"revenue", "profit", "earnings", "quarterly", "annual report",
			"record revenue", "growth rate", "market cap", "results",
			"beat expectations", "surpassed",
		},
	},
}

// Taxonomy returns the nine signal categories in their fixed definition order.
// Callers must treat the returned slice as read-only.
func Taxonomy() []SignalCategory {
	return taxonomy
}
