package personality

import "github.com/pulsr-app/pulsr/internal/domain"

// The lookup tables below are keyed by trait and must cover every entry of
// domain.TraitOrder. TestTables_CoverEveryTrait enforces completeness so a
// seventh trait cannot silently fall through to a default.

var toneByTrait = map[domain.Trait]string{
	domain.TraitPractical:       "Direct and useful",
	domain.TraitAnalytical:      "Professional and data-driven",
	domain.TraitCreative:        "Inspiring and expressive",
	domain.TraitSocial:          "Conversational and empathetic",
	domain.TraitEntrepreneurial: "Energetic and results-oriented",
	domain.TraitOrganized:       "Structured and methodical",
}

// Base posts-per-week before the structure-preference widening.
var frequencyByTrait = map[domain.Trait]int{
	domain.TraitPractical:       3,
	domain.TraitAnalytical:      3,
	domain.TraitCreative:        4,
	domain.TraitSocial:          4,
	domain.TraitEntrepreneurial: 5,
	domain.TraitOrganized:       3,
}

var interestsByTrait = map[domain.Trait][]string{
	domain.TraitPractical:       {"tools", "tutorials", "solutions", "use cases", "implementation"},
	domain.TraitAnalytical:      {"data analysis", "technology", "research", "metrics", "artificial intelligence"},
	domain.TraitCreative:        {"design", "art", "innovation", "creativity", "self-expression"},
	domain.TraitSocial:          {"community", "networking", "collaboration", "relationships", "communication"},
	domain.TraitEntrepreneurial: {"startups", "business", "marketing", "leadership", "growth"},
	domain.TraitOrganized:       {"productivity", "systems", "planning", "efficiency", "organization"},
}

var pillarsByTrait = map[domain.Trait][4]domain.Pillar{
	domain.TraitPractical: {
		{Name: "Tutorials", Description: "Step-by-step guides and how-tos"},
		{Name: "Tools", Description: "Useful tools and resources"},
		{Name: "Use Cases", Description: "Real examples and applications"},
		{Name: "Solutions", Description: "Fixes for common problems"},
	},
	domain.TraitAnalytical: {
		{Name: "Data Analysis", Description: "Insights backed by real data"},
		{Name: "Technology", Description: "Tech trends and tooling"},
		{Name: "Productivity", Description: "Systems for working more efficiently"},
		{Name: "Research", Description: "Relevant studies and findings"},
	},
	domain.TraitCreative: {
		{Name: "Creativity", Description: "Creative process and inspiration"},
		{Name: "Design", Description: "Design principles and aesthetics"},
		{Name: "Art", Description: "Artistic and cultural expression"},
		{Name: "Innovation", Description: "Disruptive, original ideas"},
	},
	domain.TraitSocial: {
		{Name: "Community", Description: "Community building and networking"},
		{Name: "Stories", Description: "Personal experiences and narratives"},
		{Name: "Collaboration", Description: "Teamwork and partnerships"},
		{Name: "Networking", Description: "Professional connections and relationships"},
	},
	domain.TraitEntrepreneurial: {
		{Name: "Entrepreneurship", Description: "Startup strategies and lessons learned"},
		{Name: "Business", Description: "Business models and strategy"},
		{Name: "Marketing", Description: "Marketing and growth tactics"},
		{Name: "Leadership", Description: "Team management and leadership"},
	},
	domain.TraitOrganized: {
		{Name: "Systems", Description: "Organizational systems and processes"},
		{Name: "Productivity", Description: "Productivity tools and methods"},
		{Name: "Planning", Description: "Planning and management strategies"},
		{Name: "Efficiency", Description: "Optimization and continuous improvement"},
	},
}

// strategyTemplate is the per-trait fallback publishing strategy.
type strategyTemplate struct {
	Focus      string
	Format     string
	Engagement string
	Mix        []domain.ContentMixEntry
	Metrics    []string
}

var strategyByTrait = map[domain.Trait]strategyTemplate{
	domain.TraitPractical: {
		Focus:      "Tutorials and practical solutions",
		Format:     "Step-by-step guides, tips, tools",
		Engagement: "Ask how readers would implement it",
		Mix: []domain.ContentMixEntry{
			{Type: "how-to", Percentage: 50}, {Type: "tool reviews", Percentage: 30}, {Type: "stories", Percentage: 20},
		},
		Metrics: []string{"saves", "profile visits", "comments"},
	},
	domain.TraitAnalytical: {
		Focus:      "Data, analysis and insights",
		Format:     "Threads with data, charts, statistics",
		Engagement: "Ask questions that invite reflection",
		Mix: []domain.ContentMixEntry{
			{Type: "insights", Percentage: 40}, {Type: "how-to", Percentage: 30}, {Type: "commentary", Percentage: 30},
		},
		Metrics: []string{"impressions", "saves", "follower growth"},
	},
	domain.TraitCreative: {
		Focus:      "Creative process and inspiration",
		Format:     "Visual content, stories, inspiration",
		Engagement: "Ask prompts that spark creativity",
		Mix: []domain.ContentMixEntry{
			{Type: "visual", Percentage: 40}, {Type: "stories", Percentage: 35}, {Type: "ideas", Percentage: 25},
		},
		Metrics: []string{"shares", "comments", "follower growth"},
	},
	domain.TraitSocial: {
		Focus:      "Community and connection",
		Format:     "Personal stories, networking, collaboration",
		Engagement: "Ask questions that start conversations",
		Mix: []domain.ContentMixEntry{
			{Type: "stories", Percentage: 40}, {Type: "questions", Percentage: 30}, {Type: "highlights", Percentage: 30},
		},
		Metrics: []string{"comments", "DMs started", "connections"},
	},
	domain.TraitEntrepreneurial: {
		Focus:      "Strategy, lessons and growth",
		Format:     "Case studies, lessons learned",
		Engagement: "Ask about readers' own experiences",
		Mix: []domain.ContentMixEntry{
			{Type: "case studies", Percentage: 40}, {Type: "lessons", Percentage: 35}, {Type: "opinions", Percentage: 25},
		},
		Metrics: []string{"leads", "profile visits", "shares"},
	},
	domain.TraitOrganized: {
		Focus:      "Systems and productivity",
		Format:     "Frameworks, methodologies, organization",
		Engagement: "Ask how readers organize their work",
		Mix: []domain.ContentMixEntry{
			{Type: "frameworks", Percentage: 45}, {Type: "how-to", Percentage: 30}, {Type: "reviews", Percentage: 25},
		},
		Metrics: []string{"saves", "comments", "newsletter signups"},
	},
}

// Suggested posting times per trait. Users who lean team-oriented get
// teamOptimalTimes instead, aligned to collaboration hours.
var timesByTrait = map[domain.Trait][]string{
	domain.TraitPractical:       {"09:00", "13:00", "17:00"},
	domain.TraitAnalytical:      {"09:00", "14:00", "16:00"},
	domain.TraitCreative:        {"10:00", "15:00", "20:00"},
	domain.TraitSocial:          {"08:00", "12:00", "19:00"},
	domain.TraitEntrepreneurial: {"08:00", "12:00", "18:00"},
	domain.TraitOrganized:       {"09:00", "14:00", "16:00"},
}

var teamOptimalTimes = []string{"09:00", "12:00", "15:00"}
