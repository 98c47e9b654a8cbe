package roles

func builtin() []Entry {
	return []Entry{
		// engineering
		{Slug: "software-engineer", Category: "engineering", Synonyms: []string{
			"swe", "software developer", "software dev", "programmer", "full stack engineer", "fullstack engineer", "full-stack developer",
		}},
		{Slug: "backend-engineer", Category: "engineering", Synonyms: []string{
			"backend developer", "back end engineer", "back-end developer", "server engineer",
		}},
		{Slug: "frontend-engineer", Category: "engineering", Synonyms: []string{
			"frontend developer", "front end engineer", "front-end developer", "ui engineer", "react developer",
		}},
		{Slug: "mobile-engineer", Category: "engineering", Synonyms: []string{
			"mobile developer", "ios engineer", "ios developer", "android engineer", "android developer",
		}},
		{Slug: "devops-engineer", Category: "engineering", Synonyms: []string{
			"devops", "infrastructure engineer", "cloud engineer",
		}},
		{Slug: "site-reliability-engineer", Category: "engineering", Synonyms: []string{
			"sre", "reliability engineer",
		}},
		{Slug: "platform-engineer", Category: "engineering", Synonyms: []string{
			"platform developer", "internal tools engineer",
		}},
		{Slug: "security-engineer", Category: "engineering", Synonyms: []string{
			"infosec engineer", "application security", "appsec",
		}},
		{Slug: "qa-engineer", Category: "engineering", Synonyms: []string{
			"quality assurance", "test engineer", "sdet",
		}},
		{Slug: "embedded-engineer", Category: "engineering", Synonyms: []string{
			"embedded developer", "firmware engineer",
		}},

		// data
		{Slug: "data-engineer", Category: "data", Synonyms: []string{
			"data infrastructure engineer", "etl developer", "analytics engineer",
		}},
		{Slug: "data-scientist", Category: "data", Synonyms: []string{
			"applied scientist", "research scientist",
		}},
		{Slug: "machine-learning-engineer", Category: "data", Synonyms: []string{
			"ml engineer", "mle", "machine learning", "deep learning engineer", "ai engineer",
		}},
		{Slug: "data-analyst", Category: "data", Synonyms: []string{
			"business analyst", "bi analyst", "business intelligence",
		}},

		// product
		{Slug: "product-manager", Category: "product", Synonyms: []string{
			"pm", "product owner", "technical product manager",
		}},
		{Slug: "product-designer", Category: "product", Synonyms: []string{
			"ux designer", "ui designer", "ux/ui designer", "interaction designer",
		}},
		{Slug: "engineering-manager", Category: "product", Synonyms: []string{
			"software engineering manager", "head of engineering", "eng manager",
		}},
		{Slug: "technical-writer", Category: "product", Synonyms: []string{
			"documentation engineer", "docs writer",
		}},

		// architecture
		{Slug: "solutions-architect", Category: "architecture", Synonyms: []string{
			"solution architect", "cloud architect", "enterprise architect",
		}},
	}
}
