package framework

// Embedded returns the built-in minimal framework. It covers all six
// letters with strong and moderate indicator sets and carries no
// combination descriptions, so Describe falls back to the default.
func Embedded() *Framework {
	types := map[string]Type{
		"R": {
			Letter: "R", Name: "Realistic", Title: "The Doers",
			Strong: []string{
				"maintenance", "repair", "construction", "welding", "plumbing",
				"electrical", "HVAC", "carpentry", "machinery", "forklift",
				"CDL", "truck driving", "warehouse", "manufacturing", "assembly",
				"installation", "mechanical", "automotive", "diesel",
				"landscaping", "farming", "firefighting", "EMT", "CPR", "BLS",
			},
			Moderate: []string{
				"hands-on", "technical", "field work", "troubleshooting",
				"inspection", "quality control", "building", "fixing",
			},
		},
		"I": {
			Letter: "I", Name: "Investigative", Title: "The Thinkers",
			Strong: []string{
				"research", "analysis", "data analysis", "statistics",
				"analytics", "programming", "software development", "Python",
				"Java", "JavaScript", "SQL", "machine learning", "AI",
				"data science", "algorithms", "debugging", "laboratory",
				"clinical research", "diagnosis", "engineering", "mathematics",
				"physics", "chemistry", "biology",
			},
			Moderate: []string{
				"problem-solving", "critical thinking", "investigation",
				"evaluation", "assessment", "documentation",
				"technical writing", "analytical",
			},
		},
		"A": {
			Letter: "A", Name: "Artistic", Title: "The Creators",
			Strong: []string{
				"graphic design", "UI design", "UX design", "visual design",
				"web design", "illustration", "photography", "videography",
				"video editing", "animation", "creative writing", "copywriting",
				"content creation", "music", "acting", "dance",
				"fashion design", "interior design", "Adobe", "Photoshop",
				"Illustrator", "Figma", "art direction",
			},
			Moderate: []string{
				"creative", "innovative", "artistic", "aesthetic", "visual",
				"media", "content", "brand", "design",
			},
		},
		"S": {
			Letter: "S", Name: "Social", Title: "The Helpers",
			Strong: []string{
				"teaching", "education", "training", "nursing", "patient care",
				"caregiving", "home health", "counseling", "therapy",
				"psychology", "social work", "case management",
				"customer service", "customer support", "coaching", "mentoring",
				"healthcare", "medical", "clinical", "pediatric", "geriatric",
				"special education",
			},
			Moderate: []string{
				"communication", "interpersonal", "empathy", "listening",
				"teamwork", "collaboration", "support", "helping", "service",
			},
		},
		"E": {
			Letter: "E", Name: "Enterprising", Title: "The Persuaders",
			Strong: []string{
				"sales", "business development", "account management",
				"management", "leadership", "executive", "director",
				"supervisor", "marketing", "advertising", "public relations",
				"entrepreneurship", "negotiation", "persuasion", "recruiting",
				"real estate", "project management", "operations management",
			},
			Moderate: []string{
				"strategic", "competitive", "goal-oriented", "results-driven",
				"influencing", "presenting", "pitching", "networking",
				"business",
			},
		},
		"C": {
			Letter: "C", Name: "Conventional", Title: "The Organizers",
			Strong: []string{
				"accounting", "bookkeeping", "auditing", "tax preparation",
				"payroll", "administrative", "clerical", "data entry", "filing",
				"records management", "scheduling", "compliance", "regulatory",
				"inventory management", "logistics", "supply chain", "billing",
				"invoicing", "Microsoft Office", "Excel", "QuickBooks", "SAP",
			},
			Moderate: []string{
				"organized", "detail-oriented", "systematic", "accurate",
				"precise", "process", "procedure", "documentation", "reporting",
			},
		},
	}

	return &Framework{
		types:  types,
		combos: map[string]Combination{},
	}
}
