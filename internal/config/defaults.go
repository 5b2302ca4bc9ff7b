package config

import "github.com/jonathan/ats-analyzer/internal/types"

// defaultCategories are the built-in job category vocabularies. The general
// category carries empty keyword sets so resumes without a defined
// vocabulary are never penalized on the keyword axis.
var defaultCategories = []types.JobCategoryConfig{
	{
		Name: "software_engineer",
		RequiredKeywords: []string{
			"python", "java", "javascript", "sql", "git", "api", "database", "testing",
		},
		PreferredKeywords: []string{
			"react", "node.js", "agile", "scrum", "docker", "aws", "cloud",
			"machine learning", "data structures", "algorithms",
		},
	},
	{
		Name: "data_scientist",
		RequiredKeywords: []string{
			"python", "sql", "machine learning", "statistics", "data analysis",
		},
		PreferredKeywords: []string{
			"r", "deep learning", "tensorflow", "pytorch", "pandas", "numpy",
			"matplotlib", "scikit-learn", "data visualization", "big data", "hadoop", "spark",
		},
	},
	{
		Name: "marketing",
		RequiredKeywords: []string{
			"digital marketing", "seo", "social media", "content marketing", "campaign management",
		},
		PreferredKeywords: []string{
			"sem", "google analytics", "facebook ads", "email marketing",
			"brand management", "market research", "roi", "conversion optimization",
		},
	},
	{
		Name: "project_manager",
		RequiredKeywords: []string{
			"project management", "agile", "scrum", "stakeholder management", "planning",
		},
		PreferredKeywords: []string{
			"kanban", "pmp", "risk management", "budget management", "timeline",
			"deliverables", "team leadership", "communication", "execution",
		},
	},
	{
		Name: types.GeneralCategory,
	},
}
