package analyzer

import (
	"strings"
	"unicode"
)

const (
	maxSkills      = 20
	maxExperiences = 10
	minLineLength  = 10
)

// skillKeywords is the canonical skill vocabulary, stored lower-case and
// matched by substring scan. Matching is intentionally not whole-word: a term
// embedded in an unrelated word still counts (e.g. "react" inside
// "reaction"). That is a known heuristic limitation we keep to preserve
// scoring behavior.
var skillKeywords = []string{
	// Programming languages
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust",
	"scala", "r", "matlab", "sql", "typescript", "perl", "shell", "bash",

	// Web technologies
	"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask",
	"spring", "asp.net", "laravel", "rails", "bootstrap", "jquery", "ajax",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "oracle", "sql server", "firebase",
	"cassandra", "elasticsearch", "dynamodb",

	// Cloud platforms
	"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "terraform",
	"jenkins", "ansible", "chef", "puppet",

	// Data science & ML
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
	"matplotlib", "seaborn", "plotly", "nltk", "spacy", "opencv",
	"hadoop", "spark", "hive", "kafka", "airflow",

	// Other technologies
	"git", "linux", "unix", "ubuntu", "centos", "agile", "scrum", "jira",
	"confluence", "excel", "tableau", "power bi", "sap", "erp",
}

// jobKeywords maps a job position tag to the keyword phrases expected for
// that role. Tags outside this map yield no position-specific guidance.
var jobKeywords = map[string][]string{
	"software-engineer": {
		"programming", "coding", "software development", "debugging", "testing",
		"algorithms", "data structures", "oop", "object oriented", "design patterns",
		"version control", "git", "api", "rest", "microservices",
	},
	"data-scientist": {
		"machine learning", "deep learning", "neural networks", "regression",
		"classification", "clustering", "nlp", "natural language processing",
		"statistical analysis", "data visualization", "pandas", "numpy", "r",
		"python", "tensorflow", "pytorch", "scikit-learn",
	},
	"web-developer": {
		"html", "css", "javascript", "react", "angular", "vue", "node.js",
		"frontend", "backend", "responsive design", "cross-browser compatibility",
		"rest api", "json", "ajax", "bootstrap", "jquery",
	},
	"product-manager": {
		"product strategy", "roadmap", "market research", "user stories",
		"agile", "scrum", "sprint", "product lifecycle", "ux", "ui",
		"stakeholder management", "prioritization", "metrics", "kpi",
	},
	"ui-ux-designer": {
		"user experience", "user interface", "wireframing", "prototyping",
		"figma", "sketch", "adobe xd", "usability testing", "accessibility",
		"design thinking", "user research", "information architecture",
		"visual design", "typography", "color theory",
	},
}

// actionVerbs mark achievement-oriented lines during experience extraction.
var actionVerbs = []string{
	"managed", "developed", "created", "implemented", "designed", "optimized",
	"led", "collaborated", "analyzed", "improved", "increased", "reduced",
	"streamlined", "automated", "mentored", "trained", "coordinated",
}

var weakActionVerbs = []string{"helped", "assisted", "worked on", "was responsible for"}

var strongActionVerbs = []string{"managed", "developed", "created", "implemented", "optimized", "led"}

// metricMarkers signal quantified impact inside an experience line.
var metricMarkers = []string{"%", "increased", "decreased", "improved", "reduced", "grew", "$", "saved"}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest, so "node.js" renders "Node.Js" and "power bi"
// renders "Power Bi". This is the display convention the vocabulary was
// written against; word-segmented title casing would change it.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
