package ats

import "strings"

// variantGroup maps a canonical skill to its known textual variants.
// A skill joins a group when it equals the canonical key or any listed
// variant. Groups are checked in fixed order; a skill belongs to at most one.
type variantGroup struct {
	canonical string
	variants  []string
}

var variantGroups = []variantGroup{
	{"javascript", []string{"js", "javascript", "java script", "ecmascript"}},
	{"python", []string{"python", "python3", "py"}},
	{"c++", []string{"cpp", "c++", "c plus plus", "cplusplus"}},
	{"c#", []string{"csharp", "c#", "c sharp"}},
	{"node.js", []string{"nodejs", "node.js", "node js", "node"}},
	{"react", []string{"react", "reactjs", "react.js"}},
	{"vue.js", []string{"vue", "vuejs", "vue.js"}},
	{"angular", []string{"angular", "angularjs", "angular.js"}},
	{"machine learning", []string{"ml", "machine learning", "machinelearning"}},
	{"artificial intelligence", []string{"ai", "artificial intelligence"}},
	{"database", []string{"db", "database", "databases"}},
	{"sql", []string{"sql", "mysql", "postgresql", "sqlite"}},
	{"html", []string{"html", "html5", "markup"}},
	{"css", []string{"css", "css3", "styling"}},
	{"git", []string{"git", "github", "version control"}},
	{"aws", []string{"aws", "amazon web services", "amazon aws"}},
	{"docker", []string{"docker", "containerization", "containers"}},
	{"kubernetes", []string{"kubernetes", "k8s", "container orchestration"}},
}

// ExpandVariants returns the lower-cased skill name plus its known lexical
// variants: synonym-group members, a period-stripped form, and a
// space-stripped form. The set always contains the skill itself.
func ExpandVariants(skill string) map[string]bool {
	lower := strings.ToLower(skill)
	set := map[string]bool{lower: true}

	for _, g := range variantGroups {
		if lower != g.canonical && !containsString(g.variants, lower) {
			continue
		}
		for _, v := range g.variants {
			set[v] = true
		}
		break
	}

	if strings.Contains(lower, ".") {
		set[strings.ReplaceAll(lower, ".", "")] = true
	}
	if strings.Contains(lower, " ") {
		set[strings.ReplaceAll(lower, " ", "")] = true
	}
	return set
}

// SkillPresent reports whether any expanded variant of skill occurs in
// lowerText. Matching is plain substring containment with no word-boundary
// check, so short variants like "js" can match inside longer words.
func SkillPresent(skill, lowerText string) bool {
	for v := range ExpandVariants(skill) {
		if strings.Contains(lowerText, v) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
