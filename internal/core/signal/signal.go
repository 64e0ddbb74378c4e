// Package signal extracts per-category evidence that a document relates to a project
//
// Matching is whole-word and case-insensitive (both sides are expected to be
// pre-normalized). Each category contributes at most one match per project:
// scoring downstream is presence-based, not count-based, so three keyword hits
// still mean "keyword found" exactly once
package signal

// Category is one kind of evidence linking a document to a project
type Category string

const (
	// ProjectName is an explicit mention of the project display name
	ProjectName Category = "project_name"
	// Alias is a mention of an alternate project name
	Alias Category = "alias"
	// TeamMember is a mention of a person on the project
	TeamMember Category = "team_member"
	// Keyword is a mention of a domain term tied to the project
	Keyword Category = "keyword"
)

// Categories lists all categories in descending weight order
// extraction, explanation and tie-breaks all iterate in this fixed order
var Categories = [4]Category{ProjectName, Alias, TeamMember, Keyword}

// Needle is one searchable profile string, raw form kept for explanations
type Needle struct {
	Raw  string
	Norm string
}

// NeedleSet holds the compiled needles of one project, one slice per category
type NeedleSet struct {
	ProjectName []Needle
	Aliases     []Needle
	TeamMembers []Needle
	Keywords    []Needle
}

// ByCategory returns the needle slice for c
func (s NeedleSet) ByCategory(c Category) []Needle {
	switch c {
	case ProjectName:
		return s.ProjectName
	case Alias:
		return s.Aliases
	case TeamMember:
		return s.TeamMembers
	case Keyword:
		return s.Keywords
	}
	return nil
}

// Empty reports whether the set has no needles in any category
func (s NeedleSet) Empty() bool {
	return len(s.ProjectName) == 0 &&
		len(s.Aliases) == 0 &&
		len(s.TeamMembers) == 0 &&
		len(s.Keywords) == 0
}

// Match records that a category fired, with the first literal that hit
type Match struct {
	Category Category
	Matched  string
}

// Extract scans a normalized document against one project's needle set and
// returns at most one Match per category, in descending weight order.
// A needle hits only as a whole word: "oc" never matches inside "location".
// Empty documents and empty needle sets yield no matches, never an error
func Extract(doc string, set NeedleSet) []Match {
	if doc == "" || set.Empty() {
		return nil
	}
	var out []Match
	for _, cat := range Categories {
		for _, nd := range set.ByCategory(cat) {
			if nd.Norm == "" {
				continue
			}
			if containsWord(doc, nd.Norm) {
				out = append(out, Match{Category: cat, Matched: nd.Raw})
				break // presence only, first hit wins the explanation slot
			}
		}
	}
	return out
}
