package softskills

import "sort"

// Catalogue maps each soft skill to the scenario descriptions a student can practise.
var Catalogue = map[string][]string{
	"Communication": {
		"Giving constructive feedback to a peer",
		"Handling a disagreement over a project's direction",
		"Clarifying ambiguous requirements from a project manager",
		"Negotiating a deadline extension",
	},
	"Teamwork": {
		"Resolving a conflict with a team member",
		"Encouraging a quiet team member to share ideas",
		"Taking ownership of a mistake that affected the team",
		"Collaborating on a code review effectively",
	},
	"Leadership": {
		"Motivating the team during a difficult phase",
		"Delegating tasks fairly and effectively",
		"Mediating a dispute between two team members",
		"Presenting the team's work to stakeholders",
	},
}

func Skills() []string {
	skills := make([]string, 0, len(Catalogue))
	for s := range Catalogue {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
