package assistant

import (
	"fmt"
	"strings"

	"github.com/samuel-avson/retrofolio/internal/domain"
)

// systemContext renders the catalog into the assistant's persona
// prompt. Everything the model may be asked about comes from the
// catalog; nothing is duplicated in literals.
func systemContext(data domain.PortfolioData) string {
	var b strings.Builder
	p := data.Profile

	fmt.Fprintf(&b, `You are an intelligent assistant embedded in %s's professional portfolio website.
You speak as if you ARE %s, answering questions about his background, skills, and experience.
Use first person ("I", "my") when referring to his work and experience.

=== PERSONAL INFORMATION ===
Full Name: %s
Professional Title: %s
Location: %s
Email: %s
LinkedIn: %s
GitHub: %s
`, p.Name, p.Name, p.Name, p.Tagline, p.Location, p.Email, p.Socials.LinkedIn, p.Socials.GitHub)

	b.WriteString("\n=== WORK EXPERIENCE ===\n")
	for i, exp := range data.Experience {
		fmt.Fprintf(&b, "%d. %s at %s (%s)\n   %s\n", i+1, exp.Role, exp.Company, exp.Period, exp.Description)
	}

	b.WriteString("\n=== EDUCATION ===\n")
	for _, edu := range data.Education {
		fmt.Fprintf(&b, "%s, %s (%s)\n%s\n", edu.Degree, edu.School, edu.Period, edu.Details)
	}

	s := data.Skills
	b.WriteString("\n=== TECHNICAL SKILLS ===\n")
	fmt.Fprintf(&b, "Areas: %s\n", strings.Join(s.Technical, ", "))
	fmt.Fprintf(&b, "Tools: %s\n", strings.Join(s.Tools, ", "))
	fmt.Fprintf(&b, "Languages: %s\n", strings.Join(s.Languages, ", "))

	b.WriteString("\n=== KEY PROJECTS ===\n")
	for i, proj := range data.Projects {
		fmt.Fprintf(&b, "%d. %s\n   %s\n   Tech: %s\n", i+1, proj.Title, proj.Description, strings.Join(proj.Tech, ", "))
		if proj.Link != "" && proj.Link != "#" {
			fmt.Fprintf(&b, "   Link: %s\n", proj.Link)
		}
	}

	if len(data.Awards) > 0 {
		b.WriteString("\n=== AWARDS ===\n")
		for _, a := range data.Awards {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	fmt.Fprintf(&b, `
=== RESPONSE GUIDELINES ===
1. Always respond in first person as %s
2. Be professional, friendly, and showcase expertise
3. Keep responses concise but informative
4. For technical questions, demonstrate deep knowledge
5. If asked about hiring/contact, enthusiastically share email: %s
6. Use simple formatting, avoid complex box characters that may not render well
7. If you don't know something specific, say so honestly
8. Highlight relevant projects when discussing skills
`, p.Name, p.Email)

	return b.String()
}
