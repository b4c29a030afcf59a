// Package interpreter maps free-text terminal input to scripted
// responses. Resolution is a fixed priority chain: secret commands,
// then topic keywords, then a project-name pass that may override the
// topic result, then the not-recognized fallback. The interpreter is
// pure: it holds only the read-only content catalog.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/samuel-avson/retrofolio/internal/domain"
)

// Fixed terminal strings.
const (
	BootBanner    = "SYSTEM_ONLINE... TYPE 'HELP' FOR COMMANDS."
	ClearedBanner = "TERMINAL_CLEARED. READY FOR INPUT..."
	NotRecognized = "COMMAND_NOT_RECOGNIZED. TRY 'HELP' FOR AVAILABLE COMMANDS."
)

// Interpreter resolves input lines against a content catalog.
type Interpreter struct {
	data domain.PortfolioData
}

// New creates an interpreter over the given catalog.
func New(data domain.PortfolioData) *Interpreter {
	return &Interpreter{data: data}
}

// Respond resolves one input line. It is total: every input yields a
// reply, unknown input included.
func (it *Interpreter) Respond(input string) domain.Reply {
	lower := strings.ToLower(strings.TrimSpace(input))

	for _, s := range secrets {
		if strings.Contains(lower, s.key) {
			return domain.Reply{
				Text:   renderSecret(s, it.data.Profile.Email),
				Kind:   domain.ReplySecret,
				Secret: s.key,
			}
		}
	}

	reply := it.routeTopic(lower)

	// Project names override the topic result; the last catalog
	// match wins when several titles collide.
	if reply.Kind != domain.ReplyClear {
		for _, p := range it.data.Projects {
			first := strings.ToLower(strings.SplitN(p.Title, " ", 2)[0])
			if first != "" && strings.Contains(lower, first) {
				reply = domain.Reply{
					Text:    it.projectCard(p),
					Kind:    domain.ReplyProject,
					Project: p.Title,
				}
			}
		}
	}

	return reply
}

// routeTopic tests the topic keyword groups in priority order.
func (it *Interpreter) routeTopic(lower string) domain.Reply {
	contains := func(keys ...string) bool {
		for _, k := range keys {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("who", "about") || lower == "whoami":
		return domain.Reply{Text: it.profileCard(), Kind: domain.ReplyTopic}
	case contains("project", "work", "built"):
		return domain.Reply{Text: it.projectList(), Kind: domain.ReplyTopic}
	case contains("skill", "stack", "tech"):
		return domain.Reply{Text: it.skillsCard(), Kind: domain.ReplyTopic}
	case contains("contact", "email", "connect"):
		return domain.Reply{Text: it.contactCard(), Kind: domain.ReplyTopic}
	case lower == "help" || lower == "?":
		return domain.Reply{Text: helpText, Kind: domain.ReplyTopic}
	case lower == "clear" || lower == "cls":
		return domain.Reply{Text: ClearedBanner, Kind: domain.ReplyClear}
	case contains("experience", "cv", "resume"):
		return domain.Reply{Text: it.experienceCard(), Kind: domain.ReplyTopic}
	}
	return domain.Reply{Text: NotRecognized, Kind: domain.ReplyUnknown}
}

// ─── Response Rendering ─────────────────────────────────────────────────────

const helpText = `
┌─ AVAILABLE_COMMANDS ───────────────────────────
│ whoami    - Display user profile
│ projects  - List all projects
│ skills    - Show technical stack
│ contact   - Get contact information
│ clear     - Clear terminal
│ help      - Show this message
├─ HINTS ────────────────────────────────────────
│ 🔮 There are secret commands to discover...
│ 🎮 Try the Konami code on the page!
└────────────────────────────────────────────────
`

func (it *Interpreter) profileCard() string {
	p := it.data.Profile
	return fmt.Sprintf(`
┌─ USER_PROFILE ─────────────────────────────────
│ NAME: %s
│ ROLE: %s
│ LOCATION: %s
├─ BIO ──────────────────────────────────────────
│ %s
└────────────────────────────────────────────────
`, p.Name, p.Tagline, p.Location, p.Bio)
}

func (it *Interpreter) projectList() string {
	var b strings.Builder
	for i, p := range it.data.Projects {
		tech := p.Tech
		if len(tech) > 3 {
			tech = tech[:3]
		}
		fmt.Fprintf(&b, "  %d. %s\n     └─ %s\n", i+1, p.Title, strings.Join(tech, ", "))
	}
	return fmt.Sprintf(`
┌─ PROJECT_LIST ─────────────────────────────────
%s├────────────────────────────────────────────────
│ Type project name for details
└────────────────────────────────────────────────
`, b.String())
}

func (it *Interpreter) skillsCard() string {
	s := it.data.Skills
	var areas strings.Builder
	for _, a := range s.Technical {
		fmt.Fprintf(&areas, "│ ▸ %s\n", a)
	}
	return fmt.Sprintf(`
┌─ TECHNICAL_STACK ──────────────────────────────
│ TOOLS: %s
│ LANGUAGES: %s
├─ EXPERTISE_AREAS ──────────────────────────────
%s└────────────────────────────────────────────────
`, strings.Join(s.Tools, ", "),
		strings.Join(s.Languages, ", "),
		areas.String())
}

func (it *Interpreter) contactCard() string {
	p := it.data.Profile
	return fmt.Sprintf(`
┌─ COMM_CHANNELS ────────────────────────────────
│ 📧 EMAIL: %s
│ 🐙 GITHUB: %s
│ 💼 LINKEDIN: %s
├────────────────────────────────────────────────
│ Response time: Usually within 24 hours
└────────────────────────────────────────────────
`, p.Email, p.Socials.GitHub, p.Socials.LinkedIn)
}

func (it *Interpreter) experienceCard() string {
	if len(it.data.Experience) == 0 {
		return NotRecognized
	}
	exp := it.data.Experience[0]
	return fmt.Sprintf(`
┌─ CURRENT_POSITION ─────────────────────────────
│ ROLE: %s
│ AT: %s
│ PERIOD: %s
├─ DESCRIPTION ──────────────────────────────────
│ %s
└────────────────────────────────────────────────
`, exp.Role, exp.Company, exp.Period, exp.Description)
}

func (it *Interpreter) projectCard(p domain.Project) string {
	link := p.Link
	if link == "" || link == "#" {
		link = "Coming soon..."
	}
	return fmt.Sprintf(`
┌─ PROJECT: %s ──────
│ %s
├─ TECH_STACK ───────────────────────────────────
│ %s
├─ LINK ─────────────────────────────────────────
│ %s
└────────────────────────────────────────────────
`, strings.ToUpper(p.Title), p.Description, strings.Join(p.Tech, " • "), link)
}
