// Package domain holds the shared types for Retrofolio: the portfolio
// content catalog, the gamification aggregate, and the chat message
// shapes exchanged between the interpreter and its callers.
package domain

// Profile is the identity block of the portfolio catalog.
type Profile struct {
	Name     string  `json:"name" toml:"name"`
	Tagline  string  `json:"tagline" toml:"tagline"`
	Location string  `json:"location" toml:"location"`
	Phone    string  `json:"phone" toml:"phone"`
	Email    string  `json:"email" toml:"email"`
	Bio      string  `json:"bio" toml:"bio"`
	Socials  Socials `json:"socials" toml:"socials"`
}

// Socials holds external profile links.
type Socials struct {
	GitHub   string `json:"github" toml:"github"`
	LinkedIn string `json:"linkedin" toml:"linkedin"`
}

// Skills groups skill names by area.
type Skills struct {
	Technical []string `json:"technical" toml:"technical"`
	Tools     []string `json:"tools" toml:"tools"`
	Soft      []string `json:"soft" toml:"soft"`
	Languages []string `json:"languages" toml:"languages"`
}

// Education is a single study entry.
type Education struct {
	School  string `json:"school" toml:"school"`
	Degree  string `json:"degree" toml:"degree"`
	Period  string `json:"period" toml:"period"`
	Details string `json:"details" toml:"details"`
}

// Experience is a single CV entry.
type Experience struct {
	Role        string `json:"role" toml:"role"`
	Company     string `json:"company" toml:"company"`
	Period      string `json:"period" toml:"period"`
	Description string `json:"description" toml:"description"`
}

// Project is a portfolio project entry. Details carries long-form
// text for the project's rich view; it may be empty.
type Project struct {
	Title       string   `json:"title" toml:"title"`
	Description string   `json:"description" toml:"description"`
	Tech        []string `json:"tech" toml:"tech"`
	Link        string   `json:"link" toml:"link"`
	Details     string   `json:"details" toml:"details"`
}

// PortfolioData is the full read-only content catalog consumed by the
// interpreter and the assistant prompt builder.
type PortfolioData struct {
	Profile    Profile      `json:"profile" toml:"profile"`
	Skills     Skills       `json:"skills" toml:"skills"`
	Education  []Education  `json:"education" toml:"education"`
	Experience []Experience `json:"experience" toml:"experience"`
	Awards     []string     `json:"awards" toml:"awards"`
	Projects   []Project    `json:"projects" toml:"projects"`
}
