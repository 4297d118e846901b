// Package cv holds the portfolio content and renders it as a printable
// HTML document.
package cv

import "github.com/zucenko/folio/nav"

type Profile struct {
	Photo    string `json:"photo"`
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Summary  string `json:"summary"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type Experience struct {
	ID               string   `json:"id"`
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	DateRange        string   `json:"dateRange"`
	Responsibilities []string `json:"responsibilities"`
}

// Project is a portfolio entry. Screen names an in-app screen that opens
// the project, if it has one.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubLink   string   `json:"githubLink,omitempty"`
	DemoLink     string   `json:"demoLink,omitempty"`
	Screen       string   `json:"screen,omitempty"`
}

type Education struct {
	ID           string   `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	DateRange    string   `json:"dateRange"`
	Coursework   []string `json:"coursework,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type HistoryItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
}

type CV struct {
	Profile    Profile       `json:"profile"`
	Experience []Experience  `json:"experience"`
	Projects   []Project     `json:"projects"`
	Education  []Education   `json:"education"`
	Activities []Activity    `json:"activities"`
	History    []HistoryItem `json:"history"`
}

// Playable returns the projects that open an in-app screen.
func (c CV) Playable() []Project {
	var out []Project
	for _, p := range c.Projects {
		if p.Screen != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c CV) Project(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Default is the content shipped with the app.
func Default() CV {
	return CV{
		Profile: Profile{
			Photo:    "https://example.com/photo.png",
			FullName: "Jane Doe",
			JobTitle: "Software Developer",
			Summary: "Software engineer with a master's degree and several years of building web and " +
				"mobile products. Enjoys turning rough ideas into reliable software and working " +
				"with people who raise the bar.",
			Email:    "jane.doe@example.com",
			Phone:    "+1 555 0100",
			Location: "Springfield",
		},
		Experience: []Experience{
			{
				ID:        "exp-1",
				JobTitle:  "Software Developer",
				Company:   "Example Labs",
				DateRange: "2023 - Present",
				Responsibilities: []string{
					"Built and maintained customer facing web applications",
					"Implemented responsive web interfaces and mobile applications",
					"Reviewed code and mentored new team members",
				},
			},
			{
				ID:        "exp-2",
				JobTitle:  "Junior Developer",
				Company:   "Acme Software",
				DateRange: "2021 - 2023",
				Responsibilities: []string{
					"Developed internal tools for the support team",
					"Wrote integration tests for the billing service",
				},
			},
		},
		Projects: []Project{
			{
				ID:           "snake",
				Name:         "Snake Game",
				Description:  "The classic arcade game with swipe and button controls, a countdown and a persisted high score.",
				Technologies: []string{"Go", "ebiten", "websocket"},
				Screen:       nav.ScreenSnakeGame,
			},
			{
				ID:           "folio",
				Name:         "Portfolio",
				Description:  "This portfolio, with a printable CV export.",
				Technologies: []string{"Go", "gin", "sqlite"},
				GithubLink:   "https://example.com/folio",
			},
		},
		Education: []Education{
			{
				ID:          "edu-1",
				Degree:      "Master of Science in Software Engineering",
				Institution: "Example University",
				DateRange:   "2019 - 2021",
				Coursework:  []string{"Distributed Systems", "Software Architecture"},
			},
			{
				ID:           "edu-2",
				Degree:       "Bachelor of Science in Computer Science",
				Institution:  "Example University",
				DateRange:    "2016 - 2019",
				Achievements: []string{"Graduated with honors"},
			},
		},
		Activities: []Activity{
			{ID: "act-1", Title: "Learning Go", Description: "Building small games and services", Icon: "code"},
		},
		History: []HistoryItem{
			{ID: "his-1", Title: "Joined Example Labs", Description: "Started as a software developer", Date: "2023", Icon: "briefcase"},
		},
	}
}
