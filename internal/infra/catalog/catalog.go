// Package catalog provides the portfolio content consumed by the
// interpreter and the assistant. The built-in catalog can be replaced
// wholesale by a TOML file for deployments with different content.
package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/samuel-avson/retrofolio/internal/domain"
)

// Default returns the built-in portfolio catalog.
func Default() domain.PortfolioData {
	return domain.PortfolioData{
		Profile: domain.Profile{
			Name:     "Samuel Maxwell Obeng Avornyoh",
			Tagline:  "AI Engineer | Blockchain Dev | Embedded Systems",
			Location: "Ghana",
			Phone:    "+233547244783",
			Email:    "samuelavson360@gmail.com",
			Bio:      "I specialize in building intelligent agents, architecting embedded systems, and developing secure blockchain solutions. My work bridges the gap between advanced AI research, hardware design, and decentralized technologies.",
			Socials: domain.Socials{
				GitHub:   "https://github.com/samuel-1-avson",
				LinkedIn: "https://www.linkedin.com/in/samuel-maxwell-obeng-avornyoh-b07763252/",
			},
		},
		Skills: domain.Skills{
			Technical: []string{"Data Engineering", "Prompt Engineering", "Blockchain", "Machine Learning", "Automation", "IoT Engineering", "Game Dev"},
			Tools:     []string{"Python", "SQL", "GCP", "Docker", "LLMs", "Solidity", "ANNOY Vector DB", "Bash"},
			Soft:      []string{"Adaptability", "Problem-solving", "Leadership", "Communication"},
			Languages: []string{"English", "Asante-Twi"},
		},
		Education: []domain.Education{
			{
				Degree:  "BSc. Computer Science and Engineering",
				School:  "University of Mines and Technology",
				Period:  "Expected Nov 2025",
				Details: "Second Upper Class. Courses: AI, Data Science, Robotics, Linear Algebra.",
			},
		},
		Experience: []domain.Experience{
			{
				Role:        "AI/ML Engineer NSP",
				Company:     "Really Great Tech",
				Period:      "Nov 2025 - Present",
				Description: "Serving as an AI/Machine Learning Engineer for National Service, contributing to advanced tech solutions.",
			},
			{
				Role:        "Blockchain Game Developer",
				Company:     "Nexus Playground / Community",
				Period:      "May 2025 - Present",
				Description: "Created an action-packed vertical-scrolling roguelike game for the Nexus Playground Contest. Active Web3/Forex facilitator on LinkedIn and community groups.",
			},
			{
				Role:        "Machine Learning Intern",
				Company:     "Makersplace",
				Period:      "Sep 2023 - Jan 2024",
				Description: "Created a generative AI model for robotic facilitators and trained it on guidebooks. Integrated AI agents with Telegram/WhatsApp using FastAPI. Developed ML models for financial forecasting and created visual dashboards for agent analytics.",
			},
		},
		Awards: []string{
			"First Place: CodeAfrique & Art Exhibition Robotics Competition",
			"IT President: Kumasi Anglican Senior High School (Led 70+ students in programming)",
		},
		Projects: []domain.Project{
			{
				Title:       "NeuroBench IDE",
				Description: "Professional-grade embedded systems IDE built with Tauri (Rust + SolidJS). Features visual FSM design with drag-and-drop, automated multi-language code generation (C, C++, Rust, Ada, Assembly), 90+ IPC commands, advanced terminal with 30+ embedded commands, real-time performance monitoring, and AI-assisted development with Gemini integration.",
				Link:        "https://github.com/samuel-1-avson/Neurostate",
				Tech:        []string{"Rust", "Tauri", "SolidJS", "TypeScript", "STM32", "probe-rs"},
			},
			{
				Title:       "Music Companion",
				Description: "AI-powered music platform with Gemini AI discovery, multi-provider search (YouTube, Spotify, Last.fm), real-time WebSocket collaboration, and offline capabilities.",
				Link:        "https://github.com/samuel-1-avson/music-companion",
				Tech:        []string{"TypeScript", "React", "Gemini AI", "WebSocket", "Supabase"},
			},
			{
				Title:       "Sign Language Detection",
				Description: "Real-time sign language recognition using a Hybrid CNN/LSTM architecture for accurate gesture classification and translation.",
				Link:        "https://github.com/samuel-1-avson/Sign-Language-Detection-Hybrid-CNN-LSTM",
				Tech:        []string{"Python", "TensorFlow", "CNN", "LSTM", "OpenCV"},
			},
			{
				Title:       "Sound Anomaly Detection",
				Description: "Audio anomaly detection system for industrial applications. Identifies unusual sounds in machinery for predictive maintenance.",
				Link:        "https://github.com/samuel-1-avson/Sound-Anomaly-Detection-SAD-",
				Tech:        []string{"Python", "Deep Learning", "Audio Processing", "Django"},
			},
			{
				Title:       "Healthcare No-Show Prediction",
				Description: "ML system predicting patient appointment no-shows to reduce healthcare losses. Features hyperparameter tuning, Streamlit dashboard, and comprehensive data pipelines.",
				Link:        "https://github.com/samuel-1-avson/healthcare-appointments",
				Tech:        []string{"Python", "Scikit-learn", "Streamlit", "Jupyter", "Nginx"},
			},
			{
				Title:       "Industrial Fault Detection",
				Description: "IoT system using Raspberry Pi, Arduino, and tilt sensors to analyze machinery data in real-time for anomaly detection.",
				Link:        "#",
				Tech:        []string{"Raspberry Pi", "Arduino", "Python", "Sensors"},
			},
		},
	}
}

// Load reads a catalog override from a TOML file. An empty path
// returns the built-in catalog.
func Load(path string) (domain.PortfolioData, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.PortfolioData{}, fmt.Errorf("read catalog: %w", err)
	}
	var data domain.PortfolioData
	if err := toml.Unmarshal(raw, &data); err != nil {
		return domain.PortfolioData{}, fmt.Errorf("parse catalog: %w", err)
	}
	return data, nil
}
