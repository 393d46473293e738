package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
)

var seedProjects = []project.Project{
	{
		Title:       "The Neon Dashboard",
		Description: "A futuristic analytics dashboard for tracking superhero activity across the multiverse.",
		Tags:        []string{"React", "D3.js", "Tailwind"},
		ImageURL:    "https://picsum.photos/400/300?random=1",
		Link:        "#",
	},
	{
		Title:       "AI Story Generator",
		Description: "Generates comic book scripts using Gemini AI. POW! BAM! instant stories.",
		Tags:        []string{"Gemini API", "TypeScript", "Node"},
		ImageURL:    "https://picsum.photos/400/300?random=2",
		Link:        "#",
	},
	{
		Title:       "Pixel Commerce",
		Description: "An e-commerce platform for retro gaming collectibles with 8-bit aesthetics.",
		Tags:        []string{"Next.js", "Stripe", "PostgreSQL"},
		ImageURL:    "https://picsum.photos/400/300?random=3",
		Link:        "#",
	},
}

var seedExperiences = []experience.Experience{
	{
		Role:        "Senior Tech Lead",
		Company:     "Avengers Tech Division",
		Period:      "2022 - PRESENT",
		Description: "Leading a squad of elite developers to build the ultimate defense system interface.",
		Side:        experience.SideLeft,
	},
	{
		Role:        "Full Stack Developer",
		Company:     "Stark Industries",
		Period:      "2020 - 2022",
		Description: "Developed the HUD interface for the Mark 42 suit. Optimized rendering performance by 300%.",
		Side:        experience.SideRight,
	},
	{
		Role:        "Junior Web Slinger",
		Company:     "Daily Bugle Web Team",
		Period:      "2018 - 2020",
		Description: "Maintained the news portal and fought off countless spam bots.",
		Side:        experience.SideLeft,
	},
}

var seedSkills = []skill.Skill{
	{Name: "Frontend Engineering", Level: 95, Color: "bg-comic-secondary"},
	{Name: "React / React Native", Level: 90, Color: "bg-comic-accent"},
	{Name: "Node.js Backend", Level: 80, Color: "bg-comic-alert"},
	{Name: "AI Integration", Level: 85, Color: "bg-green-400"},
}

var seedGadgets = []gadget.Gadget{
	{ID: "vs", Name: "VS Code", Icon: "💻", Description: "The main command center."},
	{ID: "git", Name: "Git", Icon: "🌿", Description: "Time travel device."},
	{ID: "figma", Name: "Figma", Icon: "🎨", Description: "Blueprint generator."},
	{ID: "docker", Name: "Docker", Icon: "🐳", Description: "Containment unit."},
	{ID: "postman", Name: "Postman", Icon: "🚀", Description: "Signal tester."},
	{ID: "npm", Name: "NPM", Icon: "📦", Description: "Supply crate."},
}

// Seed fills each empty content table with the starter portfolio. Tables
// that already hold rows are left alone.
func Seed(ctx context.Context, db *DB) error {
	projects := NewProjectRepository(db)
	experiences := NewExperienceRepository(db)
	skills := NewSkillRepository(db)
	gadgets := NewGadgetRepository(db)

	steps := []struct {
		table string
		fill  func() error
	}{
		{"projects", func() error {
			for _, p := range seedProjects {
				if err := projects.Create(ctx, &p); err != nil {
					return err
				}
			}
			return nil
		}},
		{"experiences", func() error {
			for _, e := range seedExperiences {
				if err := experiences.Create(ctx, &e); err != nil {
					return err
				}
			}
			return nil
		}},
		{"skills", func() error {
			for _, s := range seedSkills {
				if err := skills.Create(ctx, &s); err != nil {
					return err
				}
			}
			return nil
		}},
		{"gadgets", func() error {
			for _, g := range seedGadgets {
				if err := gadgets.Create(ctx, &g); err != nil {
					return err
				}
			}
			return nil
		}},
	}

	for _, step := range steps {
		var count int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+step.table).Scan(&count); err != nil {
			return fmt.Errorf("counting %s: %w", step.table, err)
		}
		if count > 0 {
			continue
		}
		if err := step.fill(); err != nil {
			return fmt.Errorf("seeding %s: %w", step.table, err)
		}
	}
	return nil
}
