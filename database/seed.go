package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"portfolio/content"
)

type SeedSummary struct {
	Projects       int
	Skills         int
	Technologies   int
	Certifications int
	Posts          int
	Contacts       int
}

// Seed replaces all content with the sample data set. Admin users are kept.
func (s *Store) Seed(ctx context.Context) (*SeedSummary, error) {
	projects := []Project{
		{
			Title:           "E-Commerce Platform",
			Description:     "Full-stack e-commerce solution with Next.js and Stripe",
			LongDescription: "A comprehensive e-commerce platform built with Next.js, featuring user authentication, product management, shopping cart, and payment processing with Stripe.",
			Technologies:    encodeList([]string{"Next.js", "TypeScript", "Prisma", "PostgreSQL", "Stripe"}),
			GithubURL:       "https://github.com/example/ecommerce",
			LiveURL:         "https://ecommerce.example.com",
			Featured:        true,
			Order:           1,
		},
		{
			Title:           "DevOps Dashboard",
			Description:     "Monitoring dashboard for containerized applications",
			LongDescription: "A real-time monitoring dashboard for Docker containers and Kubernetes clusters, built with React and integrated with Prometheus and Grafana.",
			Technologies:    encodeList([]string{"React", "Docker", "Kubernetes", "Prometheus", "Grafana"}),
			GithubURL:       "https://github.com/example/devops-dashboard",
			Featured:        true,
			Order:           2,
		},
	}

	skills := []Skill{
		{Name: "JavaScript", Category: "Frontend", Level: 90, Icon: "🟨", Color: "#f7df1e", Order: 1},
		{Name: "TypeScript", Category: "Frontend", Level: 85, Icon: "🔷", Color: "#3178c6", Order: 2},
		{Name: "React", Category: "Frontend", Level: 88, Icon: "⚛️", Color: "#61dafb", Order: 3},
		{Name: "Next.js", Category: "Frontend", Level: 85, Icon: "▲", Color: "#000000", Order: 4},
		{Name: "Node.js", Category: "Backend", Level: 82, Icon: "🟢", Color: "#339933", Order: 5},
		{Name: "Docker", Category: "DevOps", Level: 80, Icon: "🐳", Color: "#2496ed", Order: 6},
		{Name: "Kubernetes", Category: "DevOps", Level: 75, Icon: "☸️", Color: "#326ce5", Order: 7},
		{Name: "PostgreSQL", Category: "Database", Level: 78, Icon: "🐘", Color: "#336791", Order: 8},
	}

	technologies := []Technology{
		{Name: "React", Category: "Framework", Description: "A JavaScript library for building user interfaces", Icon: "⚛️", Color: "#61dafb", Website: "https://reactjs.org", Featured: true, Order: 1},
		{Name: "Docker", Category: "Tool", Description: "Platform for developing, shipping, and running applications", Icon: "🐳", Color: "#2496ed", Website: "https://docker.com", Featured: true, Order: 2},
		{Name: "TypeScript", Category: "Language", Description: "Typed superset of JavaScript", Icon: "🔷", Color: "#3178c6", Website: "https://typescriptlang.org", Featured: true, Order: 3},
	}

	certifications := []Certification{
		{
			Name:          "AWS Certified Solutions Architect",
			Issuer:        "Amazon Web Services",
			Description:   "Professional-level certification for designing distributed systems on AWS",
			CredentialID:  "AWS-SAA-123456",
			CredentialURL: "https://aws.amazon.com/verification",
			IssueDate:     day(2023, time.June, 15),
			ExpiryDate:    dayPtr(2026, time.June, 15),
			Featured:      true,
			Order:         1,
		},
		{
			Name:          "Certified Kubernetes Administrator",
			Issuer:        "Cloud Native Computing Foundation",
			Description:   "Certification for Kubernetes administration skills",
			CredentialID:  "CKA-789012",
			CredentialURL: "https://training.linuxfoundation.org/certification/verify",
			IssueDate:     day(2023, time.August, 20),
			ExpiryDate:    dayPtr(2026, time.August, 20),
			Featured:      true,
			Order:         2,
		},
	}

	posts := []BlogPost{
		{
			Title:     "Getting Started with Docker and Kubernetes",
			Slug:      "getting-started-docker-kubernetes",
			Excerpt:   "Learn the basics of containerization and orchestration",
			Content:   "# Getting Started with Docker and Kubernetes\n\nContainerization has revolutionized how we deploy applications...",
			Published: true,
			Featured:  true,
			Tags:      encodeList([]string{"Docker", "Kubernetes", "DevOps"}),
			Views:     1250,
		},
		{
			Title:     "Building Scalable APIs with Next.js",
			Slug:      "building-scalable-apis-nextjs",
			Excerpt:   "Best practices for creating robust API endpoints",
			Content:   "# Building Scalable APIs with Next.js\n\nNext.js provides excellent tools for building APIs...",
			Published: true,
			Tags:      encodeList([]string{"Next.js", "API", "TypeScript"}),
			Views:     890,
		},
	}
	for i := range posts {
		posts[i].ReadTime = content.ReadingTime(posts[i].Content)
	}

	contacts := []Contact{
		{
			Name:    "Sarah Johnson",
			Email:   "sarah@company.com",
			Subject: "DevOps Consulting Opportunity",
			Message: "Hi, I came across your portfolio and I'm impressed with your DevOps expertise. We have an exciting opportunity for a DevOps consultant role at our startup. Would you be interested in discussing this further?",
		},
		{
			Name:    "Mike Chen",
			Email:   "mike.chen@techcorp.com",
			Subject: "Full-Stack Developer Position",
			Message: "Hello, we're looking for a senior full-stack developer with your skill set. Your experience with Next.js and Kubernetes is exactly what we need. Let's schedule a call to discuss the role and compensation.",
		},
		{
			Name:    "Emily Rodriguez",
			Email:   "emily@startup.io",
			Subject: "Project Collaboration",
			Message: "Hi there! I loved your blog post about microservices. We're building a similar architecture and would love to collaborate or get some consulting help. Are you available for freelance work?",
			Read:    true,
		},
	}

	settings := DefaultSettings()
	settings.SiteName = "Ramy Bouchareb Portfolio"
	settings.SiteDescription = "DevOps-focused Full-Stack Developer"
	settings.Email = "ramy@ramybouchareb.me"
	settings.Phone = "+216 54 123 456"
	settings.Location = "Tunis, Tunisia"
	settings.GithubURL = "https://github.com/RamyBouchareb25"
	settings.LinkedinURL = "https://linkedin.com/in/ramy-bouchareb"
	settings.TwitterURL = "https://twitter.com/ramybouchareb"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&Contact{}, &BlogPost{}, &Skill{}, &Project{}, &Settings{}, &Technology{}, &Certification{}} {
			if err := all.Delete(model).Error; err != nil {
				return err
			}
		}

		for _, rows := range []any{&settings, &projects, &skills, &technologies, &certifications, &posts, &contacts} {
			if err := tx.Create(rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SeedSummary{
		Projects:       len(projects),
		Skills:         len(skills),
		Technologies:   len(technologies),
		Certifications: len(certifications),
		Posts:          len(posts),
		Contacts:       len(contacts),
	}, nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}
