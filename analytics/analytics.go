package analytics

import "context"

type PageStat struct {
	Page   string `json:"page"`
	Views  int    `json:"views"`
	Clicks int    `json:"clicks"`
}

type SearchQuery struct {
	Query       string  `json:"query"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Report struct {
	TotalViews      int           `json:"totalViews"`
	MonthlyViews    int           `json:"monthlyViews"`
	TotalVisitors   int           `json:"totalVisitors"`
	MonthlyVisitors int           `json:"monthlyVisitors"`
	TotalPosts      int           `json:"totalPosts"`
	PublishedPosts  int           `json:"publishedPosts"`
	TopPages        []PageStat    `json:"topPages"`
	SearchQueries   []SearchQuery `json:"searchQueries"`
	RecentActivity  []Activity    `json:"recentActivity"`
}

// Reader supplies the analytics report shown in the admin panel.
type Reader interface {
	Report(ctx context.Context) (*Report, error)
}

// MockReader returns a fixed report until a search console integration
// exists.
type MockReader struct{}

func (MockReader) Report(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Report{
		TotalViews:      15420,
		MonthlyViews:    3240,
		TotalVisitors:   8950,
		MonthlyVisitors: 1890,
		TotalPosts:      12,
		PublishedPosts:  8,
		TopPages: []PageStat{
			{Page: "/", Views: 4520, Clicks: 320},
			{Page: "/projects", Views: 3210, Clicks: 280},
			{Page: "/blog", Views: 2890, Clicks: 240},
			{Page: "/about", Views: 2340, Clicks: 180},
			{Page: "/skills", Views: 1890, Clicks: 150},
		},
		SearchQueries: []SearchQuery{
			{Query: "devops engineer portfolio", Impressions: 1200, Clicks: 45, CTR: 3.75},
			{Query: "next.js developer", Impressions: 980, Clicks: 38, CTR: 3.88},
			{Query: "docker kubernetes tutorial", Impressions: 850, Clicks: 32, CTR: 3.76},
			{Query: "full stack developer", Impressions: 720, Clicks: 28, CTR: 3.89},
			{Query: "typescript projects", Impressions: 650, Clicks: 25, CTR: 3.85},
		},
		RecentActivity: []Activity{
			{Type: "view", Description: "New page view on /projects", Date: "2 hours ago"},
			{Type: "search", Description: "Appeared in search for 'devops portfolio'", Date: "5 hours ago"},
			{Type: "view", Description: "Blog post viewed: 'Building Microservices'", Date: "1 day ago"},
			{Type: "click", Description: "Click from Google search", Date: "1 day ago"},
			{Type: "view", Description: "Portfolio project viewed", Date: "2 days ago"},
		},
	}, nil
}
