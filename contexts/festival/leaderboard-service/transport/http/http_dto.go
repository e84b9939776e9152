package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoriesResponse struct {
	Status string        `json:"status"`
	Data   []CategoryDTO `json:"data"`
}

type CompetitionDTO struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type CompetitionsResponse struct {
	Status string           `json:"status"`
	Data   []CompetitionDTO `json:"data"`
}

type ResultRowDTO struct {
	Place string `json:"place"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Team  string `json:"team"`
}

type CompetitionResultsResponse struct {
	Status string `json:"status"`
	Data   struct {
		CompetitionID   string         `json:"competition_id"`
		CompetitionName string         `json:"competition_name"`
		Results         []ResultRowDTO `json:"results"`
	} `json:"data"`
}

type StandingDTO struct {
	Rank  int    `json:"rank"`
	Team  string `json:"team"`
	Score int    `json:"score"`
}

type LeaderboardsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Overall    []StandingDTO            `json:"overall"`
		ByCategory map[string][]StandingDTO `json:"by_category"`
	} `json:"data"`
}
