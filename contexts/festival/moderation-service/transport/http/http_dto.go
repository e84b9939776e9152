package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type RenameTeamRequest struct {
	Name string `json:"name"`
}

type TeamResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

type CreateCompetitionRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type RenameCompetitionRequest struct {
	Name string `json:"name"`
}

type ResultRowDTO struct {
	Place string `json:"place"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Team  string `json:"team"`
}

type SaveResultsRequest struct {
	Results []ResultRowDTO `json:"results"`
}

type CompetitionResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID          string         `json:"id"`
		CategoryID  string         `json:"category_id"`
		Name        string         `json:"name"`
		IsPublished bool           `json:"is_published"`
		Results     []ResultRowDTO `json:"results"`
	} `json:"data"`
}
