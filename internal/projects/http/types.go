package http

// createRequest is the POST /projects body. technologies and the url fields
// are optional and default to empty.
type createRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	ProjectURL   string   `json:"projectUrl"`
	RepoURL      string   `json:"repoUrl"`
}

// updateRequest is the PUT /projects/:id body. Nil fields are left
// unchanged; only the listed fields are ever applied to the stored record.
type updateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	ImageURL     *string   `json:"imageUrl"`
	ProjectURL   *string   `json:"projectUrl"`
	RepoURL      *string   `json:"repoUrl"`
}
