package models

// Status is the envelope status indicator.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

type GenericResponse struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

type PostData struct {
	Post Post `json:"post"`
}

type SinglePostResponse struct {
	Status Status   `json:"status"`
	Data   PostData `json:"data"`
}

type PostListResponse struct {
	Status  Status `json:"status"`
	Results int    `json:"results"`
	Posts   []Post `json:"posts"`
}

func NewSinglePostResponse(post Post) *SinglePostResponse {
	return &SinglePostResponse{
		Status: StatusSuccess,
		Data:   PostData{Post: post},
	}
}

func NewPostListResponse(posts []Post) *PostListResponse {
	if posts == nil {
		posts = []Post{}
	}
	return &PostListResponse{
		Status:  StatusSuccess,
		Results: len(posts),
		Posts:   posts,
	}
}
