package dto

type LikeResponse struct {
	Status     bool   `json:"status"`
	Liked      bool   `json:"liked"`
	Message    string `json:"message"`
	LikesCount int64  `json:"likes_count"`
}
