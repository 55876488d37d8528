package model

type GetStatsRequest struct {
	PageID string `json:"pageId"`
}

type GetStatsResponse struct {
	TotalPages  int64 `json:"totalPages"`
	TotalSpins  int64 `json:"totalSpins"`
	TotalPrizes int64 `json:"totalPrizes"`
	TotalUsers  int64 `json:"totalUsers"`
}
