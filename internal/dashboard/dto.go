package dashboard

type MemberStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Pending  int64 `json:"pending"`
}

type CardStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type TransactionStats struct {
	Pending  float64 `json:"pending"`
	Success  float64 `json:"success"`
	Failed   float64 `json:"failed"`
	Refunded float64 `json:"refunded"`
}

type DashboardResponse struct {
	Members      MemberStats      `json:"members"`
	Cards        CardStats        `json:"cards"`
	Transactions TransactionStats `json:"transactions"`
}
