package refresh_table

// RefreshResponse HTTP response model: фрагмент сетки для частичной
// замены содержимого на странице
type RefreshResponse struct {
	Success bool   `json:"success"`
	HTML    string `json:"html"`
}
