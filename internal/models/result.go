package models

type StatusRequest struct {
	Status CandidateStatus `json:"status"`
}

type StatusResponse struct {
	ID         string          `json:"id"`
	Status     CandidateStatus `json:"status"`
	SelectedID string          `json:"selected_id"`
}
