package api

// UpdatePersonalRequest is the request body for a personal-info field edit.
type UpdatePersonalRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// AddItemResponse carries the id assigned to a newly created entity.
type AddItemResponse struct {
	ID string `json:"id"`
}

// SaveResponse reports where a save landed ("file" or "clipboard").
type SaveResponse struct {
	Result string `json:"result"`
}

// SaveStatusResponse is the current save-status state machine position.
type SaveStatusResponse struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}
