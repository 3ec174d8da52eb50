package conversation

// Turn is one completed exchange: the user's question and the model's answer.
// Stored as a JSONB array element; field names are part of the storage format.
type Turn struct {
	User  string `json:"user"`
	Model string `json:"model"`
}
