package conversation

// Fields are the claim intake answers collected from one sender across turns.
type Fields struct {
	PolicyDate string `json:"policydate,omitempty"`
	PolicyType string `json:"policytype,omitempty"`
	Hospital   string `json:"hospital,omitempty"`
}

// Store keeps Fields per sender.
// Update must apply mutate atomically with respect to other calls for the same sender.
type Store interface {
	Get(senderID string) Fields
	Update(senderID string, mutate func(*Fields))
}
