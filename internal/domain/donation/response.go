package donation

// Response is the decoded reply of the donation webhook. Absent or
// wrongly typed fields take their zero value; in particular Success is
// false unless the server sent a JSON true.
type Response struct {
	Success    bool
	Message    string
	DonationID string
	Error      string
}
