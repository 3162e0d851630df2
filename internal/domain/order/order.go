package order

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusPaid       Status = "PAID"
	StatusExpired    Status = "EXPIRED"
	StatusFailed     Status = "FAILED"
	StatusTerminated Status = "TERMINATED"
)

// Currency is fixed; the admission flow only charges in rupees.
const Currency = "INR"

const Note = "Admission Payment"

type CustomerDetails struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Order is the in-memory representation of one payment attempt. It is
// built from an Applicant, sent to the gateway and discarded; the
// gateway is the system of record.
type Order struct {
	ID        string
	Amount    float64
	Currency  string
	Customer  CustomerDetails
	Note      string
	ReturnURL string
}
