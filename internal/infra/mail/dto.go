package mail

type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	SalesInbox string
}

type NewLeadEmailData struct {
	Name    string
	Email   string
	Phone   string
	Product string
}

type DealClosedEmailData struct {
	LeadID int64
	Status string
}
