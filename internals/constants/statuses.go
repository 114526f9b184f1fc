package constants

// Donation-request lifecycle states. pending is initial; done and canceled are terminal.
const (
	DonationPending    = "pending"
	DonationInProgress = "inprogress"
	DonationDone       = "done"
	DonationCanceled   = "canceled"
)

var DonationStatuses = []string{
	DonationPending,
	DonationInProgress,
	DonationDone,
	DonationCanceled,
}

func IsValidDonationStatus(status string) bool {
	for _, s := range DonationStatuses {
		if s == status {
			return true
		}
	}
	return false
}
