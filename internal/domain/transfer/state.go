package domain_transfer

type Status string

const (
	StatusReceived  Status = "RECEIVED"
	StatusValidated Status = "VALIDATED"
	StatusLocking   Status = "LOCKING"
	StatusDebited   Status = "DEBITED"
	StatusCredited  Status = "CREDITED"
	StatusDone      Status = "DONE"
	StatusRejected  Status = "REJECTED"
)

func (s Status) IsFinal() bool {
	return s == StatusDone || s == StatusRejected
}

var forward = map[Status]Status{
	StatusReceived:  StatusValidated,
	StatusValidated: StatusLocking,
	StatusLocking:   StatusDebited,
	StatusDebited:   StatusCredited,
	StatusCredited:  StatusDone,
}

type RejectReason string

const (
	ReasonAccountNotFound   RejectReason = "ACCOUNT_NOT_FOUND"
	ReasonInvalidAmount     RejectReason = "INVALID_AMOUNT"
	ReasonSameAccount       RejectReason = "SAME_ACCOUNT"
	ReasonLockTimeout       RejectReason = "LOCK_TIMEOUT"
	ReasonInterrupted       RejectReason = "INTERRUPTED"
	ReasonInsufficientFunds RejectReason = "INSUFFICIENT_FUNDS"
)

// rejectableFrom lists the states each rejection may leave. Nothing can be
// rejected once the source has been debited.
var rejectableFrom = map[RejectReason][]Status{
	ReasonAccountNotFound:   {StatusReceived},
	ReasonInvalidAmount:     {StatusReceived, StatusValidated},
	ReasonSameAccount:       {StatusReceived, StatusValidated},
	ReasonLockTimeout:       {StatusLocking},
	ReasonInterrupted:       {StatusLocking},
	ReasonInsufficientFunds: {StatusLocking},
}

func (r RejectReason) allowedFrom(s Status) bool {
	for _, from := range rejectableFrom[r] {
		if from == s {
			return true
		}
	}

	return false
}
