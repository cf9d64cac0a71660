package matchtrader

// Phase describes a single evaluation phase of a challenge.
type Phase struct {
	InitialBalance float64 `json:"initialBalance"`
}

// Challenge is a backend-defined trading-evaluation product. Read-only to
// this service; the backend owns the wire format.
type Challenge struct {
	ChallengeID string  `json:"challengeId"`
	Fee         float64 `json:"fee"`
	IsHidden    bool    `json:"isHidden"`
	Phases      []Phase `json:"phases"`
}

// Account represents an existing trading account for a user.
type Account struct {
	Email     string `json:"email"`
	AccountID string `json:"accountId"`
	Status    string `json:"status"`
}

// Credentials is the display-only copy of a trading account's login details.
// It is fetched on demand and never persisted by this service.
type Credentials struct {
	Server    string `json:"server"`
	Login     string `json:"login"`
	Password  string `json:"password"`
	AccountID string `json:"accountId"`
	Status    string `json:"status"`
}

// CreateDemoAccountInput carries the fields the backend requires to provision
// a demo trading account.
type CreateDemoAccountInput struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateDemoAccountResult is the backend's verdict on a creation request.
type CreateDemoAccountResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
