package sdk

// Intent mirrors the host-side transaction intents (e.g. transfer.allow)
// attached to a contract call.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the execution environment snapshot the host exposes for the
// currently running invocation.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Intents     []Intent
}
