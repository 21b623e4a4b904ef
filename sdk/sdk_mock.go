//go:build !wasm

package sdk

import "fmt"

// Mock host for native builds. It emulates the pieces of the substrate the
// contract relies on: keyed string storage, the execution env, hive ledger
// balances and log capture. Abort/Revert become typed panics so a test
// harness can catch them and roll state back, the same all-or-nothing
// outcome the real host enforces per invocation.

// AbortError is the panic payload of a mocked sdk.Abort.
type AbortError struct {
	Msg string
}

func (e AbortError) Error() string {
	return "abort: " + e.Msg
}

// RevertError is the panic payload of a mocked sdk.Revert.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e RevertError) Error() string {
	return fmt.Sprintf("revert [%s]: %s", e.Symbol, e.Msg)
}

// MockTransfer records a single ledger movement performed during a call.
type MockTransfer struct {
	From   Address
	To     Address
	Amount int64
	Asset  Asset
}

var (
	mockState    map[string]string
	mockBalances map[string]int64

	// MockEnv is the env snapshot returned to the contract; tests set the
	// sender, timestamp and intents on it before each call.
	MockEnv Env

	// MockLogs captures every sdk.Log line in order.
	MockLogs []string

	// MockTransfers captures every draw/transfer in order.
	MockTransfers []MockTransfer
)

func init() {
	ResetMock()
}

// ResetMock wipes storage, balances, logs and restores a default env.
func ResetMock() {
	mockState = map[string]string{}
	mockBalances = map[string]int64{}
	MockLogs = nil
	MockTransfers = nil
	MockEnv = Env{
		ContractId:  "contract:presale",
		TxId:        "tx-0",
		Index:       0,
		OpIndex:     0,
		BlockId:     "block-0",
		BlockHeight: 1,
		Timestamp:   "2025-01-01T00:00:00",
		Sender:      Sender{Address: Address("hive:someone")},
	}
}

// MockSnapshot freezes storage and balances so a failed invocation can be
// rolled back by the test harness.
type MockSnapshot struct {
	state     map[string]string
	balances  map[string]int64
	logs      int
	transfers int
}

// TakeMockSnapshot copies the current mock storage and ledger.
func TakeMockSnapshot() MockSnapshot {
	s := MockSnapshot{
		state:     make(map[string]string, len(mockState)),
		balances:  make(map[string]int64, len(mockBalances)),
		logs:      len(MockLogs),
		transfers: len(MockTransfers),
	}
	for k, v := range mockState {
		s.state[k] = v
	}
	for k, v := range mockBalances {
		s.balances[k] = v
	}
	return s
}

// RestoreMockSnapshot discards everything written since the snapshot.
func RestoreMockSnapshot(s MockSnapshot) {
	mockState = s.state
	mockBalances = s.balances
	MockLogs = MockLogs[:s.logs]
	MockTransfers = MockTransfers[:s.transfers]
}

func balanceKey(addr Address, asset Asset) string {
	return addr.String() + "|" + asset.String()
}

// SetMockBalance funds an account on the mocked hive ledger.
func SetMockBalance(addr Address, asset Asset, amount int64) {
	mockBalances[balanceKey(addr, asset)] = amount
}

// MockContractAddress returns the address contract-held funds sit under.
func MockContractAddress() Address {
	return Address(MockEnv.ContractId)
}

// --- host call mocks ---

func Log(s string) {
	MockLogs = append(MockLogs, s)
}

func Abort(msg string) {
	panic(AbortError{Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(RevertError{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	return MockEnv
}

func GetEnvKey(key string) *string {
	switch key {
	case "contract.id":
		return &MockEnv.ContractId
	case "tx.id":
		return &MockEnv.TxId
	case "block.id":
		return &MockEnv.BlockId
	case "block.timestamp":
		return &MockEnv.Timestamp
	default:
		return nil
	}
}

func GetBalance(address Address, asset Asset) int64 {
	return mockBalances[balanceKey(address, asset)]
}

// HiveDraw moves funds sender -> contract, trapping on insufficient balance
// like the real host does.
func HiveDraw(amount int64, asset Asset) {
	from := MockEnv.Sender.Address
	if amount <= 0 {
		Abort("draw amount must be positive")
	}
	if mockBalances[balanceKey(from, asset)] < amount {
		Abort("insufficient balance for draw")
	}
	mockBalances[balanceKey(from, asset)] -= amount
	mockBalances[balanceKey(MockContractAddress(), asset)] += amount
	MockTransfers = append(MockTransfers, MockTransfer{
		From:   from,
		To:     MockContractAddress(),
		Amount: amount,
		Asset:  asset,
	})
}

// HiveTransfer moves contract-held funds towards a user address.
func HiveTransfer(to Address, amount int64, asset Asset) {
	from := MockContractAddress()
	if amount <= 0 {
		Abort("transfer amount must be positive")
	}
	if mockBalances[balanceKey(from, asset)] < amount {
		Abort("insufficient contract balance for transfer")
	}
	mockBalances[balanceKey(from, asset)] -= amount
	mockBalances[balanceKey(to, asset)] += amount
	MockTransfers = append(MockTransfers, MockTransfer{
		From:   from,
		To:     to,
		Amount: amount,
		Asset:  asset,
	})
}
