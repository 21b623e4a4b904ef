package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"scythra_presale/sdk"
)

// -----------------------------------------------------------------------------
// Presale State Persistence
// -----------------------------------------------------------------------------

// isInitialized reports whether the sale singleton exists.
func isInitialized() bool {
	ptr := sdk.StateGetObject(PresaleStateKey)
	return ptr != nil && *ptr != ""
}

// loadPresaleState fetches the singleton, reverting when the contract was
// never initialized.
func loadPresaleState() *PresaleState {
	ptr := sdk.StateGetObject(PresaleStateKey)
	if ptr == nil || *ptr == "" {
		fail(ErrNotInitialized, "presale not initialized")
	}
	st := &PresaleState{}
	if err := tinyjson.Unmarshal([]byte(*ptr), st); err != nil {
		sdk.Abort("presale state corrupted: " + err.Error())
	}
	return st
}

// savePresaleState persists the singleton back into contract storage.
func savePresaleState(st *PresaleState) {
	b, err := tinyjson.Marshal(st)
	if err != nil {
		sdk.Abort("failed to marshal presale state: " + err.Error())
	}
	sdk.StateSetObject(PresaleStateKey, string(b))
}

// requireOwner gates lifecycle ops on the stored owner identity.
func requireOwner(st *PresaleState, caller sdk.Address) {
	if st.Owner != caller {
		fail(ErrUnauthorized, "caller is not the presale owner")
	}
}
