package ledger

import (
	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
)

// TransactionContextInterface is the slice of the Kalp SDK transaction
// context the ledgers need: world-state access, the event channel, the
// authenticated client identity and the transaction clock. The concrete
// kalpsdk transaction context satisfies it, so the business logic can be
// replaced (chaincode upgrade) without the persisted state ever depending
// on a particular logic version.
type TransactionContextInterface interface {
	GetState(key string) ([]byte, error)
	PutStateWithoutKYC(key string, value []byte) error
	DelStateWithoutKYC(key string) error
	SetEvent(name string, payload []byte) error
	GetClientIdentity() cid.ClientIdentity
	GetTxTimestamp() (*timestamp.Timestamp, error)
}
