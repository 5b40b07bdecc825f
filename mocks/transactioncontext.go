// Package mocks holds hand-maintained fakes for the transaction context and
// client identity, in the counterfeiter stub style: set a XxxStub function
// for per-call behavior, or XxxReturns for a fixed result.
package mocks

import (
	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
)

type TransactionContext struct {
	GetStateStub           func(string) ([]byte, error)
	PutStateWithoutKYCStub func(string, []byte) error
	DelStateWithoutKYCStub func(string) error
	SetEventStub           func(string, []byte) error
	GetClientIdentityStub  func() cid.ClientIdentity
	GetTxTimestampStub     func() (*timestamp.Timestamp, error)

	getStateReturns struct {
		result1 []byte
		result2 error
	}
	putStateWithoutKYCReturns error
	delStateWithoutKYCReturns error
	setEventReturns           error
	getClientIdentityReturns  cid.ClientIdentity
	getTxTimestampReturns     struct {
		result1 *timestamp.Timestamp
		result2 error
	}
}

func (f *TransactionContext) GetState(key string) ([]byte, error) {
	if f.GetStateStub != nil {
		return f.GetStateStub(key)
	}
	return f.getStateReturns.result1, f.getStateReturns.result2
}

func (f *TransactionContext) GetStateReturns(result1 []byte, result2 error) {
	f.getStateReturns.result1 = result1
	f.getStateReturns.result2 = result2
}

func (f *TransactionContext) PutStateWithoutKYC(key string, value []byte) error {
	if f.PutStateWithoutKYCStub != nil {
		return f.PutStateWithoutKYCStub(key, value)
	}
	return f.putStateWithoutKYCReturns
}

func (f *TransactionContext) PutStateWithoutKYCReturns(result error) {
	f.putStateWithoutKYCReturns = result
}

func (f *TransactionContext) DelStateWithoutKYC(key string) error {
	if f.DelStateWithoutKYCStub != nil {
		return f.DelStateWithoutKYCStub(key)
	}
	return f.delStateWithoutKYCReturns
}

func (f *TransactionContext) DelStateWithoutKYCReturns(result error) {
	f.delStateWithoutKYCReturns = result
}

func (f *TransactionContext) SetEvent(name string, payload []byte) error {
	if f.SetEventStub != nil {
		return f.SetEventStub(name, payload)
	}
	return f.setEventReturns
}

func (f *TransactionContext) SetEventReturns(result error) {
	f.setEventReturns = result
}

func (f *TransactionContext) GetClientIdentity() cid.ClientIdentity {
	if f.GetClientIdentityStub != nil {
		return f.GetClientIdentityStub()
	}
	return f.getClientIdentityReturns
}

func (f *TransactionContext) GetClientIdentityReturns(identity cid.ClientIdentity) {
	f.getClientIdentityReturns = identity
}

func (f *TransactionContext) GetTxTimestamp() (*timestamp.Timestamp, error) {
	if f.GetTxTimestampStub != nil {
		return f.GetTxTimestampStub()
	}
	return f.getTxTimestampReturns.result1, f.getTxTimestampReturns.result2
}

func (f *TransactionContext) GetTxTimestampReturns(result1 *timestamp.Timestamp, result2 error) {
	f.getTxTimestampReturns.result1 = result1
	f.getTxTimestampReturns.result2 = result2
}
