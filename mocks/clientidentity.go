package mocks

import "crypto/x509"

type ClientIdentity struct {
	GetIDStub func() (string, error)

	getIDReturns struct {
		result1 string
		result2 error
	}
	getMSPIDReturns struct {
		result1 string
		result2 error
	}
}

func (f *ClientIdentity) GetID() (string, error) {
	if f.GetIDStub != nil {
		return f.GetIDStub()
	}
	return f.getIDReturns.result1, f.getIDReturns.result2
}

func (f *ClientIdentity) GetIDReturns(result1 string, result2 error) {
	f.getIDReturns.result1 = result1
	f.getIDReturns.result2 = result2
}

func (f *ClientIdentity) GetMSPID() (string, error) {
	return f.getMSPIDReturns.result1, f.getMSPIDReturns.result2
}

func (f *ClientIdentity) GetMSPIDReturns(result1 string, result2 error) {
	f.getMSPIDReturns.result1 = result1
	f.getMSPIDReturns.result2 = result2
}

func (f *ClientIdentity) GetAttributeValue(string) (string, bool, error) {
	return "", false, nil
}

func (f *ClientIdentity) AssertAttributeValue(string, string) error {
	return nil
}

func (f *ClientIdentity) GetX509Certificate() (*x509.Certificate, error) {
	return nil, nil
}
