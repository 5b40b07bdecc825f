package ledger

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"
)

const (
	hexAddressRegex      = `^[0-9a-fA-F]{40}$`
	contractAddressRegex = `^klp-[a-fA-F0-9]+-cc$`

	// ZeroAddress is the reserved null identity; it is never a valid
	// beneficiary or recipient.
	ZeroAddress = "0000000000000000000000000000000000000000"
)

// GetUserID extracts the signer's address from the authenticated x509
// client identity.
func GetUserID(ctx TransactionContextInterface) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to read clientID", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to base64 decode clientID", err)
	}

	completeID := string(decodeID)
	cn := strings.Index(completeID, "x509::CN=")
	comma := strings.Index(completeID, ",")
	if cn == -1 || comma == -1 || comma < cn+9 {
		return "", NewCustomError(http.StatusBadRequest, fmt.Sprintf("unexpected clientID format: %s", completeID), nil)
	}
	userID := completeID[cn+9 : comma]

	if !IsUserAddressValid(userID) {
		return "", fmt.Errorf("%w: invalid signer address %s", ErrInvalidArgument, userID)
	}

	return userID, nil
}

func IsUserAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(hexAddressRegex, address)
	return isValid
}

func IsContractAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(contractAddressRegex, address)
	return isValid
}

// IsZeroAddress reports whether address is empty or the reserved null
// identity.
func IsZeroAddress(address string) bool {
	return address == "" || address == ZeroAddress
}

func Decimals() uint64 {
	return 18
}

// ConvertToWei scales a whole-token amount by 10^18.
func ConvertToWei(tokens uint64) string {
	tokensBig := new(big.Int).SetUint64(tokens)
	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(Decimals())), nil)

	return new(big.Int).Mul(tokensBig, multiplier).String()
}

// ParseAmount parses a decimal amount string into a non-negative big.Int.
func ParseAmount(value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, ErrMalformedAmount(value)
	}
	if amount.Sign() < 0 {
		return nil, ErrMalformedAmount(value)
	}

	return amount, nil
}
