package ledger

import "net/http"

// TxTime returns the transaction timestamp in unix seconds. Operations read
// it once and use that value for every comparison within the call.
func TxTime(ctx TransactionContextInterface) (uint64, error) {
	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, "failed to get transaction timestamp", err)
	}
	if ts.Seconds < 0 {
		return 0, NewCustomError(http.StatusInternalServerError, "transaction timestamp predates the epoch", nil)
	}

	return uint64(ts.Seconds), nil
}
