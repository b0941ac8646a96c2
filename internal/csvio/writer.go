package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/paystream/txprocessor/internal/models"
)

// outputScale caps amounts at four decimal places in the summary, rounding
// half away from zero beyond that.
const outputScale = 4

// WriteSummary renders account snapshots as a summary CSV. Row order follows
// the input slice; callers that need a stable order sort first.
func WriteSummary(w io.Writer, accounts []models.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, account := range accounts {
		row := []string{
			strconv.FormatUint(uint64(account.ClientID), 10),
			account.Available.Round(outputScale).String(),
			account.Held.Round(outputScale).String(),
			account.Total.Round(outputScale).String(),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
