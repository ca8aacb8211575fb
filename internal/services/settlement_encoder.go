package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"apextip/internal/models/db_models"
)

// SettlementHeader is the column layout expected by the payout processor's bulk
// transfer import.
var SettlementHeader = []string{
	"payment_id",
	"account_id",
	"amount",
	"currency",
	"transfer_notes",
	"linked_account_notes",
	"on_hold",
	"on_hold_until",
}

// transferNotes field order is the order of linkedAccountNotes.
type transferNotes struct {
	TipID     string `json:"tip_id"`
	VisitorID string `json:"visitor_id"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
}

const linkedAccountNotes = `["tip_id","visitor_id","message","created_at"]`

// EncodeSettlementCSV writes one comma-separated row per tip, in the given order, after
// the header. Amounts are integer minor units net of commission.
func EncodeSettlementCSV(w io.Writer, accountID string, tips []db_models.Tip) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SettlementHeader); err != nil {
		return err
	}

	for _, tip := range tips {
		notes, err := encodeTransferNotes(tip)
		if err != nil {
			return err
		}
		record := []string{
			tip.PaymentID,
			accountID,
			strconv.FormatInt(PayableMinorUnits(tip.Amount), 10),
			tip.Currency,
			notes,
			linkedAccountNotes,
			"0",
			"",
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func encodeTransferNotes(tip db_models.Tip) (string, error) {
	notes := transferNotes{
		TipID:     tip.ID.String(),
		VisitorID: tip.VisitorID,
		CreatedAt: tip.CreatedAt,
	}
	if tip.Message != nil {
		notes.Message = *tip.Message
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(notes); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
