package fintrack

import (
	"io"
	"strings"
)

// RenderView returns the text of a view: a heading followed by one rendered
// transaction per line. txs is expected in display order already.
func RenderView(v View, txs []Transaction) string {
	var b strings.Builder
	b.WriteString("===== ")
	b.WriteString(v.Title())
	b.WriteString(" =====\n")
	if len(txs) == 0 {
		b.WriteString("No transactions.\n")
	}
	for _, tx := range txs {
		b.WriteString(tx.Render())
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderAll renders all transactions, most recent first.
func RenderAll(txs []Transaction) string { return RenderView(ViewAll, ViewAll.Select(txs)) }

// RenderDeposits renders the deposits, in load order.
func RenderDeposits(txs []Transaction) string {
	return RenderView(ViewDeposits, ViewDeposits.Select(txs))
}

// RenderPayments renders the payments, in load order.
func RenderPayments(txs []Transaction) string {
	return RenderView(ViewPayments, ViewPayments.Select(txs))
}

// DisplayAll writes RenderAll(txs) to w.
func DisplayAll(w io.Writer, txs []Transaction) error {
	_, err := io.WriteString(w, RenderAll(txs))
	return err
}

// DisplayDeposits writes RenderDeposits(txs) to w.
func DisplayDeposits(w io.Writer, txs []Transaction) error {
	_, err := io.WriteString(w, RenderDeposits(txs))
	return err
}

// DisplayPayments writes RenderPayments(txs) to w.
func DisplayPayments(w io.Writer, txs []Transaction) error {
	_, err := io.WriteString(w, RenderPayments(txs))
	return err
}

// Display writes the view v of txs to w.
func Display(w io.Writer, v View, txs []Transaction) error {
	_, err := io.WriteString(w, RenderView(v, v.Select(txs)))
	return err
}
