package cmd

import (
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
)

func TestDepositCmd(t *testing.T) {
	ledger, out, _ := testEnv(t)

	status := run(t, "deposit", "-desc", "salary", "-vendor", "ACME", "-a", "2500", "-d", "2025-03-01", "-t", "09:00:00")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "2025-03-01|09:00:00|salary|ACME|2500.00\n", readLedger(t, ledger))
	assert.Contains(t, out.String(), "Successfully appended transaction to "+ledger)
}

func TestPaymentCmd(t *testing.T) {
	ledger, _, _ := testEnv(t)

	status := run(t, "payment", "-desc", "office chair", "-vendor", "Amazon", "-a", "169.99")
	assert.Equal(t, subcommands.ExitSuccess, status)
	// Date and time default to now.
	assert.Equal(t, "2025-03-10|12:30:23|office chair|Amazon|-169.99\n", readLedger(t, ledger))
}

func TestEntryCmd_Appends(t *testing.T) {
	ledger, _, _ := testEnv(t)

	assert.Equal(t, subcommands.ExitSuccess, run(t, "deposit", "-desc", "a", "-vendor", "v", "-a", "1"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, "payment", "-desc", "b", "-vendor", "v", "-a", "2"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, "deposit", "-desc", "c", "-vendor", "v", "-a", "3"))

	want := "2025-03-10|12:30:23|a|v|1.00\n" +
		"2025-03-10|12:30:23|b|v|-2.00\n" +
		"2025-03-10|12:30:23|c|v|3.00\n"
	assert.Equal(t, want, readLedger(t, ledger))
}

func TestEntryCmd_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"missing vendor", []string{"deposit", "-desc", "salary", "-a", "10"}},
		{"missing amount", []string{"payment", "-desc", "salary", "-vendor", "ACME"}},
		{"negative amount", []string{"deposit", "-desc", "salary", "-vendor", "ACME", "-a", "-10"}},
		{"zero amount", []string{"payment", "-desc", "salary", "-vendor", "ACME", "-a", "0"}},
		{"rounds to zero", []string{"deposit", "-desc", "salary", "-vendor", "ACME", "-a", "0.004"}},
		{"not a number", []string{"payment", "-desc", "salary", "-vendor", "ACME", "-a", "ten"}},
		{"bad date", []string{"deposit", "-desc", "salary", "-vendor", "ACME", "-a", "10", "-d", "10/03/2025"}},
		{"bad time", []string{"deposit", "-desc", "salary", "-vendor", "ACME", "-a", "10", "-t", "9h"}},
		{"delimiter", []string{"deposit", "-desc", "salary|bonus", "-vendor", "ACME", "-a", "10"}},
		{"unknown flag", []string{"deposit", "-x"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger, _, _ := testEnv(t)
			assert.Equal(t, subcommands.ExitUsageError, run(t, tc.args...))
			assert.Empty(t, readLedger(t, ledger))
		})
	}
}

func TestEntryCmd_SmallestAmount(t *testing.T) {
	ledger, _, _ := testEnv(t)

	assert.Equal(t, subcommands.ExitSuccess, run(t, "payment", "-desc", "gum", "-vendor", "shop", "-a", "0.005"))
	assert.Equal(t, "2025-03-10|12:30:23|gum|shop|-0.01\n", readLedger(t, ledger))
}
